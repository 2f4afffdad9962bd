package bus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ time.Duration) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got Event
	_, err := b.Subscribe("cell.spawned", func(e Event) error {
		got = e
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("cell.spawned", "tester", 123)))
	require.NotNil(t, got)
	require.Equal(t, "tester", got.Source())
	require.Equal(t, 123, got.Data())
	require.False(t, got.Timestamp().IsZero())
}

func TestDeliveryFollowsSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		_, err := b.Subscribe("ev", func(Event) error {
			order = append(order, i)
			return nil
		})
		require.NoError(t, err)
	}
	require.NoError(t, b.Publish(NewEvent("ev", "src", nil)))
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	e1, e2 := errors.New("first"), errors.New("second")
	_, _ = b.Subscribe("ev", func(Event) error { return e1 })
	_, _ = b.Subscribe("ev", func(Event) error { return nil })
	_, _ = b.Subscribe("ev", func(Event) error { return e2 })

	err := b.Publish(NewEvent("ev", "src", nil))
	require.ErrorIs(t, err, e1)
	require.ErrorIs(t, err, e2)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe("ev", func(Event) error { count++; return nil })
	require.NoError(t, err)
	require.True(t, sub.IsActive())
	require.NotEmpty(t, sub.ID())
	require.Equal(t, "ev", sub.EventType())

	_ = b.Publish(NewEvent("ev", "src", nil))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	require.False(t, sub.IsActive())
	_ = b.Publish(NewEvent("ev", "src", nil))
	require.Equal(t, 1, count)

	require.NoError(t, b.Unsubscribe(nil))
}

func TestNilHandlerRejected(t *testing.T) {
	_, err := New().Subscribe("ev", nil)
	require.ErrorIs(t, err, ErrNilHandler)
}

func TestFiltersDropEvents(t *testing.T) {
	b := New()
	obs := &testObserver{}
	b.AddObserver(obs)

	count := 0
	_, _ = b.Subscribe("ev", func(Event) error { count++; return nil })

	reject := func(Event) bool { return false }
	accept := func(Event) bool { return true }

	require.NoError(t, b.PublishWithFilters(NewEvent("ev", "src", nil), accept, reject))
	require.Equal(t, 0, count)
	require.NoError(t, b.PublishWithFilters(NewEvent("ev", "src", nil), accept))
	require.Equal(t, 1, count)
	require.Equal(t, uint64(1), b.GetMetrics().DroppedByFilters)
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("e", func(Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", nil))
	require.Zero(t, b.GetMetrics().Published)

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	m := b.GetMetrics()
	require.Equal(t, uint64(1), m.Published)
	require.Equal(t, uint64(1), m.DeliveredHandlers)
	require.Equal(t, uint64(1), m.SubscribersActive)
	require.Equal(t, 1, obs.publishCount)
	require.Equal(t, 1, obs.deliveredCount)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	require.Equal(t, 1, obs.publishCount)
}

func TestSkipTypes(t *testing.T) {
	b := New()
	obs := &testObserver{}
	b.AddObserver(obs)

	var got []string
	for _, typ := range []string{"cell.spawned", "cell.culled"} {
		_, err := b.Subscribe(typ, func(e Event) error {
			got = append(got, e.Type())
			return nil
		})
		require.NoError(t, err)
	}

	skip := SkipTypes("cell.spawned")
	require.NoError(t, b.PublishWithFilters(NewEvent("cell.spawned", "src", nil), skip))
	require.NoError(t, b.PublishWithFilters(NewEvent("cell.culled", "src", nil), skip))

	require.Equal(t, []string{"cell.culled"}, got)
	m := b.GetMetrics()
	require.EqualValues(t, 1, m.DroppedByFilters)
	require.EqualValues(t, 1, m.Published)
}
