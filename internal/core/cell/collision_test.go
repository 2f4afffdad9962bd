package cell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/cellarena/internal/core/random"
)

func TestCollisionKillsSmallLoser(t *testing.T) {
	tune := DefaultTuning()
	a, b := at(100, 100, 10), at(105, 100, 4)

	res, hit := a.CollideWith(b, tune, script(), nil)
	require.True(t, hit)
	require.Equal(t, RoleA, res.Winner)
	require.Equal(t, RoleB, res.Loser())
	require.True(t, res.Killed)

	require.InDelta(t, 10.2, a.Size, 1e-9)
	require.Equal(t, 0.0, b.Size)
	require.Equal(t, 1, a.Kills)
	require.Equal(t, 0, b.Kills)
}

func TestCollisionGlancingBlow(t *testing.T) {
	tune := DefaultTuning()
	a, b := at(100, 100, 10), at(105, 100, 8)

	res, hit := a.CollideWith(b, tune, script(), nil)
	require.True(t, hit)
	require.False(t, res.Killed)
	require.InDelta(t, 10.4, a.Size, 1e-9)
	require.InDelta(t, 8/1.1, b.Size, 1e-9)
	require.InDelta(t, 7.27, b.Size, 0.01)
	require.Equal(t, 0, a.Kills)
}

func TestCollisionLostByActingCell(t *testing.T) {
	tune := DefaultTuning()
	a, b := at(100, 100, 4), at(105, 100, 10)

	res, _ := a.CollideWith(b, tune, script(), nil)
	require.Equal(t, RoleB, res.Winner)
	require.True(t, res.Killed)
	require.InDelta(t, 10.2, b.Size, 1e-9)
	require.Equal(t, 0.0, a.Size)

	// b won while a was acting, so nobody scores
	require.Equal(t, 0, a.Kills)
	require.Equal(t, 0, b.Kills)

	// a is a corpse now; hitting it again is not another kill
	res, hit := b.CollideWith(a, tune, script(), nil)
	require.True(t, hit)
	require.False(t, res.Killed)
	require.Equal(t, 0, b.Kills)
	require.InDelta(t, 10.2, b.Size, 1e-9)
}

func TestCollisionEqualSizes(t *testing.T) {
	tune := DefaultTuning()

	t.Run("coin picks the acting cell", func(t *testing.T) {
		a, b := at(100, 100, 6), at(102, 100, 6)
		res, _ := a.CollideWith(b, tune, script(0.2), nil)
		require.Equal(t, RoleA, res.Winner)
		require.InDelta(t, 6.3, a.Size, 1e-9)
		require.InDelta(t, 6/1.1, b.Size, 1e-9)
	})

	t.Run("coin misses and nothing happens", func(t *testing.T) {
		// Ties that do not go to the acting cell are left unresolved for
		// this pair; the other cell gets its own flip when it acts.
		a, b := at(100, 100, 6), at(102, 100, 6)
		res, hit := a.CollideWith(b, tune, script(0.7), nil)
		require.True(t, hit)
		require.Equal(t, NoWinner, res.Winner)
		require.Equal(t, NoWinner, res.Loser())
		require.Equal(t, 6.0, a.Size)
		require.Equal(t, 6.0, b.Size)
	})
}

func TestCollisionRequiresContact(t *testing.T) {
	tune := DefaultTuning()
	a, b := at(100, 100, 10), at(111, 100, 10)

	_, hit := a.CollideWith(b, tune, script(), nil)
	require.False(t, hit)
	require.Equal(t, 10.0, a.Size)

	_, hit = a.CollideWith(a, tune, script(), nil)
	require.False(t, hit)
}

func TestCollisionPhrase(t *testing.T) {
	tune := DefaultTuning()

	t.Run("winner speaks", func(t *testing.T) {
		a, b := at(100, 100, 30), at(105, 100, 20)
		res, _ := a.CollideWith(b, tune, script(0.1, 0.1), fixedPhrase("Gulp"))
		require.Equal(t, "Gulp", res.Phrase)
		require.Equal(t, "Gulp", a.Phrase)
		require.Equal(t, tune.PhraseDuration, a.PhraseTimer)
	})

	t.Run("large winners stay quiet", func(t *testing.T) {
		a, b := at(100, 100, 250), at(105, 100, 20)
		res, _ := a.CollideWith(b, tune, script(0.1, 0.1), fixedPhrase("Gulp"))
		require.Empty(t, res.Phrase)
		require.Zero(t, a.PhraseTimer)
	})

	t.Run("small meals are not worth a comment", func(t *testing.T) {
		a, b := at(100, 100, 30), at(105, 100, 10)
		src := script(0.1, 0.1)
		res, _ := a.CollideWith(b, tune, src, fixedPhrase("Gulp"))
		require.Empty(t, res.Phrase)
		require.Equal(t, 1, src.next)
	})

	t.Run("losers do not speak", func(t *testing.T) {
		a, b := at(100, 100, 20), at(105, 100, 30)
		_, _ = a.CollideWith(b, tune, script(0.1, 0.1), fixedPhrase("Gulp"))
		require.Empty(t, a.Phrase)
		require.Empty(t, b.Phrase)
	})
}

func TestResolveCollisionIsPure(t *testing.T) {
	tune := DefaultTuning()
	res := ResolveCollision(3, 50, tune, script())
	require.Equal(t, RoleB, res.Winner)
	require.InDelta(t, 50.15, res.WinnerSize, 1e-9)
	require.Equal(t, 0.0, res.LoserSize)
	require.Equal(t, 3.0, res.LoserSizeBefore)
	require.True(t, res.Killed)
}

func TestSizesNeverGoNegative(t *testing.T) {
	tune := DefaultTuning()
	src := random.New(99)
	cells := make([]*Cell, 40)
	for i := range cells {
		cells[i] = at(random.Range(src, 0, 30), random.Range(src, 0, 30), random.Range(src, 0, 20))
	}
	for round := 0; round < 50; round++ {
		for _, a := range cells {
			for _, b := range cells {
				a.CollideWith(b, tune, src, fixedPhrase("x"))
				require.GreaterOrEqual(t, a.Size, 0.0)
				require.GreaterOrEqual(t, b.Size, 0.0)
			}
		}
	}
}
