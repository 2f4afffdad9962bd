// Package simulation owns the cell population and advances it tick by tick.
//
// A tick spawns a batch of newcomers while the population is under its cap,
// then walks the population in order. Every cell big enough to act checks
// each other cell for contact (collision resolution) and for an imminent
// collision (flee or chase), and then moves. Mutations made while processing
// one cell are visible to every cell processed after it in the same tick, so
// processing order shapes the outcome. Dead and far out-of-bounds cells are
// culled on a fixed period rather than every tick.
package simulation

import (
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/cellarena/internal/core/arena"
	"github.com/zeusync/cellarena/internal/core/cell"
	"github.com/zeusync/cellarena/internal/core/events/bus"
	"github.com/zeusync/cellarena/internal/core/flavor"
	"github.com/zeusync/cellarena/internal/core/observability/log"
	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/tunable"
)

// Simulation is a single arena and its population. Tick must be called from
// one goroutine; the read methods and the tunables are safe to call from
// anywhere, including event handlers.
type Simulation struct {
	mu sync.RWMutex

	cfg     Config
	rng     random.Source
	bus     bus.EventBus
	filters []bus.EventFilter
	logger  log.Log

	// pending holds events raised under mu. They are delivered after mu is
	// released so handlers can read the simulation back.
	pending []bus.Event

	names   cell.Namer
	colors  cell.Painter
	phrases cell.Phraser

	bounds        *tunable.Value[arena.Arena]
	speedModifier *tunable.Value[float64]

	pop       Population
	tick      uint64
	sinceCull float64

	spawned uint64
	dead    uint64
	kills   uint64
}

// Option configures a Simulation in New.
type Option func(*Simulation)

// WithBus publishes lifecycle events on b.
func WithBus(b bus.EventBus) Option {
	return func(s *Simulation) { s.bus = b }
}

// WithEventFilters drops any event rejected by one of filters before it
// reaches the bus handlers.
func WithEventFilters(filters ...bus.EventFilter) Option {
	return func(s *Simulation) { s.filters = append(s.filters, filters...) }
}

// WithLogger replaces the default no-op logger.
func WithLogger(l log.Log) Option {
	return func(s *Simulation) { s.logger = l }
}

// WithNamer, WithPainter and WithPhraser replace the flavor defaults.
func WithNamer(n cell.Namer) Option {
	return func(s *Simulation) { s.names = n }
}

func WithPainter(p cell.Painter) Option {
	return func(s *Simulation) { s.colors = p }
}

func WithPhraser(p cell.Phraser) Option {
	return func(s *Simulation) { s.phrases = p }
}

// New validates cfg and seeds the starting population. All randomness,
// including cell IDs and the default colour palette, comes from rng.
func New(cfg Config, rng random.Source, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:           cfg,
		rng:           rng,
		logger:        log.NewNop(),
		bounds:        tunable.New(cfg.Arena),
		speedModifier: tunable.New(cfg.SpeedModifier),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.names == nil {
		s.names = flavor.NewNames(nil)
	}
	if s.colors == nil {
		s.colors = flavor.NewPalette(rng)
	}
	if s.phrases == nil {
		s.phrases = flavor.NewPhrases(nil)
	}
	s.logger = s.logger.With(log.String("component", "simulation"))

	s.spawn(cfg.Arena, cfg.StartingCells, cfg.StartSizeMin, cfg.StartSizeMax)

	s.logger.Info("Simulation created",
		log.Int64("seed", cfg.Seed),
		log.Int("cells", s.pop.Len()),
		log.Float64("width", cfg.Arena.Width),
		log.Float64("height", cfg.Arena.Height))

	s.flush(s.takePending())
	return s, nil
}

// TickReport summarises one tick.
type TickReport struct {
	Tick       uint64
	Spawned    int
	Collisions int
	Kills      int
	Culled     int
	// PreCull is the population size after spawning and before any cull.
	PreCull int
	Live    int
}

// Tick advances the world by dt milliseconds. Negative dt counts as 0.
// Events raised during the tick are published once it has finished.
func (s *Simulation) Tick(dt float64) TickReport {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	s.mu.Lock()
	report := s.tickLocked(dt)
	events := s.takePending()
	s.mu.Unlock()

	s.flush(events)
	return report
}

func (s *Simulation) tickLocked(dt float64) TickReport {
	bounds := s.bounds.Get()
	modifier := s.speedModifier.Get()
	tuning := s.cfg.Cell

	s.tick++
	report := TickReport{Tick: s.tick}

	if s.pop.Len() < s.cfg.MaxCells {
		report.Spawned = s.spawn(bounds, s.cfg.SpawnBatch, s.cfg.SpawnSizeMin, s.cfg.SpawnSizeMax)
	}

	cells := s.pop.Cells()
	for i, a := range cells {
		if a.CanReact(tuning) {
			for j, b := range cells {
				if i == j {
					continue
				}
				if res, hit := a.CollideWith(b, tuning, s.rng, s.phrases); hit {
					report.Collisions++
					s.afterCollision(a, b, res, &report)
				}
				a.React(b, tuning, s.rng)
			}
		}
		a.Advance(dt, bounds, tuning, modifier, s.rng)
	}
	report.PreCull = s.pop.Len()

	s.sinceCull += dt
	if s.sinceCull >= s.cfg.CullPeriod {
		report.Culled = s.cullLocked(bounds)
		s.sinceCull = 0
	}

	report.Live = s.pop.Len()
	return report
}

func (s *Simulation) afterCollision(a, b *cell.Cell, res cell.Resolution, report *TickReport) {
	if res.Phrase != "" {
		s.publish(EventCellPhrase, PhraseEvent{Tick: s.tick, ID: a.ID, Name: a.Name, Phrase: res.Phrase})
	}
	if !res.Killed {
		return
	}

	winner, victim := a, b
	if res.Winner == cell.RoleB {
		winner, victim = b, a
	}
	credited := res.Winner == cell.RoleA
	if credited {
		s.kills++
		report.Kills++
	}
	s.publish(EventCellAbsorbed, AbsorbedEvent{
		Tick:       s.tick,
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
		WinnerSize: winner.Size,
		VictimID:   victim.ID,
		VictimName: victim.Name,
		Credited:   credited,
	})
}

// Cull removes dead and far out-of-bounds cells immediately and returns how
// many were removed. Tick calls it on its own schedule.
func (s *Simulation) Cull() int {
	s.mu.Lock()
	removed := s.cullLocked(s.bounds.Get())
	events := s.takePending()
	s.mu.Unlock()

	s.flush(events)
	return removed
}

func (s *Simulation) cullLocked(bounds arena.Arena) int {
	removed := s.pop.RemoveIf(
		func(c *cell.Cell) bool {
			return c.Size < s.cfg.CullBelowSize || c.Dead() || bounds.OutOfBounds(c.Pos, s.cfg.CullMargin)
		},
		func(c *cell.Cell) {
			reason := CullOutOfBounds
			if c.Size < s.cfg.CullBelowSize || c.Dead() {
				reason = CullDead
			}
			s.publish(EventCellCulled, CulledEvent{
				Tick:   s.tick,
				ID:     c.ID,
				Name:   c.Name,
				Size:   c.Size,
				Kills:  c.Kills,
				Reason: reason,
			})
		},
	)
	s.dead += uint64(removed)

	if removed > 0 {
		s.logger.Debug("Culled cells",
			log.Uint64("tick", s.tick),
			log.Int("removed", removed),
			log.Int("live", s.pop.Len()),
			log.Uint64("dead_total", s.dead))
	}
	return removed
}

func (s *Simulation) spawn(bounds arena.Arena, n int, minSize, maxSize float64) int {
	for i := 0; i < n; i++ {
		c := cell.New(
			uuid.Must(uuid.NewRandomFromReader(s.rng)),
			bounds.RandomInterior(s.rng, s.cfg.SpawnPadding),
			random.Range(s.rng, minSize, maxSize),
			random.Range(s.rng, 0, 360),
			s.names.Name(s.rng),
			s.colors.Color(s.rng),
		)
		s.pop.Append(c)
		s.spawned++
		s.publish(EventCellSpawned, SpawnedEvent{Tick: s.tick, ID: c.ID, Name: c.Name, Size: c.Size})
	}
	return n
}

// Add appends cells to the end of the processing order.
func (s *Simulation) Add(cells ...*cell.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pop.Append(cells...)
}

// Resize changes the arena from the next tick on. Cells left outside are
// pushed back by their next wall reflection, not here.
func (s *Simulation) Resize(width, height float64) error {
	if width <= 0 || height <= 0 || math.IsNaN(width) || math.IsNaN(height) {
		return ErrInvalidArena
	}
	s.bounds.Set(arena.New(width, height))
	s.logger.Info("Arena resized",
		log.Float64("width", width),
		log.Float64("height", height),
		log.Uint64("version", s.bounds.Version()))
	return nil
}

func (s *Simulation) Arena() arena.Arena {
	return s.bounds.Get()
}

// SetSpeedModifier takes effect at the next speed recompute.
func (s *Simulation) SetSpeedModifier(m float64) error {
	if m < 0 || math.IsNaN(m) {
		return ErrInvalidModifier
	}
	s.speedModifier.Set(m)
	s.logger.Info("Speed modifier changed",
		log.Float64("speed_modifier", m),
		log.Uint64("version", s.speedModifier.Version()))
	return nil
}

func (s *Simulation) SpeedModifier() float64 {
	return s.speedModifier.Get()
}

// AdjustSpeedModifier steps the modifier up or down by the configured step.
// A step down only happens while the modifier is above the configured floor.
func (s *Simulation) AdjustSpeedModifier(up bool) float64 {
	step, floor := s.cfg.SpeedModifierStep, s.cfg.SpeedModifierFloor
	m := s.speedModifier.Update(func(m float64) float64 {
		if up {
			return m + step
		}
		if m > floor {
			return m - step
		}
		return m
	})
	s.logger.Info("Speed modifier changed",
		log.Float64("speed_modifier", m),
		log.Uint64("version", s.speedModifier.Version()))
	return m
}

// Snapshot copies the renderer-facing state of every live cell in
// processing order.
func (s *Simulation) Snapshot() []cell.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]cell.View, s.pop.Len())
	for i, c := range s.pop.Cells() {
		out[i] = c.View()
	}
	return out
}

// Stats is a point-in-time summary for logs and dashboards.
type Stats struct {
	Tick          uint64
	Live          int
	Spawned       uint64
	Dead          uint64
	Kills         uint64
	LargestName   string
	LargestSize   float64
	SpeedModifier float64
}

func (s *Simulation) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{
		Tick:          s.tick,
		Live:          s.pop.Len(),
		Spawned:       s.spawned,
		Dead:          s.dead,
		Kills:         s.kills,
		SpeedModifier: s.speedModifier.Get(),
	}
	for _, c := range s.pop.Cells() {
		if c.Size > st.LargestSize {
			st.LargestSize = c.Size
			st.LargestName = c.Name
		}
	}
	return st
}

// publish queues an event. Callers hold mu.
func (s *Simulation) publish(eventType string, data any) {
	if s.bus == nil {
		return
	}
	s.pending = append(s.pending, bus.NewEvent(eventType, eventSource, data))
}

func (s *Simulation) takePending() []bus.Event {
	events := s.pending
	s.pending = nil
	return events
}

// flush delivers events in the order they were raised. It must run without mu.
func (s *Simulation) flush(events []bus.Event) {
	for _, ev := range events {
		if err := s.bus.PublishWithFilters(ev, s.filters...); err != nil {
			s.logger.Warn("Event handler failed", log.String("event", ev.Type()), log.Error(err))
		}
	}
}
