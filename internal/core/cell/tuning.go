package cell

import (
	"errors"
	"fmt"
)

var ErrInvalidTuning = errors.New("invalid cell tuning")

// Tuning holds every constant of the cell model. Distances are in arena
// units, durations in milliseconds, speeds in units per millisecond.
type Tuning struct {
	MaxSize          float64 `yaml:"max_size"`
	UberMaxSize      float64 `yaml:"uber_max_size"`
	LeaveOnMaxSize   bool    `yaml:"leave_on_max_size"`
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	SpeedCoefficient float64 `yaml:"speed_coefficient"`

	EscapeDelay  float64 `yaml:"escape_delay"`
	AttackDelay  float64 `yaml:"attack_delay"`
	MinReactSize float64 `yaml:"min_react_size"`
	ThreatFloor  float64 `yaml:"threat_floor"`
	TurnJitter   float64 `yaml:"turn_jitter"`
	BounceJitter float64 `yaml:"bounce_jitter"`

	KillFloor     float64 `yaml:"kill_floor"`
	GrowthFactor  float64 `yaml:"growth_factor"`
	ShrinkDivisor float64 `yaml:"shrink_divisor"`

	PhraseDuration      float64 `yaml:"phrase_duration"`
	PhraseChance        float64 `yaml:"phrase_chance"`
	PhraseMinLoserSize  float64 `yaml:"phrase_min_loser_size"`
	ChattyChance        float64 `yaml:"chatty_chance"`
	ChattyMaxWinnerSize float64 `yaml:"chatty_max_winner_size"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxSize:          500,
		UberMaxSize:      1200,
		LeaveOnMaxSize:   true,
		MinSpeed:         0.01,
		MaxSpeed:         1,
		SpeedCoefficient: 0.08,

		EscapeDelay:  50,
		AttackDelay:  250,
		MinReactSize: 1.5,
		ThreatFloor:  4,
		TurnJitter:   15,
		BounceJitter: 10,

		KillFloor:     4,
		GrowthFactor:  0.05,
		ShrinkDivisor: 1.1,

		PhraseDuration:      5000,
		PhraseChance:        0.2,
		PhraseMinLoserSize:  12,
		ChattyChance:        0.3,
		ChattyMaxWinnerSize: 200,
	}
}

func (t Tuning) Validate() error {
	switch {
	case t.MaxSize <= 0 || t.UberMaxSize <= 0:
		return fmt.Errorf("%w: size thresholds must be positive", ErrInvalidTuning)
	case t.MinSpeed < 0 || t.MaxSpeed < 0 || t.SpeedCoefficient < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidTuning)
	case t.EscapeDelay < 0 || t.AttackDelay < 0 || t.PhraseDuration < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidTuning)
	case t.ShrinkDivisor < 1:
		return fmt.Errorf("%w: shrink_divisor must be at least 1", ErrInvalidTuning)
	case t.GrowthFactor < 0:
		return fmt.Errorf("%w: growth_factor must not be negative", ErrInvalidTuning)
	case t.KillFloor < 0 || t.ThreatFloor < 0 || t.MinReactSize < 0:
		return fmt.Errorf("%w: floors must not be negative", ErrInvalidTuning)
	}
	return nil
}
