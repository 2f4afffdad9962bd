package simulation

import "github.com/google/uuid"

// Event types published on the bus.
const (
	EventCellSpawned  = "cell.spawned"
	EventCellAbsorbed = "cell.absorbed"
	EventCellCulled   = "cell.culled"
	EventCellPhrase   = "cell.phrase"
)

const eventSource = "simulation"

type SpawnedEvent struct {
	Tick uint64
	ID   uuid.UUID
	Name string
	Size float64
}

// AbsorbedEvent reports a full kill. Credited is false when the victim was
// the acting cell, in which case the winner's counter does not move.
type AbsorbedEvent struct {
	Tick       uint64
	WinnerID   uuid.UUID
	WinnerName string
	WinnerSize float64
	VictimID   uuid.UUID
	VictimName string
	Credited   bool
}

type CullReason string

const (
	CullDead        CullReason = "dead"
	CullOutOfBounds CullReason = "out_of_bounds"
)

type CulledEvent struct {
	Tick   uint64
	ID     uuid.UUID
	Name   string
	Size   float64
	Kills  int
	Reason CullReason
}

type PhraseEvent struct {
	Tick   uint64
	ID     uuid.UUID
	Name   string
	Phrase string
}
