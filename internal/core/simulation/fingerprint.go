package simulation

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the tick counter, lifecycle counters and the full state
// of every cell in processing order. Two runs with the same seed, config and
// dt sequence produce the same fingerprint.
func (s *Simulation) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := xxhash.New()
	var buf [8]byte
	putUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putFloat := func(f float64) { putUint(math.Float64bits(f)) }

	putUint(s.tick)
	putUint(s.spawned)
	putUint(s.dead)
	putUint(s.kills)
	putFloat(s.sinceCull)
	putUint(uint64(s.pop.Len()))

	for _, c := range s.pop.Cells() {
		_, _ = h.Write(c.ID[:])
		putFloat(c.Pos.X)
		putFloat(c.Pos.Y)
		putFloat(c.Heading)
		putFloat(c.Speed)
		putFloat(c.Size)
		putFloat(c.EscapeCooldown)
		putFloat(c.AttackCooldown)
		putFloat(c.PhraseTimer)
		putUint(uint64(c.Kills))
		_, _ = h.WriteString(c.Name)
		_, _ = h.WriteString(c.Color)
		_, _ = h.WriteString(c.Phrase)
	}
	return h.Sum64()
}
