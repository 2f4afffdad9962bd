package simulation

import "github.com/zeusync/cellarena/internal/core/cell"

// Population is the ordered cell collection. Order is processing order within
// a tick. Removal compacts in place and keeps the survivors' relative order.
type Population struct {
	cells []*cell.Cell
}

func (p *Population) Len() int { return len(p.cells) }

func (p *Population) Append(cells ...*cell.Cell) {
	p.cells = append(p.cells, cells...)
}

// Cells exposes the backing slice. It is only valid until the next mutation.
func (p *Population) Cells() []*cell.Cell { return p.cells }

// RemoveIf drops every cell matching pred, calling removed for each one, and
// returns how many were dropped.
func (p *Population) RemoveIf(pred func(*cell.Cell) bool, removed func(*cell.Cell)) int {
	kept := p.cells[:0]
	n := 0
	for _, c := range p.cells {
		if pred(c) {
			n++
			if removed != nil {
				removed(c)
			}
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(p.cells); i++ {
		p.cells[i] = nil
	}
	p.cells = kept
	return n
}
