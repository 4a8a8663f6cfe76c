package geom

import (
	"fmt"
	"sort"
)

// Move is a closed enumeration of the nine unit motions a module may perform
// in one step: eight cardinal/diagonal slides plus STAY.
type Move int

const (
	// Stay means "no motion this step". It is always admissible.
	Stay Move = iota
	N
	S
	E
	W
	NE
	NW
	SE
	SW
)

// moveDeltas is the table of unit-vector payloads for each Move, indexed by
// the Move's integer value. Kept as a single source of truth so Delta,
// String, and AllMoves never drift apart.
var moveDeltas = [...]Cell{
	Stay: {0, 0},
	N:    {0, 1},
	S:    {0, -1},
	E:    {1, 0},
	W:    {-1, 0},
	NE:   {1, 1},
	NW:   {-1, 1},
	SE:   {1, -1},
	SW:   {-1, -1},
}

var moveNames = [...]string{
	Stay: "STAY",
	N:    "N",
	S:    "S",
	E:    "E",
	W:    "W",
	NE:   "NE",
	NW:   "NW",
	SE:   "SE",
	SW:   "SW",
}

// AllMoves lists the eight non-STAY deltas, in the canonical order used by
// Cell.Neighbors8 and by every phase that scans "the eight directions".
var AllMoves = [8]Move{N, S, E, W, NE, NW, SE, SW}

// CardinalMoves lists the four orthogonal deltas.
var CardinalMoves = [4]Move{N, S, E, W}

// DiagonalMoves lists the four diagonal deltas.
var DiagonalMoves = [4]Move{NE, NW, SE, SW}

// Delta returns the unit-vector payload of m. Valid for any Move in range;
// out-of-range values return the zero Cell.
func (m Move) Delta() Cell {
	if m < Stay || int(m) >= len(moveDeltas) {
		return Cell{}
	}
	return moveDeltas[m]
}

// IsDiagonal reports whether m is one of NE, NW, SE, SW.
func (m Move) IsDiagonal() bool {
	d := m.Delta()
	return d.X != 0 && d.Y != 0
}

// IsCardinal reports whether m is one of N, S, E, W.
func (m Move) IsCardinal() bool {
	d := m.Delta()
	return (d.X == 0) != (d.Y == 0)
}

// Opposite returns the move whose delta is the negation of m's, e.g.
// N.Opposite() == S. Stay.Opposite() == Stay.
func (m Move) Opposite() Move {
	switch m {
	case N:
		return S
	case S:
		return N
	case E:
		return W
	case W:
		return E
	case NE:
		return SW
	case SW:
		return NE
	case NW:
		return SE
	case SE:
		return NW
	default:
		return Stay
	}
}

// String implements fmt.Stringer.
func (m Move) String() string {
	if m < Stay || int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// MoveFromDelta returns the Move whose delta equals d, and false if d is not
// one of the nine admissible deltas.
func MoveFromDelta(d Cell) (Move, bool) {
	for m := Stay; int(m) < len(moveDeltas); m++ {
		if moveDeltas[m] == d {
			return m, true
		}
	}
	return Stay, false
}

// ModuleID is a process-unique positive integer identifying a Module. It is
// assigned once at module creation and never reused (environment.Environment
// hands out ids from its own counter).
type ModuleID uint64

// MoveSet maps a module id to the Move it performs in one simultaneous step.
// Modules absent from a MoveSet are implicitly Stay.
type MoveSet map[ModuleID]Move

// Clone returns a shallow copy of ms.
func (ms MoveSet) Clone() MoveSet {
	out := make(MoveSet, len(ms))
	for id, m := range ms {
		out[id] = m
	}
	return out
}

// IDs returns the module ids of ms in ascending order, the deterministic
// iteration order every tie-break in this module relies on.
func (ms MoveSet) IDs() []ModuleID {
	out := make([]ModuleID, 0, len(ms))
	for id := range ms {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
