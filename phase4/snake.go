package phase4

import "github.com/katalvlaran/slidesquares/geom"

// Outcome classifies what a SnakeHead's scan concluded.
type Outcome int

const (
	// MoveForward is the common case: move and newFacing are both set.
	MoveForward Outcome = iota
	// ReachedEnd reports the head scanned past the ensemble's bounding box;
	// the snake has nowhere left to crawl and should be torn down.
	ReachedEnd
	// RemakeSnake reports the head backed itself into a dead end with a
	// segment behind it; the caller should promote the next segment to head.
	RemakeSnake
	// NoDecision reports none of the scan patterns matched (should not
	// occur for a well-formed boundary, kept as an explicit outcome rather
	// than a panic since Snake geometry is produced by earlier phases this
	// package does not control).
	NoDecision
)

// scanOffsets are the five cells a SnakeHead inspects relative to its own
// position, keyed by current facing. Grounded on structures/snake.py's
// scan_dict.
var scanOffsets = map[geom.Move]struct{ right, left, ahead, farAhead, leftFlank geom.Cell }{
	geom.S: {right: geom.Cell{X: -1, Y: -1}, left: geom.Cell{X: 1, Y: -1}, ahead: geom.Cell{X: 0, Y: -1}, farAhead: geom.Cell{X: 0, Y: -2}, leftFlank: geom.Cell{X: 1, Y: 0}},
	geom.W: {right: geom.Cell{X: -1, Y: 1}, left: geom.Cell{X: -1, Y: -1}, ahead: geom.Cell{X: -1, Y: 0}, farAhead: geom.Cell{X: -2, Y: 0}, leftFlank: geom.Cell{X: 0, Y: -1}},
	geom.E: {right: geom.Cell{X: 1, Y: -1}, left: geom.Cell{X: 1, Y: 1}, ahead: geom.Cell{X: 1, Y: 0}, farAhead: geom.Cell{X: 2, Y: 0}, leftFlank: geom.Cell{X: 0, Y: 1}},
}

// headMoveRow packs the (move, new-facing) pair for one branch of the
// decision table, or nil when the source's head_move_dict has no entry for
// that branch under this facing.
type headMoveRow *[2]geom.Move

var headMoveTable = map[geom.Move]struct {
	ahead, diagonalLeft, diagonalRight, justLeft headMoveRow
}{
	geom.S: {
		ahead:         &[2]geom.Move{geom.S, geom.S},
		diagonalLeft:  &[2]geom.Move{geom.SE, geom.E},
		diagonalRight: &[2]geom.Move{geom.SW, geom.W},
		justLeft:      &[2]geom.Move{geom.E, geom.E},
	},
	geom.W: {
		ahead:         &[2]geom.Move{geom.W, geom.W},
		diagonalLeft:  &[2]geom.Move{geom.SW, geom.S},
		diagonalRight: nil,
		justLeft:      &[2]geom.Move{geom.S, geom.S},
	},
	geom.E: {
		ahead:         &[2]geom.Move{geom.E, geom.E},
		diagonalLeft:  nil,
		diagonalRight: &[2]geom.Move{geom.SE, geom.S},
		justLeft:      nil,
	},
}

// NextMove computes a SnakeHead's move, grounded case for case on
// structures/snake.py's calculate_next_move. pos is the head's current
// cell, facing its current heading (must be S, W, or E — spec.md §4.9 notes
// other facings are unreachable by construction). occupied is the current
// ensemble; inBounds reports whether a cell lies within the planning
// bounding box (a cell outside it is the scan's "oob" sentinel).
//
// The concave-corner branch below reuses diagonalRight's new-facing value
// rather than diagonalLeft's — this mirrors the source's
// calculate_next_move exactly (its 'turning left on concave corner' branch
// reads head_move['diagonal_right'][1]); see DESIGN.md for why this
// asymmetry is preserved rather than corrected.
func NextMove(occupied geom.CellSet, pos geom.Cell, facing geom.Move, inBounds func(geom.Cell) bool) (move geom.Move, newFacing geom.Move, outcome Outcome) {
	scan := scanOffsets[facing]
	row := headMoveTable[facing]

	right := occupied.Has(pos.Add(scan.right))
	left := occupied.Has(pos.Add(scan.left))
	ahead := occupied.Has(pos.Add(scan.ahead))
	farAhead := occupied.Has(pos.Add(scan.farAhead))
	leftFlank := occupied.Has(pos.Add(scan.leftFlank))

	if !inBounds(pos.Add(scan.ahead)) {
		return geom.Stay, facing, ReachedEnd
	}

	switch {
	case !right && !left && !ahead && row.diagonalRight != nil:
		return row.diagonalRight[0], row.diagonalRight[1], MoveForward
	case !left && !ahead && !farAhead && right:
		return row.ahead[0], row.ahead[1], MoveForward
	case !left && !ahead && right && farAhead && row.diagonalLeft != nil && row.diagonalRight != nil:
		return row.diagonalLeft[0], row.diagonalRight[1], MoveForward
	case left && right && !ahead:
		return row.ahead[0], row.ahead[1], MoveForward
	case left && right && ahead && leftFlank:
		return geom.Stay, facing, RemakeSnake
	case right && ahead && !left && row.diagonalLeft != nil:
		return row.diagonalLeft[0], row.ahead[1], MoveForward
	case left && right && ahead && !leftFlank && row.justLeft != nil:
		return row.justLeft[0], row.justLeft[1], MoveForward
	default:
		return geom.Stay, facing, NoDecision
	}
}

// SnakeSegment is one body cell of a Snake: it mirrors the move its
// predecessor performed one tick earlier. SegmentAhead points at the
// segment (or the head) directly ahead of it in the chain, mirroring
// structures/snake.py's object reference so the lagged-copy kinematic below
// can be ported directly instead of re-derived.
type SnakeSegment struct {
	ModuleID     geom.ModuleID
	SegmentAhead *SnakeSegment
	LastMove     geom.Move
}

// SnakeHead is the leading SnakeSegment, the only one that scans and
// decides; it carries the facing the decision table conditions on.
type SnakeHead struct {
	SnakeSegment
	Facing geom.Move
}

// Snake is a head plus its trailing segments, ordered head-to-tail. The
// first element of Segments, if any, has its SegmentAhead pointing at
// &Head.SnakeSegment; callers must maintain that invariant (NewSnake and
// PromoteNextSegment do).
type Snake struct {
	Head     SnakeHead
	Segments []*SnakeSegment
}

// NewSnake builds a Snake from a head module and an ordered list of trailing
// module ids (nearest-to-head first), wiring each segment's SegmentAhead
// pointer per structures/snake.py's Snake/SnakeSegment construction.
func NewSnake(headID geom.ModuleID, facing geom.Move, tailIDs []geom.ModuleID) *Snake {
	s := &Snake{Head: SnakeHead{SnakeSegment: SnakeSegment{ModuleID: headID}, Facing: facing}}
	var ahead *SnakeSegment = &s.Head.SnakeSegment
	for _, id := range tailIDs {
		seg := &SnakeSegment{ModuleID: id, SegmentAhead: ahead}
		s.Segments = append(s.Segments, seg)
		ahead = seg
	}
	return s
}

// MovementDict computes one tick's MoveSet for every module in the snake,
// per structures/snake.py's Snake.movement_dict: the head decides its own
// move, and each segment copies the move its segment_ahead made last tick,
// read before the head's own LastMove is updated for the coming tick so the
// lag is exactly one segment per position. done is true if the head reached
// the bounding box end (the caller should disband the snake); remake is
// true if the head should be replaced by the next segment via
// PromoteNextSegment (the caller should then call MovementDict again).
func (s *Snake) MovementDict(occupied geom.CellSet, pos func(geom.ModuleID) geom.Cell, inBounds func(geom.Cell) bool) (ms geom.MoveSet, done bool, remake bool) {
	move, newFacing, outcome := NextMove(occupied, pos(s.Head.ModuleID), s.Head.Facing, inBounds)
	switch outcome {
	case ReachedEnd:
		return nil, true, false
	case RemakeSnake:
		return nil, false, true
	case NoDecision:
		return geom.MoveSet{}, false, false
	}

	ms = geom.MoveSet{s.Head.ModuleID: move}
	for _, seg := range s.Segments {
		ms[seg.ModuleID] = seg.SegmentAhead.LastMove
	}
	for i := len(s.Segments) - 1; i >= 0; i-- {
		seg := s.Segments[i]
		seg.LastMove = seg.SegmentAhead.LastMove
	}
	s.Head.LastMove = move
	s.Head.Facing = newFacing

	return ms, false, false
}

// PromoteNextSegment replaces the head with the first trailing segment,
// carrying its last move forward; the new head keeps the outgoing head's
// facing, since only the head ever turns and a fresh segment has no
// heading of its own yet.
func (s *Snake) PromoteNextSegment() bool {
	if len(s.Segments) == 0 {
		return false
	}
	promoted := s.Segments[0]
	s.Segments = s.Segments[1:]
	s.Head = SnakeHead{
		SnakeSegment: SnakeSegment{ModuleID: promoted.ModuleID, LastMove: promoted.LastMove},
		Facing:       s.Head.Facing,
	}
	if len(s.Segments) > 0 {
		s.Segments[0].SegmentAhead = &s.Head.SnakeSegment
	}
	return true
}
