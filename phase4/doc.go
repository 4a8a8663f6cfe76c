// Package phase4 implements the Snake kinematics of spec.md §4.9: surplus
// modules left over after histogram compaction are organized into a
// SnakeHead plus trailing SnakeSegments that crawl west along the occupied
// boundary and settle into the remaining goal cells.
//
// SnakeHead.NextMove's five-predicate decision table is grounded on
// structures/snake.py's SnakeHead.calculate_next_move: the right/left/ahead/
// far-ahead/left-flank scan and the go-ahead/turn-right/turn-left/dead-end/
// remake/done branches are reproduced case for case, restricted to facings
// {S, W, E} exactly as the source's head_move_dict only defines those three.
package phase4
