// Package planner is the phase controller of spec.md §4.10: a tiny state
// machine over {P1, P2, P3Sweep, P3Histogram, P4, P4Align, Done} that
// dispatches each call to ExecuteStep to whichever phase package is
// currently active. P4Align is a closing pass after the snake crawl leaves
// no active snakes: the crawl's kinematics never reference goal, so it can
// land on a surplus-free configuration that still isn't an exact match;
// P4Align reruns the assign/propose/select/apply loop from phase1.Tick
// directly against goal until it is. The
// composition-by-delegation shape is grounded on lvlath's removed
// `algorithms` package, which composed bfs+dfs behind one entry point;
// Planner.ExecuteStep plays that role here across phase1, phase2, phase3,
// and phase4 instead of graph algorithms (see DESIGN.md for why the
// original package itself was not kept).
package planner
