// Package geom defines the coordinate and motion primitives shared by every
// layer of the sliding-squares planner: integer Cells, the nine-delta Move
// enumeration, module identifiers, and the MoveSet type that represents one
// simultaneous step.
//
// The coordinate system is mathematical: y increases upward. There are no
// global grid bounds — callers derive bounds from whatever cell set they are
// holding (see package environment).
package geom
