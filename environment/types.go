package environment

import (
	"errors"
	"sync"

	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/geom"
)

// Sentinel errors for environment operations.
var (
	// ErrInvalidConfig indicates malformed grid text or a non-4-connected configuration.
	ErrInvalidConfig = errors.New("environment: invalid configuration")
	// ErrCellOccupied indicates an attempt to place a module on an occupied cell.
	ErrCellOccupied = errors.New("environment: cell already occupied")
	// ErrOutOfBounds indicates a strict Apply saw a target cell outside the bounds policy.
	ErrOutOfBounds = errors.New("environment: target cell out of bounds")
	ErrUnknownModule = errors.New("environment: unknown module id")
	// ErrCollision and ErrConnectivityBreak are returned (wrapped) by Apply
	// when collision.Detect reports records or a connectivity check fails, so
	// callers of Apply do not need to import those packages to use errors.Is.
	ErrCollision          = errors.New("environment: collision detected")
	ErrConnectivityBreak  = errors.New("environment: connectivity would break")
)

// BoundsPolicy controls how Apply treats a target cell that falls outside
// caller-declared bounds. The default is Unbounded; the planner sets no
// policy of its own.
type BoundsPolicy int

const (
	// Unbounded never rejects or clamps a target; this is the default and
	// the only policy the planner uses, since the grid is infinite and
	// bounds are always derived from the occupied set.
	Unbounded BoundsPolicy = iota
	// Strict rejects any target outside [MinX,MaxX]×[MinY,MaxY].
	Strict
	// Clamp accepts every target as given: Apply neither rejects nor
	// truncates an out-of-range target under this policy.
	Clamp
)

// Module is a unit square at a Cell, identified by a process-unique id
// assigned once at creation and never reused.
type Module struct {
	ID       geom.ModuleID
	Position geom.Cell
}

// Option configures an Environment at construction time.
type Option func(*config)

type config struct {
	policy             BoundsPolicy
	minX, maxX         int
	minY, maxY         int
}

// WithBoundsPolicy sets the bounds policy and, for Strict or Clamp, the
// inclusive bounding rectangle to enforce.
func WithBoundsPolicy(policy BoundsPolicy, minX, maxX, minY, maxY int) Option {
	return func(c *config) {
		c.policy = policy
		c.minX, c.maxX, c.minY, c.maxY = minX, maxX, minY, maxY
	}
}

func defaultConfig() config {
	return config{policy: Unbounded}
}

// Environment is the pair (modules, occupancy index) described in spec.md
// §3. Invariants (checked by the step executor on every Apply):
//
//	I1: the set of occupied cells is 4-connected.
//	I2: no two modules share a cell.
//	I3: len(occupied cells) == len(modules).
type Environment struct {
	muState sync.RWMutex

	modules   map[geom.ModuleID]*Module
	occupancy map[geom.Cell]geom.ModuleID
	nextID    geom.ModuleID

	cfg config
}

// New constructs an empty Environment with no modules.
func New(opts ...Option) *Environment {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Environment{
		modules:   make(map[geom.ModuleID]*Module),
		occupancy: make(map[geom.Cell]geom.ModuleID),
		nextID:    1,
		cfg:       cfg,
	}
}

// FromCells builds an Environment with one module per cell in cells.
// Module ids are assigned in ascending order of cells' (Y, X) so that
// construction is deterministic. Returns ErrInvalidConfig if cells is empty
// or not 4-connected.
func FromCells(cells []geom.Cell, opts ...Option) (*Environment, error) {
	env := New(opts...)
	if len(cells) == 0 {
		return nil, ErrInvalidConfig
	}
	set := geom.NewCellSet(cells...)
	if len(set) != len(cells) {
		return nil, ErrInvalidConfig
	}
	ordered := set.Slice()
	for _, c := range ordered {
		env.addModuleLocked(c)
	}
	if !env.isConnectedLocked() {
		return nil, ErrInvalidConfig
	}
	return env, nil
}

func (env *Environment) addModuleLocked(c geom.Cell) geom.ModuleID {
	id := env.nextID
	env.nextID++
	env.modules[id] = &Module{ID: id, Position: c}
	env.occupancy[c] = id
	return id
}

// isConnectedLocked reports whether the current occupancy forms a single
// 4-connected component. Caller must hold muState (read or write).
func (env *Environment) isConnectedLocked() bool {
	cells := make(geom.CellSet, len(env.occupancy))
	for c := range env.occupancy {
		cells[c] = struct{}{}
	}
	return connectivity.IsConnected(cells)
}
