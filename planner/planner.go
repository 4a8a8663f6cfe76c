package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/internal/telemetry"
	"github.com/katalvlaran/slidesquares/phase1"
	"github.com/katalvlaran/slidesquares/phase2"
	"github.com/katalvlaran/slidesquares/phase3"
	"github.com/katalvlaran/slidesquares/phase4"
)

// ErrUnequalCount is returned by New when |start| != |goal|; spec.md §9
// removes the original's emergency module creation/deletion escape hatch,
// so a count mismatch is a fatal, up-front configuration error instead.
var ErrUnequalCount = errors.New("planner: start and goal module counts differ")

// ErrStall is returned by ExecuteStep when the active phase exhausts its
// iteration cap without completing. It carries the phase name and tick
// count spec.md §7 asks Stall to report.
type ErrStall struct {
	Phase string
	Ticks int
}

func (e *ErrStall) Error() string {
	return fmt.Sprintf("planner: phase %s stalled after %d ticks", e.Phase, e.Ticks)
}

// Phase enumerates the controller's states, per spec.md §4.10.
type Phase int

const (
	PhaseP1 Phase = iota
	PhaseP2
	PhaseP3Sweep
	PhaseP3Histogram
	PhaseP4
	PhaseP4Align
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseP1:
		return "phase1"
	case PhaseP2:
		return "phase2"
	case PhaseP3Sweep:
		return "phase3-sweep"
	case PhaseP3Histogram:
		return "phase3-histogram"
	case PhaseP4:
		return "phase4"
	case PhaseP4Align:
		return "phase4-align"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// PhaseResult is the closed outcome set of one ExecuteStep call, per
// spec.md §6.
type PhaseResult int

const (
	InProgress PhaseResult = iota
	PhaseAdvanced
	Done
	Stall
)

func (r PhaseResult) String() string {
	switch r {
	case InProgress:
		return "InProgress"
	case PhaseAdvanced:
		return "PhaseAdvanced"
	case Done:
		return "Done"
	case Stall:
		return "Stall"
	default:
		return "Unknown"
	}
}

// Option configures a Planner at construction.
type Option func(*Planner)

// WithPhase1Cap overrides Phase 1's iteration cap (default ~2n²).
func WithPhase1Cap(cap int) Option { return func(p *Planner) { p.phase1Cap = cap } }

// WithPhase4Cap overrides Phase 4's iteration cap (default ~20000).
func WithPhase4Cap(cap int) Option { return func(p *Planner) { p.phase4Cap = cap } }

// WithLogger sets the structured logger every phase call reports through.
func WithLogger(log *telemetry.Logger) Option { return func(p *Planner) { p.log = log } }

// Planner drives env from its start configuration to goal through the
// four-phase exoskeleton→scaffold→sweep→snake pipeline, one phase-bounded
// tick per ExecuteStep call (spec.md §4.10: "no tick spans multiple
// phases").
type Planner struct {
	env   *environment.Environment
	goal  geom.CellSet
	phase Phase
	log   *telemetry.Logger

	phase1Cap int
	phase4Cap int

	target1      geom.CellSet
	stallCount   int
	p4Snakes     []*phase4.Snake
	p4InBounds   func(geom.Cell) bool
	p4Started    bool
	tickInPhase4 int
}

// New validates |start| == |goal| and that goal is 4-connected, then builds
// a Planner ready to run Phase 1 against env.
func New(env *environment.Environment, goal geom.CellSet, opts ...Option) (*Planner, error) {
	if env.Len() != len(goal) {
		return nil, ErrUnequalCount
	}
	if !connectivity.IsConnected(goal) {
		return nil, environment.ErrInvalidConfig
	}

	p := &Planner{
		env:       env,
		goal:      goal,
		phase:     PhaseP1,
		log:       telemetry.Nop(),
		phase1Cap: 2 * env.Len() * env.Len(),
		phase4Cap: 20000,
	}
	for _, o := range opts {
		o(p)
	}
	p.target1 = phase1.BuildTarget(env.Snapshot(), env.Len())
	return p, nil
}

// Env exposes the environment the planner is driving, for callers that want
// to inspect or render intermediate state.
func (p *Planner) Env() *environment.Environment { return p.env }

// Phase reports the controller's current state.
func (p *Planner) Phase() Phase { return p.phase }

// ExecuteStep runs one tick of whichever phase is currently active and
// reports what happened, per spec.md §6's PhaseResult contract.
func (p *Planner) ExecuteStep() (PhaseResult, error) {
	switch p.phase {
	case PhaseP1:
		return p.stepPhase1()
	case PhaseP2:
		return p.stepPhase2()
	case PhaseP3Sweep:
		return p.stepPhase3Sweep()
	case PhaseP3Histogram:
		return p.stepPhase3Histogram()
	case PhaseP4:
		return p.stepPhase4()
	case PhaseP4Align:
		return p.stepPhase4Align()
	case PhaseDone:
		return Done, nil
	default:
		return Stall, fmt.Errorf("planner: unknown phase %v", p.phase)
	}
}

func (p *Planner) advance(next Phase) {
	p.log.PhaseAdvanced(p.phase.String(), next.String(), p.stallCount)
	p.phase = next
	p.stallCount = 0
}

func (p *Planner) stepPhase1() (PhaseResult, error) {
	done, progressed, err := phase1.Tick(p.env, p.target1, p.log, "phase1")
	if err != nil {
		return Stall, err
	}
	if done {
		p.advance(PhaseP2)
		return PhaseAdvanced, nil
	}
	if !progressed {
		p.stallCount++
		if p.stallCount >= p.phase1Cap {
			return Stall, &ErrStall{Phase: p.phase.String(), Ticks: p.stallCount}
		}
	} else {
		p.stallCount = 0
	}
	return InProgress, nil
}

func (p *Planner) stepPhase2() (PhaseResult, error) {
	done, progressed, err := phase2.Tick(p.env, p.log)
	if err != nil {
		return Stall, err
	}
	if done {
		p.advance(PhaseP3Sweep)
		return PhaseAdvanced, nil
	}
	if !progressed {
		p.stallCount++
		if p.stallCount >= p.phase1Cap {
			return Stall, &ErrStall{Phase: p.phase.String(), Ticks: p.stallCount}
		}
	} else {
		p.stallCount = 0
	}
	return InProgress, nil
}

func (p *Planner) stepPhase3Sweep() (PhaseResult, error) {
	progressed, err := phase3.Tick(p.env, p.log)
	if err != nil {
		return Stall, err
	}
	if !progressed {
		p.advance(PhaseP3Histogram)
		return PhaseAdvanced, nil
	}
	return InProgress, nil
}

func (p *Planner) stepPhase3Histogram() (PhaseResult, error) {
	done, err := phase3.HistogramTick(p.env, p.log)
	if err != nil {
		return Stall, err
	}
	if done {
		p.advance(PhaseP4)
		return PhaseAdvanced, nil
	}
	return InProgress, nil
}

func (p *Planner) stepPhase4() (PhaseResult, error) {
	if !p.p4Started {
		_, maxX, _, maxY, ok := geom.BoundingBox(p.goal)
		if !ok {
			p.advance(PhaseDone)
			return Done, nil
		}
		p.p4InBounds = func(c geom.Cell) bool {
			return c.X >= -1 && c.X <= maxX+1 && c.Y >= -1 && c.Y <= maxY+1
		}
		surplus := phase4.Surplus(p.env.Positions(), p.goal)
		p.p4Snakes = phase4.BuildSnakes(surplus, geom.S)
		p.p4Started = true
		if len(p.p4Snakes) == 0 {
			p.advance(PhaseDone)
			return Done, nil
		}
	}

	next, allDone, err := phase4.Tick(p.env, p.p4Snakes, p.p4InBounds, p.log)
	if err != nil {
		return Stall, err
	}
	p.p4Snakes = next
	if allDone {
		p.advance(PhaseP4Align)
		return PhaseAdvanced, nil
	}
	p.tickInPhase4++
	if p.tickInPhase4 >= p.phase4Cap {
		return Stall, &ErrStall{Phase: p.phase.String(), Ticks: p.tickInPhase4}
	}
	return InProgress, nil
}

// stepPhase4Align runs once the snake crawl has no active snakes left. The
// crawl's own kinematics never reference goal, so a run can end with every
// module landed on a surplus-free cell that still isn't its assigned goal
// cell; this mirrors the original's compute_parallel_moves closing pass,
// which keeps proposing moves against the literal target set until
// final_pos == target_positions. Reusing phase1.Tick here drives the same
// assign-nearest/propose/select/apply loop against p.goal directly.
func (p *Planner) stepPhase4Align() (PhaseResult, error) {
	done, progressed, err := phase1.Tick(p.env, p.goal, p.log, "phase4-align")
	if err != nil {
		return Stall, err
	}
	if done {
		p.advance(PhaseDone)
		return Done, nil
	}
	if !progressed {
		p.stallCount++
		if p.stallCount >= p.phase4Cap {
			return Stall, &ErrStall{Phase: p.phase.String(), Ticks: p.stallCount}
		}
	} else {
		p.stallCount = 0
	}
	return InProgress, nil
}
