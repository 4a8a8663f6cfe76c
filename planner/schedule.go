package planner

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
)

// Schedule is the recorded list of MoveSets a Planner applied, in
// application order, per spec.md §6's "optional JSON serialization of a
// Schedule... useful for replay and testing".
type Schedule []geom.MoveSet

// scheduleJSON mirrors Schedule with string-keyed move maps, since JSON
// object keys must be strings and ModuleID is a uint64.
type scheduleJSON []map[string]geom.Move

// MarshalJSON implements json.Marshaler by re-keying each MoveSet's
// ModuleID keys to their decimal string form.
func (s Schedule) MarshalJSON() ([]byte, error) {
	out := make(scheduleJSON, len(s))
	for i, ms := range s {
		m := make(map[string]geom.Move, len(ms))
		for id, mv := range ms {
			m[fmt.Sprintf("%d", id)] = mv
		}
		out[i] = m
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var raw scheduleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Schedule, len(raw))
	for i, m := range raw {
		ms := make(geom.MoveSet, len(m))
		for key, mv := range m {
			var id geom.ModuleID
			if _, err := fmt.Sscanf(key, "%d", &id); err != nil {
				return fmt.Errorf("planner: invalid module id %q in schedule: %w", key, err)
			}
			ms[id] = mv
		}
		out[i] = ms
	}
	*s = out
	return nil
}

// Replay applies every MoveSet in s to env in order, checking after each
// step that env remains 4-connected (spec.md §8's round-trip property: "a
// schedule applied to its start environment reaches the configuration the
// planner reports as final"). It stops and returns the first Apply error.
func (s Schedule) Replay(env *environment.Environment) error {
	for i, ms := range s {
		if err := env.Apply(ms); err != nil {
			return fmt.Errorf("planner: replay step %d: %w", i, err)
		}
		if !env.IsConnected() {
			return fmt.Errorf("planner: replay step %d: %w", i, environment.ErrConnectivityBreak)
		}
	}
	return nil
}

// ExecuteAll drives ExecuteStep until Done, Stall, or max_ticks is reached,
// recording every MoveSet the environment actually applied (observed as a
// snapshot delta) into the returned Schedule — spec.md §6's
// "execute_step() -> Schedule" contract.
func (p *Planner) ExecuteAll(maxTicks int) (Schedule, PhaseResult, error) {
	var sched Schedule
	before := p.env.Positions()

	for i := 0; i < maxTicks; i++ {
		result, err := p.ExecuteStep()
		if err != nil {
			return sched, Stall, err
		}
		after := p.env.Positions()
		if ms := diffMoves(before, after); len(ms) > 0 {
			sched = append(sched, ms)
		}
		before = after

		if result == Done {
			return sched, Done, nil
		}
	}
	return sched, InProgress, nil
}

// diffMoves reconstructs the MoveSet that would carry before to after,
// inferring each module's delta from its position change (Stay if
// unchanged). Used by ExecuteAll since individual phase ticks apply their
// own internally-selected MoveSets rather than returning them.
func diffMoves(before, after map[geom.ModuleID]geom.Cell) geom.MoveSet {
	ms := geom.MoveSet{}
	for id, to := range after {
		from, ok := before[id]
		if !ok || from == to {
			continue
		}
		if mv, ok := geom.MoveFromDelta(geom.Cell{X: to.X - from.X, Y: to.Y - from.Y}); ok {
			ms[id] = mv
		}
	}
	return ms
}
