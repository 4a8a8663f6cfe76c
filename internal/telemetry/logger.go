package telemetry

import "go.uber.org/zap"

// Logger is the sugared structured logger every phase and the planner log
// through. The zero value is not usable; construct one with New or Nop.
type Logger struct {
	z *zap.SugaredLogger
}

// New builds a Logger backed by zap's development config (human-readable,
// stack traces on error), appropriate for the planner running as a library
// embedded in a caller's process rather than a standalone service.
func New() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z.Sugar()}, nil
}

// Nop returns a Logger that discards everything, used as the default when a
// caller does not supply one via planner.WithLogger.
func Nop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

// Sync flushes any buffered log entries. Callers should defer Sync after
// constructing a Logger with New.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// Stall records a planner stall: the phase that could not progress, the tick
// at which it stalled, and the reason.
func (l *Logger) Stall(phase string, tick int, reason string) {
	l.z.Infow("planner stall", "phase", phase, "tick", tick, "reason", reason)
}

// Rejected records a step rejected by the step executor, naming the modules
// whose moves were dropped and why.
func (l *Logger) Rejected(phase string, tick int, moduleIDs []uint64, reason string) {
	l.z.Infow("step rejected", "phase", phase, "tick", tick, "modules", moduleIDs, "reason", reason)
}

// PhaseAdvanced records a transition from one phase to the next.
func (l *Logger) PhaseAdvanced(from, to string, tick int) {
	l.z.Infow("phase advanced", "from", from, "to", to, "tick", tick)
}

// Debugf logs a formatted debug message, used for the per-tick diagnostics
// that are too verbose for Info level.
func (l *Logger) Debugf(template string, args ...interface{}) {
	l.z.Debugf(template, args...)
}
