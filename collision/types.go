package collision

// Kind classifies a detected collision.
type Kind int

const (
	// SameTarget marks two or more distinct modules mapped to one target cell.
	SameTarget Kind = iota
	// Swap marks two modules exchanging cells (a→b and b→a).
	Swap
	// Chain marks a cycle of length ≥2 in the position→target functional
	// graph, excluding the 2-cycles already classified as Swap.
	Chain
	// SlideInterference marks two diagonal/cardinal moves whose geometric
	// paths would need to occupy the same corner cell at the same instant.
	SlideInterference
)

// String implements fmt.Stringer for diagnostics and log fields.
func (k Kind) String() string {
	switch k {
	case SameTarget:
		return "SameTarget"
	case Swap:
		return "Swap"
	case Chain:
		return "Chain"
	case SlideInterference:
		return "SlideInterference"
	default:
		return "Unknown"
	}
}

// Option configures the detector.
type Option func(*config)

type config struct {
	allowCycles bool
}

// WithAllowCycles disables Swap/Chain detection, admitting pure rotations of
// moving modules as collision-free. Off by default, per spec.md §9's
// conservative source-matching default.
func WithAllowCycles() Option {
	return func(c *config) { c.allowCycles = true }
}
