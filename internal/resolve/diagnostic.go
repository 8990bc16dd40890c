package resolve

import "fmt"

// Kind classifies a non-fatal resolution anomaly.
type Kind string

const (
	// KindUnresolved means a reference path does not exist under the root.
	KindUnresolved Kind = "unresolved-reference"
	// KindCircular means an alias chain revisits a path already being resolved.
	KindCircular Kind = "circular-reference"
	// KindDepthExceeded means an alias chain hit Context.MaxDepth or the
	// expansion hit Context.MaxNodes.
	KindDepthExceeded Kind = "depth-exceeded"
)

// Message returns the log message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindUnresolved:
		return "unresolved token reference"
	case KindCircular:
		return "circular token reference"
	case KindDepthExceeded:
		return "token reference depth exceeded"
	}
	return string(k)
}

// Diagnostic records one anomaly. The offending reference is left in place.
type Diagnostic struct {
	Kind      Kind
	Path      string // dot path of the token holding the reference
	Reference string // literal reference string, e.g. "{colors.pink.500}"
	Detail    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s at %s: %s", d.Kind, d.Reference, d.Path, d.Detail)
}
