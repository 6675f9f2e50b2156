package layout

import "fmt"

// DiagnosticKind classifies a non-fatal condition met while resolving or ordering.
type DiagnosticKind string

const (
	UnsupportedLayout DiagnosticKind = "unsupported-layout"
	NoFocusedTab      DiagnosticKind = "no-focused-tab"
	UnresolvedOutput  DiagnosticKind = "unresolved-output"
	TooManyWindows    DiagnosticKind = "too-many-windows"
	MissingWorkspace  DiagnosticKind = "missing-workspace"
)

// Diagnostic records a condition that was worked around rather than failed on.
type Diagnostic struct {
	Kind    DiagnosticKind `yaml:"kind"              json:"kind"`
	NodeID  NodeID         `yaml:"node_id,omitempty" json:"node_id,omitempty"`
	Message string         `yaml:"message"           json:"message"`
}

func (d Diagnostic) String() string {
	if d.NodeID != 0 {
		return fmt.Sprintf("%s (con %d): %s", d.Kind, d.NodeID, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}
