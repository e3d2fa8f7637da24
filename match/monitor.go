package match

import "github.com/opdnav/opdnav/core"

// Phase identifies one stage of a matching cascade.
type Phase int

const (
	// PhaseExact is the AEC exact-equality phase.
	PhaseExact Phase = iota + 1
	// PhaseWholeWord is the AEC whole-word phase.
	PhaseWholeWord
	// PhaseSubstring is the AEC substring phase.
	PhaseSubstring
	// PhaseNumeric is the PGI counter/room/department-number phase.
	PhaseNumeric
	// PhaseDepartment is the PGI department-substring phase.
	PhaseDepartment
	// PhaseFields is the PGI multi-field substring phase.
	PhaseFields
	// PhaseFuzzy is the fuzzy-suggestion phase of either cascade.
	PhaseFuzzy
)

func (p Phase) String() string {
	switch p {
	case PhaseExact:
		return "exact"
	case PhaseWholeWord:
		return "whole_word"
	case PhaseSubstring:
		return "substring"
	case PhaseNumeric:
		return "numeric"
	case PhaseDepartment:
		return "department"
	case PhaseFields:
		return "fields"
	case PhaseFuzzy:
		return "fuzzy"
	}
	return "unknown"
}

// Monitor provides hooks to observe a matching cascade.
// Implement this interface to track which phase admitted each record.
type Monitor interface {
	Start(query string)
	EnterPhase(phase Phase)
	Hit(phase Phase, id core.ID)
	Suggested(candidate string, score int)
	Finish(matched int)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)            {}
func (n *noopMonitor) EnterPhase(_ Phase)        {}
func (n *noopMonitor) Hit(_ Phase, _ core.ID)    {}
func (n *noopMonitor) Suggested(_ string, _ int) {}
func (n *noopMonitor) Finish(_ int)              {}
