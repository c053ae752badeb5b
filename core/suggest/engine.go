// Package suggest audits element snapshots against a fixed set of design
// rules and proposes improvements.
package suggest

import "github.com/adalundhe/restyle/core/style"

// Review is the outcome of one audit pass. Every fired rule contributes a
// message and writes its proposal into the shared Proposed set, so applying
// Proposed wholesale enacts all suggestions at once. An empty Suggestions
// slice means the snapshot passed.
type Review struct {
	Suggestions []string        `json:"suggestions"`
	Proposed    style.ChangeSet `json:"proposed"`
}

// Passed reports whether no rule fired.
func (r Review) Passed() bool {
	return len(r.Suggestions) == 0
}

// Engine runs the rule set in a fixed order. Rules are independent: each
// judges only properties present in the snapshot, and the engine never
// invents values for properties the caller did not report.
type Engine struct {
	rules []rule
}

func NewEngine() *Engine {
	return &Engine{rules: defaultRules()}
}

// Review audits a snapshot under the given role. The proposed change-set
// always carries confidence 1.0: the rules are exact threshold checks, not
// interpretations.
func (e *Engine) Review(snapshot style.Snapshot, role style.Role) Review {
	review := Review{Proposed: style.ChangeSet{Confidence: 1.0}}

	for _, r := range e.rules {
		if message, ok := r.apply(snapshot, role, &review.Proposed); ok {
			review.Suggestions = append(review.Suggestions, message)
		}
	}

	return review
}
