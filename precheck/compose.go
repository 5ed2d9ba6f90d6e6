// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package precheck

import (
	"encoding/json"
	"fmt"
)

// Outcome is the closed set of pre-check results. It is a tagged enum
// rather than a string so the composer's switch is compiler-checked.
type Outcome int

const (
	OutcomeNotRequired Outcome = iota
	OutcomeRecommended
	OutcomeRequired
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotRequired:
		return "not_required"
	case OutcomeRecommended:
		return "recommended"
	case OutcomeRequired:
		return "required"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ParseOutcome converts the wire form back into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "not_required":
		return OutcomeNotRequired, nil
	case "recommended":
		return OutcomeRecommended, nil
	case "required":
		return OutcomeRequired, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}

// MarshalJSON serializes the outcome as its snake_case name.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON parses the snake_case name.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseOutcome(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Narrative is the human-readable portion of an evaluation result.
type Narrative struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	NextSteps      []string `json:"next_steps"`
}

// Compose fills the narrative fields for an outcome. The switch is
// exhaustive over the closed enum; any other value is a programming error.
func Compose(outcome Outcome, score int) Narrative {
	switch outcome {
	case OutcomeRequired:
		return Narrative{
			Title:          "DPIA required",
			Description:    fmt.Sprintf("The screening score of %d out of %d indicates high-risk processing under Article 35(1) GDPR.", score, MaxScore),
			Recommendation: "A Data Protection Impact Assessment must be carried out before processing begins.",
			NextSteps: []string{
				"Consult your Data Protection Officer",
				"Begin full DPIA",
				"Document legal basis",
			},
		}
	case OutcomeRecommended:
		return Narrative{
			Title:          "DPIA recommended",
			Description:    fmt.Sprintf("The screening score of %d out of %d indicates elevated risk factors.", score, MaxScore),
			Recommendation: "A DPIA is not strictly mandated, but carrying one out is recommended to document the risk decision.",
			NextSteps: []string{
				"Review the flagged risk factors with your Data Protection Officer",
				"Record the decision whether to perform a full DPIA",
				"Re-run the pre-check if the processing changes",
			},
		}
	case OutcomeNotRequired:
		return Narrative{
			Title:          "DPIA not required",
			Description:    fmt.Sprintf("The screening score of %d out of %d indicates no high-risk indicators under Article 35 GDPR.", score, MaxScore),
			Recommendation: "No DPIA is required for this processing as described.",
			NextSteps: []string{
				"Record this screening outcome in your processing register",
				"Re-run the pre-check if the processing changes",
			},
		}
	}
	panic(fmt.Sprintf("precheck: compose called with invalid outcome %d", int(outcome)))
}
