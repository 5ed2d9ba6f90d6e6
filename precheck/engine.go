// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package precheck

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownQuestion marks an answer keyed by an id outside the catalog.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrUnknownChoice marks an answer value a question does not accept.
	ErrUnknownChoice = errors.New("unknown answer choice")
)

// EvaluationResult is the immutable outcome of scoring one submission.
type EvaluationResult struct {
	Score          int      `json:"score"`
	Outcome        Outcome  `json:"outcome"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	NextSteps      []string `json:"next_steps"`
}

// Evaluate scores a submission and composes the narrative for its outcome.
//
// Callers must run ValidateSubmission first; completeness is not re-checked
// here and evaluating an incomplete submission is a programming error.
// Unknown question ids and unrecognized answer values are still rejected,
// never silently scored as zero.
//
// The computation is pure: the score is an order-independent sum of
// per-answer contributions capped at MaxScore, so identical submissions
// always produce identical results.
func Evaluate(answers map[string]string, rules Rules) (EvaluationResult, error) {
	score := 0
	for id, value := range answers {
		q, ok := byID[id]
		if !ok {
			return EvaluationResult{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
		}
		contribution, ok := q.Contribution(value)
		if !ok {
			return EvaluationResult{}, fmt.Errorf("%w: %q for question %q", ErrUnknownChoice, value, id)
		}
		score += contribution
	}

	if score > MaxScore {
		score = MaxScore
	}

	outcome := rules.OutcomeFor(score)
	narrative := Compose(outcome, score)

	return EvaluationResult{
		Score:          score,
		Outcome:        outcome,
		Title:          narrative.Title,
		Description:    narrative.Description,
		Recommendation: narrative.Recommendation,
		NextSteps:      narrative.NextSteps,
	}, nil
}
