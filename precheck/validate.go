// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package precheck

import "sort"

// Validation reports whether a submission may be scored.
type Validation struct {
	IsValid          bool     `json:"is_valid"`
	MissingQuestions []string `json:"missing_questions"`
	UnknownQuestions []string `json:"unknown_questions"`
}

// ValidateSubmission checks that every required question has an answer and
// that no answer references a question outside the catalog. It checks
// presence only; answer values are validated during evaluation.
func ValidateSubmission(answers map[string]string) Validation {
	v := Validation{
		MissingQuestions: []string{},
		UnknownQuestions: []string{},
	}

	// Missing questions in catalog order, so clients can prompt in sequence.
	for _, q := range catalog {
		if !q.Required {
			continue
		}
		if _, ok := answers[q.ID]; !ok {
			v.MissingQuestions = append(v.MissingQuestions, q.ID)
		}
	}

	for id := range answers {
		if _, ok := byID[id]; !ok {
			v.UnknownQuestions = append(v.UnknownQuestions, id)
		}
	}
	sort.Strings(v.UnknownQuestions)

	v.IsValid = len(v.MissingQuestions) == 0 && len(v.UnknownQuestions) == 0
	return v
}
