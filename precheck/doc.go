// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package precheck implements the Article 35 DPIA pre-check: an eight-question
GDPR screening that decides whether a full Data Protection Impact Assessment
is required, recommended, or not required.

# Catalog

The question catalog is fixed at init and identical across calls:

	questions := precheck.Questions()
	meta := precheck.CatalogMetadata()

Each question has a stable id, a GDPR risk category (scale, sensitivity,
automation, vulnerable subjects, new technology, data matching, public
access, systematic monitoring), a weight, and either boolean (yes/no) or
enumerated answers with fixed per-choice contributions.

# Evaluation

Scoring is a pure function over the submitted answers:

	v := precheck.ValidateSubmission(answers)
	if !v.IsValid {
		// surface v.MissingQuestions / v.UnknownQuestions to the client
	}
	result, err := precheck.Evaluate(answers, rules)

Validation is a caller-side precondition: Evaluate does not re-check
completeness, but it rejects unknown question ids and answer values.

# Outcomes

The score (0..24) maps onto three outcome bands via two thresholds held in
Rules (defaults: recommended at 6, required at 13; overridable from a YAML
file via LoadRules). Outcome is a tagged enum and Compose switches over it
exhaustively to produce the title, description, recommendation, and ordered
next steps for each band.

The package performs no I/O and holds no mutable state; persistence of
results and audit logging are boundary-layer concerns.
*/
package precheck
