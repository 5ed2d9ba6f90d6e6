// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package precheck

// Answer type constants
const (
	AnswerBoolean = "boolean"
	AnswerChoice  = "choice"
)

// Boolean answer values
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// MaxScore is the highest score the catalog can produce
// (8 questions, each contributing at most its full weight of 3).
const MaxScore = 24

// Choice is one selectable answer for a choice-type question.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is a single Article 35 screening question.
type Question struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Category string   `json:"category"`
	Type     string   `json:"type"`
	Weight   int      `json:"weight"`
	Required bool     `json:"required"`
	Choices  []Choice `json:"choices,omitempty"`

	// contributions maps an answer value to its integer score contribution.
	// Boolean questions map yes -> Weight, no -> 0.
	contributions map[string]int
}

// Contribution returns the score contribution of an answer value,
// or false if the value is not a recognized answer for this question.
func (q Question) Contribution(value string) (int, bool) {
	c, ok := q.contributions[value]
	return c, ok
}

// Metadata describes the catalog shape for clients rendering the form.
type Metadata struct {
	TotalQuestions int      `json:"total_questions"`
	MaxScore       int      `json:"max_score"`
	Categories     []string `json:"categories"`
}

// The catalog is fixed at init and never mutated. Question order is the
// order the form presents them in.
var catalog = []Question{
	{
		ID:       "processing_scale",
		Prompt:   "How many data subjects does the processing cover per year?",
		Category: "scale",
		Type:     AnswerChoice,
		Weight:   3,
		Required: true,
		Choices: []Choice{
			{Value: "fewer_than_1000", Label: "Fewer than 1,000"},
			{Value: "up_to_100000", Label: "1,000 to 100,000"},
			{Value: "more_than_100000", Label: "More than 100,000"},
		},
		contributions: map[string]int{
			"fewer_than_1000":  0,
			"up_to_100000":     1,
			"more_than_100000": 3,
		},
	},
	{
		ID:       "data_sensitivity",
		Prompt:   "What is the most sensitive kind of personal data processed?",
		Category: "sensitivity",
		Type:     AnswerChoice,
		Weight:   3,
		Required: true,
		Choices: []Choice{
			{Value: "ordinary", Label: "Ordinary personal data"},
			{Value: "confidential", Label: "Financial or confidential data"},
			{Value: "special_categories", Label: "Special categories (Art. 9) or criminal data (Art. 10)"},
		},
		contributions: map[string]int{
			"ordinary":           0,
			"confidential":       1,
			"special_categories": 3,
		},
	},
	{
		ID:       "automated_decisions",
		Prompt:   "Does the processing involve automated decision-making with legal or similarly significant effects?",
		Category: "automation",
		Type:     AnswerBoolean,
		Weight:   3,
		Required: true,
	},
	{
		ID:       "vulnerable_subjects",
		Prompt:   "Does the processing concern children or other vulnerable data subjects?",
		Category: "vulnerable_subjects",
		Type:     AnswerBoolean,
		Weight:   3,
		Required: true,
	},
	{
		ID:       "new_technology",
		Prompt:   "Does the processing apply new or innovative technology (e.g. AI, biometrics, IoT)?",
		Category: "new_technology",
		Type:     AnswerBoolean,
		Weight:   3,
		Required: true,
	},
	{
		ID:       "data_matching",
		Prompt:   "Does the processing match or combine datasets from different sources?",
		Category: "data_matching",
		Type:     AnswerBoolean,
		Weight:   3,
		Required: true,
	},
	{
		ID:       "public_monitoring",
		Prompt:   "Does the processing monitor a publicly accessible area?",
		Category: "public_access",
		Type:     AnswerBoolean,
		Weight:   3,
		Required: true,
	},
	{
		ID:       "systematic_monitoring",
		Prompt:   "Does the processing involve systematic and extensive monitoring or evaluation of individuals?",
		Category: "systematic_monitoring",
		Type:     AnswerBoolean,
		Weight:   3,
		Required: true,
	},
}

// byID is an index over the catalog, built once at init.
var byID = func() map[string]Question {
	m := make(map[string]Question, len(catalog))
	for i := range catalog {
		q := &catalog[i]
		if q.Type == AnswerBoolean {
			q.contributions = map[string]int{AnswerYes: q.Weight, AnswerNo: 0}
		}
		m[q.ID] = *q
	}
	return m
}()

// Questions returns the full catalog in presentation order.
// The returned slice is shared; callers must not modify it.
func Questions() []Question {
	return catalog
}

// Lookup returns the question with the given id.
func Lookup(id string) (Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// CatalogMetadata describes the catalog for the template endpoint.
func CatalogMetadata() Metadata {
	categories := make([]string, 0, len(catalog))
	for _, q := range catalog {
		categories = append(categories, q.Category)
	}
	return Metadata{
		TotalQuestions: len(catalog),
		MaxScore:       MaxScore,
		Categories:     categories,
	}
}
