// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/privacyops/dpia-platform/models"
)

// stepTitles maps wizard step names to report section headings.
var stepTitles = map[string]string{
	"context":   "Processing Context",
	"data":      "Data and Data Subjects",
	"necessity": "Necessity and Proportionality",
	"risks":     "Risk Identification",
	"measures":  "Mitigating Measures",
	"review":    "Review and Sign-off",
}

// AssessmentPDF renders a DPIA report. precheckResult may be nil when the
// assessment was created without a linked pre-check.
func AssessmentPDF(w io.Writer, bundle models.AssessmentWithSteps, precheckResult *models.PrecheckResult) error {
	a := bundle.Assessment

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(a.Title, true)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, "Data Protection Impact Assessment", "", "L", false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 7, a.Title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Status: %s", a.Status), "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("Created: %s", a.CreatedAt.Format("2006-01-02")), "", "L", false)
	if a.CompletedAt != nil {
		pdf.MultiCell(0, 6, fmt.Sprintf("Completed: %s", a.CompletedAt.Format("2006-01-02")), "", "L", false)
	}

	if precheckResult != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, "Article 35 Pre-check", "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("%s (score %d)", precheckResult.Result.Title, precheckResult.Score), "", "L", false)
		pdf.MultiCell(0, 6, precheckResult.Result.Recommendation, "", "L", false)
	}

	for _, step := range bundle.Steps {
		title, ok := stepTitles[step.Name]
		if !ok {
			title = step.Name
		}

		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, title, "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, renderPayload(step.Payload), "", "L", false)
	}

	return pdf.Output(w)
}

// renderPayload flattens a step's JSON object into "key: value" lines.
// Non-object payloads are included verbatim.
func renderPayload(payload json.RawMessage) string {
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil || len(fields) == 0 {
		s := strings.TrimSpace(string(payload))
		if s == "" || s == "{}" {
			return "(no details recorded)"
		}
		return s
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", strings.ReplaceAll(k, "_", " "), fields[k])
	}
	return strings.TrimRight(b.String(), "\n")
}
