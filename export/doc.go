// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders compliance documents.

AssessmentPDF produces a DPIA report (fpdf): title block, lifecycle dates,
the linked Article 35 pre-check outcome when present, and one section per
completed wizard step.

RegistryWorkbook produces a records-of-processing style XLSX workbook
(excelize) with one sheet per registry entity.

Both functions render into an io.Writer from already-loaded data; they
perform no database access themselves.
*/
package export
