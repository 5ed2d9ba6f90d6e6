// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/privacyops/dpia-platform/models"
)

// RegistrySnapshot is the data set for one workbook export.
type RegistrySnapshot struct {
	Systems       []models.System
	Vendors       []models.Vendor
	Categories    []models.DataCategory
	Activities    []models.ProcessingActivity
	Locations     []models.Location
	Jurisdictions []models.Jurisdiction
	Flows         []models.DataFlow
}

// RegistryWorkbook writes a records-of-processing style XLSX with one
// sheet per registry entity.
func RegistryWorkbook(w io.Writer, snapshot RegistrySnapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{
			name:   "Systems",
			header: []string{"Name", "Description", "Owner", "Hosting", "Status", "Created"},
			rows:   systemRows(snapshot.Systems),
		},
		{
			name:   "Vendors",
			header: []string{"Name", "Description", "Contact", "Country", "DPA signed", "Created"},
			rows:   vendorRows(snapshot.Vendors),
		},
		{
			name:   "Data Categories",
			header: []string{"Name", "Description", "Sensitivity", "Retention", "Created"},
			rows:   categoryRows(snapshot.Categories),
		},
		{
			name:   "Processing Activities",
			header: []string{"Name", "Purpose", "Lawful basis", "System", "Created"},
			rows:   activityRows(snapshot.Activities),
		},
		{
			name:   "Locations",
			header: []string{"Name", "Country", "Type", "Created"},
			rows:   locationRows(snapshot.Locations),
		},
		{
			name:   "Jurisdictions",
			header: []string{"Name", "Country", "Adequacy", "Notes", "Created"},
			rows:   jurisdictionRows(snapshot.Jurisdictions),
		},
		{
			name:   "Data Flows",
			header: []string{"Name", "Source system", "Target kind", "Target", "Transfer", "Cross-border", "Created"},
			rows:   flowRows(snapshot.Flows),
		},
	}

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet rather than leaving an empty Sheet1.
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
			}
		}

		if err := writeRow(f, sheet.name, 1, toAny(sheet.header)); err != nil {
			return err
		}
		for rowIdx, row := range sheet.rows {
			if err := writeRow(f, sheet.name, rowIdx+2, row); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

const dateFormat = "2006-01-02"

func systemRows(systems []models.System) [][]any {
	rows := make([][]any, 0, len(systems))
	for _, s := range systems {
		rows = append(rows, []any{s.Name, s.Description, s.Owner, s.Hosting, s.Status, s.CreatedAt.Format(dateFormat)})
	}
	return rows
}

func vendorRows(vendors []models.Vendor) [][]any {
	rows := make([][]any, 0, len(vendors))
	for _, v := range vendors {
		rows = append(rows, []any{v.Name, v.Description, v.ContactEmail, v.Country, v.DPASigned, v.CreatedAt.Format(dateFormat)})
	}
	return rows
}

func categoryRows(categories []models.DataCategory) [][]any {
	rows := make([][]any, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []any{c.Name, c.Description, c.Sensitivity, c.Retention, c.CreatedAt.Format(dateFormat)})
	}
	return rows
}

func activityRows(activities []models.ProcessingActivity) [][]any {
	rows := make([][]any, 0, len(activities))
	for _, a := range activities {
		system := ""
		if a.SystemID != nil {
			system = *a.SystemID
		}
		rows = append(rows, []any{a.Name, a.Purpose, a.LawfulBasis, system, a.CreatedAt.Format(dateFormat)})
	}
	return rows
}

func locationRows(locations []models.Location) [][]any {
	rows := make([][]any, 0, len(locations))
	for _, l := range locations {
		rows = append(rows, []any{l.Name, l.Country, l.Type, l.CreatedAt.Format(dateFormat)})
	}
	return rows
}

func jurisdictionRows(jurisdictions []models.Jurisdiction) [][]any {
	rows := make([][]any, 0, len(jurisdictions))
	for _, j := range jurisdictions {
		rows = append(rows, []any{j.Name, j.Country, j.Adequacy, j.Notes, j.CreatedAt.Format(dateFormat)})
	}
	return rows
}

func flowRows(flows []models.DataFlow) [][]any {
	rows := make([][]any, 0, len(flows))
	for _, d := range flows {
		rows = append(rows, []any{d.Name, d.SourceSystemID, d.TargetKind, d.TargetID, d.Transfer, d.CrossBorder, d.CreatedAt.Format(dateFormat)})
	}
	return rows
}
