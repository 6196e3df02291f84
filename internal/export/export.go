// Package export renders the visible subset of a list as an .xlsx workbook.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table is one sheet: a header row followed by data rows.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// Write encodes t as a workbook with a bold header row.
func Write(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(t.Sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if t.Sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(t.Sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(t.Sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}

	if len(t.Headers) > 0 {
		style, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		})
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		_ = f.SetCellStyle(t.Sheet, "A1", last, style)

		lastCol, _ := excelize.ColumnNumberToName(len(t.Headers))
		_ = f.SetColWidth(t.Sheet, "A", lastCol, 22)
	}

	return f.Write(w)
}

func Appointments(list []models.Appointment) Table {
	t := Table{
		Sheet:   "Appointments",
		Headers: []string{"ID", "Patient", "Dentist", "Date", "Time", "Treatment", "Status"},
	}
	for _, a := range list {
		t.Rows = append(t.Rows, []any{a.ID, a.PatientName, a.DentistName, a.Date, a.Time, a.TreatmentType, string(a.Status)})
	}
	return t
}

func Dentists(list []models.Dentist) Table {
	t := Table{
		Sheet:   "Dentists",
		Headers: []string{"ID", "Name", "Email", "Phone", "Specialization", "Experience (years)", "Patients", "Rating", "Status"},
	}
	for _, d := range list {
		t.Rows = append(t.Rows, []any{
			d.ID, d.Name, d.Email, d.Phone, d.Specialization,
			d.YearsOfExperience, d.Patients, strconv.FormatFloat(d.Rating, 'f', 1, 64), string(d.Status),
		})
	}
	return t
}

func Users(list []models.User) Table {
	t := Table{
		Sheet:   "Users",
		Headers: []string{"ID", "Name", "Email", "Role", "Status", "Last Active"},
	}
	for _, u := range list {
		t.Rows = append(t.Rows, []any{u.ID, u.Name, u.Email, string(u.Role), string(u.Status), u.LastActive})
	}
	return t
}

// Filename builds "<entity>-<yyyymmdd>.xlsx".
func Filename(entity, date string) string {
	return fmt.Sprintf("%s-%s.xlsx", entity, date)
}
