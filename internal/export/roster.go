// Package export writes project rosters as Excel workbooks.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/service"
	"github.com/xuri/excelize/v2"
)

const (
	membersSheet = "Members"
	summarySheet = "Summary"
)

var memberHeader = []string{
	"Name", "Email", "Position", "Department", "Role", "Responsibility",
	"Start", "End", "Allocation %", "Utilization %",
}

// Roster builds a two-sheet workbook: one row per active member, and a
// project summary.
func Roster(p *domain.Project, entries []service.RosterEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", membersSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	over, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "9C0006"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}},
	})
	if err != nil {
		return nil, fmt.Errorf("over-allocation style: %w", err)
	}

	for col, h := range memberHeader {
		if err := f.SetCellStr(membersSheet, cellName(col+1, 1), h); err != nil {
			return nil, err
		}
	}
	last := cellName(len(memberHeader), 1)
	_ = f.SetCellStyle(membersSheet, "A1", last, bold)

	widths := make([]int, len(memberHeader))
	for i, h := range memberHeader {
		widths[i] = len(h)
	}

	total := 0
	for r, e := range entries {
		row := r + 2
		pm, tm := e.Membership, e.Member
		text := []string{
			tm.Name, tm.Email, tm.Position, tm.Department, pm.Role, pm.Responsibility,
			formatDate(pm.Span().Start), formatDate(pm.Span().End),
		}
		for c, v := range text {
			if err := f.SetCellStr(membersSheet, cellName(c+1, row), v); err != nil {
				return nil, err
			}
			widths[c] = max(widths[c], len(v))
		}
		if err := f.SetCellInt(membersSheet, cellName(9, row), int64(pm.AllocationPercent)); err != nil {
			return nil, err
		}
		utilCell := cellName(10, row)
		if err := f.SetCellInt(membersSheet, utilCell, int64(e.Utilization)); err != nil {
			return nil, err
		}
		if e.Utilization > 100 {
			_ = f.SetCellStyle(membersSheet, utilCell, utilCell, over)
		}
		total += pm.AllocationPercent
	}

	if len(entries) > 0 {
		_ = f.AutoFilter(membersSheet, "A1:"+cellName(len(memberHeader), len(entries)+1), nil)
	}
	for c, w := range widths {
		col, _ := excelize.ColumnNumberToName(c + 1)
		_ = f.SetColWidth(membersSheet, col, col, clampWidth(w))
	}

	if err := writeSummary(f, p, len(entries), total, bold); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSummary(f *excelize.File, p *domain.Project, members, total, bold int) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	window := p.Window()
	rows := [][2]string{
		{"Project", p.Name},
		{"Short ID", p.DisplayID()},
		{"Status", string(p.Status)},
		{"Start", formatDate(window.Start)},
		{"End", formatDate(window.End)},
	}
	for i, kv := range rows {
		if err := f.SetCellStr(summarySheet, cellName(1, i+1), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellStr(summarySheet, cellName(2, i+1), kv[1]); err != nil {
			return err
		}
	}
	n := len(rows)
	if err := f.SetCellStr(summarySheet, cellName(1, n+1), "Members"); err != nil {
		return err
	}
	if err := f.SetCellInt(summarySheet, cellName(2, n+1), int64(members)); err != nil {
		return err
	}
	if err := f.SetCellStr(summarySheet, cellName(1, n+2), "Total allocation %"); err != nil {
		return err
	}
	if err := f.SetCellInt(summarySheet, cellName(2, n+2), int64(total)); err != nil {
		return err
	}
	_ = f.SetCellStyle(summarySheet, "A1", cellName(1, n+2), bold)
	_ = f.SetColWidth(summarySheet, "A", "A", 20)
	_ = f.SetColWidth(summarySheet, "B", "B", clampWidth(len(p.Name)))
	return nil
}

// WriteRoster renders the workbook to w.
func WriteRoster(w io.Writer, p *domain.Project, entries []service.RosterEntry) error {
	f, err := Roster(p, entries)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveRoster writes the workbook to path; the extension must be .xlsx.
func SaveRoster(path string, p *domain.Project, entries []service.RosterEntry) error {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return fmt.Errorf("export path %q must end in .xlsx", path)
	}
	f, err := Roster(p, entries)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(allocation.DateLayout)
}

func clampWidth(chars int) float64 {
	w := float64(chars) * 1.1
	return min(max(w, 12), 40)
}
