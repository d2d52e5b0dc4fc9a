package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

var leadExportHeaders = []string{"Name", "Phone", "Email", "Address", "Budget", "Scope", "Status", "Source", "Tags", "Notes", "Created"}

func leadExportRow(lead models.Lead) []interface{} {
	return []interface{}{
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Address,
		lead.Budget,
		lead.Scope,
		lead.Status,
		lead.Source,
		strings.Join(lead.Tags, ", "),
		lead.Notes,
		lead.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func fetchLeadsForExport(r *http.Request) ([]models.Lead, error) {
	query := config.DB.Order("created_at DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []models.Lead
	err := query.Find(&leads).Error
	return leads, err
}

func createLeadExcelFile(leads []models.Lead) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Leads"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	// Title
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Lead Book")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	// Headers (row 4)
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for colIdx, header := range leadExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, columnIndexToLetter(colIdx+1), columnIndexToLetter(colIdx+1), 20)
	}

	// Data rows
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})

	for rowIdx, lead := range leads {
		for colIdx, value := range leadExportRow(lead) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	f.DeleteSheet("Sheet1")

	return f, nil
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}

// ExportLeadsExcel streams the lead book as an xlsx workbook. An optional
// ?status= filter narrows it to one pipeline column.
func ExportLeadsExcel(w http.ResponseWriter, r *http.Request) {
	leads, err := fetchLeadsForExport(r)
	if err != nil {
		http.Error(w, "Failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
		return
	}

	f, err := createLeadExcelFile(leads)
	if err != nil {
		http.Error(w, "Failed to create export: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=leads_%s.xlsx", time.Now().Format("20060102")))
	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write export: "+err.Error(), http.StatusInternalServerError)
	}
}

// ExportLeadsCSV streams the lead book as CSV with the same columns as
// the Excel export.
func ExportLeadsCSV(w http.ResponseWriter, r *http.Request) {
	leads, err := fetchLeadsForExport(r)
	if err != nil {
		http.Error(w, "Failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write(leadExportHeaders)
	for _, lead := range leads {
		record := []string{}
		for _, value := range leadExportRow(lead) {
			record = append(record, fmt.Sprintf("%v", value))
		}
		writer.Write(record)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		http.Error(w, "Failed to write export: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=leads_%s.csv", time.Now().Format("20060102")))
	w.Write(buf.Bytes())
}
