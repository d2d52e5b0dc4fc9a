package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/jung-kurt/gofpdf"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
	"github.com/MDYUS/quoteadmin-sub000/utils"
)

// fetchLetterhead downloads the letterhead image at generation time and
// registers it on the document. Returns the image name to place, or an
// error when the fetch fails (the caller aborts the whole document).
func fetchLetterhead(pdf *gofpdf.Fpdf) (string, error) {
	url := os.Getenv("LETTERHEAD_URL")
	if url == "" {
		return "", nil
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch letterhead: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch letterhead: status %d", resp.StatusCode)
	}

	var imageType string
	switch ct := resp.Header.Get("Content-Type"); {
	case strings.Contains(ct, "png"):
		imageType = "PNG"
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		imageType = "JPG"
	default:
		return "", fmt.Errorf("fetch letterhead: unsupported content type %q", resp.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch letterhead: %w", err)
	}

	pdf.RegisterImageOptionsReader("letterhead", gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if pdf.Err() {
		return "", fmt.Errorf("fetch letterhead: %v", pdf.Error())
	}
	return "letterhead", nil
}

func buildInvoicePDF(invoice models.Invoice) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	letterhead, err := fetchLetterhead(pdf)
	if err != nil {
		return nil, err
	}
	if letterhead != "" {
		pdf.ImageOptions(letterhead, 15, 10, 180, 0, false, gofpdf.ImageOptions{ImageType: ""}, 0, "")
		pdf.SetY(45)
	}

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Invoice No: "+invoice.Number)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+invoice.IssueDate.Format("02 Jan 2006"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Billed To")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, invoice.ClientName)
	pdf.Ln(6)
	if invoice.ClientPhone != "" {
		pdf.Cell(0, 6, invoice.ClientPhone)
		pdf.Ln(6)
	}
	if invoice.Address != "" {
		pdf.MultiCell(0, 6, invoice.Address, "", "L", false)
	}
	pdf.Ln(6)

	// Line items table
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(100, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	for _, line := range invoice.Lines {
		pdf.CellFormat(100, 7, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", line.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", line.Quantity*line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(155, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", invoice.Lines.Total()), "1", 1, "R", false, 0, "")

	if invoice.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, invoice.Notes, "", "L", false)
	}

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

// GetInvoicePDF renders an invoice as PDF. When the letterhead cannot be
// fetched the whole document is aborted rather than sent incomplete.
func GetInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	pdf, err := buildInvoicePDF(invoice)
	if err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", invoice.Number))
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
	}
}

// GetMonthlyLeadReportPDF renders per-status lead counts for the month
// given as ?month=2006-01 (defaults to the current month).
func GetMonthlyLeadReportPDF(w http.ResponseWriter, r *http.Request) {
	monthKey := r.URL.Query().Get("month")
	if monthKey == "" {
		monthKey = utils.MonthKey(time.Now())
	}
	monthStart, err := time.Parse("2006-01", monthKey)
	if err != nil {
		http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	var leads []models.Lead
	if err := config.DB.Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).Find(&leads).Error; err != nil {
		http.Error(w, "Failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
		return
	}

	counts := make(map[string]int)
	for _, lead := range leads {
		counts[lead.Status]++
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	letterhead, err := fetchLetterhead(pdf)
	if err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusBadGateway)
		return
	}
	if letterhead != "" {
		pdf.ImageOptions(letterhead, 15, 10, 180, 0, false, gofpdf.ImageOptions{ImageType: ""}, 0, "")
		pdf.SetY(45)
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Lead Report - "+monthStart.Format("January 2006"))
	pdf.Ln(14)

	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Status", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, "Leads", "1", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 11)
	for _, status := range models.LeadStatuses {
		pdf.CellFormat(120, 7, status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, fmt.Sprintf("%d", counts[status]), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("%d", len(leads)), "1", 1, "R", false, 0, "")

	if pdf.Err() {
		http.Error(w, "Failed to generate PDF: "+pdf.Error().Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=lead_report_%s.pdf", monthKey))
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
	}
}
