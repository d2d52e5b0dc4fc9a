package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllQuotes(w http.ResponseWriter, r *http.Request) {
	var quotes []models.Quote

	query := config.DB.Order("issue_date DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&quotes).Error; err != nil {
		http.Error(w, "Failed to fetch quotes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  quotes,
		"count": len(quotes),
	})
}

func GetQuote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var quote models.Quote
	if err := config.DB.First(&quote, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func CreateQuote(w http.ResponseWriter, r *http.Request) {
	var quote models.Quote
	if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if quote.Number == "" || quote.ClientName == "" {
		http.Error(w, "number and client_name are required", http.StatusBadRequest)
		return
	}
	if len(quote.Lines) == 0 {
		http.Error(w, "at least one line item is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&quote).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "quote number already exists", http.StatusConflict)
		} else {
			http.Error(w, "Failed to create quote: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	quote.Total = quote.Lines.Total()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func UpdateQuote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var quote models.Quote
	if err := config.DB.First(&quote, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.Quote
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	quote.ClientName = patch.ClientName
	quote.ClientPhone = patch.ClientPhone
	quote.Address = patch.Address
	quote.ValidUntil = patch.ValidUntil
	quote.Notes = patch.Notes
	if !patch.IssueDate.IsZero() {
		quote.IssueDate = patch.IssueDate
	}
	if patch.Status != "" {
		quote.Status = patch.Status
	}
	if patch.Lines != nil {
		quote.Lines = patch.Lines
	}

	if err := config.DB.Save(&quote).Error; err != nil {
		http.Error(w, "Failed to update quote: "+err.Error(), http.StatusInternalServerError)
		return
	}

	quote.Total = quote.Lines.Total()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

// ConvertQuoteToInvoice creates an invoice from an accepted quote.
func ConvertQuoteToInvoice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var quote models.Quote
	if err := config.DB.First(&quote, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if quote.Status != models.QuoteStatusAccepted {
		http.Error(w, "only accepted quotes can be converted", http.StatusBadRequest)
		return
	}

	invoice := models.Invoice{
		Number:      fmt.Sprintf("INV-%s", quote.Number),
		ClientName:  quote.ClientName,
		ClientPhone: quote.ClientPhone,
		Address:     quote.Address,
		IssueDate:   time.Now(),
		Lines:       quote.Lines,
		Notes:       quote.Notes,
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "quote already converted", http.StatusConflict)
		} else {
			http.Error(w, "Failed to create invoice: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ Converted quote %s to invoice %s", quote.Number, invoice.Number)
	invoice.Total = invoice.Lines.Total()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

func DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Quote{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete quote: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Quote deleted successfully",
	})
}
