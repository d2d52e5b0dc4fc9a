package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	var invoices []models.Invoice
	if err := config.DB.Order("issue_date DESC").Find(&invoices).Error; err != nil {
		http.Error(w, "Failed to fetch invoices: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  invoices,
		"count": len(invoices),
	})
}

func GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

func CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if invoice.Number == "" || invoice.ClientName == "" {
		http.Error(w, "number and client_name are required", http.StatusBadRequest)
		return
	}
	if len(invoice.Lines) == 0 {
		http.Error(w, "at least one line item is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "invoice number already exists", http.StatusConflict)
		} else {
			http.Error(w, "Failed to create invoice: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	invoice.Total = invoice.Lines.Total()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

func UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	invoice.ClientName = patch.ClientName
	invoice.ClientPhone = patch.ClientPhone
	invoice.Address = patch.Address
	invoice.Notes = patch.Notes
	if !patch.IssueDate.IsZero() {
		invoice.IssueDate = patch.IssueDate
	}
	if patch.Lines != nil {
		invoice.Lines = patch.Lines
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		http.Error(w, "Failed to update invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	invoice.Total = invoice.Lines.Total()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

func DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Invoice{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete invoice: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Invoice deleted successfully",
	})
}
