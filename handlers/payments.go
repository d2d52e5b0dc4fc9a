package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllPayments(w http.ResponseWriter, r *http.Request) {
	var payments []models.Payment

	query := config.DB.Order("due_date DESC")
	if paymentType := r.URL.Query().Get("type"); paymentType != "" {
		query = query.Where("type = ?", paymentType)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&payments).Error; err != nil {
		http.Error(w, "Failed to fetch payments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  payments,
		"count": len(payments),
	})
}

func GetPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payment)
}

func CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if payment.Type != models.PaymentTypeWeeklyBudget && payment.Type != models.PaymentTypeMonthlyService {
		http.Error(w, "type must be weekly_budget or monthly_service", http.StatusBadRequest)
		return
	}
	if payment.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}
	if payment.DueDate.IsZero() {
		http.Error(w, "due_date is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		http.Error(w, "Failed to create payment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	RefreshReminders()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payment)
}

func UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.Payment
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if patch.Type != "" {
		payment.Type = patch.Type
	}
	payment.Label = patch.Label
	if patch.Amount > 0 {
		payment.Amount = patch.Amount
	}
	if !patch.DueDate.IsZero() {
		payment.DueDate = patch.DueDate
	}
	if patch.Status != "" {
		payment.Status = patch.Status
	}
	payment.PaidOn = patch.PaidOn
	payment.Notes = patch.Notes

	if err := config.DB.Save(&payment).Error; err != nil {
		http.Error(w, "Failed to update payment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	RefreshReminders()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payment)
}

// MarkPaymentPaid flips a payment to paid and stamps paid_on with today.
func MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	now := time.Now()
	payment.Status = models.PaymentStatusPaid
	payment.PaidOn = &now

	if err := config.DB.Save(&payment).Error; err != nil {
		http.Error(w, "Failed to update payment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Payment %s marked paid", payment.ID)
	RefreshReminders()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payment)
}

func DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Payment{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete payment: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	RefreshReminders()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Payment deleted successfully",
	})
}
