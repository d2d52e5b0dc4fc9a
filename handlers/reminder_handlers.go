package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MDYUS/quoteadmin-sub000/config"
)

// Package-level engine instance, created in main after the DB connects.
var reminders *ReminderEngine

// InitReminders wires the engine to the live database connection.
func InitReminders() *ReminderEngine {
	reminders = NewReminderEngine(config.DB)
	return reminders
}

// RefreshReminders nudges the engine after an entity mutation. A no-op
// before InitReminders runs (tests exercise handlers without the engine).
func RefreshReminders() {
	if reminders != nil {
		reminders.Refresh()
	}
}

// GetReminders serves the current alert snapshot.
func GetReminders(w http.ResponseWriter, r *http.Request) {
	if reminders == nil {
		http.Error(w, "reminder engine not running", http.StatusServiceUnavailable)
		return
	}

	alerts := reminders.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

type ackStaleReq struct {
	LeadIDs []uuid.UUID `json:"lead_ids"`
}

// AckStaleLeads snoozes the listed leads for two hours from now.
func AckStaleLeads(w http.ResponseWriter, r *http.Request) {
	if reminders == nil {
		http.Error(w, "reminder engine not running", http.StatusServiceUnavailable)
		return
	}

	var req ackStaleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.LeadIDs) == 0 {
		http.Error(w, "lead_ids is required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	reminders.AcknowledgeStale(req.LeadIDs, now)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"snoozed":       len(req.LeadIDs),
		"snoozed_until": now.Add(staleLeadSnooze),
	})
}

// DismissMonthEndAlert hides the month-end banner for the current month.
func DismissMonthEndAlert(w http.ResponseWriter, r *http.Request) {
	if reminders == nil {
		http.Error(w, "reminder engine not running", http.StatusServiceUnavailable)
		return
	}

	reminders.DismissMonthEnd(time.Now())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Month-end banner dismissed",
	})
}

type dismissWeeklyReq struct {
	PaymentID uuid.UUID `json:"payment_id"`
}

// DismissWeeklyAlert hides the weekly-payment banner for one payment.
func DismissWeeklyAlert(w http.ResponseWriter, r *http.Request) {
	if reminders == nil {
		http.Error(w, "reminder engine not running", http.StatusServiceUnavailable)
		return
	}

	var req dismissWeeklyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.PaymentID == uuid.Nil {
		http.Error(w, "payment_id is required", http.StatusBadRequest)
		return
	}

	reminders.DismissWeekly(req.PaymentID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Weekly payment notice dismissed",
	})
}

type dismissPaymentReq struct {
	Option string `json:"option"` // today | tomorrow
}

// DismissPaymentAlert records the durable payment-popup dismissal.
func DismissPaymentAlert(w http.ResponseWriter, r *http.Request) {
	if reminders == nil {
		http.Error(w, "reminder engine not running", http.StatusServiceUnavailable)
		return
	}

	var req dismissPaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Option != "today" && req.Option != "tomorrow" {
		http.Error(w, "option must be today or tomorrow", http.StatusBadRequest)
		return
	}

	until, err := reminders.DismissPayment(req.Option, time.Now())
	if err != nil {
		http.Error(w, "Failed to record dismissal: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"dismissed_until": until,
	})
}
