package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
	"github.com/MDYUS/quoteadmin-sub000/utils"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GetDashboardStats aggregates the numbers shown on the home screen:
// leads per pipeline column, leads created this month, active projects,
// and the pending payment total.
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	monthStart, _ := time.Parse("2006-01", utils.MonthKey(now))

	var byStatus []statusCount
	if err := config.DB.Model(&models.Lead{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		http.Error(w, "Failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Report every column even when empty, in Kanban order
	counts := make(map[string]int64)
	for _, row := range byStatus {
		counts[row.Status] = row.Count
	}
	leadsByStatus := make([]statusCount, 0, len(models.LeadStatuses))
	var totalLeads int64
	for _, status := range models.LeadStatuses {
		leadsByStatus = append(leadsByStatus, statusCount{Status: status, Count: counts[status]})
		totalLeads += counts[status]
	}

	var leadsThisMonth int64
	if err := config.DB.Model(&models.Lead{}).
		Where("created_at >= ?", monthStart).
		Count(&leadsThisMonth).Error; err != nil {
		http.Error(w, "Failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var activeProjects int64
	if err := config.DB.Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusOngoing).
		Count(&activeProjects).Error; err != nil {
		http.Error(w, "Failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var pendingTotal struct {
		Total float64
	}
	if err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ?", models.PaymentStatusPending).
		Scan(&pendingTotal).Error; err != nil {
		http.Error(w, "Failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var pendingPayments int64
	if err := config.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusPending).
		Count(&pendingPayments).Error; err != nil {
		http.Error(w, "Failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"leads_by_status":       leadsByStatus,
		"total_leads":           totalLeads,
		"leads_this_month":      leadsThisMonth,
		"active_projects":       activeProjects,
		"pending_payments":      pendingPayments,
		"pending_payment_total": pendingTotal.Total,
	})
}
