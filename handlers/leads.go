package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllLeads(w http.ResponseWriter, r *http.Request) {
	var leads []models.Lead

	query := config.DB.Order("created_at DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&leads).Error; err != nil {
		http.Error(w, "Failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  leads,
		"count": len(leads),
	})
}

func GetLead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lead)
}

func CreateLead(w http.ResponseWriter, r *http.Request) {
	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if lead.Name == "" || lead.Phone == "" {
		http.Error(w, "name and phone are required", http.StatusBadRequest)
		return
	}
	if lead.Status != "" && !models.ValidLeadStatus(lead.Status) {
		http.Error(w, "unknown lead status: "+lead.Status, http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&lead).Error; err != nil {
		http.Error(w, "Failed to create lead: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Created lead: %s (ID: %s)", lead.Name, lead.ID)
	RefreshReminders()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lead)
}

func UpdateLead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.Lead
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if patch.Status != "" && !models.ValidLeadStatus(patch.Status) {
		http.Error(w, "unknown lead status: "+patch.Status, http.StatusBadRequest)
		return
	}

	// Field-wise update keeps the original id and created_at
	lead.Name = patch.Name
	lead.Phone = patch.Phone
	lead.Email = patch.Email
	lead.Address = patch.Address
	lead.Budget = patch.Budget
	lead.Scope = patch.Scope
	lead.Notes = patch.Notes
	lead.Source = patch.Source
	lead.Tags = patch.Tags
	if patch.Status != "" {
		lead.Status = patch.Status
	}
	if !patch.Attachment.IsZero() {
		lead.Attachment = patch.Attachment
	}

	if err := config.DB.Save(&lead).Error; err != nil {
		http.Error(w, "Failed to update lead: "+err.Error(), http.StatusInternalServerError)
		return
	}

	RefreshReminders()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lead)
}

type leadStatusReq struct {
	Status string `json:"status"`
}

// UpdateLeadStatus handles the Kanban drag-and-drop status change.
func UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req leadStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.ValidLeadStatus(req.Status) {
		http.Error(w, "unknown lead status: "+req.Status, http.StatusBadRequest)
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	lead.Status = req.Status
	if err := config.DB.Save(&lead).Error; err != nil {
		http.Error(w, "Failed to update lead: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Lead %s moved to %s", lead.ID, lead.Status)
	RefreshReminders()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lead)
}

func DeleteLead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Lead{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete lead: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	RefreshReminders()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Lead deleted successfully",
	})
}
