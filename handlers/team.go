package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllTeamMembers(w http.ResponseWriter, r *http.Request) {
	var members []models.TeamMember
	if err := config.DB.Order("created_at ASC").Find(&members).Error; err != nil {
		http.Error(w, "Failed to fetch team members: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  members,
		"count": len(members),
	})
}

func GetTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(member)
}

func CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if member.Name == "" || member.Phone == "" {
		http.Error(w, "name and phone are required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&member).Error; err != nil {
		http.Error(w, "Failed to create team member: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(member)
}

func UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	member.Name = patch.Name
	member.Role = patch.Role
	member.Phone = patch.Phone
	member.Salary = patch.Salary
	member.JoinedOn = patch.JoinedOn
	member.IsActive = patch.IsActive
	if !patch.Attachment.IsZero() {
		member.Attachment = patch.Attachment
	}

	if err := config.DB.Save(&member).Error; err != nil {
		http.Error(w, "Failed to update team member: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(member)
}

func DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete team member: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Team member deleted successfully",
	})
}
