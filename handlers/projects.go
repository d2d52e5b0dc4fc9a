package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project

	query := config.DB.Order("created_at DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&projects).Error; err != nil {
		http.Error(w, "Failed to fetch projects: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  projects,
		"count": len(projects),
	})
}

func GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var project models.Project
	if err := config.DB.First(&project, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if project.ClientName == "" {
		http.Error(w, "client_name is required", http.StatusBadRequest)
		return
	}
	if project.Discount > project.Budget {
		http.Error(w, "discount cannot exceed budget", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&project).Error; err != nil {
		http.Error(w, "Failed to create project: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Created project for %s (ID: %s)", project.ClientName, project.ID)
	project.Derive()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var project models.Project
	if err := config.DB.First(&project, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.Project
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if patch.Discount > patch.Budget {
		http.Error(w, "discount cannot exceed budget", http.StatusBadRequest)
		return
	}

	project.ClientName = patch.ClientName
	project.ClientPhone = patch.ClientPhone
	project.Address = patch.Address
	project.Scope = patch.Scope
	project.Budget = patch.Budget
	project.Discount = patch.Discount
	project.Advance = patch.Advance
	project.StartDate = patch.StartDate
	project.EndDate = patch.EndDate
	project.Notes = patch.Notes
	if patch.Status != "" {
		project.Status = patch.Status
	}

	if err := config.DB.Save(&project).Error; err != nil {
		http.Error(w, "Failed to update project: "+err.Error(), http.StatusInternalServerError)
		return
	}

	project.Derive()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete project: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Project deleted successfully",
	})
}
