package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllSiteVisits(w http.ResponseWriter, r *http.Request) {
	var visits []models.SiteVisit

	query := config.DB.Order("visit_date DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&visits).Error; err != nil {
		http.Error(w, "Failed to fetch site visits: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  visits,
		"count": len(visits),
	})
}

func GetSiteVisit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var visit models.SiteVisit
	if err := config.DB.First(&visit, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(visit)
}

func CreateSiteVisit(w http.ResponseWriter, r *http.Request) {
	var visit models.SiteVisit
	if err := json.NewDecoder(r.Body).Decode(&visit); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if visit.ClientName == "" || visit.Location == "" {
		http.Error(w, "client_name and location are required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&visit).Error; err != nil {
		http.Error(w, "Failed to create site visit: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(visit)
}

func UpdateSiteVisit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var visit models.SiteVisit
	if err := config.DB.First(&visit, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.SiteVisit
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	visit.ClientName = patch.ClientName
	visit.ClientPhone = patch.ClientPhone
	visit.VisitDate = patch.VisitDate
	visit.VisitTime = patch.VisitTime
	visit.Location = patch.Location
	visit.Notes = patch.Notes
	if patch.Status != "" {
		visit.Status = patch.Status
	}

	if err := config.DB.Save(&visit).Error; err != nil {
		http.Error(w, "Failed to update site visit: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(visit)
}

func DeleteSiteVisit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.SiteVisit{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete site visit: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Site visit deleted successfully",
	})
}
