package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

func GetAllCommLogs(w http.ResponseWriter, r *http.Request) {
	var logs []models.CommLog

	query := config.DB.Order("logged_at DESC")
	if phone := r.URL.Query().Get("client_phone"); phone != "" {
		query = query.Where("client_phone = ?", phone)
	}

	if err := query.Find(&logs).Error; err != nil {
		http.Error(w, "Failed to fetch communication logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  logs,
		"count": len(logs),
	})
}

func GetCommLog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var entry models.CommLog
	if err := config.DB.First(&entry, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func CreateCommLog(w http.ResponseWriter, r *http.Request) {
	var entry models.CommLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if entry.ClientName == "" || entry.Summary == "" {
		http.Error(w, "client_name and summary are required", http.StatusBadRequest)
		return
	}
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		http.Error(w, "Failed to create communication log: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func UpdateCommLog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var entry models.CommLog
	if err := config.DB.First(&entry, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var patch models.CommLog
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	entry.ClientName = patch.ClientName
	entry.ClientPhone = patch.ClientPhone
	entry.Channel = patch.Channel
	entry.Direction = patch.Direction
	entry.Summary = patch.Summary
	if !patch.LoggedAt.IsZero() {
		entry.LoggedAt = patch.LoggedAt
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		http.Error(w, "Failed to update communication log: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func DeleteCommLog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.CommLog{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete communication log: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Communication log deleted successfully",
	})
}
