package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

// GetAppState returns a durable flag by key. Missing keys come back as
// an empty value rather than 404 so clients can treat "never set" and
// "cleared" the same way.
func GetAppState(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var state models.AppState
	err := config.DB.First(&state, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			state = models.AppState{Key: key, Value: ""}
		} else {
			http.Error(w, "Failed to fetch state: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// PutAppState upserts a durable flag. The value is an opaque string; the
// reminder engine is re-evaluated afterwards because some keys gate alerts.
func PutAppState(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	state := models.AppState{Key: key, Value: body.Value, UpdatedAt: time.Now()}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		http.Error(w, "Failed to save state: "+err.Error(), http.StatusInternalServerError)
		return
	}

	RefreshReminders()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}
