package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"gorm.io/gorm/clause"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// deviceHub fans the refreshed device list out to subscribed clients
// whenever a device registers or heartbeats.
type deviceHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

var devices = &deviceHub{conns: make(map[*websocket.Conn]bool)}

func (h *deviceHub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
}

func (h *deviceHub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	c.Close()
}

// broadcast pushes the current device list to every subscriber. Dead
// connections are dropped on write failure.
func (h *deviceHub) broadcast() {
	var list []models.Device
	if err := config.DB.Order("last_seen_at DESC").Find(&list).Error; err != nil {
		log.Printf("⚠️  Device broadcast: failed to fetch devices: %v", err)
		return
	}

	payload := map[string]interface{}{
		"devices": list,
		"count":   len(list),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		if err := c.WriteJSON(payload); err != nil {
			delete(h.conns, c)
			c.Close()
		}
	}
}

// RegisterDevice upserts a device row keyed by the client-generated UUID.
func RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var device models.Device
	if err := json.NewDecoder(r.Body).Decode(&device); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if device.ID == uuid.Nil {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	device.LastSeenAt = time.Now()
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "app_version", "push_token", "last_seen_at", "updated_at"}),
	}).Create(&device).Error
	if err != nil {
		http.Error(w, "Failed to register device: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Registered device %s (%s)", device.ID, device.Platform)
	go devices.broadcast()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(device)
}

// DeviceHeartbeat bumps last_seen_at; devices call it once per minute.
func DeviceHeartbeat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Model(&models.Device{}).Where("id = ?", id).
		Update("last_seen_at", time.Now())
	if result.Error != nil {
		http.Error(w, "Failed to record heartbeat: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	go devices.broadcast()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "heartbeat recorded",
	})
}

func GetAllDevices(w http.ResponseWriter, r *http.Request) {
	var list []models.Device
	if err := config.DB.Order("last_seen_at DESC").Find(&list).Error; err != nil {
		http.Error(w, "Failed to fetch devices: "+err.Error(), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	out := make([]map[string]interface{}, len(list))
	for i, d := range list {
		out[i] = map[string]interface{}{
			"id":           d.ID,
			"platform":     d.Platform,
			"app_version":  d.AppVersion,
			"last_seen_at": d.LastSeenAt,
			"online":       d.Online(now),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"devices": out,
		"count":   len(out),
	})
}

// StreamDevices upgrades to a websocket and keeps pushing the device list
// on every change until the client disconnects.
func StreamDevices(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("⚠️  Websocket upgrade failed: %v", err)
		return
	}

	devices.add(conn)
	go devices.broadcast()

	// Drain reads so we notice the disconnect
	go func() {
		defer devices.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Device{}, "id = ?", id)
	if result.Error != nil {
		http.Error(w, "Failed to delete device: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "not found or not permitted", http.StatusNotFound)
		return
	}

	go devices.broadcast()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Device deleted successfully",
	})
}
