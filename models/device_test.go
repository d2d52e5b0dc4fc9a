package models

import (
	"testing"
	"time"
)

func TestDeviceOnline(t *testing.T) {
	now := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastSeen time.Time
		want     bool
	}{
		{"just heartbeat", now.Add(-30 * time.Second), true},
		{"two missed beats still online", now.Add(-3 * time.Minute), true},
		{"past the grace window", now.Add(-3*time.Minute - time.Second), false},
		{"long gone", now.Add(-2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Device{LastSeenAt: tt.lastSeen}
			if got := d.Online(now); got != tt.want {
				t.Errorf("Online() = %v, want %v", got, tt.want)
			}
		})
	}
}
