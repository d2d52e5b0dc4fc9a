package models

import "testing"

func TestValidLeadStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"new", LeadStatusNew, true},
		{"contacted", LeadStatusContacted, true},
		{"follow_up", LeadStatusFollowUp, true},
		{"site_visit", LeadStatusSiteVisit, true},
		{"booked", LeadStatusBooked, true},
		{"empty", "", false},
		{"unknown column", "archived", false},
		{"case sensitive", "New", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidLeadStatus(tt.status); got != tt.want {
				t.Errorf("ValidLeadStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestLeadStatusesCoversAllConstants(t *testing.T) {
	if len(LeadStatuses) != 5 {
		t.Fatalf("expected 5 pipeline columns, got %d", len(LeadStatuses))
	}
	if LeadStatuses[0] != LeadStatusNew || LeadStatuses[len(LeadStatuses)-1] != LeadStatusBooked {
		t.Error("pipeline order must start at new and end at booked")
	}
}
