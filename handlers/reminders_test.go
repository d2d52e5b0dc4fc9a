package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MDYUS/quoteadmin-sub000/models"
)

func leadAt(created time.Time, status string) models.Lead {
	return models.Lead{ID: uuid.New(), Name: "Lead", Phone: "9999999999", Status: status, CreatedAt: created}
}

func pendingPayment(ptype string, due time.Time) models.Payment {
	return models.Payment{ID: uuid.New(), Type: ptype, Amount: 5000, DueDate: due, Status: models.PaymentStatusPending}
}

func TestStaleLeadIDs(t *testing.T) {
	now := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	fresh := leadAt(now.Add(-90*time.Minute), models.LeadStatusNew)
	stale := leadAt(now.Add(-3*time.Hour), models.LeadStatusNew)
	contacted := leadAt(now.Add(-5*time.Hour), models.LeadStatusContacted)
	snoozed := leadAt(now.Add(-4*time.Hour), models.LeadStatusNew)
	expired := leadAt(now.Add(-4*time.Hour), models.LeadStatusNew)

	snoozes := map[uuid.UUID]time.Time{
		snoozed.ID: now.Add(30 * time.Minute),
		expired.ID: now.Add(-5 * time.Minute),
	}

	tests := []struct {
		name    string
		leads   []models.Lead
		snoozes map[uuid.UUID]time.Time
		want    []uuid.UUID
	}{
		{
			name:  "fresh lead not reported",
			leads: []models.Lead{fresh},
			want:  nil,
		},
		{
			name:  "lead older than two hours reported",
			leads: []models.Lead{stale},
			want:  []uuid.UUID{stale.ID},
		},
		{
			name:  "moved lead never reported regardless of age",
			leads: []models.Lead{contacted},
			want:  nil,
		},
		{
			name:    "active snooze hides the lead",
			leads:   []models.Lead{snoozed},
			snoozes: snoozes,
			want:    nil,
		},
		{
			name:    "expired snooze no longer hides the lead",
			leads:   []models.Lead{expired},
			snoozes: snoozes,
			want:    []uuid.UUID{expired.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := staleLeadIDs(now, tt.leads, tt.snoozes)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d ids, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("id[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStaleLeadBoundary(t *testing.T) {
	now := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	// Exactly two hours old is not yet overdue; one second past is.
	atBoundary := leadAt(now.Add(-2*time.Hour), models.LeadStatusNew)
	justPast := leadAt(now.Add(-2*time.Hour-time.Second), models.LeadStatusNew)

	if ids := staleLeadIDs(now, []models.Lead{atBoundary}, nil); len(ids) != 0 {
		t.Errorf("lead exactly two hours old reported stale")
	}
	if ids := staleLeadIDs(now, []models.Lead{justPast}, nil); len(ids) != 1 {
		t.Errorf("lead past two hours not reported stale")
	}
}

func TestAcknowledgeStaleSnoozesExactlyListed(t *testing.T) {
	now := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	acked := leadAt(now.Add(-3*time.Hour), models.LeadStatusNew)
	other := leadAt(now.Add(-3*time.Hour), models.LeadStatusNew)

	engine := NewReminderEngine(nil)
	engine.AcknowledgeStale([]uuid.UUID{acked.ID}, now)

	engine.mu.Lock()
	snoozes := engine.snoozes
	engine.mu.Unlock()

	ids := staleLeadIDs(now.Add(time.Minute), []models.Lead{acked, other}, snoozes)
	if len(ids) != 1 || ids[0] != other.ID {
		t.Fatalf("expected only the unacknowledged lead, got %v", ids)
	}

	// The snooze runs from acknowledgment, not from when the lead went
	// stale: still hidden just before the two-hour mark, back after it.
	if ids := staleLeadIDs(now.Add(2*time.Hour-time.Minute), []models.Lead{acked}, snoozes); len(ids) != 0 {
		t.Errorf("acknowledged lead reappeared before the snooze expired")
	}
	if ids := staleLeadIDs(now.Add(2*time.Hour+time.Minute), []models.Lead{acked}, snoozes); len(ids) != 1 {
		t.Errorf("acknowledged lead still hidden after the snooze expired")
	}
}

func TestMonthEndAlert(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		dismissed string
		want      bool
	}{
		{
			name: "mid month no banner",
			now:  time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "second to last day shows banner",
			now:  time.Date(2025, 3, 30, 10, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "last day shows banner",
			now:  time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "february leap year window",
			now:  time.Date(2024, 2, 28, 10, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "february leap year day before window",
			now:  time.Date(2024, 2, 27, 10, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name:      "dismissed for this month stays hidden",
			now:       time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC),
			dismissed: "2025-03",
			want:      false,
		},
		{
			name:      "dismissal from a previous month does not carry over",
			now:       time.Date(2025, 4, 29, 10, 0, 0, 0, time.UTC),
			dismissed: "2025-03",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := buildAlerts(tt.now, reminderInput{monthEndDismissed: tt.dismissed})
			got := false
			for _, a := range alerts {
				if a.Kind == AlertMonthEnd {
					got = true
				}
			}
			if got != tt.want {
				t.Errorf("month-end banner = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthEndCountsOnlyCurrentMonth(t *testing.T) {
	now := time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)
	leads := []models.Lead{
		leadAt(time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC), models.LeadStatusBooked),
		leadAt(time.Date(2025, 3, 28, 9, 0, 0, 0, time.UTC), models.LeadStatusNew),
		leadAt(time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC), models.LeadStatusBooked),
		leadAt(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), models.LeadStatusBooked),
	}

	alerts := buildAlerts(now, reminderInput{leads: leads})
	for _, a := range alerts {
		if a.Kind == AlertMonthEnd {
			if a.LeadCount != 2 {
				t.Errorf("LeadCount = %d, want 2 (same month and year only)", a.LeadCount)
			}
			return
		}
	}
	t.Fatal("month-end banner missing")
}

func TestPaymentOverdueAlert(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	monthly := pendingPayment(models.PaymentTypeMonthlyService, due)

	tests := []struct {
		name           string
		now            time.Time
		payments       []models.Payment
		dismissedUntil time.Time
		want           bool
	}{
		{
			name:     "on the tenth still within grace",
			now:      time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			payments: []models.Payment{monthly},
			want:     false,
		},
		{
			name:     "past the tenth fires",
			now:      time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC),
			payments: []models.Payment{monthly},
			want:     true,
		},
		{
			name:           "active dismissal suppresses",
			now:            time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC),
			payments:       []models.Payment{monthly},
			dismissedUntil: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			want:           false,
		},
		{
			name:           "expired dismissal fires again",
			now:            time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC),
			payments:       []models.Payment{monthly},
			dismissedUntil: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			want:           true,
		},
		{
			name:     "weekly payments never trigger the popup",
			now:      time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC),
			payments: []models.Payment{pendingPayment(models.PaymentTypeWeeklyBudget, due)},
			want:     false,
		},
		{
			name:     "other month's service payment ignored",
			now:      time.Date(2025, 4, 11, 8, 0, 0, 0, time.UTC),
			payments: []models.Payment{monthly},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paymentOverdueAlert(tt.now, tt.payments, tt.dismissedUntil)
			if (got != nil) != tt.want {
				t.Errorf("alert fired = %v, want %v", got != nil, tt.want)
			}
			if got != nil && !got.Blocking {
				t.Errorf("payment overdue alert must be blocking")
			}
		})
	}
}

func TestWeeklyPaymentsDueTomorrow(t *testing.T) {
	now := time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)

	dueTomorrow := pendingPayment(models.PaymentTypeWeeklyBudget, time.Date(2025, 3, 13, 15, 30, 0, 0, time.UTC))
	dueToday := pendingPayment(models.PaymentTypeWeeklyBudget, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	dueLater := pendingPayment(models.PaymentTypeWeeklyBudget, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	due := weeklyPaymentsDueTomorrow(now, []models.Payment{dueTomorrow, dueToday, dueLater})
	if len(due) != 1 || due[0].ID != dueTomorrow.ID {
		t.Fatalf("expected only the payment due tomorrow, got %d", len(due))
	}
}

func TestWeeklyDismissalHidesBanner(t *testing.T) {
	now := time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)
	payment := pendingPayment(models.PaymentTypeWeeklyBudget, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC))

	in := reminderInput{
		payments:        []models.Payment{payment},
		weeklyDismissed: map[uuid.UUID]bool{payment.ID: true},
	}
	for _, a := range buildAlerts(now, in) {
		if a.Kind == AlertWeeklyPayment {
			t.Fatal("dismissed weekly banner still present")
		}
	}
}

func TestAudioOnHighestPriorityBlockingAlert(t *testing.T) {
	// Month end, a stale lead, and an overdue service payment at once.
	now := time.Date(2025, 3, 30, 14, 0, 0, 0, time.UTC)
	in := reminderInput{
		leads:    []models.Lead{leadAt(now.Add(-3*time.Hour), models.LeadStatusNew)},
		payments: []models.Payment{pendingPayment(models.PaymentTypeMonthlyService, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))},
	}

	alerts := buildAlerts(now, in)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	if alerts[0].Kind != AlertPaymentOverdue || alerts[1].Kind != AlertStaleLeads || alerts[2].Kind != AlertMonthEnd {
		t.Fatalf("unexpected alert order: %s, %s, %s", alerts[0].Kind, alerts[1].Kind, alerts[2].Kind)
	}

	audio := 0
	for _, a := range alerts {
		if a.PlayAudio {
			audio++
			if a.Kind != AlertPaymentOverdue {
				t.Errorf("audio on %s, want %s", a.Kind, AlertPaymentOverdue)
			}
		}
	}
	if audio != 1 {
		t.Errorf("audio flag set on %d alerts, want exactly 1", audio)
	}
}

func TestDismissMonthEndRearmsNextMonth(t *testing.T) {
	engine := NewReminderEngine(nil)
	now := time.Date(2025, 3, 30, 14, 0, 0, 0, time.UTC)
	engine.DismissMonthEnd(now)

	engine.mu.Lock()
	dismissed := engine.monthEndDismissed
	engine.mu.Unlock()

	if dismissed != "2025-03" {
		t.Fatalf("dismissed month = %q, want 2025-03", dismissed)
	}

	// April's window is unaffected.
	alerts := buildAlerts(time.Date(2025, 4, 29, 10, 0, 0, 0, time.UTC), reminderInput{monthEndDismissed: dismissed})
	found := false
	for _, a := range alerts {
		if a.Kind == AlertMonthEnd {
			found = true
		}
	}
	if !found {
		t.Error("month-end banner missing in the following month")
	}
}
