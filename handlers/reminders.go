package handlers

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MDYUS/quoteadmin-sub000/models"
	"github.com/MDYUS/quoteadmin-sub000/utils"
)

// Alert kinds, in priority order.
const (
	AlertPaymentOverdue = "payment_overdue"
	AlertStaleLeads     = "stale_leads"
	AlertMonthEnd       = "month_end"
	AlertWeeklyPayment  = "weekly_payment"
)

const (
	// A lead still in the initial column after this long is overdue.
	staleLeadAge = 2 * time.Hour
	// Acknowledging the stale-lead popup silences the listed leads for
	// this long, counted from acknowledgment.
	staleLeadSnooze = 2 * time.Hour
	// The monthly service payment check only fires past this day of month.
	monthlyServiceGraceDay = 10
)

// Alert is one entry of the reminder snapshot served to clients.
type Alert struct {
	Kind      string      `json:"kind"`
	Blocking  bool        `json:"blocking"`
	PlayAudio bool        `json:"play_audio"`
	Message   string      `json:"message"`
	LeadIDs   []uuid.UUID `json:"lead_ids,omitempty"`
	LeadCount int         `json:"lead_count,omitempty"`
	PaymentID *uuid.UUID  `json:"payment_id,omitempty"`
	Amount    float64     `json:"amount,omitempty"`
}

// ReminderEngine re-derives the alert snapshot from entity state, once per
// minute and on every entity mutation. The snooze map and the in-memory
// dismissals live here; only the payment-popup dismissal is durable.
type ReminderEngine struct {
	db *gorm.DB

	mu                sync.Mutex
	snoozes           map[uuid.UUID]time.Time
	monthEndDismissed string // MonthKey of the dismissed month
	weeklyDismissed   map[uuid.UUID]bool
	alerts            []Alert

	kick chan struct{}
	stop chan struct{}
}

func NewReminderEngine(db *gorm.DB) *ReminderEngine {
	return &ReminderEngine{
		db:              db,
		snoozes:         make(map[uuid.UUID]time.Time),
		weeklyDismissed: make(map[uuid.UUID]bool),
		kick:            make(chan struct{}, 1),
		stop:            make(chan struct{}),
	}
}

// Start runs the evaluation loop until Stop is called.
func (re *ReminderEngine) Start() {
	log.Println("⏰ Starting Reminder Engine...")

	re.Evaluate(time.Now())

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			re.Evaluate(time.Now())
		case <-re.kick:
			re.Evaluate(time.Now())
		case <-re.stop:
			return
		}
	}
}

// Stop terminates the evaluation loop.
func (re *ReminderEngine) Stop() {
	close(re.stop)
}

// Refresh requests an immediate re-evaluation. Safe to call from any
// handler; coalesces if one is already queued.
func (re *ReminderEngine) Refresh() {
	select {
	case re.kick <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the current alerts.
func (re *ReminderEngine) Snapshot() []Alert {
	re.mu.Lock()
	defer re.mu.Unlock()
	out := make([]Alert, len(re.alerts))
	copy(out, re.alerts)
	return out
}

// reminderInput is everything a single evaluation depends on. Keeping it
// explicit makes the rule set testable without a database or a clock.
type reminderInput struct {
	leads                 []models.Lead
	payments              []models.Payment
	snoozes               map[uuid.UUID]time.Time
	monthEndDismissed     string
	weeklyDismissed       map[uuid.UUID]bool
	paymentDismissedUntil time.Time
}

// Evaluate reloads entity state and rebuilds the alert snapshot. Read
// failures keep the previous snapshot.
func (re *ReminderEngine) Evaluate(now time.Time) {
	var leads []models.Lead
	if err := re.db.Find(&leads).Error; err != nil {
		log.Printf("⚠️  Reminder evaluation: failed to fetch leads: %v", err)
		return
	}

	var payments []models.Payment
	if err := re.db.Where("status = ?", models.PaymentStatusPending).Find(&payments).Error; err != nil {
		log.Printf("⚠️  Reminder evaluation: failed to fetch payments: %v", err)
		return
	}

	dismissedUntil := re.loadPaymentDismissedUntil()

	re.mu.Lock()
	defer re.mu.Unlock()

	re.pruneSnoozesLocked(now)
	re.alerts = buildAlerts(now, reminderInput{
		leads:                 leads,
		payments:              payments,
		snoozes:               re.snoozes,
		monthEndDismissed:     re.monthEndDismissed,
		weeklyDismissed:       re.weeklyDismissed,
		paymentDismissedUntil: dismissedUntil,
	})
}

// buildAlerts applies the reminder rules in priority order. Exactly one
// blocking alert carries the audio flag.
func buildAlerts(now time.Time, in reminderInput) []Alert {
	var alerts []Alert

	if a := paymentOverdueAlert(now, in.payments, in.paymentDismissedUntil); a != nil {
		alerts = append(alerts, *a)
	}

	if ids := staleLeadIDs(now, in.leads, in.snoozes); len(ids) > 0 {
		alerts = append(alerts, Alert{
			Kind:     AlertStaleLeads,
			Blocking: true,
			Message:  fmt.Sprintf("%d lead(s) waiting for first contact for over 2 hours", len(ids)),
			LeadIDs:  ids,
		})
	}

	if utils.InMonthEndWindow(now) && in.monthEndDismissed != utils.MonthKey(now) {
		count := leadsCreatedInMonth(now, in.leads)
		alerts = append(alerts, Alert{
			Kind:      AlertMonthEnd,
			Message:   fmt.Sprintf("%d lead(s) created in %s", count, now.Format("January 2006")),
			LeadCount: count,
		})
	}

	for _, p := range weeklyPaymentsDueTomorrow(now, in.payments) {
		if in.weeklyDismissed[p.ID] {
			continue
		}
		id := p.ID
		alerts = append(alerts, Alert{
			Kind:      AlertWeeklyPayment,
			Message:   fmt.Sprintf("Weekly budget payment of %.2f is due tomorrow", p.Amount),
			PaymentID: &id,
			Amount:    p.Amount,
		})
	}

	// Only the highest-priority blocking alert plays audio.
	for i := range alerts {
		if alerts[i].Blocking {
			alerts[i].PlayAudio = true
			break
		}
	}

	return alerts
}

// staleLeadIDs returns leads still in the initial column for over two
// hours, excluding leads with an active snooze.
func staleLeadIDs(now time.Time, leads []models.Lead, snoozes map[uuid.UUID]time.Time) []uuid.UUID {
	var ids []uuid.UUID
	for _, l := range leads {
		if l.Status != models.LeadStatusNew {
			continue
		}
		if now.Sub(l.CreatedAt) <= staleLeadAge {
			continue
		}
		if until, ok := snoozes[l.ID]; ok && until.After(now) {
			continue
		}
		ids = append(ids, l.ID)
	}
	return ids
}

// leadsCreatedInMonth counts leads created in now's month and year.
func leadsCreatedInMonth(now time.Time, leads []models.Lead) int {
	count := 0
	for _, l := range leads {
		if utils.SameMonth(l.CreatedAt, now) {
			count++
		}
	}
	return count
}

// paymentOverdueAlert fires once past the 10th while the current month's
// service payment is pending, unless a stored dismissal is still in the
// future. The stored value is a full timestamp compared against now; the
// dismissal targets are day boundaries.
func paymentOverdueAlert(now time.Time, payments []models.Payment, dismissedUntil time.Time) *Alert {
	if now.Day() <= monthlyServiceGraceDay {
		return nil
	}
	if dismissedUntil.After(now) {
		return nil
	}
	for _, p := range payments {
		if p.Type != models.PaymentTypeMonthlyService || p.Status != models.PaymentStatusPending {
			continue
		}
		if !utils.SameMonth(p.DueDate, now) {
			continue
		}
		id := p.ID
		return &Alert{
			Kind:      AlertPaymentOverdue,
			Blocking:  true,
			Message:   fmt.Sprintf("Monthly service payment of %.2f is still pending past the %dth", p.Amount, monthlyServiceGraceDay),
			PaymentID: &id,
			Amount:    p.Amount,
		}
	}
	return nil
}

// weeklyPaymentsDueTomorrow returns pending weekly payments whose due date
// equals tomorrow's calendar date. Date equality, not a range.
func weeklyPaymentsDueTomorrow(now time.Time, payments []models.Payment) []models.Payment {
	tomorrow := utils.Tomorrow(now)
	var due []models.Payment
	for _, p := range payments {
		if p.Type != models.PaymentTypeWeeklyBudget || p.Status != models.PaymentStatusPending {
			continue
		}
		if utils.SameDate(p.DueDate, tomorrow) {
			due = append(due, p)
		}
	}
	return due
}

// AcknowledgeStale snoozes exactly the given leads for two hours counted
// from the acknowledgment time, not from when they became overdue.
func (re *ReminderEngine) AcknowledgeStale(ids []uuid.UUID, now time.Time) {
	re.mu.Lock()
	until := now.Add(staleLeadSnooze)
	for _, id := range ids {
		re.snoozes[id] = until
	}
	re.mu.Unlock()
	re.Refresh()
}

// DismissMonthEnd hides the month-end banner until the month boundary
// re-arms it. Not persisted.
func (re *ReminderEngine) DismissMonthEnd(now time.Time) {
	re.mu.Lock()
	re.monthEndDismissed = utils.MonthKey(now)
	re.mu.Unlock()
	re.Refresh()
}

// DismissWeekly hides the weekly-payment banner for one payment. Not
// persisted; a reload brings it back.
func (re *ReminderEngine) DismissWeekly(paymentID uuid.UUID) {
	re.mu.Lock()
	re.weeklyDismissed[paymentID] = true
	re.mu.Unlock()
	re.Refresh()
}

// DismissPayment records the durable payment-popup dismissal. Option
// "today" suppresses it for 24 hours; "tomorrow" until the start of the
// day after tomorrow.
func (re *ReminderEngine) DismissPayment(option string, now time.Time) (time.Time, error) {
	var until time.Time
	switch option {
	case "today":
		until = now.Add(24 * time.Hour)
	case "tomorrow":
		until = utils.StartOfDay(now).AddDate(0, 0, 2)
	default:
		return time.Time{}, fmt.Errorf("unknown dismiss option %q", option)
	}

	state := models.AppState{
		Key:   models.StateKeyPaymentPopupDismissedUntil,
		Value: until.Format(time.RFC3339),
	}
	err := re.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		return time.Time{}, err
	}

	re.Refresh()
	return until, nil
}

// loadPaymentDismissedUntil reads the durable dismissal flag. Missing or
// unparseable values count as "never dismissed".
func (re *ReminderEngine) loadPaymentDismissedUntil() time.Time {
	var state models.AppState
	if err := re.db.First(&state, "key = ?", models.StateKeyPaymentPopupDismissedUntil).Error; err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, state.Value)
	if err != nil {
		log.Printf("⚠️  Unparseable %s value %q", models.StateKeyPaymentPopupDismissedUntil, state.Value)
		return time.Time{}
	}
	return t
}

// pruneSnoozesLocked drops expired snoozes. Caller holds re.mu.
func (re *ReminderEngine) pruneSnoozesLocked(now time.Time) {
	for id, until := range re.snoozes {
		if !until.After(now) {
			delete(re.snoozes, id)
		}
	}
}
