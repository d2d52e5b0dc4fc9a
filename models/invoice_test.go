package models

import "testing"

func TestInvoiceLinesTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines InvoiceLines
		want  float64
	}{
		{
			name:  "empty",
			lines: InvoiceLines{},
			want:  0,
		},
		{
			name:  "nil",
			lines: nil,
			want:  0,
		},
		{
			name: "single line",
			lines: InvoiceLines{
				{Description: "False ceiling", Quantity: 120, Amount: 85},
			},
			want: 10200,
		},
		{
			name: "multiple lines sum quantity times rate",
			lines: InvoiceLines{
				{Description: "Painting", Quantity: 2, Amount: 1500},
				{Description: "Wiring", Quantity: 1, Amount: 4200},
				{Description: "Fixture", Quantity: 0.5, Amount: 800},
			},
			want: 7600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lines.Total(); got != tt.want {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectDerive(t *testing.T) {
	p := Project{Budget: 500000, Discount: 25000, Advance: 100000}
	p.Derive()

	if p.FinalAmount != 475000 {
		t.Errorf("FinalAmount = %v, want 475000", p.FinalAmount)
	}
	if p.PendingAmount != 375000 {
		t.Errorf("PendingAmount = %v, want 375000", p.PendingAmount)
	}
}
