package documents_test

import (
	"errors"
	"testing"

	"github.com/billforge/billforge/internal/documents"
)

func TestDocument_Filename(t *testing.T) {
	tests := []struct {
		name string
		doc  documents.Document
		want string
	}{
		{
			name: "receipt with number",
			doc:  documents.Document{Kind: documents.KindReceipt, Number: "REC-42"},
			want: "receipt-REC-42.pdf",
		},
		{
			name: "invoice with number",
			doc:  documents.Document{Kind: documents.KindInvoice, Number: "INV-001"},
			want: "invoice-INV-001.pdf",
		},
		{
			name: "empty number falls back to document",
			doc:  documents.Document{Kind: documents.KindInvoice},
			want: "invoice-document.pdf",
		},
		{
			name: "receipt with empty number",
			doc:  documents.Document{Kind: documents.KindReceipt},
			want: "receipt-document.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Filename(); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func validDocument() documents.Document {
	return documents.Document{
		Kind:      documents.KindInvoice,
		Number:    "INV-001",
		IssueDate: "2026-01-15",
		Currency:  "USD",
		Items:     []documents.LineItem{item("1", "100", "10", "0")},
		Presentation: documents.PresentationSettings{
			Theme: documents.ThemeClassic,
		},
	}
}

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*documents.Document)
		wantField string
	}{
		{
			name:   "valid document passes",
			mutate: func(*documents.Document) {},
		},
		{
			name:   "empty item list is valid",
			mutate: func(d *documents.Document) { d.Items = nil },
		},
		{
			name:      "unknown kind",
			mutate:    func(d *documents.Document) { d.Kind = "estimate" },
			wantField: "kind",
		},
		{
			name:      "bad currency code",
			mutate:    func(d *documents.Document) { d.Currency = "DOLLARS" },
			wantField: "currency",
		},
		{
			name:      "bad issue date",
			mutate:    func(d *documents.Document) { d.IssueDate = "15/01/2026" },
			wantField: "issue_date",
		},
		{
			name:      "bad due date",
			mutate:    func(d *documents.Document) { d.DueDate = "Jan 15" },
			wantField: "due_date",
		},
		{
			name:      "negative amount paid",
			mutate:    func(d *documents.Document) { d.AmountPaid = dec("-20") },
			wantField: "amount_paid",
		},
		{
			name:      "negative quantity",
			mutate:    func(d *documents.Document) { d.Items[0].Quantity = dec("-1") },
			wantField: "items[0].quantity",
		},
		{
			name:      "negative unit price",
			mutate:    func(d *documents.Document) { d.Items[0].UnitPrice = dec("-5") },
			wantField: "items[0].unit_price",
		},
		{
			name:      "tax rate above 100",
			mutate:    func(d *documents.Document) { d.Items[0].TaxRate = dec("101") },
			wantField: "items[0].tax_rate",
		},
		{
			name:      "discount above 100",
			mutate:    func(d *documents.Document) { d.Items[0].Discount = dec("150") },
			wantField: "items[0].discount",
		},
		{
			name:      "unknown theme",
			mutate:    func(d *documents.Document) { d.Presentation.Theme = "neon" },
			wantField: "presentation.theme",
		},
		{
			name:      "dark mode on invoice",
			mutate:    func(d *documents.Document) { d.Presentation.DarkMode = true },
			wantField: "presentation.dark_mode",
		},
		{
			name: "watermark on invoice",
			mutate: func(d *documents.Document) {
				d.Presentation.Watermark = &documents.Watermark{Text: "PAID", Opacity: 0.5, Density: 3}
			},
			wantField: "presentation.watermark",
		},
		{
			name: "watermark opacity out of range",
			mutate: func(d *documents.Document) {
				d.Kind = documents.KindReceipt
				d.Presentation.Watermark = &documents.Watermark{Text: "PAID", Opacity: 1.5, Density: 3}
			},
			wantField: "presentation.watermark.opacity",
		},
		{
			name: "watermark text required",
			mutate: func(d *documents.Document) {
				d.Kind = documents.KindReceipt
				d.Presentation.Watermark = &documents.Watermark{Opacity: 0.5, Density: 3}
			},
			wantField: "presentation.watermark.text",
		},
		{
			name: "watermark density out of range",
			mutate: func(d *documents.Document) {
				d.Kind = documents.KindReceipt
				d.Presentation.Watermark = &documents.Watermark{Text: "PAID", Opacity: 0.5, Density: 9}
			},
			wantField: "presentation.watermark.density",
		},
		{
			name: "valid receipt watermark",
			mutate: func(d *documents.Document) {
				d.Kind = documents.KindReceipt
				d.Presentation.Watermark = &documents.Watermark{Text: "PAID", Opacity: 0.3, Density: 2}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)

			err := doc.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, documents.ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}

			var verr *documents.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}

			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Validate() fields = %v, want entry for %q", verr.Fields, tt.wantField)
			}
		})
	}
}
