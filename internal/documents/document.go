// Package documents defines the invoice/receipt document model shared by the
// draft, record, and export systems, along with its monetary calculations
// and validation rules.
package documents

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies the document layout.
type Kind string

// Document kinds.
const (
	KindInvoice Kind = "invoice"
	KindReceipt Kind = "receipt"
)

// Valid reports whether the kind is a known document kind.
func (k Kind) Valid() bool {
	return k == KindInvoice || k == KindReceipt
}

// Theme is a named color theme applied by the preview renderer.
type Theme string

// Available color themes.
const (
	ThemeClassic  Theme = "classic"
	ThemeMidnight Theme = "midnight"
	ThemeEmerald  Theme = "emerald"
	ThemeCrimson  Theme = "crimson"
	ThemeAmber    Theme = "amber"
	ThemeSlate    Theme = "slate"
	ThemeViolet   Theme = "violet"
)

// Themes lists every available color theme.
var Themes = []Theme{
	ThemeClassic,
	ThemeMidnight,
	ThemeEmerald,
	ThemeCrimson,
	ThemeAmber,
	ThemeSlate,
	ThemeViolet,
}

// Valid reports whether the theme is a known color theme.
func (t Theme) Valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// Watermark configures the diagonal text stamp applied to receipt pages.
type Watermark struct {
	Text    string  `json:"text" validate:"required"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity" validate:"min=0,max=1"`
	Density int     `json:"density" validate:"min=1,max=5"`
}

// PresentationSettings holds the visual options applied by the preview
// renderer. DarkMode and Watermark apply to receipts only.
type PresentationSettings struct {
	Theme     Theme      `json:"theme" validate:"omitempty,document_theme"`
	DarkMode  bool       `json:"dark_mode,omitempty"`
	Watermark *Watermark `json:"watermark,omitempty"`
}

// LineItem is one billable row: quantity, unit price, tax rate, and discount
// are percentages/amounts captured exactly as entered.
type LineItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" validate:"min=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"min=0"`
	TaxRate     decimal.Decimal `json:"tax_rate" validate:"min=0,max=100"`
	Discount    decimal.Decimal `json:"discount" validate:"min=0,max=100"`
}

// Document is the in-memory invoice or receipt being edited or exported.
// PaymentMethod and AmountPaid are receipt-only fields.
type Document struct {
	Kind          Kind                 `json:"kind" validate:"document_kind"`
	Number        string               `json:"number"`
	IssueDate     string               `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string               `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Currency      string               `json:"currency" validate:"len=3"`
	Items         []LineItem           `json:"items" validate:"dive"`
	Notes         string               `json:"notes,omitempty"`
	Terms         string               `json:"terms,omitempty"`
	PaymentMethod string               `json:"payment_method,omitempty"`
	AmountPaid    decimal.Decimal      `json:"amount_paid" validate:"min=0"`
	Presentation  PresentationSettings `json:"presentation"`
}

// Filename derives the export filename: "{kind}-{number}.pdf", with "document"
// substituted when the number is empty.
func (d *Document) Filename() string {
	number := d.Number
	if number == "" {
		number = "document"
	}
	return fmt.Sprintf("%s-%s.pdf", d.Kind, number)
}
