package documents

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Totals aggregates the monetary summary of a line item list.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Base returns quantity times unit price before discount and tax.
func (i LineItem) Base() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// DiscountAmount returns the discount applied to the item base.
func (i LineItem) DiscountAmount() decimal.Decimal {
	return i.Base().Mul(i.Discount).Div(hundred)
}

// TaxAmount returns the tax on the discounted base.
func (i LineItem) TaxAmount() decimal.Decimal {
	return i.Base().Sub(i.DiscountAmount()).Mul(i.TaxRate).Div(hundred)
}

// LineTotal returns the item total after discount and tax.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Base().Sub(i.DiscountAmount()).Add(i.TaxAmount())
}

// CalculateTotals derives the document summary from a line item list.
// An empty list yields zero totals; zero quantities or prices contribute
// nothing and are not an error.
func CalculateTotals(items []LineItem) Totals {
	t := Totals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}

	for _, item := range items {
		t.Subtotal = t.Subtotal.Add(item.Base())
		t.Discount = t.Discount.Add(item.DiscountAmount())
		t.Tax = t.Tax.Add(item.TaxAmount())
	}

	t.Total = t.Subtotal.Sub(t.Discount).Add(t.Tax)
	return t
}

// Totals returns the monetary summary for the document's items.
func (d *Document) Totals() Totals {
	return CalculateTotals(d.Items)
}
