// Package services provides pricing, VAT/CIS calculation and UK formatting
// functions for quotes.
package services

import "math"

// Default UK rates applied when a quote does not override them.
const (
	DefaultVATRate = 20.0
	DefaultCISRate = 20.0
)

// LineTotal returns the derived total for a single quote line item.
// Totals are never stored; they are recomputed from qty and unit price
// wherever they are displayed.
func LineTotal(qty, unitPrice float64) float64 {
	return qty * unitPrice
}

// ItemForTotals carries the fields of a quote item that feed aggregation.
type ItemForTotals struct {
	Qty       float64
	UnitPrice float64
	Category  string
	Status    string
	Optional  bool
}

// Total returns the derived line total for the item.
func (i ItemForTotals) Total() float64 {
	return LineTotal(i.Qty, i.UnitPrice)
}

// Subtotal sums the derived totals of all items, optional or not.
// Callers that want a filtered subtotal filter first.
func Subtotal(items []ItemForTotals) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Total()
	}
	return sum
}

// AcceptedSubtotal sums the derived totals of items the client has accepted.
func AcceptedSubtotal(items []ItemForTotals) float64 {
	var sum float64
	for _, item := range items {
		if item.Status == ItemStatusAccepted {
			sum += item.Total()
		}
	}
	return sum
}

// LabourSubtotal sums the derived totals of labour items. CIS deductions
// apply to this figure only.
func LabourSubtotal(items []ItemForTotals) float64 {
	var sum float64
	for _, item := range items {
		if item.Category == CategoryLabour {
			sum += item.Total()
		}
	}
	return sum
}

// VATCalculation holds a subtotal together with the VAT derived from it.
// Invariants: VATAmount == Subtotal * VATRate / 100 and
// Total == Subtotal + VATAmount.
type VATCalculation struct {
	Subtotal  float64
	VATAmount float64
	VATRate   float64
	Total     float64
}

// CalculateVAT computes VAT on a subtotal at the given percentage rate.
// A negative subtotal produces an arithmetically consistent negative result;
// rejecting negative quantities and prices is the caller's job.
func CalculateVAT(subtotal, rate float64) VATCalculation {
	vatAmount := subtotal * rate / 100
	return VATCalculation{
		Subtotal:  subtotal,
		VATAmount: vatAmount,
		VATRate:   rate,
		Total:     subtotal + vatAmount,
	}
}

// CalculateCISDeduction returns the Construction Industry Scheme amount
// withheld from a labour payment at the given percentage rate.
func CalculateCISDeduction(labourCost, rate float64) float64 {
	return labourCost * rate / 100
}

// QuoteTotals aggregates a quote's items and applies VAT. Businesses below
// the VAT threshold charge no VAT, so the calculation collapses to the bare
// subtotal with a zero rate.
func QuoteTotals(items []ItemForTotals, vatRegistered bool, vatRate float64) VATCalculation {
	subtotal := Subtotal(items)
	if !vatRegistered {
		return VATCalculation{Subtotal: subtotal, Total: subtotal}
	}
	return CalculateVAT(subtotal, vatRate)
}

// AcceptedTotals aggregates only the items the client has accepted and
// applies VAT, giving the client-facing final price.
func AcceptedTotals(items []ItemForTotals, vatRegistered bool, vatRate float64) VATCalculation {
	subtotal := AcceptedSubtotal(items)
	if !vatRegistered {
		return VATCalculation{Subtotal: subtotal, Total: subtotal}
	}
	return CalculateVAT(subtotal, vatRate)
}

// CompletionPercentage returns the share of items decided as accepted,
// rounded to the nearest whole percent.
func CompletionPercentage(accepted, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(accepted) / float64(total) * 100))
}
