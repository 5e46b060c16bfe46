// Package kpi turns records into totals, derived ratios and calendar series.
// Everything here is pure: no I/O, no clock, no shared state.
package kpi

import (
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/shopspring/decimal"
)

// add accumulates r into t. Sponsored-channel sales and units are reported
// separately by Sellerboard and are not part of revenue or units.
func add(t *entity.Totals, r *entity.Record) {
	t.Revenue = t.Revenue.Add(r.SalesOrganic).Add(r.SalesPPC)
	t.Units = t.Units.Add(r.UnitsOrganic).Add(r.UnitsPPC)
	t.Refunds = t.Refunds.Add(r.Refunds)
	t.RefundValue = t.RefundValue.Add(r.ValueOfReturnedItems)
	// ads spend is exported as a negative number
	t.PPCSpend = t.PPCSpend.Add(r.AdsSpend.Abs())
	t.NetProfit = t.NetProfit.Add(r.NetProfit)
}

// Sum returns the plain totals of records.
func Sum(records []entity.Record) entity.Totals {
	t := zeroTotals()
	for i := range records {
		add(&t, &records[i])
	}
	return t
}

// Derive computes TACOS and margin from t. Both are zero unless revenue is
// positive.
func Derive(t entity.Totals) entity.KpiSet {
	return entity.KpiSet{
		Totals: t,
		TACOS:  ratio(t.PPCSpend, t.Revenue),
		Margin: ratio(t.NetProfit, t.Revenue),
	}
}

// Aggregate returns the KPIs of records. An empty input yields all zeros.
func Aggregate(records []entity.Record) entity.KpiSet {
	return Derive(Sum(records))
}

func ratio(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}

func zeroTotals() entity.Totals {
	return entity.Totals{
		Revenue:     decimal.Zero,
		Units:       decimal.Zero,
		Refunds:     decimal.Zero,
		RefundValue: decimal.Zero,
		PPCSpend:    decimal.Zero,
		NetProfit:   decimal.Zero,
	}
}
