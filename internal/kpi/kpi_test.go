package kpi

import (
	"testing"

	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func record(date string, revenue, netProfit, adsSpend string) entity.Record {
	return entity.Record{
		Account:      "LevCom",
		Date:         date,
		Marketplace:  "Amazon.de",
		ASIN:         "B01",
		SalesOrganic: d(revenue),
		NetProfit:    d(netProfit),
		AdsSpend:     d(adsSpend),
	}
}

func TestAggregateEmpty(t *testing.T) {
	k := Aggregate(nil)
	for _, v := range []decimal.Decimal{k.Revenue, k.Units, k.Refunds, k.RefundValue, k.PPCSpend, k.NetProfit, k.TACOS, k.Margin} {
		assert.True(t, v.IsZero())
	}
}

func TestAggregateRevenueComposition(t *testing.T) {
	r := entity.Record{
		SalesOrganic:           d("100"),
		SalesPPC:               d("50"),
		SalesSponsoredProducts: d("9999"),
		SalesSponsoredDisplay:  d("8888"),
		UnitsOrganic:           d("3"),
		UnitsPPC:               d("2"),
		UnitsSponsoredProducts: d("77"),
		Refunds:                d("1"),
		ValueOfReturnedItems:   d("-12.5"),
		AdsSpend:               d("-30"),
		NetProfit:              d("45"),
	}
	k := Aggregate([]entity.Record{r})
	assertDec(t, "150", k.Revenue)
	assertDec(t, "5", k.Units)
	assertDec(t, "1", k.Refunds)
	assertDec(t, "-12.5", k.RefundValue)
	assertDec(t, "30", k.PPCSpend)
	assertDec(t, "45", k.NetProfit)
	assertDec(t, "0.2", k.TACOS)
	assertDec(t, "0.3", k.Margin)
}

func TestDeriveRatiosFromSums(t *testing.T) {
	// per-row margins are 0.5 and 0.1; the combined margin is 60/200, not their mean
	records := []entity.Record{
		record("2025-10-01", "100", "50", "-10"),
		record("2025-10-02", "100", "10", "0"),
	}
	k := Aggregate(records)
	assertDec(t, "0.3", k.Margin)
	assertDec(t, "0.05", k.TACOS)
}

func TestDeriveZeroRevenue(t *testing.T) {
	k := Aggregate([]entity.Record{record("2025-10-01", "0", "-5", "-10")})
	assert.True(t, k.TACOS.IsZero())
	assert.True(t, k.Margin.IsZero())
	assertDec(t, "10", k.PPCSpend)

	k = Aggregate([]entity.Record{record("2025-10-01", "-20", "-5", "-10")})
	assert.True(t, k.TACOS.IsZero())
	assert.True(t, k.Margin.IsZero())
}

func TestGroupBy(t *testing.T) {
	records := []entity.Record{
		record("2025-10-02", "10", "1", "0"),
		record("2025-10-01", "20", "2", "0"),
		record("2025-10-02", "30", "3", "0"),
	}
	groups := GroupBy(records, func(r *entity.Record) string { return r.Date })
	require.Len(t, groups, 2)
	assert.Equal(t, "2025-10-02", groups[0].Key)
	assert.Len(t, groups[0].Records, 2)
	assertDec(t, "40", groups[0].Kpi.Revenue)
	assert.Equal(t, "2025-10-01", groups[1].Key)
	assertDec(t, "20", groups[1].Kpi.Revenue)

	m := KpiBy(records, func(r *entity.Record) string { return r.Date })
	assertDec(t, "40", m["2025-10-02"].Revenue)
	assertDec(t, "0.1", m["2025-10-02"].Margin)
}

func TestGroupByAccount(t *testing.T) {
	mk := func(account, marketplace, asin, sku, name, revenue, profit string) entity.Record {
		return entity.Record{
			Account: account, Date: "2025-10-01", Marketplace: marketplace, ASIN: asin, SKU: sku, Name: name,
			SalesOrganic: d(revenue), NetProfit: d(profit),
		}
	}
	records := []entity.Record{
		mk("LevCom", "Amazon.de", "B01", "S1", "", "100", "50"),
		mk("LevCom", "Amazon.de", "B01", "S1", "Brush", "100", "0"),
		mk("LevCom", "Amazon.de", "B01", "S2", "Brush XL", "50", "5"),
		mk("LevCom", "Amazon.fr", "B01", "S1", "Brush", "200", "20"),
		mk("DOG1", "Amazon.de", "B09", "", "Leash", "10", "-1"),
	}

	accounts := GroupByAccount(records)
	require.Len(t, accounts, 2)

	lev := accounts[0]
	assert.Equal(t, "LevCom", lev.Account)
	assertDec(t, "450", lev.Kpi.Revenue)
	assertDec(t, "75", lev.Kpi.NetProfit)
	require.Len(t, lev.Marketplaces, 2)

	de := lev.Marketplaces[0]
	assert.Equal(t, "Amazon.de", de.Marketplace)
	assertDec(t, "250", de.Kpi.Revenue)
	assertDec(t, "0.22", de.Kpi.Margin)
	require.Len(t, de.Products, 2)
	assert.Equal(t, "S1", de.Products[0].SKU)
	assert.Equal(t, "Brush", de.Products[0].Name)
	assertDec(t, "0.25", de.Products[0].Kpi.Margin)
	assert.Equal(t, "S2", de.Products[1].SKU)
	assertDec(t, "0.1", de.Products[1].Kpi.Margin)

	fr := lev.Marketplaces[1]
	assertDec(t, "0.1", fr.Kpi.Margin)

	dog := accounts[1]
	assert.Equal(t, "DOG1", dog.Account)
	assertDec(t, "-0.1", dog.Kpi.Margin)
}

func TestIdempotent(t *testing.T) {
	records := []entity.Record{
		record("2025-10-01", "10.1", "1", "-0.5"),
		record("2025-10-03", "3.3", "1", "-0.5"),
	}
	assert.Equal(t, Aggregate(records), Aggregate(records))
	assert.Equal(t, BuildDailySeries(records, 7, "2025-10-05"), BuildDailySeries(records, 7, "2025-10-05"))
	assert.Equal(t, GroupByAccount(records), GroupByAccount(records))
}
