package dto

import (
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/shopspring/decimal"
)

type Kpi struct {
	Revenue     float64 `json:"revenue"`
	Units       float64 `json:"units"`
	Refunds     float64 `json:"refunds"`
	RefundValue float64 `json:"refundValue"`
	PPCSpend    float64 `json:"ppcSpend"`
	NetProfit   float64 `json:"netProfit"`
	TACOS       float64 `json:"tacos"`
	Margin      float64 `json:"margin"`
}

type KpiPoint struct {
	Date string `json:"date"`
	Kpi
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ProductKpi struct {
	ASIN string `json:"asin"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Kpi  Kpi    `json:"kpi"`
}

type MarketplaceKpi struct {
	Marketplace string       `json:"marketplace"`
	Kpi         Kpi          `json:"kpi"`
	Products    []ProductKpi `json:"products"`
}

type AccountKpi struct {
	Account      string           `json:"account"`
	Kpi          Kpi              `json:"kpi"`
	Marketplaces []MarketplaceKpi `json:"marketplaces"`
}

type KpiSummary struct {
	Range    DateRange    `json:"range"`
	Total    Kpi          `json:"total"`
	Accounts []AccountKpi `json:"accounts"`
}

type KpiSeries struct {
	Account     string     `json:"account,omitempty"`
	Granularity string     `json:"granularity"`
	Points      []KpiPoint `json:"points"`
}

type RecentTiles struct {
	Yesterday          KpiPoint  `json:"yesterday"`
	DayBeforeYesterday KpiPoint  `json:"dayBeforeYesterday"`
	ThreeDaysAgo       KpiPoint  `json:"threeDaysAgo"`
	MonthToDate        Kpi       `json:"monthToDate"`
	MonthToDateRange   DateRange `json:"monthToDateRange"`
}

func f(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func ConvertKpiSet(k entity.KpiSet) Kpi {
	return Kpi{
		Revenue:     f(k.Revenue),
		Units:       f(k.Units),
		Refunds:     f(k.Refunds),
		RefundValue: f(k.RefundValue),
		PPCSpend:    f(k.PPCSpend),
		NetProfit:   f(k.NetProfit),
		TACOS:       f(k.TACOS),
		Margin:      f(k.Margin),
	}
}

func ConvertKpiPoint(p entity.KpiPoint) KpiPoint {
	return KpiPoint{Date: p.Date, Kpi: ConvertKpiSet(p.KpiSet)}
}

func ConvertKpiPoints(points []entity.KpiPoint) []KpiPoint {
	out := make([]KpiPoint, 0, len(points))
	for _, p := range points {
		out = append(out, ConvertKpiPoint(p))
	}
	return out
}

func ConvertDateRange(dr entity.DateRange) DateRange {
	return DateRange{Start: dr.Start, End: dr.End}
}

func ConvertAccountKpis(accounts []entity.AccountKpi) []AccountKpi {
	out := make([]AccountKpi, 0, len(accounts))
	for _, a := range accounts {
		mps := make([]MarketplaceKpi, 0, len(a.Marketplaces))
		for _, m := range a.Marketplaces {
			products := make([]ProductKpi, 0, len(m.Products))
			for _, p := range m.Products {
				products = append(products, ProductKpi{
					ASIN: p.ASIN,
					SKU:  p.SKU,
					Name: p.Name,
					Kpi:  ConvertKpiSet(p.Kpi),
				})
			}
			mps = append(mps, MarketplaceKpi{
				Marketplace: m.Marketplace,
				Kpi:         ConvertKpiSet(m.Kpi),
				Products:    products,
			})
		}
		out = append(out, AccountKpi{
			Account:      a.Account,
			Kpi:          ConvertKpiSet(a.Kpi),
			Marketplaces: mps,
		})
	}
	return out
}

func ConvertKpiSummary(s entity.KpiSummary) KpiSummary {
	return KpiSummary{
		Range:    ConvertDateRange(s.Range),
		Total:    ConvertKpiSet(s.Total),
		Accounts: ConvertAccountKpis(s.Accounts),
	}
}

func ConvertRecentTiles(t entity.RecentTiles) RecentTiles {
	return RecentTiles{
		Yesterday:          ConvertKpiPoint(t.Yesterday),
		DayBeforeYesterday: ConvertKpiPoint(t.DayBeforeYesterday),
		ThreeDaysAgo:       ConvertKpiPoint(t.ThreeDaysAgo),
		MonthToDate:        ConvertKpiSet(t.MonthToDate),
		MonthToDateRange:   ConvertDateRange(t.MonthToDateRange),
	}
}
