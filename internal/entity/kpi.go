package entity

import (
	"github.com/shopspring/decimal"
)

// Totals holds plain sums over a set of records.
type Totals struct {
	Revenue     decimal.Decimal
	Units       decimal.Decimal
	Refunds     decimal.Decimal
	RefundValue decimal.Decimal
	PPCSpend    decimal.Decimal
	NetProfit   decimal.Decimal
}

// KpiSet is Totals plus the ratios derived from them.
type KpiSet struct {
	Totals
	TACOS  decimal.Decimal
	Margin decimal.Decimal
}

// KpiPoint is one bucket of a daily or weekly series. For weekly series Date
// is the Monday of the ISO week.
type KpiPoint struct {
	Date string
	KpiSet
}

type KpiGranularity string

const (
	KpiGranularityDaily  KpiGranularity = "daily"
	KpiGranularityWeekly KpiGranularity = "weekly"
)

// AccountKpi is the account level of the account -> marketplace -> product breakdown.
type AccountKpi struct {
	Account      string
	Kpi          KpiSet
	Marketplaces []MarketplaceKpi
}

type MarketplaceKpi struct {
	Marketplace string
	Kpi         KpiSet
	Products    []ProductKpi
}

type ProductKpi struct {
	ASIN string
	SKU  string
	Name string
	Kpi  KpiSet
}

// RecentTiles are the dashboard headline figures relative to a reference day.
type RecentTiles struct {
	Yesterday          KpiPoint
	DayBeforeYesterday KpiPoint
	ThreeDaysAgo       KpiPoint
	MonthToDate        KpiSet
	MonthToDateRange   DateRange
}

// KpiSummary is the aggregate of a date range with its account breakdown.
type KpiSummary struct {
	Range    DateRange
	Total    KpiSet
	Accounts []AccountKpi
}
