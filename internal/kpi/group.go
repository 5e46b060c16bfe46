package kpi

import (
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

// Group is a partition of records sharing one key, with KPIs derived from
// the partition's own totals.
type Group[K comparable] struct {
	Key     K
	Records []entity.Record
	Kpi     entity.KpiSet
}

// GroupBy partitions records by key. Groups keep the order in which their
// key was first seen.
func GroupBy[K comparable](records []entity.Record, key func(*entity.Record) K) []Group[K] {
	idx := make(map[K]int)
	var groups []Group[K]
	for i := range records {
		k := key(&records[i])
		j, ok := idx[k]
		if !ok {
			j = len(groups)
			idx[k] = j
			groups = append(groups, Group[K]{Key: k})
		}
		groups[j].Records = append(groups[j].Records, records[i])
	}
	for i := range groups {
		groups[i].Kpi = Aggregate(groups[i].Records)
	}
	return groups
}

// KpiBy is GroupBy reduced to a key -> KPI lookup.
func KpiBy[K comparable](records []entity.Record, key func(*entity.Record) K) map[K]entity.KpiSet {
	groups := GroupBy(records, key)
	m := make(map[K]entity.KpiSet, len(groups))
	for _, g := range groups {
		m[g.Key] = g.Kpi
	}
	return m
}

type productKey struct {
	ASIN string
	SKU  string
}

// GroupByAccount builds the account -> marketplace -> product breakdown.
// Every level derives its ratios from its own totals.
func GroupByAccount(records []entity.Record) []entity.AccountKpi {
	accounts := GroupBy(records, func(r *entity.Record) string { return r.Account })
	out := make([]entity.AccountKpi, 0, len(accounts))
	for _, a := range accounts {
		ak := entity.AccountKpi{
			Account: a.Key,
			Kpi:     a.Kpi,
		}
		for _, m := range GroupBy(a.Records, func(r *entity.Record) string { return r.Marketplace }) {
			mk := entity.MarketplaceKpi{
				Marketplace: m.Key,
				Kpi:         m.Kpi,
			}
			for _, p := range GroupBy(m.Records, func(r *entity.Record) productKey { return productKey{r.ASIN, r.SKU} }) {
				mk.Products = append(mk.Products, entity.ProductKpi{
					ASIN: p.Key.ASIN,
					SKU:  p.Key.SKU,
					Name: productName(p.Records),
					Kpi:  p.Kpi,
				})
			}
			ak.Marketplaces = append(ak.Marketplaces, mk)
		}
		out = append(out, ak)
	}
	return out
}

func productName(records []entity.Record) string {
	for i := range records {
		if records[i].Name != "" {
			return records[i].Name
		}
	}
	return ""
}
