package entity

import "database/sql"

// PerformanceStats summarises what is stored for one account.
type PerformanceStats struct {
	Account   string         `db:"account"`
	Records   int64          `db:"records"`
	FirstDate sql.NullString `db:"first_date"`
	LastDate  sql.NullString `db:"last_date"`
}

// StoreStatus is what the store holds and how the last imports went.
type StoreStatus struct {
	Performance []PerformanceStats
	Imports     []ImportStatus
}
