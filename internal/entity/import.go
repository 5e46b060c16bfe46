package entity

import (
	"database/sql"
	"time"
)

// Account is a seller account whose report is imported on every run.
type Account struct {
	Name      string `mapstructure:"name"`
	ReportURL string `mapstructure:"report_url"`
}

type ImportStatusType string

const (
	ImportStatusSuccess ImportStatusType = "success"
	ImportStatusError   ImportStatusType = "error"
)

// ImportStatus is the last recorded outcome of an account import.
type ImportStatus struct {
	Account      string           `db:"account"`
	RunID        string           `db:"run_id"`
	Status       ImportStatusType `db:"status"`
	RowsDeleted  int64            `db:"rows_deleted"`
	RowsUpserted int64            `db:"rows_upserted"`
	ErrorMessage sql.NullString   `db:"error_message"`
	FinishedAt   time.Time        `db:"finished_at"`
}

// AccountImport is the step log of one account within an import run.
type AccountImport struct {
	Account        string         `json:"account"`
	Parsed         int            `json:"parsed"`
	Skipped        int            `json:"skipped"`
	MissingColumns []string       `json:"missingColumns,omitempty"`
	InWindow       int            `json:"inWindow"`
	Fresh          int            `json:"fresh"`
	Deleted        int64          `json:"deleted"`
	Upserted       int64          `json:"upserted"`
	Duplicates     []DuplicateKey `json:"duplicates,omitempty"`
	Steps          []string       `json:"steps"`
	Error          string         `json:"error,omitempty"`
}

// ImportSummary is the structured report of one import run, produced on
// success and on failure.
type ImportSummary struct {
	OK            bool            `json:"ok"`
	RunID         string          `json:"runId"`
	StartedAt     time.Time       `json:"startedAt"`
	FinishedAt    time.Time       `json:"finishedAt"`
	ReplaceRange  DateRange       `json:"sevenDayRange"`
	WindowRange   DateRange       `json:"thirtyDayRange"`
	FailedAccount string          `json:"failedAccount,omitempty"`
	Accounts      []AccountImport `json:"summary"`
}
