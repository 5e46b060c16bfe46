package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jekabolt/sellerboard-kpi/internal/civil"
	"github.com/jekabolt/sellerboard-kpi/internal/dependency"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	gerr "github.com/jekabolt/sellerboard-kpi/internal/errors"
	"github.com/jekabolt/sellerboard-kpi/internal/kpi"
	"github.com/jekabolt/sellerboard-kpi/internal/sellerboard"
)

// maxReportedDuplicates caps the duplicate details kept in a summary.
const maxReportedDuplicates = 5

type windows struct {
	window  entity.DateRange
	replace entity.DateRange
}

// RunAt imports every configured account, or only the named one, as of the
// civil date today. Accounts are processed in order and the first failing
// account stops the run. The summary is filled in on success and on failure.
func (im *Importer) RunAt(ctx context.Context, today, account string) (entity.ImportSummary, error) {
	summary := entity.ImportSummary{
		RunID:     uuid.NewString(),
		StartedAt: im.now().UTC(),
		Accounts:  []entity.AccountImport{},
	}
	if !im.running.TryLock() {
		return summary, gerr.ErrImportInProgress
	}
	defer im.running.Unlock()

	w, err := im.windows(today)
	if err != nil {
		return summary, err
	}
	summary.ReplaceRange = w.replace
	summary.WindowRange = w.window

	accounts, err := im.selectAccounts(account)
	if err != nil {
		return summary, err
	}

	slog.Default().InfoContext(ctx, "import started",
		slog.String("run_id", summary.RunID),
		slog.String("today", today),
		slog.Int("accounts", len(accounts)),
	)

	imported := 0
	defer func() {
		if imported > 0 && im.invalidator != nil {
			im.invalidator.Invalidate()
		}
	}()

	for _, a := range accounts {
		log := entity.AccountImport{Account: a.Name, Steps: []string{}}
		err := im.importAccount(ctx, a, w, &log)
		im.recordStatus(ctx, summary.RunID, &log, err)
		if err != nil {
			failed(&log, err)
			summary.Accounts = append(summary.Accounts, log)
			summary.FailedAccount = a.Name
			summary.FinishedAt = im.now().UTC()
			slog.Default().ErrorContext(ctx, "import failed",
				slog.String("run_id", summary.RunID),
				slog.String("account", a.Name),
				slog.String("err", err.Error()),
			)
			return summary, fmt.Errorf("import %s: %w", a.Name, err)
		}
		imported++
		summary.Accounts = append(summary.Accounts, log)
		slog.Default().InfoContext(ctx, "account imported",
			slog.String("run_id", summary.RunID),
			slog.String("account", a.Name),
			slog.Int64("deleted", log.Deleted),
			slog.Int64("upserted", log.Upserted),
		)
	}

	summary.OK = true
	summary.FinishedAt = im.now().UTC()
	slog.Default().InfoContext(ctx, "import finished",
		slog.String("run_id", summary.RunID),
		slog.Duration("took", summary.FinishedAt.Sub(summary.StartedAt)),
	)
	return summary, nil
}

func (im *Importer) windows(today string) (windows, error) {
	ws, we, err := civil.InclusiveRange(today, im.c.WindowDays)
	if err != nil {
		return windows{}, fmt.Errorf("window range: %w", err)
	}
	rs, re, err := civil.InclusiveRange(today, im.c.ReplaceDays)
	if err != nil {
		return windows{}, fmt.Errorf("replace range: %w", err)
	}
	return windows{
		window:  entity.DateRange{Start: ws, End: we},
		replace: entity.DateRange{Start: rs, End: re},
	}, nil
}

func (im *Importer) selectAccounts(name string) ([]entity.Account, error) {
	if name == "" {
		return im.c.Accounts, nil
	}
	for _, a := range im.c.Accounts {
		if a.Name == name {
			return []entity.Account{a}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", gerr.ErrUnknownAccount, name)
}

func (im *Importer) importAccount(ctx context.Context, a entity.Account, w windows, log *entity.AccountImport) error {
	if a.ReportURL == "" {
		return fmt.Errorf("no report url configured")
	}
	log.Steps = append(log.Steps, "report url configured")
	log.Steps = append(log.Steps, im.fetcher.CheckReachable(ctx, a.ReportURL)...)

	body, err := im.fetcher.Fetch(ctx, a.ReportURL)
	if err != nil {
		return fmt.Errorf("fetch report: %w", err)
	}

	res, err := sellerboard.ParseCSV(strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("parse report: %w", err)
	}
	log.Parsed = len(res.Records)
	log.Skipped = res.SkippedRows
	log.Steps = append(log.Steps, fmt.Sprintf("csv parsed: %d rows, %d skipped", log.Parsed, log.Skipped))

	if len(res.MissingColumns) > 0 {
		log.MissingColumns = res.MissingColumns
		log.Steps = append(log.Steps, "missing columns: "+strings.Join(res.MissingColumns, ", "))
		slog.Default().WarnContext(ctx, "report is missing columns",
			slog.String("account", a.Name),
			slog.String("columns", strings.Join(res.MissingColumns, ", ")),
		)
	}

	inWindow := kpi.FilterByDateRange(res.Records, w.window.Start, w.window.End)
	log.InWindow = len(inWindow)
	log.Steps = append(log.Steps, fmt.Sprintf("records in window %s..%s: %d", w.window.Start, w.window.End, log.InWindow))

	fresh := kpi.FilterByDateRange(inWindow, w.replace.Start, w.replace.End)
	for i := range fresh {
		fresh[i].Account = a.Name
	}
	log.Fresh = len(fresh)
	log.Steps = append(log.Steps, fmt.Sprintf("records to replace %s..%s: %d", w.replace.Start, w.replace.End, log.Fresh))

	if err := sellerboard.AssertUnique(fresh); err != nil {
		return err
	}
	log.Steps = append(log.Steps, "no duplicate keys")

	err = im.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		deleted, err := rep.Performance().DeleteRange(ctx, a.Name, w.replace.Start, w.replace.End)
		if err != nil {
			return err
		}
		upserted, err := rep.Performance().UpsertRecords(ctx, fresh, im.c.BatchSize)
		if err != nil {
			return err
		}
		log.Deleted = deleted
		log.Upserted = upserted
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace %s..%s: %w", w.replace.Start, w.replace.End, err)
	}
	log.Steps = append(log.Steps,
		fmt.Sprintf("deleted rows: %d", log.Deleted),
		fmt.Sprintf("upserted rows: %d", log.Upserted),
	)
	return nil
}

// failed adds the error and, for duplicate keys, the first few offending
// records to the account log.
func failed(log *entity.AccountImport, err error) {
	log.Error = err.Error()
	log.Steps = append(log.Steps, "error: "+err.Error())

	var dupErr *sellerboard.DuplicateKeyError
	if !errors.As(err, &dupErr) {
		return
	}
	dups := dupErr.Duplicates[:min(maxReportedDuplicates, len(dupErr.Duplicates))]
	log.Duplicates = dups
	details := make([]string, 0, len(dups))
	for _, d := range dups {
		details = append(details, fmt.Sprintf("ASIN=%s, Marketplace=%s, Date=%s, Index=%d", d.ASIN, d.Marketplace, d.Date, d.Index))
	}
	log.Steps = append(log.Steps, "duplicates: "+strings.Join(details, " | "))
}

func (im *Importer) recordStatus(ctx context.Context, runID string, log *entity.AccountImport, importErr error) {
	st := &entity.ImportStatus{
		Account:      log.Account,
		RunID:        runID,
		Status:       entity.ImportStatusSuccess,
		RowsDeleted:  log.Deleted,
		RowsUpserted: log.Upserted,
		FinishedAt:   im.now().UTC(),
	}
	if importErr != nil {
		st.Status = entity.ImportStatusError
		st.ErrorMessage = sql.NullString{String: importErr.Error(), Valid: true}
	}
	if err := im.repo.ImportStatus().UpdateImportStatus(ctx, st); err != nil {
		slog.Default().ErrorContext(ctx, "can't record import status",
			slog.String("account", log.Account),
			slog.String("err", err.Error()),
		)
	}
}
