package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/sellerboard-kpi/internal/dependency"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

type importStatusStore struct {
	*MYSQLStore
}

// ImportStatus returns an object implementing the ImportStatus interface.
func (ms *MYSQLStore) ImportStatus() dependency.ImportStatus {
	return &importStatusStore{
		MYSQLStore: ms,
	}
}

// UpdateImportStatus records the outcome of an account import, replacing
// the previous one.
func (ms *importStatusStore) UpdateImportStatus(ctx context.Context, st *entity.ImportStatus) error {
	query := `
		INSERT INTO import_status
			(account, run_id, status, rows_deleted, rows_upserted, error_message, finished_at)
		VALUES
			(:account, :runId, :status, :rowsDeleted, :rowsUpserted, :errorMessage, :finishedAt)
		ON DUPLICATE KEY UPDATE
			run_id = VALUES(run_id),
			status = VALUES(status),
			rows_deleted = VALUES(rows_deleted),
			rows_upserted = VALUES(rows_upserted),
			error_message = VALUES(error_message),
			finished_at = VALUES(finished_at),
			updated_at = CURRENT_TIMESTAMP
	`
	err := ExecNamed(ctx, ms.db, query, map[string]any{
		"account":      st.Account,
		"runId":        st.RunID,
		"status":       st.Status,
		"rowsDeleted":  st.RowsDeleted,
		"rowsUpserted": st.RowsUpserted,
		"errorMessage": st.ErrorMessage,
		"finishedAt":   st.FinishedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to update import status for %s: %w", st.Account, err)
	}
	return nil
}

// GetImportStatuses returns the last import outcome of every account.
func (ms *importStatusStore) GetImportStatuses(ctx context.Context) ([]entity.ImportStatus, error) {
	query := `
		SELECT account, run_id, status, rows_deleted, rows_upserted, error_message, finished_at
		FROM import_status
		ORDER BY account
	`
	statuses, err := QueryListNamed[entity.ImportStatus](ctx, ms.db, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get import statuses: %w", err)
	}
	return statuses, nil
}
