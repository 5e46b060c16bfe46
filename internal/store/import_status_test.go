package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jekabolt/sellerboard-kpi/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportStatusUpsert(t *testing.T) {
	db := newTestDB(t)
	is := db.ImportStatus()
	ctx := context.Background()
	finished := time.Now().UTC().Truncate(time.Second)

	err := is.UpdateImportStatus(ctx, &entity.ImportStatus{
		Account:      "main",
		RunID:        "7a1f6a54-4d1c-4a4b-9d57-0f8e1c1c2a10",
		Status:       entity.ImportStatusError,
		ErrorMessage: sql.NullString{String: "fetch failed", Valid: true},
		FinishedAt:   finished,
	})
	require.NoError(t, err)

	err = is.UpdateImportStatus(ctx, &entity.ImportStatus{
		Account:      "main",
		RunID:        "0c3d3f2e-8f59-4b7c-9f0e-4a8f2f8b8d11",
		Status:       entity.ImportStatusSuccess,
		RowsDeleted:  12,
		RowsUpserted: 14,
		FinishedAt:   finished,
	})
	require.NoError(t, err)

	statuses, err := is.GetImportStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	st := statuses[0]
	assert.Equal(t, entity.ImportStatusSuccess, st.Status)
	assert.Equal(t, "0c3d3f2e-8f59-4b7c-9f0e-4a8f2f8b8d11", st.RunID)
	assert.EqualValues(t, 14, st.RowsUpserted)
	assert.False(t, st.ErrorMessage.Valid)
	assert.WithinDuration(t, finished, st.FinishedAt, time.Second)
}
