package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroshis/skillgraph/store"
)

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *PostgresCheckpointStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgresCheckpointStoreWithPool(mock, "run_checkpoints")
}

func TestPostgresCheckpointStore_Save(t *testing.T) {
	mock, s := newMockStore(t)

	cp := &store.Checkpoint{
		ID:        "cp-1",
		RunID:     "run-1",
		NodeName:  "jd_extraction",
		State:     map[string]any{"required_topics": []any{"kubernetes"}},
		Timestamp: time.Now(),
		Version:   1,
	}
	stateJSON, _ := json.Marshal(cp.State)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO run_checkpoints")).
		WithArgs(cp.ID, cp.RunID, cp.NodeName, stateJSON, cp.Timestamp, cp.Version).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.Save(context.Background(), cp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCheckpointStore_Load(t *testing.T) {
	mock, s := newMockStore(t)

	timestamp := time.Now()
	stateJSON, _ := json.Marshal(map[string]any{"foo": "bar"})

	rows := pgxmock.NewRows([]string{"id", "run_id", "node_name", "state", "timestamp", "version"}).
		AddRow("cp-1", "run-1", "node-a", stateJSON, timestamp, 1)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, run_id, node_name, state, timestamp, version")).
		WithArgs("cp-1").
		WillReturnRows(rows)

	loaded, err := s.Load(context.Background(), "cp-1")
	require.NoError(t, err)
	assert.Equal(t, "cp-1", loaded.ID)
	assert.Equal(t, "run-1", loaded.RunID)
	assert.Equal(t, "node-a", loaded.NodeName)
	assert.Equal(t, 1, loaded.Version)
	assert.Equal(t, "bar", loaded.State["foo"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCheckpointStore_LoadMissing(t *testing.T) {
	mock, s := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, run_id, node_name, state, timestamp, version")).
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCheckpointStore_List(t *testing.T) {
	mock, s := newMockStore(t)

	stateJSON, _ := json.Marshal(map[string]any{})
	rows := pgxmock.NewRows([]string{"id", "run_id", "node_name", "state", "timestamp", "version"}).
		AddRow("cp-1", "run-1", "a", stateJSON, time.Now(), 1).
		AddRow("cp-2", "run-1", "b", stateJSON, time.Now(), 2)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, run_id, node_name, state, timestamp, version")).
		WithArgs("run-1").
		WillReturnRows(rows)

	list, err := s.List(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].NodeName)
	assert.Equal(t, "b", list[1].NodeName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCheckpointStore_DeleteAndClear(t *testing.T) {
	mock, s := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM run_checkpoints WHERE id = $1")).
		WithArgs("cp-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, s.Delete(context.Background(), "cp-1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM run_checkpoints WHERE run_id = $1")).
		WithArgs("run-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	require.NoError(t, s.Clear(context.Background(), "run-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCheckpointStore_SaveError(t *testing.T) {
	mock, s := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO run_checkpoints")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := s.Save(context.Background(), &store.Checkpoint{ID: "cp-1", State: map[string]any{}})
	assert.ErrorContains(t, err, "failed to save checkpoint")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCheckpointStore_InitSchema(t *testing.T) {
	mock, s := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS run_checkpoints")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.InitSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
