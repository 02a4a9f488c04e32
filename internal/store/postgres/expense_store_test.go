package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpenseStoreMock(t *testing.T) (*ExpenseStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewExpenseStore(mock), mock
}

func TestExpenseStoreCreateExpense(t *testing.T) {
	s, mock := newExpenseStoreMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO expenses")).
		WithArgs(pgxmock.AnyArg(), testTripID, "lunch", 45.0, types.CategoryFood).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	expense, err := s.CreateExpense(context.Background(), types.CreateExpenseParams{
		TripID:   testTripID,
		Name:     "lunch",
		Amount:   45,
		Category: types.CategoryFood,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, testTripID, expense.TripID)
	assert.Equal(t, now, expense.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseStoreListExpenses(t *testing.T) {
	t.Run("returns ledger newest first", func(t *testing.T) {
		s, mock := newExpenseStoreMock(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(testTripID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "trip_id", "name", "amount", "category", "created_at"}).
				AddRow("e2", testTripID, "dinner", 85.0, types.CategoryFood, now).
				AddRow("e1", testTripID, "taxi", 30.0, types.CategoryTransport, now.Add(-time.Hour)))

		expenses, err := s.ListExpenses(context.Background(), testTripID)
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "dinner", expenses[0].Name)
		assert.Equal(t, types.CategoryTransport, expenses[1].Category)
	})

	t.Run("empty ledger", func(t *testing.T) {
		s, mock := newExpenseStoreMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(testTripID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "trip_id", "name", "amount", "category", "created_at"}))

		expenses, err := s.ListExpenses(context.Background(), testTripID)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})
}

func TestExpenseStoreDeleteExpense(t *testing.T) {
	t.Run("deletes within trip scope", func(t *testing.T) {
		s, mock := newExpenseStoreMock(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses")).
			WithArgs("e1", testTripID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, s.DeleteExpense(context.Background(), "e1", testTripID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown entry maps to ErrNotFound", func(t *testing.T) {
		s, mock := newExpenseStoreMock(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses")).
			WithArgs("e9", testTripID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := s.DeleteExpense(context.Background(), "e9", testTripID)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})
}
