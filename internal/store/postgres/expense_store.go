package postgres

import (
	"context"
	"fmt"

	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/google/uuid"
)

// ExpenseStore implements store.ExpenseStore using PostgreSQL.
type ExpenseStore struct {
	db Querier
}

var _ store.ExpenseStore = (*ExpenseStore)(nil)

// NewExpenseStore creates a new ExpenseStore instance.
func NewExpenseStore(db Querier) *ExpenseStore {
	return &ExpenseStore{db: db}
}

// CreateExpense appends one expense to the trip's ledger.
func (s *ExpenseStore) CreateExpense(ctx context.Context, params types.CreateExpenseParams) (*types.Expense, error) {
	query := `
		INSERT INTO expenses (id, trip_id, name, amount, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	expense := &types.Expense{
		ID:       uuid.NewString(),
		TripID:   params.TripID,
		Name:     params.Name,
		Amount:   params.Amount,
		Category: params.Category,
	}

	err := s.db.QueryRow(ctx, query,
		expense.ID,
		expense.TripID,
		expense.Name,
		expense.Amount,
		expense.Category,
	).Scan(&expense.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// ListExpenses returns the trip's ledger, newest first.
func (s *ExpenseStore) ListExpenses(ctx context.Context, tripID string) ([]types.Expense, error) {
	query := `
		SELECT id, trip_id, name, amount, category, created_at
		FROM expenses
		WHERE trip_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []types.Expense
	for rows.Next() {
		var e types.Expense
		if err := rows.Scan(&e.ID, &e.TripID, &e.Name, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes one expense. The trip ID guards against deleting
// another trip's entry by ID alone.
func (s *ExpenseStore) DeleteExpense(ctx context.Context, id string, tripID string) error {
	query := `
		DELETE FROM expenses
		WHERE id = $1 AND trip_id = $2`

	tag, err := s.db.Exec(ctx, query, id, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
