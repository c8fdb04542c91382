package postgresql

import (
	"context"
	"fmt"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/domain/leave"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceStoreImpl struct {
	db *database.DB
}

func NewLeaveBalanceStore(db *database.DB) leave.BalanceStore {
	return &leaveBalanceStoreImpl{db: db}
}

// balanceColumn maps a tracked leave type to its counter column on
// employee_profiles. Column names come from a fixed table, never from input.
func balanceColumn(t leave.Type) (string, error) {
	switch t {
	case leave.TypeAnnual:
		return "annual_balance", nil
	case leave.TypeSick:
		return "sick_balance", nil
	case leave.TypeMaternity:
		return "maternity_balance", nil
	case leave.TypePaternity:
		return "paternity_balance", nil
	case leave.TypeEmergency:
		return "emergency_balance", nil
	case leave.TypeCompensatory:
		return "compensatory_balance", nil
	}
	return "", fmt.Errorf("leave type %q has no balance counter", t)
}

// Balance implements leave.BalanceStore.
func (s *leaveBalanceStoreImpl) Balance(ctx context.Context, employeeID string, t leave.Type) (int, error) {
	column, err := balanceColumn(t)
	if err != nil {
		return 0, err
	}
	q := GetQuerier(ctx, s.db)

	query := fmt.Sprintf("SELECT %s FROM employee_profiles WHERE user_id = $1", column)

	var balance int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&balance); err != nil {
		if err == pgx.ErrNoRows {
			return 0, employee.ErrProfileNotFound
		}
		return 0, fmt.Errorf("failed to read leave balance: %w", err)
	}
	return balance, nil
}

// Debit implements leave.BalanceStore. The WHERE guard keeps the counter
// non-negative under concurrent approvals: the row only updates when enough
// days remain, and a zero row count means another approval got there first.
func (s *leaveBalanceStoreImpl) Debit(ctx context.Context, employeeID string, t leave.Type, days int) error {
	column, err := balanceColumn(t)
	if err != nil {
		return err
	}
	q := GetQuerier(ctx, s.db)

	query := fmt.Sprintf(`
		UPDATE employee_profiles
		SET %s = %s - $1, updated_at = NOW()
		WHERE user_id = $2 AND %s >= $1
	`, column, column, column)

	result, err := q.Exec(ctx, query, days, employeeID)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance: %w", err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}
	return nil
}
