package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, email, full_name, password_hash, role, is_superuser,
	department, employee_code, phone_number, hire_date, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.Role,
		&u.IsSuperuser,
		&u.Department,
		&u.EmployeeCode,
		&u.PhoneNumber,
		&u.HireDate,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, username, email, full_name, password_hash, role, is_superuser,
			department, employee_code, phone_number, hire_date, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		uuid.New().String(),
		newUser.Username,
		newUser.Email,
		newUser.FullName,
		newUser.PasswordHash,
		newUser.Role,
		newUser.IsSuperuser,
		newUser.Department,
		newUser.EmployeeCode,
		newUser.PhoneNumber,
		newUser.HireDate,
		newUser.IsActive,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.User{}, user.ErrEmailExists
			}
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(username ILIKE $%d OR full_name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Role != nil {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *filter.Role)
		argIdx++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, userColumns, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateRole implements user.UserRepository.
func (r *userRepositoryImpl) UpdateRole(ctx context.Context, id string, role user.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`

	result, err := q.Exec(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	result, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`

	result, err := q.Exec(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
