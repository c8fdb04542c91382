package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `p.id, p.user_id, p.date_of_birth, p.gender, p.marital_status, p.nationality,
	p.personal_email, p.emergency_contact_name, p.emergency_contact_phone, p.emergency_contact_relationship,
	p.address_line_1, p.address_line_2, p.city, p.state, p.postal_code, p.country,
	p.designation, p.department, p.date_of_joining, p.employment_status, p.manager_id,
	p.salary, p.salary_currency,
	p.annual_balance, p.sick_balance, p.maternity_balance, p.paternity_balance,
	p.emergency_balance, p.compensatory_balance,
	p.is_active, p.created_at, p.updated_at,
	u.full_name, m.full_name AS manager_name`

const profileJoins = `
	FROM employee_profiles p
	JOIN users u ON p.user_id = u.id
	LEFT JOIN users m ON p.manager_id = m.id`

func scanProfile(row pgx.Row) (employee.Profile, error) {
	var p employee.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.DateOfBirth,
		&p.Gender,
		&p.MaritalStatus,
		&p.Nationality,
		&p.PersonalEmail,
		&p.EmergencyContactName,
		&p.EmergencyContactPhone,
		&p.EmergencyContactRelationship,
		&p.AddressLine1,
		&p.AddressLine2,
		&p.City,
		&p.State,
		&p.PostalCode,
		&p.Country,
		&p.Designation,
		&p.Department,
		&p.DateOfJoining,
		&p.EmploymentStatus,
		&p.ManagerID,
		&p.Salary,
		&p.SalaryCurrency,
		&p.Balances.Annual,
		&p.Balances.Sick,
		&p.Balances.Maternity,
		&p.Balances.Paternity,
		&p.Balances.Emergency,
		&p.Balances.Compensatory,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.FullName,
		&p.ManagerName,
	)
	return p, err
}

// Create implements employee.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, profile employee.Profile) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_profiles (
			id, user_id, designation, department, date_of_joining, employment_status, manager_id,
			salary, salary_currency,
			annual_balance, sick_balance, maternity_balance, paternity_balance,
			emergency_balance, compensatory_balance, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`

	id := uuid.New().String()
	var createdID string
	err := q.QueryRow(ctx, query,
		id,
		profile.UserID,
		profile.Designation,
		profile.Department,
		profile.DateOfJoining,
		profile.EmploymentStatus,
		profile.ManagerID,
		profile.Salary,
		profile.SalaryCurrency,
		profile.Balances.Annual,
		profile.Balances.Sick,
		profile.Balances.Maternity,
		profile.Balances.Paternity,
		profile.Balances.Emergency,
		profile.Balances.Compensatory,
		profile.IsActive,
	).Scan(&createdID)
	if err != nil {
		return employee.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements employee.ProfileRepository.
func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + profileJoins + ` WHERE p.id = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return p, nil
}

// GetByUserID implements employee.ProfileRepository.
func (r *profileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + profileJoins + ` WHERE p.user_id = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}
	return p, nil
}

// Update implements employee.ProfileRepository. Only non-nil fields are written.
func (r *profileRepositoryImpl) Update(ctx context.Context, req employee.UpdateProfileRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.PersonalEmail != nil {
		addSet("personal_email", *req.PersonalEmail)
	}
	if req.ParsedDateOfBirth != nil {
		addSet("date_of_birth", *req.ParsedDateOfBirth)
	}
	if req.Gender != nil {
		addSet("gender", *req.Gender)
	}
	if req.MaritalStatus != nil {
		addSet("marital_status", *req.MaritalStatus)
	}
	if req.Nationality != nil {
		addSet("nationality", *req.Nationality)
	}
	if req.EmergencyContactName != nil {
		addSet("emergency_contact_name", *req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		addSet("emergency_contact_phone", *req.EmergencyContactPhone)
	}
	if req.EmergencyContactRelationship != nil {
		addSet("emergency_contact_relationship", *req.EmergencyContactRelationship)
	}
	if req.AddressLine1 != nil {
		addSet("address_line_1", *req.AddressLine1)
	}
	if req.AddressLine2 != nil {
		addSet("address_line_2", *req.AddressLine2)
	}
	if req.City != nil {
		addSet("city", *req.City)
	}
	if req.State != nil {
		addSet("state", *req.State)
	}
	if req.PostalCode != nil {
		addSet("postal_code", *req.PostalCode)
	}
	if req.Country != nil {
		addSet("country", *req.Country)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE employee_profiles SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ProfileID)

	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return employee.ErrProfileNotFound
	}
	return nil
}

// SetManager implements employee.ProfileRepository.
func (r *profileRepositoryImpl) SetManager(ctx context.Context, profileID string, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employee_profiles SET manager_id = $1, updated_at = NOW() WHERE id = $2`

	result, err := q.Exec(ctx, query, managerID, profileID)
	if err != nil {
		return fmt.Errorf("failed to set manager: %w", err)
	}
	if result.RowsAffected() == 0 {
		return employee.ErrProfileNotFound
	}
	return nil
}

// Search implements employee.ProfileRepository.
func (r *profileRepositoryImpl) Search(ctx context.Context, filter employee.DirectoryFilter) ([]employee.Profile, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.is_active = true"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(u.full_name ILIKE $%d OR p.designation ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("p.department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", profileJoins, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
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
		SELECT %s %s
		WHERE %s
		ORDER BY u.full_name ASC
		LIMIT $%d OFFSET $%d
	`, profileColumns, profileJoins, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer rows.Close()

	var profiles []employee.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// ListByManager implements employee.ProfileRepository.
func (r *profileRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + profileJoins + `
		WHERE p.manager_id = $1 AND p.is_active = true
		ORDER BY u.full_name ASC`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles by manager: %w", err)
	}
	defer rows.Close()

	var profiles []employee.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}
