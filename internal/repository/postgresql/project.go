package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Chaithanyaistharla/hrm/internal/domain/project"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `pr.id, pr.name, pr.description, pr.manager_id, pr.start_date, pr.end_date,
	pr.status, pr.created_at, pr.updated_at,
	m.full_name AS manager_name,
	(SELECT COUNT(*) FROM project_members pm WHERE pm.project_id = pr.id) AS member_count`

const projectJoins = `
	FROM projects pr
	LEFT JOIN users m ON pr.manager_id = m.id`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.ManagerID,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ManagerName,
		&p.MemberCount,
	)
	return p, err
}

// Create implements project.Repository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, description, manager_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	id := uuid.New().String()
	var createdID string
	err := q.QueryRow(ctx, query,
		id,
		p.Name,
		p.Description,
		p.ManagerID,
		p.StartDate,
		p.EndDate,
		p.Status,
	).Scan(&createdID)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements project.Repository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + projectJoins + ` WHERE pr.id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Update implements project.Repository. Only non-nil fields are written.
func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.ManagerID != nil {
		addSet("manager_id", *req.ManagerID)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ProjectID)

	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// List implements project.Repository.
func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ListFilter) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("pr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("pr.name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", projectJoins, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
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
		ORDER BY pr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, projectColumns, projectJoins, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// AddMember implements project.Repository.
func (r *projectRepositoryImpl) AddMember(ctx context.Context, m project.Member) (project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_members (id, project_id, employee_id, role, joined_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	id := uuid.New().String()
	var createdID string
	err := q.QueryRow(ctx, query,
		id,
		m.ProjectID,
		m.EmployeeID,
		m.RoleLabel,
		m.JoinedOn,
	).Scan(&createdID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.Member{}, project.ErrMemberExists
		}
		return project.Member{}, fmt.Errorf("failed to add project member: %w", err)
	}
	m.ID = createdID
	return m, nil
}

// RemoveMember implements project.Repository.
func (r *projectRepositoryImpl) RemoveMember(ctx context.Context, projectID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM project_members WHERE project_id = $1 AND employee_id = $2`

	result, err := q.Exec(ctx, query, projectID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return project.ErrMemberNotFound
	}
	return nil
}

// ListMembers implements project.Repository.
func (r *projectRepositoryImpl) ListMembers(ctx context.Context, projectID string) ([]project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pm.id, pm.project_id, pm.employee_id, pm.role, pm.joined_on, u.full_name
		FROM project_members pm
		JOIN users u ON pm.employee_id = u.id
		WHERE pm.project_id = $1
		ORDER BY pm.joined_on ASC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []project.Member
	for rows.Next() {
		var m project.Member
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.EmployeeID, &m.RoleLabel, &m.JoinedOn, &m.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

// ListByEmployee implements project.Repository.
func (r *projectRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + projectJoins + `
		WHERE pr.id IN (SELECT project_id FROM project_members WHERE employee_id = $1)
		ORDER BY pr.created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by employee: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}
