package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/alexanderramin/tasktory/internal/domain"
)

// SQLiteProjectMemberRepo implements ProjectMemberRepo using a SQLite database.
type SQLiteProjectMemberRepo struct {
	db db.DBTX
}

func NewSQLiteProjectMemberRepo(conn db.DBTX) *SQLiteProjectMemberRepo {
	return &SQLiteProjectMemberRepo{db: conn}
}

const projectMemberColumns = `id, project_id, team_member_id, role, responsibility, allocation_percent,
	start_date, end_date, active, created_at, updated_at`

func (r *SQLiteProjectMemberRepo) Create(ctx context.Context, pm *domain.ProjectMember) error {
	query := `INSERT INTO project_members (` + projectMemberColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		pm.ID, pm.ProjectID, pm.TeamMemberID, pm.Role, pm.Responsibility, pm.AllocationPercent,
		nullableTimeToString(pm.StartDate, dateLayout),
		nullableTimeToString(pm.EndDate, dateLayout),
		boolToInt(pm.Active),
		pm.CreatedAt.Format(time.RFC3339), pm.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project member: %w", err)
	}
	return nil
}

func (r *SQLiteProjectMemberRepo) GetByID(ctx context.Context, id string) (*domain.ProjectMember, error) {
	query := `SELECT ` + projectMemberColumns + ` FROM project_members WHERE id = ?`
	return r.scanProjectMember(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectMemberRepo) FindActive(ctx context.Context, projectID, teamMemberID string) (*domain.ProjectMember, error) {
	query := `SELECT ` + projectMemberColumns + ` FROM project_members
		WHERE project_id = ? AND team_member_id = ? AND active = 1`
	return r.scanProjectMember(r.db.QueryRowContext(ctx, query, projectID, teamMemberID))
}

func (r *SQLiteProjectMemberRepo) ListActiveByProject(ctx context.Context, projectID string) ([]*domain.ProjectMember, error) {
	query := `SELECT ` + projectMemberColumns + ` FROM project_members
		WHERE project_id = ? AND active = 1 ORDER BY created_at`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteProjectMemberRepo) ListActiveByTeamMember(ctx context.Context, teamMemberID string) ([]*domain.ProjectMember, error) {
	query := `SELECT ` + projectMemberColumns + ` FROM project_members
		WHERE team_member_id = ? AND active = 1 ORDER BY created_at`
	return r.list(ctx, query, teamMemberID)
}

func (r *SQLiteProjectMemberRepo) CountActiveByTeamMember(ctx context.Context, teamMemberID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM project_members WHERE team_member_id = ? AND active = 1`, teamMemberID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting active memberships: %w", err)
	}
	return n, nil
}

func (r *SQLiteProjectMemberRepo) Update(ctx context.Context, pm *domain.ProjectMember) error {
	query := `UPDATE project_members SET role = ?, responsibility = ?, allocation_percent = ?,
		start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		pm.Role, pm.Responsibility, pm.AllocationPercent,
		nullableTimeToString(pm.StartDate, dateLayout),
		nullableTimeToString(pm.EndDate, dateLayout),
		pm.UpdatedAt.Format(time.RFC3339),
		pm.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project member: %w", err)
	}
	return requireAffected(res, "project member")
}

func (r *SQLiteProjectMemberRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE project_members SET active = 0, updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("deactivating project member: %w", err)
	}
	return requireAffected(res, "project member")
}

func (r *SQLiteProjectMemberRepo) list(ctx context.Context, query string, args ...any) ([]*domain.ProjectMember, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing project members: %w", err)
	}
	defer rows.Close()

	var members []*domain.ProjectMember
	for rows.Next() {
		pm, err := r.scanProjectMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project members: %w", err)
	}
	return members, nil
}

func (r *SQLiteProjectMemberRepo) scanProjectMember(row rowScanner) (*domain.ProjectMember, error) {
	var pm domain.ProjectMember
	var startStr, endStr sql.NullString
	var active int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&pm.ID, &pm.ProjectID, &pm.TeamMemberID, &pm.Role, &pm.Responsibility, &pm.AllocationPercent,
		&startStr, &endStr, &active, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project member %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project member: %w", err)
	}

	if pm.StartDate, err = parseNullableTime(startStr, dateLayout); err != nil {
		return nil, fmt.Errorf("project member %s start_date: %w", pm.ID, err)
	}
	if pm.EndDate, err = parseNullableTime(endStr, dateLayout); err != nil {
		return nil, fmt.Errorf("project member %s end_date: %w", pm.ID, err)
	}
	pm.Active = intToBool(active)

	pm.CreatedAt, pm.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing project member timestamps: %w", err)
	}
	return &pm, nil
}
