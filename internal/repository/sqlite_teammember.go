package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/alexanderramin/tasktory/internal/domain"
)

// SQLiteTeamMemberRepo implements TeamMemberRepo using a SQLite database.
type SQLiteTeamMemberRepo struct {
	db db.DBTX
}

func NewSQLiteTeamMemberRepo(conn db.DBTX) *SQLiteTeamMemberRepo {
	return &SQLiteTeamMemberRepo{db: conn}
}

const teamMemberColumns = `id, name, email, position, department, experience_years, skills, skill_level,
	available, hourly_rate, notes, created_at, updated_at`

func (r *SQLiteTeamMemberRepo) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO team_members (` + teamMemberColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, m.Position, m.Department, m.ExperienceYears,
		encodeStrings(m.Skills), string(m.SkillLevel),
		boolToInt(m.Available), nullableIntToValue(m.HourlyRate), m.Notes,
		m.CreatedAt.Format(time.RFC3339), m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting team member: %w", err)
	}
	return nil
}

func (r *SQLiteTeamMemberRepo) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = ?`
	return r.scanTeamMember(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTeamMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE LOWER(email) = LOWER(?)`
	return r.scanTeamMember(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteTeamMemberRepo) List(ctx context.Context, f TeamMemberFilter) ([]*domain.TeamMember, error) {
	var where []string
	var args []any
	if f.Department != "" {
		where = append(where, "department = ?")
		args = append(args, f.Department)
	}
	if f.SkillLevel != "" {
		where = append(where, "skill_level = ?")
		args = append(args, string(f.SkillLevel))
	}
	if f.Available != nil {
		where = append(where, "available = ?")
		args = append(args, boolToInt(*f.Available))
	}

	query := `SELECT ` + teamMemberColumns + ` FROM team_members`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name, created_at`

	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		m, err := r.scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}
	return members, nil
}

func (r *SQLiteTeamMemberRepo) Update(ctx context.Context, m *domain.TeamMember) error {
	query := `UPDATE team_members SET name = ?, email = ?, position = ?, department = ?, experience_years = ?,
		skills = ?, skill_level = ?, available = ?, hourly_rate = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name, m.Email, m.Position, m.Department, m.ExperienceYears,
		encodeStrings(m.Skills), string(m.SkillLevel),
		boolToInt(m.Available), nullableIntToValue(m.HourlyRate), m.Notes,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating team member: %w", err)
	}
	return requireAffected(res, "team member")
}

func (r *SQLiteTeamMemberRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting team member: %w", err)
	}
	return requireAffected(res, "team member")
}

func (r *SQLiteTeamMemberRepo) scanTeamMember(row rowScanner) (*domain.TeamMember, error) {
	var m domain.TeamMember
	var skills, skillLevel, createdAtStr, updatedAtStr string
	var available int
	var hourlyRate sql.NullInt64

	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Position, &m.Department, &m.ExperienceYears,
		&skills, &skillLevel, &available, &hourlyRate, &m.Notes,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team member %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning team member: %w", err)
	}

	m.Skills = decodeStrings(skills)
	m.SkillLevel = domain.SkillLevel(skillLevel)
	m.Available = intToBool(available)
	m.HourlyRate = nullIntToPtr(hourlyRate)

	m.CreatedAt, m.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing team member timestamps: %w", err)
	}
	return &m, nil
}
