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

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: conn}
}

const templateColumns = `id, name, description, category, estimated_days, required_skills, team_size,
	active, created_at, updated_at`

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.ProjectTemplate) error {
	query := `INSERT INTO project_templates (` + templateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Description, t.Category,
		nullableIntToValue(t.EstimatedDays), encodeStrings(t.RequiredSkills), t.TeamSize,
		boolToInt(t.Active),
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.ProjectTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM project_templates WHERE id = ?`
	return r.scanTemplate(r.db.QueryRowContext(ctx, query, id))
}

// ListActive returns active templates, optionally narrowed to one category.
func (r *SQLiteTemplateRepo) ListActive(ctx context.Context, category string) ([]*domain.ProjectTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM project_templates WHERE active = 1`
	var args []any
	if category != "" {
		query += ` AND LOWER(category) = LOWER(?)`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing project templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.ProjectTemplate
	for rows.Next() {
		t, err := r.scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project templates: %w", err)
	}
	return templates, nil
}

func (r *SQLiteTemplateRepo) scanTemplate(row rowScanner) (*domain.ProjectTemplate, error) {
	var t domain.ProjectTemplate
	var skills, createdAtStr, updatedAtStr string
	var estimated sql.NullInt64
	var active int

	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Category,
		&estimated, &skills, &t.TeamSize, &active,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project template %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project template: %w", err)
	}

	t.EstimatedDays = nullIntToPtr(estimated)
	t.RequiredSkills = decodeStrings(skills)
	t.Active = intToBool(active)

	t.CreatedAt, t.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing project template timestamps: %w", err)
	}
	return &t, nil
}
