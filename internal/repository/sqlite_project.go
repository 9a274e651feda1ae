package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alfcoach/alfcoach/internal/db"
	"github.com/alfcoach/alfcoach/internal/domain"
)

// ErrProjectNotFound is returned when a project lookup matches nothing.
var ErrProjectNotFound = fmt.Errorf("project not found")

// SQLiteProjectRepo implements ProjectRepo over a SQLite connection or
// transaction.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, title, subject, age_group, studio_theme, educator_perspective,
	stage, core_idea, challenge, curriculum_draft, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Subject,
		p.AgeGroup,
		p.StudioTheme,
		p.EducatorPerspective,
		string(p.Stage),
		p.CoreIdea,
		p.Challenge,
		p.CurriculumDraft,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanProject(row)
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET title = ?, subject = ?, age_group = ?, studio_theme = ?,
		educator_perspective = ?, stage = ?, core_idea = ?, challenge = ?,
		curriculum_draft = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.Subject,
		p.AgeGroup,
		p.StudioTheme,
		p.EducatorPerspective,
		string(p.Stage),
		p.CoreIdea,
		p.Challenge,
		p.CurriculumDraft,
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) UpdateStage(ctx context.Context, id string, stage domain.Stage) error {
	query := `UPDATE projects SET stage = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, string(stage), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating project stage: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// projectScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type projectScanner interface {
	Scan(dest ...any) error
}

func scanProject(row *sql.Row) (*domain.Project, error) {
	p, err := scanProjectFields(row)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return p, nil
}

func scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	p, err := scanProjectFields(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}
	return p, nil
}

func scanProjectFields(s projectScanner) (*domain.Project, error) {
	var p domain.Project
	var stageStr, createdAtStr, updatedAtStr string

	err := s.Scan(
		&p.ID, &p.Title, &p.Subject, &p.AgeGroup, &p.StudioTheme, &p.EducatorPerspective,
		&stageStr, &p.CoreIdea, &p.Challenge, &p.CurriculumDraft,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	p.Stage = domain.Stage(stageStr)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
