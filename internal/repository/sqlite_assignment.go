package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alfcoach/alfcoach/internal/db"
	"github.com/alfcoach/alfcoach/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo over a SQLite
// connection or transaction.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

func (r *SQLiteAssignmentRepo) Append(ctx context.Context, a *domain.Assignment) error {
	if a.Position <= 0 {
		pos, err := r.nextPosition(ctx, a.ProjectID)
		if err != nil {
			return err
		}
		a.Position = pos
	}

	query := `INSERT INTO assignments (id, project_id, position, title, description, rubric, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ProjectID,
		a.Position,
		a.Title,
		a.Description,
		a.Rubric,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error) {
	query := `SELECT id, project_id, position, title, description, rubric, created_at
		FROM assignments WHERE project_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var createdAtStr string
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Position, &a.Title, &a.Description, &a.Rubric, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning assignment row: %w", err)
		}
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM assignments WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return nil
}

// nextPosition returns max(position)+1 for the project's list.
func (r *SQLiteAssignmentRepo) nextPosition(ctx context.Context, projectID string) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM assignments WHERE project_id = ?`, projectID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("computing next assignment position: %w", err)
	}
	return max + 1, nil
}
