package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alfcoach/alfcoach/internal/db"
	"github.com/alfcoach/alfcoach/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo over a SQLite connection or
// transaction.
type SQLiteMessageRepo struct {
	db db.DBTX
}

// NewSQLiteMessageRepo creates a new SQLiteMessageRepo.
func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Append(ctx context.Context, m *domain.ChatMessage) error {
	var suggestions, newAssignment string
	if len(m.Suggestions) > 0 {
		suggestions = jsonOrEmpty(m.Suggestions)
	}
	if m.NewAssignment != nil {
		newAssignment = jsonOrEmpty(m.NewAssignment)
	}

	query := `INSERT INTO chat_messages
		(id, project_id, stage, role, content, suggestions, stage_complete,
		 curriculum_append, new_assignment, failed, synthesized, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		string(m.Stage),
		string(m.Role),
		m.Content,
		suggestions,
		boolToInt(m.StageComplete),
		m.CurriculumAppend,
		newAssignment,
		boolToInt(m.Failed),
		boolToInt(m.Synthesized),
		m.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteMessageRepo) ListByStage(ctx context.Context, projectID string, stage domain.Stage) ([]*domain.ChatMessage, error) {
	query := `SELECT id, project_id, stage, role, content, suggestions, stage_complete,
		curriculum_append, new_assignment, failed, synthesized, created_at
		FROM chat_messages WHERE project_id = ? AND stage = ?
		ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, projectID, string(stage))
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var stageStr, roleStr, suggestions, newAssignment, createdAtStr string
		var stageComplete, failed, synthesized int

		err := rows.Scan(
			&m.ID, &m.ProjectID, &stageStr, &roleStr, &m.Content,
			&suggestions, &stageComplete, &m.CurriculumAppend, &newAssignment,
			&failed, &synthesized, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning chat message row: %w", err)
		}

		m.Stage = domain.Stage(stageStr)
		m.Role = domain.Role(roleStr)
		m.StageComplete = intToBool(stageComplete)
		m.Failed = intToBool(failed)
		m.Synthesized = intToBool(synthesized)

		if suggestions != "" {
			var list []string
			if unmarshalOrNil(suggestions, &list) {
				m.Suggestions = list
			}
		}
		if newAssignment != "" {
			var draft domain.AssignmentDraft
			if unmarshalOrNil(newAssignment, &draft) {
				m.NewAssignment = &draft
			}
		}

		m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat messages: %w", err)
	}
	return messages, nil
}

func (r *SQLiteMessageRepo) CountByStage(ctx context.Context, projectID string) (map[domain.Stage]int, error) {
	query := `SELECT stage, COUNT(*) FROM chat_messages WHERE project_id = ? GROUP BY stage`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("counting chat messages: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Stage]int)
	for rows.Next() {
		var stageStr string
		var n int
		if err := rows.Scan(&stageStr, &n); err != nil {
			return nil, fmt.Errorf("scanning message count row: %w", err)
		}
		counts[domain.Stage(stageStr)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteMessageRepo) ClearStage(ctx context.Context, projectID string, stage domain.Stage) error {
	query := `DELETE FROM chat_messages WHERE project_id = ? AND stage = ?`
	_, err := r.db.ExecContext(ctx, query, projectID, string(stage))
	if err != nil {
		return fmt.Errorf("clearing stage chat: %w", err)
	}
	return nil
}
