package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/crewlane/crewlane/internal/db"
	"github.com/crewlane/crewlane/internal/domain"
)

const subtaskColumns = `id, project_id, name, assignee_id, status,
		start_date, end_date, created_at, updated_at`

// SQLiteSubtaskRepo implements SubtaskRepo using a SQLite database.
type SQLiteSubtaskRepo struct {
	db db.DBTX
}

// NewSQLiteSubtaskRepo creates a new SQLiteSubtaskRepo.
func NewSQLiteSubtaskRepo(conn db.DBTX) *SQLiteSubtaskRepo {
	return &SQLiteSubtaskRepo{db: conn}
}

func (r *SQLiteSubtaskRepo) Create(ctx context.Context, s *domain.Subtask) error {
	query := `INSERT INTO subtasks (` + subtaskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.Name,
		nullableStringToValue(s.AssigneeID),
		string(s.Status),
		nullableTimeToString(s.StartDate, dateLayout),
		nullableTimeToString(s.EndDate, dateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting subtask: %w", err)
	}
	return nil
}

func (r *SQLiteSubtaskRepo) GetByID(ctx context.Context, id string) (*domain.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSubtask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subtask: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subtask: %w", err)
	}
	return s, nil
}

func (r *SQLiteSubtaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE project_id = ? ORDER BY created_at`
	return r.listMany(ctx, query, projectID)
}

func (r *SQLiteSubtaskRepo) ListByAssignee(ctx context.Context, userID string) ([]*domain.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE assignee_id = ? ORDER BY created_at`
	return r.listMany(ctx, query, userID)
}

func (r *SQLiteSubtaskRepo) listMany(ctx context.Context, query string, args ...any) ([]*domain.Subtask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing subtasks: %w", err)
	}
	defer rows.Close()

	var subtasks []*domain.Subtask
	for rows.Next() {
		s, err := scanSubtask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning subtask row: %w", err)
		}
		subtasks = append(subtasks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subtasks: %w", err)
	}
	return subtasks, nil
}

func (r *SQLiteSubtaskRepo) Update(ctx context.Context, s *domain.Subtask) error {
	query := `UPDATE subtasks SET name = ?, assignee_id = ?, status = ?,
		start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name,
		nullableStringToValue(s.AssigneeID),
		string(s.Status),
		nullableTimeToString(s.StartDate, dateLayout),
		nullableTimeToString(s.EndDate, dateLayout),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating subtask: %w", err)
	}
	return nil
}

func (r *SQLiteSubtaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM subtasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting subtask: %w", err)
	}
	return nil
}

func scanSubtask(row scanner) (*domain.Subtask, error) {
	var s domain.Subtask
	var statusStr, createdAtStr, updatedAtStr string
	var assigneeStr, startStr, endStr sql.NullString

	err := row.Scan(
		&s.ID, &s.ProjectID, &s.Name,
		&assigneeStr, &statusStr,
		&startStr, &endStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	s.Status = domain.AssignmentStatus(statusStr)
	s.AssigneeID = parseNullableString(assigneeStr)
	s.StartDate = parseNullableTime(startStr, dateLayout)
	s.EndDate = parseNullableTime(endStr, dateLayout)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &s, nil
}
