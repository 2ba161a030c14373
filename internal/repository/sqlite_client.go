package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/crewlane/crewlane/internal/db"
	"github.com/crewlane/crewlane/internal/domain"
)

const clientColumns = `id, name, company, contact_email, archived_at, created_at, updated_at`

// SQLiteClientRepo implements ClientRepo using a SQLite database.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(conn db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: conn}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Company,
		c.ContactEmail,
		nullableTimeToString(c.ArchivedAt, time.RFC3339),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	c, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	return c, nil
}

func (r *SQLiteClientRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = ?, company = ?, contact_email = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Company,
		c.ContactEmail,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE clients SET archived_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM clients WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

// scanner is the shared row interface of *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (*domain.Client, error) {
	var c domain.Client
	var archivedAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&c.ID, &c.Name, &c.Company, &c.ContactEmail, &archivedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	c.ArchivedAt = parseNullableTime(archivedAtStr, time.RFC3339)

	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
