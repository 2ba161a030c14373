package domain

import "time"

type Client struct {
	ID           string
	Name         string
	Company      string
	ContactEmail string
	ArchivedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
