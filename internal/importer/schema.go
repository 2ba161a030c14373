// Package importer loads workload snapshots from JSON files: clients,
// users, and projects with their nested subtasks. Imports are validated
// up front and converted to domain entities before anything is persisted.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a workload import.
type ImportSchema struct {
	Clients  []ClientImport  `json:"clients"`
	Users    []UserImport    `json:"users,omitempty"`
	Projects []ProjectImport `json:"projects"`
}

// ClientImport defines one client in the import file. Ref is the local
// handle projects use to point at their client.
type ClientImport struct {
	Ref          string `json:"ref"`
	Name         string `json:"name"`
	Company      string `json:"company,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// UserImport defines one team member in the import file.
type UserImport struct {
	Ref    string `json:"ref"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// ProjectImport defines one project and its nested subtasks.
type ProjectImport struct {
	Ref         string          `json:"ref"`
	ShortID     string          `json:"short_id"`
	ClientRef   string          `json:"client_ref"`
	Name        string          `json:"name"`
	AssigneeRef *string         `json:"assignee_ref,omitempty"`
	Status      string          `json:"status,omitempty"`
	StartDate   *string         `json:"start_date,omitempty"`
	EndDate     *string         `json:"end_date,omitempty"`
	Subtasks    []SubtaskImport `json:"subtasks,omitempty"`
}

// SubtaskImport defines a subtask nested under a project entry.
type SubtaskImport struct {
	Name        string  `json:"name"`
	AssigneeRef *string `json:"assignee_ref,omitempty"`
	Status      string  `json:"status,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// LoadImportSchema reads and parses a workload import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
