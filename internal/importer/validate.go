package importer

import (
	"fmt"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	clientRefs := make(map[string]bool)
	errs = append(errs, validateClients(schema.Clients, clientRefs)...)

	userRefs := make(map[string]bool)
	errs = append(errs, validateUsers(schema.Users, userRefs)...)

	errs = append(errs, validateProjects(schema.Projects, clientRefs, userRefs)...)

	return errs
}

func validateClients(clients []ClientImport, refs map[string]bool) []error {
	var errs []error
	if len(clients) == 0 {
		errs = append(errs, fmt.Errorf("at least one client is required"))
	}
	for i, c := range clients {
		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("clients[%d].ref is required", i))
			continue
		}
		if refs[c.Ref] {
			errs = append(errs, fmt.Errorf("clients[%d]: duplicate ref %q", i, c.Ref))
		}
		refs[c.Ref] = true
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("clients[%d].name is required", i))
		}
	}
	return errs
}

func validateUsers(users []UserImport, refs map[string]bool) []error {
	var errs []error
	for i, u := range users {
		if u.Ref == "" {
			errs = append(errs, fmt.Errorf("users[%d].ref is required", i))
			continue
		}
		if refs[u.Ref] {
			errs = append(errs, fmt.Errorf("users[%d]: duplicate ref %q", i, u.Ref))
		}
		refs[u.Ref] = true
		if u.Name == "" {
			errs = append(errs, fmt.Errorf("users[%d].name is required", i))
		}
	}
	return errs
}

func validateProjects(projects []ProjectImport, clientRefs, userRefs map[string]bool) []error {
	var errs []error
	if len(projects) == 0 {
		errs = append(errs, fmt.Errorf("at least one project is required"))
	}
	projectRefs := make(map[string]bool)
	shortIDs := make(map[string]bool)
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if projectRefs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", prefix, p.Ref))
		}
		projectRefs[p.Ref] = true
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.ShortID == "" {
			errs = append(errs, fmt.Errorf("%s.short_id is required", prefix))
		} else if shortIDs[p.ShortID] {
			errs = append(errs, fmt.Errorf("%s: duplicate short_id %q", prefix, p.ShortID))
		}
		shortIDs[p.ShortID] = true
		if p.ClientRef == "" {
			errs = append(errs, fmt.Errorf("%s.client_ref is required", prefix))
		} else if !clientRefs[p.ClientRef] {
			errs = append(errs, fmt.Errorf("%s.client_ref %q does not match any client", prefix, p.ClientRef))
		}
		if p.AssigneeRef != nil && !userRefs[*p.AssigneeRef] {
			errs = append(errs, fmt.Errorf("%s.assignee_ref %q does not match any user", prefix, *p.AssigneeRef))
		}
		errs = append(errs, validateStatus(prefix, p.Status)...)
		errs = append(errs, validateSpan(prefix, p.StartDate, p.EndDate)...)

		for j, s := range p.Subtasks {
			sp := fmt.Sprintf("%s.subtasks[%d]", prefix, j)
			if s.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", sp))
			}
			if s.AssigneeRef != nil && !userRefs[*s.AssigneeRef] {
				errs = append(errs, fmt.Errorf("%s.assignee_ref %q does not match any user", sp, *s.AssigneeRef))
			}
			errs = append(errs, validateStatus(sp, s.Status)...)
			errs = append(errs, validateSpan(sp, s.StartDate, s.EndDate)...)
		}
	}
	return errs
}

func validateStatus(prefix, status string) []error {
	if status == "" || domain.ValidAssignmentStatuses[status] {
		return nil
	}
	return []error{fmt.Errorf("%s.status: invalid value %q", prefix, status)}
}

func validateSpan(prefix string, start, end *string) []error {
	var errs []error
	var s, e time.Time
	var sOK, eOK bool
	if start != nil {
		var err error
		if s, err = time.Parse(dateLayout, *start); err != nil {
			errs = append(errs, fmt.Errorf("%s.start_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *start))
		} else {
			sOK = true
		}
	}
	if end != nil {
		var err error
		if e, err = time.Parse(dateLayout, *end); err != nil {
			errs = append(errs, fmt.Errorf("%s.end_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *end))
		} else {
			eOK = true
		}
	}
	if sOK && eOK && e.Before(s) {
		errs = append(errs, fmt.Errorf("%s: end_date %q is before start_date %q", prefix, *end, *start))
	}
	return errs
}
