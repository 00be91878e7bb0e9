package staff

import "strings"

// Candidate is one not-yet-persisted row of import data, normalized from its
// source (spreadsheet row or directory entry).
type Candidate struct {
	LoginName      string
	DisplayName    string
	Gender         string
	DepartmentName string
	RawPassword    string
	Title          string
	Mobile         string
	Email          string
}

// Validate rejects candidates with empty required fields. A rejected
// candidate must cause no side effects.
func (c Candidate) Validate() error {
	if strings.TrimSpace(c.LoginName) == "" ||
		strings.TrimSpace(c.DisplayName) == "" ||
		strings.TrimSpace(c.Gender) == "" ||
		strings.TrimSpace(c.DepartmentName) == "" {
		return ErrMissingParameter
	}
	return nil
}
