package program

import (
	"errors"
	"fmt"
	"strings"
)

// Organization identifies an authoring organization attached to a program.
type Organization struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name,omitempty"`
}

// CourseCode identifies a course grouping that belongs to a program.
type CourseCode struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name,omitempty"`
}

// Program is a single catalog entry as served by the list endpoint. ID and
// Name are the only required fields; everything else mirrors the optional
// attributes the API may include and is passed through untouched.
type Program struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Category      string         `json:"category,omitempty"`
	Status        string         `json:"status,omitempty"`
	MarketingSlug string         `json:"marketing_slug,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
	CourseCodes   []CourseCode   `json:"course_codes,omitempty"`
	Created       string         `json:"created,omitempty"`
	Modified      string         `json:"modified,omitempty"`
}

// Validate reports whether the entry carries the required identifying fields.
func (p Program) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("program: id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("program %q: name is required", p.ID)
	}
	return nil
}
