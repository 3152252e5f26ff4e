package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
)

// TemplateRelPath is the bundled template's location under the resource root.
const TemplateRelPath = "assets/psa_tasklist_template.json"

var (
	ErrTemplateNotFound = errors.New("tasklist template not found")
	ErrEmptyTemplate    = errors.New("tasklist template has no tasks")
)

// TemplateTask is one row of the tasklist template. HoursPct is the task's
// share of its section's hours as a fraction (0.25 = 25%).
type TemplateTask struct {
	Section         string  `json:"section,omitempty"`
	RR              string  `json:"rr"`
	ProductName     string  `json:"product_name"`
	Role            string  `json:"role"`
	Milestone       string  `json:"milestone"`
	Region          string  `json:"region"`
	Skills          string  `json:"skills"`
	AssignmentTasks string  `json:"assignment_tasks"`
	HoursPct        float64 `json:"hours_per_role_per_milestone"`
	Duration        string  `json:"duration"`
}

// UnmarshalJSON accepts the percentage either as a number or as a numeric
// string, since hand-edited templates use both.
func (t *TemplateTask) UnmarshalJSON(data []byte) error {
	type plain TemplateTask
	var raw struct {
		plain
		HoursPct any `json:"hours_per_role_per_milestone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pct, err := cast.ToFloat64E(raw.HoursPct)
	if err != nil {
		return fmt.Errorf("task %q: hours_per_role_per_milestone: %w", raw.Role, err)
	}

	*t = TemplateTask(raw.plain)
	t.HoursPct = pct
	return nil
}

// Template holds the assessment and development task templates.
type Template struct {
	Assessment  []TemplateTask `json:"assessment"`
	Development []TemplateTask `json:"development"`
}

// TemplatePath returns the bundled template's path under resourceRoot.
func TemplatePath(resourceRoot string) string {
	return filepath.Join(resourceRoot, filepath.FromSlash(TemplateRelPath))
}

// ReadTemplateJSON returns the raw contents of the bundled template.
func ReadTemplateJSON(resourceRoot string) (string, error) {
	data, err := os.ReadFile(TemplatePath(resourceRoot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, TemplatePath(resourceRoot))
		}
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// ParseTemplate decodes a template document.
func ParseTemplate(data []byte) (Template, error) {
	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return Template{}, fmt.Errorf("parse template: %w", err)
	}
	if len(tpl.Assessment) == 0 && len(tpl.Development) == 0 {
		return Template{}, ErrEmptyTemplate
	}
	return tpl, nil
}

// LoadTemplate reads and decodes the bundled template.
func LoadTemplate(resourceRoot string) (Template, error) {
	raw, err := ReadTemplateJSON(resourceRoot)
	if err != nil {
		return Template{}, err
	}
	return ParseTemplate([]byte(raw))
}
