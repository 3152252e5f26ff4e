// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tasklistgen/collections"
	"tasklistgen/services"
)

// SampleTemplateJSON is a small template with two assessment and two
// development rows.
const SampleTemplateJSON = `{
  "assessment": [
    {"section": "Assessment", "rr": "A1", "product_name": "<INSTITUTION NAME> Assessment", "role": "Architect",
     "milestone": "Assessment", "region": "NA", "skills": "Design",
     "assignment_tasks": "Assess <INTEGRATION NAME> (<INTG-NUMBER>) on <ERP>",
     "hours_per_role_per_milestone": 0.6, "duration": "2w", "hours": 0},
    {"rr": "A2", "product_name": "<INSTITUTION NAME> Assessment", "role": "Analyst",
     "milestone": "Assessment", "region": "NA", "skills": "Analysis",
     "assignment_tasks": "Document the <Bidirectional or Uni> flow",
     "hours_per_role_per_milestone": "0.4", "duration": "1w", "hours": 0}
  ],
  "development": [
    {"section": "Development", "rr": "D1", "product_name": "<INSTITUTION NAME> <INTG-NUMBER>", "role": "Developer",
     "milestone": "Development", "region": "NA", "skills": "Go",
     "assignment_tasks": "Build <INTEGRATION NAME> against <ERP>",
     "hours_per_role_per_milestone": 0.75, "duration": "4w", "hours": 0},
    {"rr": "D2", "product_name": "<INSTITUTION NAME> <INTG-NUMBER>", "role": "QA",
     "milestone": "Development", "region": "NA", "skills": "Testing",
     "assignment_tasks": "Test <INTEGRATION NAME>",
     "hours_per_role_per_milestone": 0.25, "duration": "2w", "hours": 0}
  ]
}`

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// WriteTemplateFile creates a resource root holding body as the bundled
// template and returns the root.
func WriteTemplateFile(t *testing.T, body string) string {
	t.Helper()

	root := t.TempDir()
	path := services.TemplatePath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create template dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	return root
}

// CreateTestTemplateTask stores one template row and returns its record.
func CreateTestTemplateTask(t *testing.T, app *pocketbase.PocketBase, section string, sortOrder int, role string, pct float64) *core.Record {
	t.Helper()

	rec, err := services.SaveTemplateTask(app, section, sortOrder, services.TemplateTask{
		RR:              role[:1],
		ProductName:     "<INSTITUTION NAME> " + section,
		Role:            role,
		Milestone:       section,
		Region:          "NA",
		AssignmentTasks: role + " work on <INTEGRATION NAME>",
		HoursPct:        pct,
		Duration:        "1w",
	})
	if err != nil {
		t.Fatalf("failed to save template task: %v", err)
	}
	return rec
}

// ValidParams returns tasklist params that pass validation.
func ValidParams(split string) services.TasklistParams {
	return services.TasklistParams{
		ClientName:        "Acme University",
		IntegrationNumber: "INT-042",
		IntegrationName:   "Student Billing",
		ERPSystem:         "Banner",
		Directionality:    "Inbound",
		TotalHours:        100,
		HoursSplit:        split,
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
