package collections_test

import (
	"testing"

	"tasklistgen/collections"
	"tasklistgen/services"
	"tasklistgen/testhelpers"
)

func TestSetup_TemplateCollectionFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId(services.TemplateCollection)
	if err != nil {
		t.Fatalf("collection %q not found: %v", services.TemplateCollection, err)
	}

	for _, name := range []string{
		"section", "sort_order", "rr", "product_name", "role", "milestone", "region",
		"skills", "assignment_tasks", "hours_pct", "duration", "created", "updated",
	} {
		if col.Fields.GetByName(name) == nil {
			t.Errorf("expected field %q", name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// NewTestApp already ran Setup once.
	collections.Setup(app)

	if _, err := app.FindCollectionByNameOrId(services.TemplateCollection); err != nil {
		t.Fatalf("collection missing after second Setup: %v", err)
	}
}
