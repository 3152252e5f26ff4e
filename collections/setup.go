package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tasklistgen/services"
)

// Setup programmatically creates/ensures the task_templates collection exists.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, services.TemplateCollection, func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "section",
			Required:  true,
			Values:    []string{services.SectionAssessment, services.SectionDevelopment},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.TextField{Name: "rr", Required: false})
		c.Fields.Add(&core.TextField{Name: "product_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "role", Required: false})
		c.Fields.Add(&core.TextField{Name: "milestone", Required: false})
		c.Fields.Add(&core.TextField{Name: "region", Required: false})
		c.Fields.Add(&core.TextField{Name: "skills", Required: false})
		c.Fields.Add(&core.TextField{Name: "assignment_tasks", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours_pct", Required: false})
		c.Fields.Add(&core.TextField{Name: "duration", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
