package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"tasklistgen/services"
)

// SeedTemplate copies the bundled tasklist template under resourceRoot into
// the task_templates collection. It is safe to call on every startup because
// it returns early if any template rows already exist, so percentages edited
// through the API survive restarts.
func SeedTemplate(app *pocketbase.PocketBase, resourceRoot string) error {
	existing, err := app.FindAllRecords(services.TemplateCollection)
	if err != nil {
		return fmt.Errorf("seed: could not query %s: %w", services.TemplateCollection, err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	tpl, err := services.LoadTemplate(resourceRoot)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Printf("seed: %s is empty, inserting %d assessment and %d development rows",
		services.TemplateCollection, len(tpl.Assessment), len(tpl.Development))

	sections := []struct {
		name  string
		tasks []services.TemplateTask
	}{
		{services.SectionAssessment, tpl.Assessment},
		{services.SectionDevelopment, tpl.Development},
	}
	for _, s := range sections {
		for i, t := range s.tasks {
			if _, err := services.SaveTemplateTask(app, s.name, i+1, t); err != nil {
				return fmt.Errorf("seed: %s row %d: %w", s.name, i+1, err)
			}
		}
	}
	return nil
}
