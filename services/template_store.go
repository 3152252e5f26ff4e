package services

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// TemplateCollection stores the editable copy of the tasklist template.
const TemplateCollection = "task_templates"

// Template sections as stored in the "section" field.
const (
	SectionAssessment  = "assessment"
	SectionDevelopment = "development"
)

// StoredTemplateTask is a template row together with its record id.
type StoredTemplateTask struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
	TemplateTask
}

// LoadTemplateFromStore returns the stored template rows, each section in
// sort order.
func LoadTemplateFromStore(app *pocketbase.PocketBase) (Template, error) {
	stored, err := ListTemplateTasks(app)
	if err != nil {
		return Template{}, err
	}

	var tpl Template
	for _, st := range stored {
		switch st.Section {
		case SectionAssessment:
			tpl.Assessment = append(tpl.Assessment, st.TemplateTask)
		case SectionDevelopment:
			tpl.Development = append(tpl.Development, st.TemplateTask)
		}
	}
	if len(tpl.Assessment) == 0 && len(tpl.Development) == 0 {
		return Template{}, ErrEmptyTemplate
	}
	return tpl, nil
}

// LoadActiveTemplate returns the stored template when it has rows and the
// bundled file under resourceRoot otherwise.
func LoadActiveTemplate(app *pocketbase.PocketBase, resourceRoot string) (Template, error) {
	tpl, err := LoadTemplateFromStore(app)
	if err == nil {
		return tpl, nil
	}
	if !errors.Is(err, ErrEmptyTemplate) {
		log.Printf("template: stored template unavailable, using bundled file: %v", err)
	}
	return LoadTemplate(resourceRoot)
}

// ListTemplateTasks returns every stored template row ordered by section and
// sort order.
func ListTemplateTasks(app *pocketbase.PocketBase) ([]StoredTemplateTask, error) {
	records, err := app.FindAllRecords(TemplateCollection)
	if err != nil {
		return nil, fmt.Errorf("query template tasks: %w", err)
	}

	out := make([]StoredTemplateTask, 0, len(records))
	for _, rec := range records {
		out = append(out, templateTaskFromRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Section != out[j].Section {
			return out[i].Section < out[j].Section
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}

// SaveTemplateTask stores one template row under the given section.
func SaveTemplateTask(app *pocketbase.PocketBase, section string, sortOrder int, t TemplateTask) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(TemplateCollection)
	if err != nil {
		return nil, fmt.Errorf("collection not found: %w", err)
	}

	rec := core.NewRecord(col)
	rec.Set("section", section)
	rec.Set("sort_order", sortOrder)
	rec.Set("rr", t.RR)
	rec.Set("product_name", t.ProductName)
	rec.Set("role", t.Role)
	rec.Set("milestone", t.Milestone)
	rec.Set("region", t.Region)
	rec.Set("skills", t.Skills)
	rec.Set("assignment_tasks", t.AssignmentTasks)
	rec.Set("hours_pct", t.HoursPct)
	rec.Set("duration", t.Duration)

	if err := app.Save(rec); err != nil {
		return nil, fmt.Errorf("save template task: %w", err)
	}
	return rec, nil
}

// UpdateTemplatePercentage changes the share of section hours assigned to
// one template row.
func UpdateTemplatePercentage(app *pocketbase.PocketBase, id string, pct float64) (StoredTemplateTask, error) {
	if pct < 0 || pct > 1 {
		return StoredTemplateTask{}, fmt.Errorf("percentage %v must be between 0 and 1", pct)
	}

	rec, err := app.FindRecordById(TemplateCollection, id)
	if err != nil {
		return StoredTemplateTask{}, fmt.Errorf("template task not found: %w", err)
	}

	rec.Set("hours_pct", pct)
	if err := app.Save(rec); err != nil {
		return StoredTemplateTask{}, fmt.Errorf("update template task: %w", err)
	}
	return templateTaskFromRecord(rec), nil
}

func templateTaskFromRecord(rec *core.Record) StoredTemplateTask {
	return StoredTemplateTask{
		ID:        rec.Id,
		SortOrder: rec.GetInt("sort_order"),
		TemplateTask: TemplateTask{
			Section:         rec.GetString("section"),
			RR:              rec.GetString("rr"),
			ProductName:     rec.GetString("product_name"),
			Role:            rec.GetString("role"),
			Milestone:       rec.GetString("milestone"),
			Region:          rec.GetString("region"),
			Skills:          rec.GetString("skills"),
			AssignmentTasks: rec.GetString("assignment_tasks"),
			HoursPct:        rec.GetFloat("hours_pct"),
			Duration:        rec.GetString("duration"),
		},
	}
}
