package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tasklistgen/config"
	"tasklistgen/services"
)

// HandleTemplateRead returns the bundled template file as-is.
// Route: GET /api/template
func HandleTemplateRead(resourceRoot string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		raw, err := services.ReadTemplateJSON(resourceRoot)
		if err != nil {
			log.Printf("template_read: %v", err)
			if errors.Is(err, services.ErrTemplateNotFound) {
				return e.String(http.StatusNotFound, "Template not found")
			}
			return e.String(http.StatusInternalServerError, "Failed to read template")
		}

		e.Response.Header().Set("Content-Type", "application/json; charset=utf-8")
		return e.String(http.StatusOK, raw)
	}
}

// HandleTemplateTaskList returns the stored, editable template rows.
// Route: GET /api/template/tasks
func HandleTemplateTaskList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tasks, err := services.ListTemplateTasks(app)
		if err != nil {
			log.Printf("template_tasks: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load template"})
		}
		return e.JSON(http.StatusOK, tasks)
	}
}

// HandleTemplateTaskUpdate sets a stored template row's share of its
// section's hours.
// Route: PATCH /api/template/tasks/{id}
func HandleTemplateTaskUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing task ID"})
		}

		var body struct {
			HoursPct *float64 `json:"hours_per_role_per_milestone"`
		}
		if err := e.BindBody(&body); err != nil || body.HoursPct == nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing hours_per_role_per_milestone"})
		}

		if _, err := app.FindRecordById(services.TemplateCollection, id); err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Template task not found"})
		}

		task, err := services.UpdateTemplatePercentage(app, id, *body.HoursPct)
		if err != nil {
			log.Printf("template_update: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return e.JSON(http.StatusOK, task)
	}
}

// HandleTasklistOptions returns the choices offered by the tasklist form,
// with the configured defaults preselected.
// Route: GET /api/tasklist/options
func HandleTasklistOptions(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"directionalities":       services.DirectionalityOptions,
			"hours_splits":           services.HoursSplitOptions,
			"default_directionality": cfg.Directionality,
			"default_hours_split":    cfg.HoursSplit,
		})
	}
}
