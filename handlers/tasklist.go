package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tasklistgen/config"
	"tasklistgen/services"
	"tasklistgen/templates"
)

// exportRequest is the body of POST /api/tasklist/export.
type exportRequest struct {
	AssessmentTasklist  services.Section `json:"assessment_tasklist"`
	DevelopmentTasklist services.Section `json:"development_tasklist"`
	FilePath            string           `json:"file_path"`
}

// HandleTasklistExport writes the posted tasklists to the posted file path.
// Route: POST /api/tasklist/export
func HandleTasklistExport() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req exportRequest
		if err := e.BindBody(&req); err != nil {
			log.Printf("tasklist_export: invalid body: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		req.FilePath = strings.TrimSpace(req.FilePath)
		if req.FilePath == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing file path"})
		}

		if err := services.ExportTasklist(req.AssessmentTasklist, req.DevelopmentTasklist, req.FilePath); err != nil {
			log.Printf("tasklist_export: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}

		SetToast(e, "success", "Excel exported successfully!")
		return e.JSON(http.StatusOK, map[string]bool{"ok": true})
	}
}

// HandleTasklistPreview renders the tasklists built from the posted params.
// Route: POST /api/tasklist/preview
func HandleTasklistPreview(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		params, assessment, development, err := buildFromRequest(app, cfg, e)
		if err != nil {
			return ErrorToast(e, statusFor(err), err.Error())
		}

		component := templates.TasklistPreview(templates.TasklistPreviewData{
			Title:          "Tasklist Preview",
			DownloadName:   services.DefaultExportFilename(params),
			ShowAssessment: params.HoursSplit != services.SplitDevelopment,
			ShowDevelop:    params.HoursSplit != services.SplitAssessment,
			Assessment:     assessment,
			Development:    development,
		})
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleTasklistDownload builds the tasklists from the posted params and
// returns them as an xlsx attachment.
// Route: POST /api/tasklist/download
func HandleTasklistDownload(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		params, assessment, development, err := buildFromRequest(app, cfg, e)
		if err != nil {
			return e.String(statusFor(err), err.Error())
		}

		xlsxBytes, err := services.GenerateTasklistExcel(assessment, development)
		if err != nil {
			log.Printf("tasklist_download: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := services.SanitizeFilename(services.DefaultExportFilename(params))
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleTasklistPDF builds the tasklists from the posted params and returns
// a printable PDF.
// Route: POST /api/tasklist/pdf
func HandleTasklistPDF(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		params, assessment, development, err := buildFromRequest(app, cfg, e)
		if err != nil {
			return e.String(statusFor(err), err.Error())
		}

		title := fmt.Sprintf("%s - %s (%s)", params.ClientName, params.IntegrationName, params.IntegrationNumber)
		pdfBytes, err := services.GenerateTasklistPDF(title, assessment, development)
		if err != nil {
			log.Printf("tasklist_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := services.SanitizeFilename(strings.TrimSuffix(services.DefaultExportFilename(params), ".xlsx") + ".pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// errInvalidParams marks request problems the caller can fix.
var errInvalidParams = errors.New("invalid tasklist parameters")

// buildFromRequest decodes TasklistParams from the body and builds the
// tasklists from the stored template, falling back to the bundled file when
// nothing is stored.
func buildFromRequest(app *pocketbase.PocketBase, cfg config.Config, e *core.RequestEvent) (services.TasklistParams, services.Section, services.Section, error) {
	var params services.TasklistParams
	if err := e.BindBody(&params); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	params = cfg.ApplyDefaults(params)
	if err := params.Validate(); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %v", errInvalidParams, err)
	}

	tpl, err := services.LoadActiveTemplate(app, cfg.ResourceDir)
	if err != nil {
		log.Printf("tasklist: load template: %v", err)
		return params, nil, nil, err
	}

	assessment, development, err := services.BuildTasklists(tpl, params, cfg.AssessmentShare)
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	return params, assessment, development, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrTemplateNotFound), errors.Is(err, services.ErrEmptyTemplate):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
