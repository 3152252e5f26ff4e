// Package templates holds the HTML views rendered by the handlers.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"tasklistgen/services"
)

// TasklistPreviewData is what the preview fragment displays.
type TasklistPreviewData struct {
	Title          string
	DownloadName   string
	ShowAssessment bool
	ShowDevelop    bool
	Assessment     services.Section
	Development    services.Section
}

// TasklistPreview renders the built tasklists as HTML tables. A Total line's
// Duration cell is emphasised the same way as in the xlsx export.
func TasklistPreview(data TasklistPreviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="previewContainer"><h2>%s</h2>`, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if data.DownloadName != "" {
			if _, err := fmt.Fprintf(w, `<p class="download-name">%s</p>`, templ.EscapeString(data.DownloadName)); err != nil {
				return err
			}
		}
		if data.ShowAssessment {
			if err := tasklistTable("Assessment Tasklist", data.Assessment).Render(ctx, w); err != nil {
				return err
			}
		}
		if data.ShowDevelop {
			if err := tasklistTable("Development Tasklist", data.Development).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func tasklistTable(heading string, tasks services.Section) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h4>%s</h4>`, templ.EscapeString(heading)); err != nil {
			return err
		}
		if len(tasks) == 0 {
			_, err := io.WriteString(w, `<div>No tasks available.</div>`)
			return err
		}

		if _, err := io.WriteString(w, `<table border="1" cellpadding="8"><thead><tr>`); err != nil {
			return err
		}
		for _, h := range services.TasklistHeaders {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`, templ.EscapeString(h)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}

		for _, t := range tasks {
			duration := templ.EscapeString(t.Duration)
			if t.IsTotal() {
				duration = "<strong>" + duration + "</strong>"
			}
			_, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>`,
				templ.EscapeString(t.RR),
				templ.EscapeString(t.ProductName),
				templ.EscapeString(t.Role),
				templ.EscapeString(t.Milestone),
				templ.EscapeString(t.Region),
				templ.EscapeString(t.Skills),
				templ.EscapeString(t.AssignmentTasks),
				templ.EscapeString(t.HoursPerRolePerMilestone),
				duration,
				t.Hours,
			)
			if err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
