package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Hours split options.
const (
	SplitAssessment  = "Assessment"
	SplitDevelopment = "Development"
	SplitBoth        = "Both"
)

// DefaultAssessmentShare is the assessment share of total hours when the
// split is SplitBoth.
const DefaultAssessmentShare = 0.3

// TasklistParams are the client-specific inputs that turn a template into
// tasklists.
type TasklistParams struct {
	ClientName        string `json:"client_name"`
	IntegrationNumber string `json:"integration_number"`
	IntegrationName   string `json:"integration_name"`
	ERPSystem         string `json:"erp_system"`
	Directionality    string `json:"directionality"`
	TotalHours        int64  `json:"total_hours"`
	HoursSplit        string `json:"hours_split"`
}

// Validate checks that every input needed for an export is present.
func (p TasklistParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ClientName, validation.Required),
		validation.Field(&p.IntegrationNumber, validation.Required),
		validation.Field(&p.IntegrationName, validation.Required),
		validation.Field(&p.ERPSystem, validation.Required),
		validation.Field(&p.Directionality, validation.Required, validation.In(AnyOf(DirectionalityOptions)...)),
		validation.Field(&p.TotalHours, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.HoursSplit, validation.Required, validation.In(AnyOf(HoursSplitOptions)...)),
	)
}

// BuildTasklists fills the template with the client's details and distributes
// the hours. assessmentShare is the assessment part of TotalHours under
// SplitBoth. Every built section ends with a Total line; sections not
// selected by the split are returned empty.
func BuildTasklists(tpl Template, p TasklistParams, assessmentShare float64) (assessment, development Section, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("tasklist params: %w", err)
	}
	if assessmentShare < 0 || assessmentShare > 1 {
		return nil, nil, fmt.Errorf("assessment share %v out of range", assessmentShare)
	}

	r := placeholderReplacer(p)
	total := float64(p.TotalHours)

	switch p.HoursSplit {
	case SplitAssessment:
		assessment = buildSection(tpl.Assessment, r, p.TotalHours)
	case SplitDevelopment:
		development = buildSection(tpl.Development, r, p.TotalHours)
	case SplitBoth:
		assessment = buildSection(tpl.Assessment, r, ceilHours(total*assessmentShare))
		development = buildSection(tpl.Development, r, ceilHours(total*(1-assessmentShare)))
	}
	return assessment, development, nil
}

// DefaultExportFilename names the xlsx file offered for a tasklist export.
func DefaultExportFilename(p TasklistParams) string {
	return fmt.Sprintf("%s_%s_%s_%s_Tasklist.xlsx",
		p.ClientName, p.IntegrationName, p.IntegrationNumber, p.Directionality)
}

// SanitizeFilename removes characters that are unsafe for filenames. The
// result never contains a path separator, so it stays inside the directory
// it is joined to.
func SanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

func buildSection(tasks []TemplateTask, r *strings.Replacer, budget int64) Section {
	if len(tasks) == 0 {
		return nil
	}

	out := make(Section, 0, len(tasks)+1)
	var sum int64
	for _, t := range tasks {
		hours := ceilHours(float64(budget) * t.HoursPct)
		sum += hours
		out = append(out, Task{
			RR:                       t.RR,
			ProductName:              r.Replace(t.ProductName),
			Role:                     t.Role,
			Milestone:                t.Milestone,
			Region:                   t.Region,
			Skills:                   t.Skills,
			AssignmentTasks:          r.Replace(t.AssignmentTasks),
			HoursPerRolePerMilestone: formatPercent(t.HoursPct),
			Duration:                 t.Duration,
			Hours:                    hours,
		})
	}

	return append(out, Task{Duration: TotalDuration, Hours: sum})
}

func placeholderReplacer(p TasklistParams) *strings.Replacer {
	return strings.NewReplacer(
		"<INSTITUTION NAME>", p.ClientName,
		"<INTEGRATION NAME>", p.IntegrationName,
		"<INTG-NUMBER>", p.IntegrationNumber,
		"<ERP>", p.ERPSystem,
		"<Bidirectional or Uni>", p.Directionality,
	)
}

// ceilHours rounds up to whole hours. Products such as 100*0.07 land a hair
// above the integer, so the value is first rounded to six decimals.
func ceilHours(h float64) int64 {
	return int64(math.Ceil(math.Round(h*1e6) / 1e6))
}

// formatPercent renders a fraction as a percentage, e.g. 0.125 -> "12.5%".
func formatPercent(frac float64) string {
	if frac <= 0 {
		return "0%"
	}
	pct := math.Round(frac*100*1e4) / 1e4
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}
