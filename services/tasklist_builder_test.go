package services

import (
	"strings"
	"testing"
)

func testTemplate() Template {
	return Template{
		Assessment: []TemplateTask{
			{RR: "A1", ProductName: "<INSTITUTION NAME> Assessment", Role: "Architect",
				AssignmentTasks: "Assess <INTEGRATION NAME> (<INTG-NUMBER>) on <ERP>", HoursPct: 0.6, Duration: "2w"},
			{RR: "A2", ProductName: "<INSTITUTION NAME> Assessment", Role: "Analyst",
				AssignmentTasks: "Document the <Bidirectional or Uni> flow", HoursPct: 0.4, Duration: "1w"},
		},
		Development: []TemplateTask{
			{RR: "D1", ProductName: "<INSTITUTION NAME> <INTG-NUMBER>", Role: "Developer",
				AssignmentTasks: "Build <INTEGRATION NAME> for <INSTITUTION NAME>", HoursPct: 0.75, Duration: "4w"},
			{RR: "D2", ProductName: "<INSTITUTION NAME> <INTG-NUMBER>", Role: "QA",
				AssignmentTasks: "Test <INTEGRATION NAME>", HoursPct: 0.25, Duration: "2w"},
		},
	}
}

func testParams(split string) TasklistParams {
	return TasklistParams{
		ClientName:        "Acme University",
		IntegrationNumber: "INT-042",
		IntegrationName:   "Student Billing",
		ERPSystem:         "Banner",
		Directionality:    "Inbound",
		TotalHours:        100,
		HoursSplit:        split,
	}
}

func TestBuildTasklists_Both(t *testing.T) {
	a, d, err := BuildTasklists(testTemplate(), testParams(SplitBoth), DefaultAssessmentShare)
	if err != nil {
		t.Fatalf("BuildTasklists() error = %v", err)
	}

	// 30 assessment hours, 70 development hours.
	wantA := []int64{18, 12, 30}
	wantD := []int64{53, 18, 71}
	if len(a) != len(wantA) || len(d) != len(wantD) {
		t.Fatalf("got %d/%d rows, want %d/%d", len(a), len(d), len(wantA), len(wantD))
	}
	for i, h := range wantA {
		if a[i].Hours != h {
			t.Errorf("assessment[%d].Hours = %d, want %d", i, a[i].Hours, h)
		}
	}
	for i, h := range wantD {
		if d[i].Hours != h {
			t.Errorf("development[%d].Hours = %d, want %d", i, d[i].Hours, h)
		}
	}

	total := a[len(a)-1]
	if total != (Task{Duration: "Total", Hours: 30}) {
		t.Errorf("assessment total line = %+v", total)
	}
	if !d[len(d)-1].IsTotal() {
		t.Error("development does not end with a Total line")
	}
}

func TestBuildTasklists_SingleSection(t *testing.T) {
	a, d, err := BuildTasklists(testTemplate(), testParams(SplitAssessment), DefaultAssessmentShare)
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 0 {
		t.Errorf("development built for assessment split: %d rows", len(d))
	}
	if a[0].Hours != 60 || a[1].Hours != 40 || a[2].Hours != 100 {
		t.Errorf("assessment hours = %d/%d/%d", a[0].Hours, a[1].Hours, a[2].Hours)
	}

	a, d, err = BuildTasklists(testTemplate(), testParams(SplitDevelopment), DefaultAssessmentShare)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 0 {
		t.Errorf("assessment built for development split: %d rows", len(a))
	}
	if d[0].Hours != 75 || d[1].Hours != 25 {
		t.Errorf("development hours = %d/%d", d[0].Hours, d[1].Hours)
	}
}

func TestBuildTasklists_Placeholders(t *testing.T) {
	a, d, err := BuildTasklists(testTemplate(), testParams(SplitBoth), DefaultAssessmentShare)
	if err != nil {
		t.Fatal(err)
	}

	if a[0].ProductName != "Acme University Assessment" {
		t.Errorf("ProductName = %q", a[0].ProductName)
	}
	if a[0].AssignmentTasks != "Assess Student Billing (INT-042) on Banner" {
		t.Errorf("AssignmentTasks = %q", a[0].AssignmentTasks)
	}
	if a[1].AssignmentTasks != "Document the Inbound flow" {
		t.Errorf("AssignmentTasks = %q", a[1].AssignmentTasks)
	}
	if d[0].AssignmentTasks != "Build Student Billing for Acme University" {
		t.Errorf("AssignmentTasks = %q", d[0].AssignmentTasks)
	}
	for _, task := range append(a, d...) {
		if strings.Contains(task.ProductName+task.AssignmentTasks, "<") {
			t.Errorf("placeholder left in %+v", task)
		}
	}
}

func TestBuildTasklists_PercentStrings(t *testing.T) {
	a, _, err := BuildTasklists(testTemplate(), testParams(SplitAssessment), DefaultAssessmentShare)
	if err != nil {
		t.Fatal(err)
	}
	if a[0].HoursPerRolePerMilestone != "60%" || a[1].HoursPerRolePerMilestone != "40%" {
		t.Errorf("percent strings = %q, %q", a[0].HoursPerRolePerMilestone, a[1].HoursPerRolePerMilestone)
	}
	if a[2].HoursPerRolePerMilestone != "" {
		t.Errorf("total line percent = %q, want empty", a[2].HoursPerRolePerMilestone)
	}
}

func TestBuildTasklists_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TasklistParams)
	}{
		{"missing client", func(p *TasklistParams) { p.ClientName = "" }},
		{"missing integration number", func(p *TasklistParams) { p.IntegrationNumber = "" }},
		{"missing integration name", func(p *TasklistParams) { p.IntegrationName = "" }},
		{"missing erp", func(p *TasklistParams) { p.ERPSystem = "" }},
		{"zero hours", func(p *TasklistParams) { p.TotalHours = 0 }},
		{"negative hours", func(p *TasklistParams) { p.TotalHours = -5 }},
		{"unknown split", func(p *TasklistParams) { p.HoursSplit = "Half" }},
		{"unknown directionality", func(p *TasklistParams) { p.Directionality = "Sideways" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(SplitBoth)
			tt.mutate(&p)
			if _, _, err := BuildTasklists(testTemplate(), p, DefaultAssessmentShare); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBuildTasklists_ShareOutOfRange(t *testing.T) {
	if _, _, err := BuildTasklists(testTemplate(), testParams(SplitBoth), 1.2); err == nil {
		t.Error("expected error for share > 1")
	}
}

func TestCeilHours(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{100 * 0.07, 7},
		{0, 0},
		{7.2, 8},
		{29.999999999, 30},
		{30.4, 31},
	}
	for _, tt := range tests {
		if got := ceilHours(tt.in); got != tt.want {
			t.Errorf("ceilHours(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{-0.1, "0%"},
		{0.25, "25%"},
		{0.07, "7%"},
		{0.125, "12.5%"},
		{1, "100%"},
	}
	for _, tt := range tests {
		if got := formatPercent(tt.in); got != tt.want {
			t.Errorf("formatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultExportFilename(t *testing.T) {
	got := DefaultExportFilename(testParams(SplitBoth))
	want := "Acme University_Student Billing_INT-042_Inbound_Tasklist.xlsx"
	if got != want {
		t.Errorf("DefaultExportFilename() = %q, want %q", got, want)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Acme University_Tasklist.xlsx", "Acme-University_Tasklist.xlsx"},
		{"slashes to hyphens", "path/to/file", "path-to-file"},
		{"backslashes", "path\\to\\file", "path-to-file"},
		{"parent directory", "../x/Acme", "..-x-Acme"},
		{"colons", "file:name", "file-name"},
		{"quotes dropped", `a"b`, "ab"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
