package services_test

import (
	"errors"
	"testing"

	"tasklistgen/services"
	"tasklistgen/testhelpers"
)

func TestLoadTemplateFromStore_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	_, err := services.LoadTemplateFromStore(app)
	if !errors.Is(err, services.ErrEmptyTemplate) {
		t.Errorf("error = %v, want ErrEmptyTemplate", err)
	}
}

func TestLoadTemplateFromStore_OrdersBySectionAndSortOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestTemplateTask(t, app, services.SectionDevelopment, 2, "QA", 0.25)
	testhelpers.CreateTestTemplateTask(t, app, services.SectionAssessment, 2, "Analyst", 0.4)
	testhelpers.CreateTestTemplateTask(t, app, services.SectionDevelopment, 1, "Developer", 0.75)
	testhelpers.CreateTestTemplateTask(t, app, services.SectionAssessment, 1, "Architect", 0.6)

	tpl, err := services.LoadTemplateFromStore(app)
	if err != nil {
		t.Fatalf("LoadTemplateFromStore() error = %v", err)
	}

	roles := func(tasks []services.TemplateTask) []string {
		out := make([]string, len(tasks))
		for i, task := range tasks {
			out[i] = task.Role
		}
		return out
	}
	if got := roles(tpl.Assessment); len(got) != 2 || got[0] != "Architect" || got[1] != "Analyst" {
		t.Errorf("assessment roles = %v", got)
	}
	if got := roles(tpl.Development); len(got) != 2 || got[0] != "Developer" || got[1] != "QA" {
		t.Errorf("development roles = %v", got)
	}
	if tpl.Assessment[0].HoursPct != 0.6 {
		t.Errorf("HoursPct = %v, want 0.6", tpl.Assessment[0].HoursPct)
	}
}

func TestUpdateTemplatePercentage(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestTemplateTask(t, app, services.SectionAssessment, 1, "Architect", 0.6)

	task, err := services.UpdateTemplatePercentage(app, rec.Id, 0.35)
	if err != nil {
		t.Fatalf("UpdateTemplatePercentage() error = %v", err)
	}
	if task.HoursPct != 0.35 || task.ID != rec.Id {
		t.Errorf("updated task = %+v", task)
	}

	stored, err := app.FindRecordById(services.TemplateCollection, rec.Id)
	if err != nil {
		t.Fatal(err)
	}
	if stored.GetFloat("hours_pct") != 0.35 {
		t.Errorf("stored hours_pct = %v", stored.GetFloat("hours_pct"))
	}
}

func TestUpdateTemplatePercentage_Errors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestTemplateTask(t, app, services.SectionAssessment, 1, "Architect", 0.6)

	if _, err := services.UpdateTemplatePercentage(app, rec.Id, 1.5); err == nil {
		t.Error("expected error for percentage above 1")
	}
	if _, err := services.UpdateTemplatePercentage(app, "nonexistent", 0.5); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestStoredTemplate_BuildsTasklists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestTemplateTask(t, app, services.SectionAssessment, 1, "Architect", 1)
	testhelpers.CreateTestTemplateTask(t, app, services.SectionDevelopment, 1, "Developer", 1)

	tpl, err := services.LoadTemplateFromStore(app)
	if err != nil {
		t.Fatal(err)
	}
	a, d, err := services.BuildTasklists(tpl, testhelpers.ValidParams(services.SplitBoth), services.DefaultAssessmentShare)
	if err != nil {
		t.Fatalf("BuildTasklists() error = %v", err)
	}
	if a[0].ProductName != "Acme University assessment" {
		t.Errorf("ProductName = %q", a[0].ProductName)
	}
	if a[0].Hours != 30 || d[0].Hours != 70 {
		t.Errorf("hours = %d/%d, want 30/70", a[0].Hours, d[0].Hours)
	}
}
