package services

import (
	"bytes"
	"fmt"
)

// TasklistSheetName is the name of the only sheet in an exported tasklist.
const TasklistSheetName = "Tasklist"

// ExportTasklist writes the assessment and development sections to a new
// xlsx file at path. The file is written once, after every cell has been
// laid out; on error the destination is left as it was.
func ExportTasklist(assessment, development Section, path string) error {
	w := NewExcelSheetWriter()
	defer w.Close()

	return ExportTasklistWith(w, assessment, development, path)
}

// ExportTasklistWith lays out both sections on w and saves it to path.
func ExportTasklistWith(w SheetWriter, assessment, development Section, path string) error {
	if err := fillTasklistSheet(w, assessment, development); err != nil {
		return err
	}
	if err := w.SaveAs(path); err != nil {
		return fmt.Errorf("export tasklist: %w", err)
	}
	return nil
}

// GenerateTasklistExcel builds the same workbook as ExportTasklist and
// returns its contents instead of saving it.
func GenerateTasklistExcel(assessment, development Section) ([]byte, error) {
	w := NewExcelSheetWriter()
	defer w.Close()

	if err := fillTasklistSheet(w, assessment, development); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return nil, fmt.Errorf("export tasklist: %w", err)
	}
	return buf.Bytes(), nil
}

func fillTasklistSheet(w SheetWriter, assessment, development Section) error {
	if err := w.NewSheet(TasklistSheetName); err != nil {
		return fmt.Errorf("export tasklist: %w", err)
	}

	plan := PlanTasklistLayout(assessment, development)
	for _, c := range plan.Cells {
		if err := w.WriteCell(c.Row, c.Col, c.Value, c.Bold); err != nil {
			return fmt.Errorf("export tasklist: %w", err)
		}
	}
	return nil
}
