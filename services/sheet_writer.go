package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// SheetWriter is the spreadsheet capability the tasklist export drives.
// Rows and columns are zero-based.
type SheetWriter interface {
	NewSheet(name string) error
	WriteCell(row, col int, value any, bold bool) error
	Write(w io.Writer) error
	SaveAs(path string) error
	Close() error
}

// excelSheetWriter writes a single-sheet workbook with excelize.
type excelSheetWriter struct {
	f         *excelize.File
	sheet     string
	boldStyle int
}

// NewExcelSheetWriter returns a SheetWriter backed by a new in-memory
// excelize workbook.
func NewExcelSheetWriter() SheetWriter {
	return &excelSheetWriter{f: excelize.NewFile()}
}

// NewSheet renames the workbook's default sheet and creates the bold style
// used for emphasised cells.
func (w *excelSheetWriter) NewSheet(name string) error {
	defaultSheet := w.f.GetSheetName(0)
	if err := w.f.SetSheetName(defaultSheet, name); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}

	bold, err := w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create bold style: %w", err)
	}

	w.sheet = name
	w.boldStyle = bold
	return nil
}

func (w *excelSheetWriter) WriteCell(row, col int, value any, bold bool) error {
	if w.sheet == "" {
		return fmt.Errorf("write cell: no sheet created")
	}

	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Errorf("cell name (%d,%d): %w", row, col, err)
	}

	switch v := value.(type) {
	case string:
		err = w.f.SetCellStr(w.sheet, cell, v)
	case int64:
		err = w.f.SetCellInt(w.sheet, cell, v)
	case int:
		err = w.f.SetCellInt(w.sheet, cell, int64(v))
	default:
		err = fmt.Errorf("unsupported value type %T", value)
	}
	if err != nil {
		return fmt.Errorf("write cell %s: %w", cell, err)
	}

	if bold {
		if err := w.f.SetCellStyle(w.sheet, cell, cell, w.boldStyle); err != nil {
			return fmt.Errorf("style cell %s: %w", cell, err)
		}
	}
	return nil
}

func (w *excelSheetWriter) Write(out io.Writer) error {
	if err := w.f.Write(out); err != nil {
		return fmt.Errorf("write excel: %w", err)
	}
	return nil
}

// SaveAs writes the workbook to a temporary file next to path and renames it
// into place, so path is either left untouched or fully replaced.
func (w *excelSheetWriter) SaveAs(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tasklist-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// CreateTemp opens the file 0600. A replaced file keeps its mode.
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := w.f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write excel: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (w *excelSheetWriter) Close() error {
	return w.f.Close()
}
