package marks

import (
	"bytes"

	academicdto "uniacad-portal/internal/pkg/dto/academic"
	"uniacad-portal/internal/pkg/exceptions"

	"github.com/xuri/excelize/v2"
)

const markSheetName = "Mark Report"

var markHeaders = []string{"Student ID", "Student Name", "Subject", "Mark", "Status"}

// buildMarkWorkbook renders the report rows into an xlsx workbook with a
// bold header row and one line per subject.
func buildMarkWorkbook(items []academicdto.MarkReportItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(markSheetName)
	if err != nil {
		return nil, exceptions.ErrBuildWorkbook(err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, exceptions.ErrBuildWorkbook(err)
	}

	for col, header := range markHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(markSheetName, cell, header); err != nil {
			return nil, exceptions.ErrBuildWorkbook(err)
		}
		if err := f.SetCellStyle(markSheetName, cell, cell, headerStyle); err != nil {
			return nil, exceptions.ErrBuildWorkbook(err)
		}
	}

	for row, item := range items {
		values := []interface{}{item.StudentID, item.StudentName, item.SubjectName, item.Mark, item.Status}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(markSheetName, cell, value); err != nil {
				return nil, exceptions.ErrBuildWorkbook(err)
			}
		}
	}

	for col := range markHeaders {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(markSheetName, name, name, 22); err != nil {
			return nil, exceptions.ErrBuildWorkbook(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, exceptions.ErrBuildWorkbook(err)
	}
	return buf.Bytes(), nil
}
