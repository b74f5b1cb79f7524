package marks

import (
	"bytes"
	"context"
	"testing"

	academicdto "uniacad-portal/internal/pkg/dto/academic"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type stubMarkReportClient struct {
	items []academicdto.MarkReportItem
	err   error
}

func (s *stubMarkReportClient) FindMarkReport(_ context.Context, _ string) ([]academicdto.MarkReportItem, error) {
	return s.items, s.err
}

func TestBuildMarksPage(t *testing.T) {
	t.Run("Rows Mirror The Upstream Report", func(t *testing.T) {
		uc := &markReportUsecase{
			MarkReportClient: &stubMarkReportClient{items: []academicdto.MarkReportItem{
				{StudentID: "ST001", StudentName: "Linh Tran", SubjectName: "Databases", Mark: 8.25, Status: "Passed"},
				{StudentID: "ST001", StudentName: "Linh Tran", SubjectName: "Networks", Mark: 3.5, Status: "Failed"},
			}},
			Log: zap.NewNop(),
		}

		page, err := uc.BuildMarksPage(context.Background(), "ST001")
		assert.NoError(t, err)
		assert.Equal(t, "Linh Tran", page.StudentName)
		assert.Len(t, page.Rows, 2)
		assert.Equal(t, "8.2", page.Rows[0].Mark)
		assert.Equal(t, "Failed", page.Rows[1].Status)
	})

	t.Run("Empty Report Yields An Empty Page", func(t *testing.T) {
		uc := &markReportUsecase{MarkReportClient: &stubMarkReportClient{}, Log: zap.NewNop()}

		page, err := uc.BuildMarksPage(context.Background(), "ST001")
		assert.NoError(t, err)
		assert.Empty(t, page.Rows)
		assert.Empty(t, page.StudentName)
	})

	t.Run("Upstream Error Propagates", func(t *testing.T) {
		uc := &markReportUsecase{
			MarkReportClient: &stubMarkReportClient{err: assert.AnError},
			Log:              zap.NewNop(),
		}

		page, err := uc.BuildMarksPage(context.Background(), "ST001")
		assert.Error(t, err)
		assert.Nil(t, page)
	})
}

func TestExportWorkbook(t *testing.T) {
	t.Run("Workbook Holds Header And Data Rows", func(t *testing.T) {
		uc := &markReportUsecase{
			MarkReportClient: &stubMarkReportClient{items: []academicdto.MarkReportItem{
				{StudentID: "ST001", StudentName: "Linh Tran", SubjectName: "Databases", Mark: 8.25, Status: "Passed"},
			}},
			Log: zap.NewNop(),
		}

		data, filename, err := uc.ExportWorkbook(context.Background(), "ST001")
		assert.NoError(t, err)
		assert.Equal(t, "mark-report-ST001.xlsx", filename)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		assert.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(markSheetName)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, markHeaders, rows[0])
		assert.Equal(t, "Databases", rows[1][2])
	})
}
