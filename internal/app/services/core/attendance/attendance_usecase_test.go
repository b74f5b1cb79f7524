package attendance

import (
	"context"
	"testing"

	academicdto "uniacad-portal/internal/pkg/dto/academic"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAttendanceClient struct {
	items []academicdto.AttendanceSummaryItem
	err   error
}

func (s *stubAttendanceClient) FindAttendanceSummary(_ context.Context, _ string) ([]academicdto.AttendanceSummaryItem, error) {
	return s.items, s.err
}

func TestBuildAttendancePage(t *testing.T) {
	t.Run("Rows Carry Counters And Rate", func(t *testing.T) {
		uc := &attendanceUsecase{
			AttendanceClient: &stubAttendanceClient{items: []academicdto.AttendanceSummaryItem{
				{SubjectName: "Databases", TotalSlots: 20, AttendedSlots: 15, AbsentSlots: 3, NotMarkedSlots: 2},
			}},
			Log: zap.NewNop(),
		}

		page, err := uc.BuildAttendancePage(context.Background(), "ST001")
		assert.NoError(t, err)
		assert.Len(t, page.Rows, 1)
		assert.Equal(t, 15, page.Rows[0].AttendedSlots)
		assert.Equal(t, "75.0%", page.Rows[0].AttendRate)
	})

	t.Run("Zero Total Slots Renders A Dash Rate", func(t *testing.T) {
		uc := &attendanceUsecase{
			AttendanceClient: &stubAttendanceClient{items: []academicdto.AttendanceSummaryItem{
				{SubjectName: "Thesis", TotalSlots: 0},
			}},
			Log: zap.NewNop(),
		}

		page, err := uc.BuildAttendancePage(context.Background(), "ST001")
		assert.NoError(t, err)
		assert.Equal(t, "-", page.Rows[0].AttendRate)
	})

	t.Run("Upstream Error Propagates", func(t *testing.T) {
		uc := &attendanceUsecase{
			AttendanceClient: &stubAttendanceClient{err: assert.AnError},
			Log:              zap.NewNop(),
		}

		page, err := uc.BuildAttendancePage(context.Background(), "ST001")
		assert.Error(t, err)
		assert.Nil(t, page)
	})
}
