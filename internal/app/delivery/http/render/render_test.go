package render

import (
	"net/http/httptest"
	"strings"
	"testing"

	"uniacad-portal/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func timetableFixture() *responses.TimetablePage {
	page := &responses.TimetablePage{
		WeekStart:    "2026-06-01",
		WeekEnd:      "2026-06-07",
		PrevWeekDate: "2026-05-25",
		NextWeekDate: "2026-06-08",
	}
	labels := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, label := range labels {
		page.Days[i] = responses.DayHeader{Label: label, Date: "01/06", IsToday: i == 3}
	}
	for i := 0; i < 8; i++ {
		page.Rows[i] = responses.GridRow{Label: "Slot " + string(rune('1'+i)), TimeRange: "07:00 - 08:30"}
	}
	page.Rows[2].Cells[4] = &responses.TimetableCell{
		SubjectName: "Databases",
		RoomID:      "B2-204",
		AttendLabel: "Not marked",
		AttendState: "not-marked",
	}
	return page
}

func TestNewRenderer(t *testing.T) {
	renderer, err := NewRenderer(zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, renderer)
}

func TestRenderTimetablePage(t *testing.T) {
	renderer, err := NewRenderer(zap.NewNop())
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	renderer.Page(rec, 200, "timetable", &PageData{
		Title:     "Timetable",
		ActiveTab: "timetable",
		Content:   timetableFixture(),
	})
	body := rec.Body.String()

	t.Run("Occupied Cell Carries Subject Tooltip And State Class", func(t *testing.T) {
		assert.Contains(t, body, "Databases")
		assert.Contains(t, body, "Room: B2-204")
		assert.Contains(t, body, "Status: Not marked")
		assert.Contains(t, body, `class="session not-marked"`)
	})

	t.Run("Empty Cells Render A Dash", func(t *testing.T) {
		// 8 rows x 7 days with a single occupied cell leaves 55 dashes.
		assert.Equal(t, 55, strings.Count(body, ">\n        -"))
	})

	t.Run("Today Column Is Highlighted In Header And Body", func(t *testing.T) {
		// One header cell plus one body cell per row.
		assert.Equal(t, 9, strings.Count(body, "today-cell"))
	})

	t.Run("Week Navigation Links Use The Adjacent Mondays", func(t *testing.T) {
		assert.Contains(t, body, "/portal/timetable?date=2026-05-25")
		assert.Contains(t, body, "/portal/timetable?date=2026-06-08")
	})
}

func TestRenderErrorBanner(t *testing.T) {
	renderer, err := NewRenderer(zap.NewNop())
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	renderer.ErrorPage(rec, "timetable", "Timetable", "Failed to load schedule.")

	assert.Equal(t, 200, rec.Code, "page routes degrade with a banner, not an error status")
	body := rec.Body.String()
	assert.Contains(t, body, "error-banner")
	assert.Contains(t, body, "Failed to load schedule.")
	assert.NotContains(t, body, "<table>", "no partial grid behind the banner")
}
