package academic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uniacad-portal/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestFindWeeklySessions(t *testing.T) {
	t.Run("Decodes Records And Forwards Identity And Window", func(t *testing.T) {
		var gotStudentID, gotStart, gotEnd string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotStudentID = r.Header.Get(HeaderStudentID)
			gotStart = r.URL.Query().Get(constvars.URLQueryParamStart)
			gotEnd = r.URL.Query().Get(constvars.URLQueryParamEnd)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`[{"startTime":"2026-06-01T07:00:00","subjectName":"Algebra","roomId":"C3","attendStatus":true}]`))
		}))
		defer server.Close()

		client := NewTimetableClient(server.URL)
		start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		records, err := client.FindWeeklySessions(context.Background(), "ST001", start, start.AddDate(0, 0, 7))

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "Algebra", records[0].SubjectName)
		assert.NotNil(t, records[0].AttendStatus)
		assert.True(t, *records[0].AttendStatus)

		assert.Equal(t, "ST001", gotStudentID)
		assert.Equal(t, "2026-06-01", gotStart)
		assert.Equal(t, "2026-06-08", gotEnd)
	})

	t.Run("Null Attendance Survives Decoding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"startTime":"2026-06-01T10:00:00","subjectName":"Physics","roomId":"A1","attendStatus":null}]`))
		}))
		defer server.Close()

		client := NewTimetableClient(server.URL)
		records, err := client.FindWeeklySessions(context.Background(), "ST001", time.Now(), time.Now())

		assert.NoError(t, err)
		assert.Nil(t, records[0].AttendStatus)
	})

	t.Run("Upstream 5xx Becomes An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewTimetableClient(server.URL)
		records, err := client.FindWeeklySessions(context.Background(), "ST001", time.Now(), time.Now())

		assert.Error(t, err)
		assert.Nil(t, records)
	})

	t.Run("Malformed Body Becomes An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"a list"`))
		}))
		defer server.Close()

		client := NewTimetableClient(server.URL)
		_, err := client.FindWeeklySessions(context.Background(), "ST001", time.Now(), time.Now())

		assert.Error(t, err)
	})
}
