package academic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	academicdto "uniacad-portal/internal/pkg/dto/academic"
	"uniacad-portal/internal/pkg/exceptions"
)

type timetableClient struct {
	BaseUrl string
}

func NewTimetableClient(baseUrl string) contracts.TimetableClient {
	return &timetableClient{
		BaseUrl: baseUrl + constvars.AcademicPathTimetable,
	}
}

func (c *timetableClient) FindWeeklySessions(ctx context.Context, studentID string, start, end time.Time) ([]academicdto.SessionRecord, error) {
	url := fmt.Sprintf("%s?%s=%s&%s=%s",
		c.BaseUrl,
		constvars.URLQueryParamStart, start.Format(constvars.DateLayoutYYYYMMDD),
		constvars.URLQueryParamEnd, end.Format(constvars.DateLayoutYYYYMMDD),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(HeaderStudentID, studentID)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		return nil, exceptions.ErrGetAcademicResource(statusErr, constvars.ResourceTimetable)
	}

	var sessions []academicdto.SessionRecord
	err = json.NewDecoder(resp.Body).Decode(&sessions)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTimetable)
	}

	return sessions, nil
}
