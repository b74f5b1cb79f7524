package academic

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	academicdto "uniacad-portal/internal/pkg/dto/academic"
	"uniacad-portal/internal/pkg/exceptions"
)

type attendanceClient struct {
	BaseUrl string
}

func NewAttendanceClient(baseUrl string) contracts.AttendanceClient {
	return &attendanceClient{
		BaseUrl: baseUrl + constvars.AcademicPathAttendance,
	}
}

func (c *attendanceClient) FindAttendanceSummary(ctx context.Context, studentID string) ([]academicdto.AttendanceSummaryItem, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
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
		return nil, exceptions.ErrGetAcademicResource(statusErr, constvars.ResourceAttendance)
	}

	var items []academicdto.AttendanceSummaryItem
	err = json.NewDecoder(resp.Body).Decode(&items)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAttendance)
	}

	return items, nil
}
