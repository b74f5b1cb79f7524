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

type markReportClient struct {
	BaseUrl string
}

func NewMarkReportClient(baseUrl string) contracts.MarkReportClient {
	return &markReportClient{
		BaseUrl: baseUrl + constvars.AcademicPathMarkReport,
	}
}

func (c *markReportClient) FindMarkReport(ctx context.Context, studentID string) ([]academicdto.MarkReportItem, error) {
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
		return nil, exceptions.ErrGetAcademicResource(statusErr, constvars.ResourceMarkReport)
	}

	var items []academicdto.MarkReportItem
	err = json.NewDecoder(resp.Body).Decode(&items)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMarkReport)
	}

	return items, nil
}
