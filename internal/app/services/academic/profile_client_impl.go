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

type profileClient struct {
	BaseUrl string
}

func NewProfileClient(baseUrl string) contracts.ProfileClient {
	return &profileClient{
		BaseUrl: baseUrl + constvars.AcademicPathProfile,
	}
}

func (c *profileClient) FindProfile(ctx context.Context, studentID string) (*academicdto.StudentProfile, error) {
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
		return nil, exceptions.ErrGetAcademicResource(statusErr, constvars.ResourceProfile)
	}

	var envelope academicdto.Envelope
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceProfile)
	}

	if envelope.Error != constvars.EnvelopeErrorNone {
		envelopeErr := fmt.Errorf("error %d: %s", envelope.Error, envelope.Message)
		return nil, exceptions.ErrAcademicEnvelope(envelopeErr, constvars.ResourceProfile)
	}

	profile := new(academicdto.StudentProfile)
	err = json.Unmarshal(envelope.Data, profile)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return profile, nil
}
