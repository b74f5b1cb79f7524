package profile

import (
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	academicdto "uniacad-portal/internal/pkg/dto/academic"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubProfileClient struct {
	student *academicdto.StudentProfile
	err     error
}

func (s *stubProfileClient) FindProfile(_ context.Context, _ string) (*academicdto.StudentProfile, error) {
	return s.student, s.err
}

type stubStorage struct {
	presignedURL string
	presignErr   error
	uploadedName string
	uploadErr    error
}

func (s *stubStorage) UploadFile(_ context.Context, _ io.Reader, _ *multipart.FileHeader, _, objectName string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploadedName = objectName
	return objectName, nil
}

func (s *stubStorage) GetObjectUrlWithExpiryTime(_ context.Context, _, _ string, _ time.Duration) (string, error) {
	return s.presignedURL, s.presignErr
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Male", GenderLabel(0))
	assert.Equal(t, "Female", GenderLabel(1))
	assert.Equal(t, "Female", GenderLabel(7), "every non-zero code reads Female")
}

func TestStatusLabel(t *testing.T) {
	cases := map[int]string{
		0: "Enrolled",
		1: "On leave",
		2: "Suspended",
		3: "Dropped out",
		4: "Graduated",
		9: "Unknown",
	}
	for code, want := range cases {
		assert.Equal(t, want, StatusLabel(code))
	}
}

func TestBuildProfilePage(t *testing.T) {
	student := &academicdto.StudentProfile{
		StudentID:     "ST001",
		StudentName:   "Linh Tran",
		StudentEmail:  "linh@example.edu",
		StudentPhone:  "0901234567",
		StudentDoB:    "2004-03-15",
		StudentGender: 1,
		Address:       "12 Nguyen Trai",
		StudentStatus: 0,
	}

	t.Run("Codes Are Mapped To Labels", func(t *testing.T) {
		uc := &profileUsecase{
			ProfileClient: &stubProfileClient{student: student},
			Storage:       &stubStorage{presignedURL: "https://minio.local/avatars/avatar_ST001"},
			Log:           zap.NewNop(),
		}

		page, err := uc.BuildProfilePage(context.Background(), "ST001")
		assert.NoError(t, err)
		assert.Equal(t, "Female", page.GenderLabel)
		assert.Equal(t, "Enrolled", page.StatusLabel)
		assert.Equal(t, "https://minio.local/avatars/avatar_ST001", page.AvatarURL)
	})

	t.Run("Missing Avatar Does Not Fail The Page", func(t *testing.T) {
		uc := &profileUsecase{
			ProfileClient: &stubProfileClient{student: student},
			Storage:       &stubStorage{presignErr: assert.AnError},
			Log:           zap.NewNop(),
		}

		page, err := uc.BuildProfilePage(context.Background(), "ST001")
		assert.NoError(t, err)
		assert.Empty(t, page.AvatarURL)
		assert.Equal(t, "Linh Tran", page.StudentName)
	})

	t.Run("Upstream Error Propagates", func(t *testing.T) {
		uc := &profileUsecase{
			ProfileClient: &stubProfileClient{err: assert.AnError},
			Storage:       &stubStorage{},
			Log:           zap.NewNop(),
		}

		page, err := uc.BuildProfilePage(context.Background(), "ST001")
		assert.Error(t, err)
		assert.Nil(t, page)
	})
}

func TestUploadAvatar(t *testing.T) {
	t.Run("Oversized Or Foreign Files Are Rejected", func(t *testing.T) {
		uc := &profileUsecase{Storage: &stubStorage{}, Log: zap.NewNop()}

		_, err := uc.UploadAvatar(context.Background(), "ST001", &multipart.FileHeader{
			Filename: "resume.pdf",
			Size:     1024,
		})
		assert.Error(t, err)

		_, err = uc.UploadAvatar(context.Background(), "ST001", &multipart.FileHeader{
			Filename: "photo.png",
			Size:     50 << 20,
		})
		assert.Error(t, err)
	})
}
