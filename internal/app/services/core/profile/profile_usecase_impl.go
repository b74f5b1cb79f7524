package profile

import (
	"context"
	"mime/multipart"
	"sync"
	"time"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/dto/responses"
	"uniacad-portal/internal/pkg/exceptions"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	avatarObjectPrefix  = "avatar"
	avatarURLExpiryTime = 15 * time.Minute
)

type profileUsecase struct {
	ProfileClient    contracts.ProfileClient
	Storage          contracts.Storage
	AvatarBucketName string
	Log              *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	profileClient contracts.ProfileClient,
	storage contracts.Storage,
	avatarBucketName string,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		profileUsecaseInstance = &profileUsecase{
			ProfileClient:    profileClient,
			Storage:          storage,
			AvatarBucketName: avatarBucketName,
			Log:              logger,
		}
	})
	return profileUsecaseInstance
}

func (uc *profileUsecase) BuildProfilePage(ctx context.Context, studentID string) (*responses.ProfilePage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.BuildProfilePage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	student, err := uc.ProfileClient.FindProfile(ctx, studentID)
	if err != nil {
		uc.Log.Error("profileUsecase.BuildProfilePage error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	page := &responses.ProfilePage{
		StudentID:   student.StudentID,
		StudentName: student.StudentName,
		Email:       student.StudentEmail,
		Phone:       student.StudentPhone,
		DateOfBirth: student.StudentDoB,
		GenderLabel: GenderLabel(student.StudentGender),
		Address:     student.Address,
		StatusLabel: StatusLabel(student.StudentStatus),
	}

	avatarURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.AvatarBucketName, avatarObjectName(studentID), avatarURLExpiryTime)
	if err != nil {
		// A missing avatar is not worth failing the whole page over.
		uc.Log.Warn("profileUsecase.BuildProfilePage could not presign avatar url",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else {
		page.AvatarURL = avatarURL
	}

	return page, nil
}

func (uc *profileUsecase) UploadAvatar(ctx context.Context, studentID string, fileHeader *multipart.FileHeader) (*responses.AvatarData, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID),
	)

	if err := utils.ValidateImage(fileHeader); err != nil {
		uc.Log.Error("profileUsecase.UploadAvatar image rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	objectName := avatarObjectName(studentID)
	uploadedName, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.AvatarBucketName, objectName)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadAvatar error storing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.UploadAvatar stored object",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, uploadedName),
	)
	return &responses.AvatarData{ObjectName: uploadedName}, nil
}

// avatarObjectName keeps one avatar object per student so re-upload
// replaces the previous photo.
func avatarObjectName(studentID string) string {
	return avatarObjectPrefix + "_" + studentID
}
