package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const maxAvatarSizeInBytes = 5 << 20

// ValidateImage checks the uploaded avatar's size and extension before it
// touches object storage.
func ValidateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return errors.New("no file uploaded")
	}

	if fileHeader.Size > maxAvatarSizeInBytes {
		return errors.New("file size exceeds the maximum limit of 5MB")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return nil
	}
	return errors.New("invalid file format, allowed formats are: .jpg, .jpeg, .png")
}
