package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateOrderCode builds a gateway order reference unique per attempt.
// The gateway requires a numeric-ish unique code; epoch millis keep it
// sortable, the uuid fragment keeps concurrent attempts apart.
func GenerateOrderCode() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func GenerateObjectName(prefix, studentID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, studentID, timestamp, fileExtension)
}
