package sessionstore

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"uniacad-portal/internal/app/contracts"
	"uniacad-portal/internal/pkg/exceptions"
)

const sessionKeyFormat = "portal:session:%s"

type sessionRedisRepository struct {
	redis contracts.RedisRepository
}

func NewSessionRedisRepository(redis contracts.RedisRepository) contracts.SessionRepository {
	return &sessionRedisRepository{redis: redis}
}

func (repo *sessionRedisRepository) FindBySessionID(ctx context.Context, sessionID string) (*contracts.StudentSession, error) {
	data, err := repo.redis.Get(ctx, fmt.Sprintf(sessionKeyFormat, sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("session %s not present", sessionID))
	}

	session := new(contracts.StudentSession)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
