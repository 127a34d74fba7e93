package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinic-admin/internal/domain/apperror"
	domainRepo "clinic-admin/internal/domain/repository"
	"clinic-admin/internal/query"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type viewSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewViewSessionRepository(client *redis.Client, ttl time.Duration) domainRepo.ViewSessionRepository {
	return &viewSessionRepository{client: client, ttl: ttl}
}

func viewSessionKey(viewerID uuid.UUID, view string) string {
	return fmt.Sprintf("view_session:%s:%s", viewerID.String(), view)
}

func (r *viewSessionRepository) Get(ctx context.Context, viewerID uuid.UUID, view string) (*query.Session, error) {
	raw, err := r.client.Get(ctx, viewSessionKey(viewerID, view)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}

	var session query.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, apperror.Storage(fmt.Errorf("decode view session: %w", err))
	}
	if session.Facets == nil {
		session.Facets = map[query.FieldPath]string{}
	}
	return &session, nil
}

// Save refreshes the TTL on every write.
func (r *viewSessionRepository) Save(ctx context.Context, viewerID uuid.UUID, session *query.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return apperror.Storage(fmt.Errorf("encode view session: %w", err))
	}
	return apperror.Storage(r.client.Set(ctx, viewSessionKey(viewerID, session.View), raw, r.ttl).Err())
}

func (r *viewSessionRepository) Delete(ctx context.Context, viewerID uuid.UUID, view string) error {
	return apperror.Storage(r.client.Del(ctx, viewSessionKey(viewerID, view)).Err())
}
