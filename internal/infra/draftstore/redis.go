package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/flow"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:draft:"

// RedisStore keeps drafts as JSON with a sliding TTL: every save pushes
// the expiry out again.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, cfg config.Config) *RedisStore {
	return &RedisStore{client: client, ttl: cfg.Booking.DraftTTL}
}

// Save watches the key so a concurrent save or delete between the revision
// read and the write aborts the transaction.
func (s *RedisStore) Save(ctx context.Context, draft *booking.Draft) error {
	k := key(draft.ID)
	next := *draft
	next.Revision++
	payload, err := json.Marshal(&next)
	if err != nil {
		return errs.Wrap(err, "encode draft")
	}

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := storedRevision(ctx, tx, k)
		if err != nil {
			return err
		}
		if err := checkRevision(draft, stored); err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, s.ttl)
			return nil
		})
		return err
	}, k)
	switch {
	case err == nil:
		draft.Revision = next.Revision
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return errs.Wrapf(flow.ErrDraftConflict, "draft %s changed during save", draft.ID)
	case errs.Is(err, flow.ErrDraftConflict), errs.Is(err, flow.ErrDraftNotFound):
		return err
	}
	return errs.Wrapf(err, "redis set draft %s", draft.ID)
}

func (s *RedisStore) Load(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	payload, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.Wrapf(flow.ErrDraftNotFound, "draft %s", id)
		}
		return nil, errs.Wrapf(err, "redis get draft %s", id)
	}

	var draft booking.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, errs.Wrapf(err, "decode draft %s", id)
	}
	return &draft, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return errs.Wrapf(err, "redis del draft %s", id)
	}
	return nil
}

// storedRevision returns -1 when the key does not exist.
func storedRevision(ctx context.Context, tx *redis.Tx, k string) (int, error) {
	payload, err := tx.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return -1, nil
	}
	if err != nil {
		return 0, errs.Wrapf(err, "redis get %s", k)
	}
	var head struct {
		Revision int `json:"revision"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return 0, errs.Wrapf(err, "decode stored draft %s", k)
	}
	return head.Revision, nil
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}
