package service

import (
	"context"
	"encoding/json"
	"time"

	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/internal/domain/gateway"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key for the cached room-capacity aggregate
	capacityOverviewKey = "capacity:overview"

	capacityCacheTTL = 5 * time.Minute

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second
)

// CapacityService serves the dashboard's room-occupancy counts. Reads hit
// the Redis cache first; every mutating admission operation triggers a
// Refresh so the counts stay current. Redis being down degrades to a direct
// store read, never an error the caller sees beyond the fetch itself.
type CapacityService interface {
	Overview(ctx context.Context) (entity.CapacityOverview, error)
	Refresh(ctx context.Context) error
}

type capacityService struct {
	redisClient *redis.Client
	store       gateway.CapacityStore
	log         *logrus.Logger
}

func NewCapacityService(redisClient *redis.Client, store gateway.CapacityStore, log *logrus.Logger) CapacityService {
	return &capacityService{
		redisClient: redisClient,
		store:       store,
		log:         log,
	}
}

func (s *capacityService) Overview(ctx context.Context) (entity.CapacityOverview, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	overview, err := s.store.GetRoomCapacityOverview(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, overview)
	return overview, nil
}

// Refresh re-reads the aggregate from the store and overwrites the cache.
// Called after every mutating operation; failures are logged by the caller
// and do not undo the mutation.
func (s *capacityService) Refresh(ctx context.Context) error {
	overview, err := s.store.GetRoomCapacityOverview(ctx)
	if err != nil {
		return err
	}
	s.writeCache(ctx, overview)
	return nil
}

func (s *capacityService) readCache(ctx context.Context) (entity.CapacityOverview, bool) {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(opCtx, capacityOverviewKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Capacity cache read failed, falling back to store: %+v", err)
		}
		return nil, false
	}

	var overview entity.CapacityOverview
	if err := json.Unmarshal(raw, &overview); err != nil {
		s.log.Warnf("Capacity cache entry corrupt, dropping: %+v", err)
		return nil, false
	}
	return overview, true
}

func (s *capacityService) writeCache(ctx context.Context, overview entity.CapacityOverview) {
	raw, err := json.Marshal(overview)
	if err != nil {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := s.redisClient.Set(opCtx, capacityOverviewKey, raw, capacityCacheTTL).Err(); err != nil {
		s.log.Warnf("Capacity cache write failed (non-fatal): %+v", err)
	}
}
