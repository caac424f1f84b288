package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-ipd-engine/pkg/istdate"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrAdmissionInFlight is returned when a create for the same bed and date
// is already running.
var ErrAdmissionInFlight = errors.New("an admission for this bed and date is already being processed")

const (
	inflightKeyPrefix = "admission:inflight:"

	// Long enough to cover the availability check plus create against the
	// remote store; short enough that a crashed workflow frees the key on
	// its own.
	inflightTTL = 30 * time.Second
)

// InflightGuard keeps this service from submitting two concurrent creates
// for the same bed/date. It is a duplicate-submission guard only: the
// availability check and the create remain two separate calls to the remote
// store, which stays the arbiter of double bookings.
type InflightGuard interface {
	Acquire(ctx context.Context, roomBedsID int, allocationDate istdate.Date) error
	Release(ctx context.Context, roomBedsID int, allocationDate istdate.Date)
}

type redisInflightGuard struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewInflightGuard(redisClient *redis.Client, log *logrus.Logger) InflightGuard {
	return &redisInflightGuard{
		redisClient: redisClient,
		log:         log,
	}
}

func inflightKey(roomBedsID int, allocationDate istdate.Date) string {
	return fmt.Sprintf("%s%d:%s", inflightKeyPrefix, roomBedsID, allocationDate.ISO())
}

func (g *redisInflightGuard) Acquire(ctx context.Context, roomBedsID int, allocationDate istdate.Date) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	ok, err := g.redisClient.SetNX(opCtx, inflightKey(roomBedsID, allocationDate), 1, inflightTTL).Result()
	if err != nil {
		// Redis down degrades the guard, not the workflow.
		g.log.Warnf("In-flight guard unavailable, proceeding unguarded: %+v", err)
		return nil
	}
	if !ok {
		return ErrAdmissionInFlight
	}
	return nil
}

func (g *redisInflightGuard) Release(ctx context.Context, roomBedsID int, allocationDate istdate.Date) {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := g.redisClient.Del(opCtx, inflightKey(roomBedsID, allocationDate)).Err(); err != nil {
		g.log.Warnf("In-flight guard release failed, key expires in %s: %+v", inflightTTL, err)
	}
}
