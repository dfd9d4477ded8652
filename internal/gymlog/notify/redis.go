package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/gymlog/internal/gymlog/resttimer"
)

const (
	CountdownKey = "gymlog::rest::countdown"
	EventsChan   = "gymlog::rest::events"
)

type EventType string

const (
	EventShow    EventType = "show"
	EventCancel  EventType = "cancel"
	EventVibrate EventType = "vibrate"
)

// Event is what devices subscribed to EventsChan receive.
type Event struct {
	Type      EventType            `json:"type"`
	Alarm     *resttimer.RestAlarm `json:"alarm,omitempty"`
	PatternMs []int64              `json:"patternMs,omitempty"`
}

// RedisNotifier mirrors the rest countdown to devices: the running alarm is
// kept under CountdownKey until it ends, and every change is published on
// EventsChan.
type RedisNotifier struct {
	rdb *redis.Client
	now func() time.Time
}

var (
	_ resttimer.Notifier = (*RedisNotifier)(nil)
	_ resttimer.Haptic   = (*RedisNotifier)(nil)
)

func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{
		rdb: rdb,
		now: time.Now,
	}
}

func (n *RedisNotifier) Show(ctx context.Context, alarm resttimer.RestAlarm) error {
	alarmBytes, err := json.Marshal(alarm)
	if err != nil {
		return fmt.Errorf("marshal alarm: %w", err)
	}

	ttl := alarm.EndsAt.Sub(n.now())
	if ttl < time.Second {
		ttl = time.Second
	}

	var errs error
	if err := n.rdb.Set(ctx, CountdownKey, string(alarmBytes), ttl).Err(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("set countdown: %w", err))
	}
	errs = multierr.Append(errs, n.publish(ctx, Event{Type: EventShow, Alarm: &alarm}))

	log.Tracef("rest alarm shown, session %d, ends at %s", alarm.SessionID, alarm.EndsAt)
	return errs
}

func (n *RedisNotifier) Cancel(ctx context.Context) error {
	var errs error
	if err := n.rdb.Del(ctx, CountdownKey).Err(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("delete countdown: %w", err))
	}
	return multierr.Append(errs, n.publish(ctx, Event{Type: EventCancel}))
}

func (n *RedisNotifier) Pulse(ctx context.Context, pattern []time.Duration) error {
	patternMs := make([]int64, 0, len(pattern))
	for _, d := range pattern {
		patternMs = append(patternMs, d.Milliseconds())
	}
	return n.publish(ctx, Event{Type: EventVibrate, PatternMs: patternMs})
}

// Current returns the alarm of the running countdown, or nil.
func (n *RedisNotifier) Current(ctx context.Context) (*resttimer.RestAlarm, error) {
	alarmBytes, err := n.rdb.Get(ctx, CountdownKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get countdown: %w", err)
	}

	alarm := &resttimer.RestAlarm{}
	if err := json.Unmarshal(alarmBytes, alarm); err != nil {
		return nil, fmt.Errorf("unmarshal countdown: %w", err)
	}
	return alarm, nil
}

func (n *RedisNotifier) publish(ctx context.Context, event Event) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	if err := n.rdb.Publish(ctx, EventsChan, string(eventBytes)).Err(); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	return nil
}
