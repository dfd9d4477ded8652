package resttimer

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
)

const (
	DefaultRestSeconds   = 90
	DefaultExtendSeconds = 90

	DefaultTickInterval   = time.Second
	DefaultExpiredDisplay = 2 * time.Second

	sideEffectTimeout = 5 * time.Second
)

// State can be one of:
//   - HIDDEN
//   - RUNNING
//   - EXPIRED (shown briefly after reaching zero, then HIDDEN)
type State string

const (
	StateHidden  State = "HIDDEN"
	StateRunning State = "RUNNING"
	StateExpired State = "EXPIRED"
)

type Snapshot struct {
	State            State `json:"state"`
	RemainingSeconds int   `json:"remainingSeconds"`
	TotalSeconds     int   `json:"totalSeconds"`
	Visible          bool  `json:"visible"`
	SessionID        int64 `json:"sessionId,omitempty"`
}

type Config struct {
	TickInterval   time.Duration
	ExpiredDisplay time.Duration
}

type sideEffect struct {
	channel string
	run     func(ctx context.Context) error
}

// Coordinator runs the rest countdown. Notifier and haptic calls are
// queued and executed in order on a separate goroutine: their failures are
// logged and counted, timer transitions never wait for them.
type Coordinator struct {
	notifier       Notifier
	haptic         Haptic
	metricsManager *metrics.Manager
	tickInterval   time.Duration
	expiredDisplay time.Duration
	now            func() time.Time

	mu        sync.Mutex
	state     State
	remaining int
	total     int
	sessionID int64
	// generation invalidates countdown goroutines of superseded timers
	generation uint64
	stop       chan struct{}
	closed     bool

	effectsMu    sync.Mutex
	effects      []sideEffect
	effectsReady chan struct{}
	done         chan struct{}

	wg sync.WaitGroup
}

func NewCoordinator(notifier Notifier, haptic Haptic, metricsManager *metrics.Manager, cfg Config) *Coordinator {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.ExpiredDisplay <= 0 {
		cfg.ExpiredDisplay = DefaultExpiredDisplay
	}

	c := &Coordinator{
		notifier:       notifier,
		haptic:         haptic,
		metricsManager: metricsManager,
		tickInterval:   cfg.TickInterval,
		expiredDisplay: cfg.ExpiredDisplay,
		now:            time.Now,
		state:          StateHidden,
		effectsReady:   make(chan struct{}, 1),
		done:           make(chan struct{}),
	}

	c.wg.Add(1)
	go c.runSideEffects()

	return c
}

// Start (re)starts the countdown, superseding any running timer.
func (c *Coordinator) Start(sessionID int64, seconds int) {
	if seconds <= 0 {
		seconds = DefaultRestSeconds
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.stopCountdown()
	c.state = StateRunning
	c.remaining = seconds
	c.total = seconds
	c.sessionID = sessionID
	c.startCountdown()

	c.showAlarm()
	c.count(metrics.TimerStarted)
	log.Tracef("rest timer started: %d s, session %d", seconds, sessionID)
}

// Extend adds seconds to a visible timer. An expired timer starts
// counting down again. Extending a hidden timer does nothing.
func (c *Coordinator) Extend(seconds int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seconds <= 0 || c.state == StateHidden {
		return c.snapshot()
	}

	c.remaining += seconds
	c.total += seconds
	if c.state == StateExpired {
		c.stopCountdown()
		c.state = StateRunning
		c.startCountdown()
	}

	c.showAlarm()
	c.count(metrics.TimerExtended)
	return c.snapshot()
}

// Dismiss hides the timer from any state and cancels the device countdown.
func (c *Coordinator) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	wasVisible := c.state != StateHidden
	c.stopCountdown()
	c.hide()

	c.enqueue(metrics.ChannelNotifier, c.notifier.Cancel)
	if wasVisible {
		c.count(metrics.TimerDismissed)
	}
}

func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Close stops the countdown, flushes queued side effects and waits for all
// goroutines to exit.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopCountdown()
	c.hide()
	c.mu.Unlock()

	close(c.done)
	c.wg.Wait()
}

func (c *Coordinator) snapshot() Snapshot {
	s := Snapshot{
		State:            c.state,
		RemainingSeconds: c.remaining,
		TotalSeconds:     c.total,
		Visible:          c.state != StateHidden,
	}
	if s.Visible {
		s.SessionID = c.sessionID
	}
	return s
}

func (c *Coordinator) hide() {
	c.state = StateHidden
	c.remaining = 0
	c.total = 0
}

// startCountdown must be called with mu held.
func (c *Coordinator) startCountdown() {
	c.generation++
	c.stop = make(chan struct{})
	c.wg.Add(1)
	go c.countdown(c.generation, c.stop)
}

// stopCountdown must be called with mu held.
func (c *Coordinator) stopCountdown() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.generation++
}

func (c *Coordinator) countdown(generation uint64, stop <-chan struct{}) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for expired := false; !expired; {
		select {
		case <-stop:
			return
		case <-ticker.C:
			var stale bool
			expired, stale = c.tick(generation)
			if stale {
				return
			}
		}
	}

	display := time.NewTimer(c.expiredDisplay)
	defer display.Stop()
	select {
	case <-stop:
	case <-display.C:
		c.hideExpired(generation)
	}
}

func (c *Coordinator) tick(generation uint64) (expired, stale bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || c.state != StateRunning {
		return false, true
	}

	c.remaining--
	if c.remaining > 0 {
		return false, false
	}

	c.remaining = 0
	c.state = StateExpired
	c.enqueue(metrics.ChannelHaptic, func(ctx context.Context) error {
		return c.haptic.Pulse(ctx, CompletionPattern)
	})
	c.enqueue(metrics.ChannelNotifier, c.notifier.Cancel)
	c.count(metrics.TimerExpired)
	log.Tracef("rest timer expired, session %d", c.sessionID)

	return true, false
}

func (c *Coordinator) hideExpired(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || c.state != StateExpired {
		return
	}
	c.hide()
}

// showAlarm must be called with mu held.
func (c *Coordinator) showAlarm() {
	alarm := RestAlarm{
		SessionID:    c.sessionID,
		EndsAt:       c.now().Add(time.Duration(c.remaining) * time.Second),
		TotalSeconds: c.total,
	}
	c.enqueue(metrics.ChannelNotifier, func(ctx context.Context) error {
		return c.notifier.Show(ctx, alarm)
	})
}

func (c *Coordinator) count(event string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterRestTimer.WithLabelValues(event).Inc()
	}
}

func (c *Coordinator) enqueue(channel string, run func(ctx context.Context) error) {
	c.effectsMu.Lock()
	c.effects = append(c.effects, sideEffect{channel: channel, run: run})
	c.effectsMu.Unlock()

	select {
	case c.effectsReady <- struct{}{}:
	default:
	}
}

func (c *Coordinator) runSideEffects() {
	defer c.wg.Done()
	for {
		select {
		case <-c.effectsReady:
			c.drainSideEffects()
		case <-c.done:
			c.drainSideEffects()
			return
		}
	}
}

func (c *Coordinator) drainSideEffects() {
	for {
		c.effectsMu.Lock()
		if len(c.effects) == 0 {
			c.effectsMu.Unlock()
			return
		}
		effect := c.effects[0]
		c.effects = c.effects[1:]
		c.effectsMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		err := effect.run(ctx)
		cancel()
		if err != nil {
			log.Errorf("rest timer %s failed: %s", effect.channel, err)
			if c.metricsManager != nil {
				c.metricsManager.CounterSideChannelFailures.WithLabelValues(effect.channel).Inc()
			}
		}
	}
}
