package input

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dskane/keyhud/internal/binding"
)

// DefaultFlashDuration is how long a matched binding stays in the
// Triggered state before the machine settles back.
const DefaultFlashDuration = 600 * time.Millisecond

// Coordinator runs the state machine on a single logic goroutine fed by
// two bounded lanes. The Process* methods are safe to call from the
// capture callback: they enqueue without blocking and drop (counted) when
// a lane is full rather than stall input delivery.
type Coordinator struct {
	machine machine

	flashDuration time.Duration
	queueSize     int

	// priority carries modifier key events; events carries the rest.
	// Each lane preserves arrival order; the priority lane is drained
	// first.
	priority chan Event
	events   chan Event

	live    atomic.Bool
	running atomic.Bool

	mu   sync.Mutex // protects start/stop
	done chan struct{}
	wg   sync.WaitGroup

	// Stats
	enqueued  atomic.Uint64
	processed atomic.Uint64
	matched   atomic.Uint64
	dropped   atomic.Uint64
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithEffects sets the effects sink. Defaults to NopEffects.
func WithEffects(e Effects) Option {
	return func(c *Coordinator) {
		if e != nil {
			c.machine.effects = e
		}
	}
}

// WithRecorder sets the usage statistics recorder. Nil disables recording.
func WithRecorder(r Recorder) Option {
	return func(c *Coordinator) {
		c.machine.recorder = r
	}
}

// WithFlashDuration sets the trigger flash timeout.
func WithFlashDuration(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.flashDuration = d
		}
	}
}

// WithQueueSize sets the capacity of each event lane.
func WithQueueSize(size int) Option {
	return func(c *Coordinator) {
		if size > 0 {
			c.queueSize = size
		}
	}
}

// NewCoordinator creates a coordinator querying provider for the active
// index. It starts in non-live mode: events are accepted and discarded
// until SetLive(true).
func NewCoordinator(provider IndexProvider, opts ...Option) *Coordinator {
	c := &Coordinator{
		machine: machine{
			provider: provider,
			effects:  NopEffects{},
		},
		flashDuration: DefaultFlashDuration,
		queueSize:     1024,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start launches the logic goroutine.
func (c *Coordinator) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running.Load() {
		return ErrAlreadyRunning
	}

	c.priority = make(chan Event, c.queueSize)
	c.events = make(chan Event, c.queueSize)
	c.done = make(chan struct{})
	c.running.Store(true)

	c.wg.Add(1)
	go c.loop()
	return nil
}

// Stop shuts the logic goroutine down, waiting for it up to the context
// deadline. Queued events are discarded.
func (c *Coordinator) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.running.Load() {
		c.mu.Unlock()
		return ErrNotRunning
	}
	c.running.Store(false)
	close(c.done)
	c.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning returns true while the logic goroutine is up.
func (c *Coordinator) IsRunning() bool {
	return c.running.Load()
}

// SetLive enables or disables event processing. While not live the
// machine is inert: events are still drained from the lanes but ignored.
func (c *Coordinator) SetLive(live bool) {
	c.live.Store(live)
}

// IsLive reports whether events are being processed.
func (c *Coordinator) IsLive() bool {
	return c.live.Load()
}

// ProcessKeyDown enqueues a key press. Modifier keys take the priority
// lane so held-modifier overlays update immediately under load.
func (c *Coordinator) ProcessKeyDown(keyText string, mods binding.Modifier) {
	c.enqueue(Event{Kind: KeyDown, Key: keyText, Modifiers: mods, Time: time.Now()})
}

// ProcessKeyUp enqueues a key release.
func (c *Coordinator) ProcessKeyUp(keyText string, mods binding.Modifier) {
	c.enqueue(Event{Kind: KeyUp, Key: keyText, Modifiers: mods, Time: time.Now()})
}

// ProcessMouseDown enqueues a mouse button press.
func (c *Coordinator) ProcessMouseDown(keyText string, mods binding.Modifier) {
	c.enqueue(Event{Kind: MouseDown, Key: keyText, Modifiers: mods, Time: time.Now()})
}

// ProcessMouseUp enqueues a mouse button release. Releases carry no
// transition of their own but keep the modifier snapshot fresh.
func (c *Coordinator) ProcessMouseUp(keyText string, mods binding.Modifier) {
	c.enqueue(Event{Kind: MouseUp, Key: keyText, Modifiers: mods, Time: time.Now()})
}

func (c *Coordinator) enqueue(ev Event) {
	if !c.running.Load() {
		return
	}

	lane := c.events
	if (ev.Kind == KeyDown || ev.Kind == KeyUp) && IsModifierKey(ev.Key) {
		lane = c.priority
	}

	select {
	case lane <- ev:
		c.enqueued.Add(1)
	default:
		c.dropped.Add(1)
	}
}

// loop is the single logic goroutine. All machine transitions and all
// flash timer handling happen here.
func (c *Coordinator) loop() {
	defer c.wg.Done()

	flash := time.NewTimer(c.flashDuration)
	if !flash.Stop() {
		<-flash.C
	}
	flashArmed := false

	restart := func() {
		if flashArmed && !flash.Stop() {
			<-flash.C
		}
		flash.Reset(c.flashDuration)
		flashArmed = true
	}

	for {
		// Drain the priority lane before anything else.
		select {
		case ev := <-c.priority:
			c.handle(ev, restart)
			continue
		default:
		}

		select {
		case ev := <-c.priority:
			c.handle(ev, restart)
		case ev := <-c.events:
			c.handle(ev, restart)
		case <-flash.C:
			flashArmed = false
			if c.live.Load() {
				c.machine.flashExpired()
			}
		case <-c.done:
			if flashArmed && !flash.Stop() {
				<-flash.C
			}
			return
		}
	}
}

func (c *Coordinator) handle(ev Event, restartFlash func()) {
	if !c.live.Load() {
		return
	}
	c.processed.Add(1)

	switch ev.Kind {
	case KeyDown:
		if c.machine.keyDown(ev.Key, ev.Modifiers) {
			c.matched.Add(1)
			restartFlash()
		}
	case KeyUp:
		c.machine.keyUp(ev.Key, ev.Modifiers)
	case MouseDown:
		if c.machine.mouseDown(ev.Key, ev.Modifiers) {
			c.matched.Add(1)
			restartFlash()
		}
	case MouseUp:
		// No transition; the snapshot still updates.
		c.machine.mods = ev.Modifiers
	}
}

// Stats is a snapshot of coordinator counters.
type Stats struct {
	Enqueued  uint64
	Processed uint64
	Matched   uint64
	Dropped   uint64
}

// Stats returns current counters.
func (c *Coordinator) Stats() Stats {
	return Stats{
		Enqueued:  c.enqueued.Load(),
		Processed: c.processed.Load(),
		Matched:   c.matched.Load(),
		Dropped:   c.dropped.Load(),
	}
}
