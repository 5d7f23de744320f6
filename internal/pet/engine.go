package pet

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// Config holds the engine's timing and injectable collaborators.
type Config struct {
	DecayInterval time.Duration
	RegenInterval time.Duration
	// NeglectChance is the per-tick chance of a neglect message. Nil means
	// the default; point at 0 to turn neglect messages off.
	NeglectChance *float64

	Clock  clock.Clock
	Rand   Rand
	Logger *slog.Logger
}

// DefaultConfig returns the reference tick periods and a real clock.
func DefaultConfig() Config {
	chance := NeglectChance
	return Config{
		DecayInterval: DecayInterval,
		RegenInterval: RegenInterval,
		NeglectChance: &chance,
		Clock:         clock.New(),
		Rand:          NewRand(),
		Logger:        slog.Default(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.DecayInterval <= 0 {
		c.DecayInterval = def.DecayInterval
	}
	if c.RegenInterval <= 0 {
		c.RegenInterval = def.RegenInterval
	}
	if c.NeglectChance == nil || *c.NeglectChance < 0 {
		c.NeglectChance = def.NeglectChance
	}
	chance := *c.NeglectChance
	c.NeglectChance = &chance
	if c.Clock == nil {
		c.Clock = def.Clock
	}
	if c.Rand == nil {
		c.Rand = def.Rand
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	return c
}

type command struct {
	apply  func(Snapshot) Transition
	result Transition
	done   chan struct{}
}

// Engine owns a pet's snapshot. A single goroutine applies actions and
// ticks, so every read-modify-write is atomic with respect to the others.
// Readers load the latest snapshot without going through the queue.
type Engine struct {
	id     string
	cfg    Config
	logger *slog.Logger

	state atomic.Pointer[Snapshot]
	cmds  chan *command

	ctx         context.Context
	cancel      context.CancelFunc
	stopped     chan struct{}
	disposeOnce sync.Once

	mu      sync.Mutex
	subs    map[int]chan Snapshot
	nextSub int
	history []LogEntry
}

// New creates a pet with default stats and the given color and starts the
// decay and regeneration tickers.
func New(color string, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		id:      uuid.NewString(),
		cfg:     cfg,
		cmds:    make(chan *command),
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		subs:    make(map[int]chan Snapshot),
	}
	e.logger = cfg.Logger.With("engine", e.id)

	initial := NewSnapshot(color)
	e.state.Store(&initial)
	e.history = appendHistory(nil, LogEntry{
		Time:    initial.UpdatedAt,
		NewMood: initial.Mood,
		Cause:   "born",
	})

	// Tickers are created before the goroutine starts so a mock clock
	// advanced right after New still reaches them.
	decay := cfg.Clock.Ticker(cfg.DecayInterval)
	regen := cfg.Clock.Ticker(cfg.RegenInterval)
	go e.run(decay, regen)

	e.logger.Info("pet: engine started", "color", color,
		"decay_interval", cfg.DecayInterval, "regen_interval", cfg.RegenInterval)
	return e
}

// ID returns the engine's unique id.
func (e *Engine) ID() string {
	return e.id
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return *e.state.Load()
}

// Pet increases happiness and health and makes the pet happy.
func (e *Engine) Pet() {
	e.Apply(ActionPet, "")
}

// Jump trades energy for happiness. Blocked when energy is too low.
func (e *Engine) Jump() {
	e.Apply(ActionJump, "")
}

// Dance trades a lot of energy for happiness. Blocked when energy is too low.
func (e *Engine) Dance() {
	e.Apply(ActionDance, "")
}

// Recolor changes the pet's color, which makes it happier.
func (e *Engine) Recolor(color string) {
	e.Apply(ActionRecolor, color)
}

// Apply runs an action against the current state and reports what it did.
// color is only read for ActionRecolor. After Dispose it returns the zero
// Transition.
func (e *Engine) Apply(a Action, color string) Transition {
	return e.do(func(s Snapshot) Transition {
		if a == ActionRecolor {
			return ApplyRecolor(s, color, e.cfg.Rand)
		}
		return ApplyAction(s, a, e.cfg.Rand)
	})
}

// Subscribe returns a channel that receives the latest snapshot after every
// change. Slow readers only see the most recent one. The channel is closed by
// the returned cancel func or when the engine is disposed.
func (e *Engine) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctx.Err() != nil {
		close(ch)
		return ch, func() {}
	}

	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch

	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(sub)
		}
	}
}

// History returns the recorded mood transitions, oldest first.
func (e *Engine) History() []LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]LogEntry, len(e.history))
	copy(out, e.history)
	return out
}

// Disposed reports whether Dispose has been called.
func (e *Engine) Disposed() bool {
	return e.ctx.Err() != nil
}

// Dispose stops both tickers and waits for the engine goroutine to exit.
// Actions issued afterwards are ignored.
func (e *Engine) Dispose() {
	e.disposeOnce.Do(func() {
		e.cancel()
		<-e.stopped

		e.mu.Lock()
		for id, ch := range e.subs {
			delete(e.subs, id)
			close(ch)
		}
		e.mu.Unlock()

		e.logger.Info("pet: engine disposed")
	})
}

func (e *Engine) do(apply func(Snapshot) Transition) Transition {
	cmd := &command{apply: apply, done: make(chan struct{})}

	select {
	case e.cmds <- cmd:
	case <-e.ctx.Done():
		e.logger.Debug("pet: action ignored after dispose")
		return Transition{}
	}

	select {
	case <-cmd.done:
		return cmd.result
	case <-e.stopped:
		return Transition{}
	}
}

func (e *Engine) run(decay, regen *clock.Ticker) {
	defer close(e.stopped)
	defer decay.Stop()
	defer regen.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return

		case <-decay.C:
			if e.ctx.Err() != nil {
				return
			}
			e.commit(ApplyDecay(e.Snapshot(), e.cfg.Rand, *e.cfg.NeglectChance))

		case <-regen.C:
			if e.ctx.Err() != nil {
				return
			}
			e.commit(ApplyRegen(e.Snapshot()))

		case cmd := <-e.cmds:
			cmd.result = cmd.apply(e.Snapshot())
			e.commit(cmd.result)
			close(cmd.done)
		}
	}
}

func (e *Engine) commit(t Transition) {
	if !t.Changed {
		return
	}

	after := t.After
	e.state.Store(&after)

	e.logger.Debug("pet: transition",
		"cause", t.Cause,
		"performed", t.Performed,
		"classified", t.Classified,
		"mood", after.Mood,
		"happiness", after.Stats.Happiness,
		"energy", after.Stats.Energy,
		"health", after.Stats.Health)

	e.mu.Lock()
	defer e.mu.Unlock()

	if t.Before.Mood != after.Mood {
		e.history = appendHistory(e.history, LogEntry{
			Time:    after.UpdatedAt,
			OldMood: t.Before.Mood,
			NewMood: after.Mood,
			Cause:   t.Cause,
		})
		e.logger.Info("pet: mood changed", "from", t.Before.Mood, "to", after.Mood, "cause", t.Cause)
	}

	for _, ch := range e.subs {
		publish(ch, after)
	}
}

// publish replaces any unread snapshot with the newer one.
func publish(ch chan Snapshot, s Snapshot) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}
