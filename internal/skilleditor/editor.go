// Package skilleditor keeps optimistic skill levels in front of a slow store.
//
// Every key has its own debounce timer. Input shows the new level at once and
// restarts the timer. When the timer fires, the newest level is committed and
// the whole list is reloaded from the store. A failed commit reverts the key
// to the last stored value and keeps the error for display. Commits for one
// key never overlap: a timer firing during an in-flight commit is replayed
// when that commit returns, so the store ends on the last input.
package skilleditor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

const DefaultDelay = 500 * time.Millisecond

var (
	ErrLevelOutOfRange = errors.New("skill level must be between 0 and 100")
	ErrClosed          = errors.New("skill editor is closed")
)

// Key identifies a slider. Names are unique per category.
type Key struct {
	Category string
	Name     string
}

func (k Key) String() string {
	return k.Category + "::" + k.Name
}

type State int

const (
	Synced State = iota
	Pending
	Committing
	Reverted
)

func (s State) String() string {
	switch s {
	case Synced:
		return "synced"
	case Pending:
		return "pending"
	case Committing:
		return "committing"
	case Reverted:
		return "reverted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Committer persists one level and reloads the full list.
type Committer interface {
	Commit(ctx context.Context, key Key, level int) error
	Reload(ctx context.Context) (map[Key]int, error)
}

// Timer is the part of *time.Timer the editor uses.
type Timer interface {
	Stop() bool
}

// View is what a slider should show right now.
type View struct {
	Key   Key
	Level int
	// Stored is the last level known to be in the store.
	Stored    int
	HasStored bool
	State     State
	Err       error
}

type entry struct {
	stored        int
	hasStored     bool
	optimistic    int
	hasOptimistic bool
	state         State
	err           error

	timer    Timer
	gen      uint64
	inflight bool
	dirty    bool
}

type Editor struct {
	mu        sync.Mutex
	committer Committer
	delay     time.Duration
	afterFunc func(time.Duration, func()) Timer
	baseCtx   context.Context
	onError   func(Key, error)
	entries   map[Key]*entry
	closed    bool
	wg        sync.WaitGroup
}

type Option func(*Editor)

func WithDelay(d time.Duration) Option {
	return func(e *Editor) {
		if d > 0 {
			e.delay = d
		}
	}
}

// WithAfterFunc swaps the timer source, e.g. for a manual clock in tests.
func WithAfterFunc(f func(time.Duration, func()) Timer) Option {
	return func(e *Editor) { e.afterFunc = f }
}

// WithContext sets the context passed to the Committer.
func WithContext(ctx context.Context) Option {
	return func(e *Editor) { e.baseCtx = ctx }
}

// WithErrorHandler is called outside the lock whenever a commit fails.
func WithErrorHandler(f func(Key, error)) Option {
	return func(e *Editor) { e.onError = f }
}

func New(c Committer, opts ...Option) *Editor {
	e := &Editor{
		committer: c,
		delay:     DefaultDelay,
		afterFunc: func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) },
		baseCtx:   context.Background(),
		entries:   make(map[Key]*entry),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load fetches the stored levels.
func (e *Editor) Load(ctx context.Context) error {
	values, err := e.committer.Reload(ctx)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.applyStored(values)
	e.mu.Unlock()
	return nil
}

// Input records a slider movement and (re)starts the key's debounce timer.
func (e *Editor) Input(key Key, level int) (View, error) {
	if level < 0 || level > 100 {
		return View{}, ErrLevelOutOfRange
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return View{}, ErrClosed
	}

	en := e.entry(key)
	en.optimistic = level
	en.hasOptimistic = true
	en.state = Pending
	en.err = nil
	en.gen++
	if en.timer != nil {
		en.timer.Stop()
	}
	gen := en.gen
	en.timer = e.afterFunc(e.delay, func() { e.fire(key, gen) })

	return e.view(key, en), nil
}

// View returns the current display for key.
func (e *Editor) View(key Key) (View, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	en, ok := e.entries[key]
	if !ok {
		return View{}, false
	}
	return e.view(key, en), true
}

// Views returns every visible key sorted by category then name.
func (e *Editor) Views() []View {
	e.mu.Lock()
	defer e.mu.Unlock()

	views := make([]View, 0, len(e.entries))
	for k, en := range e.entries {
		if !en.hasStored && !en.hasOptimistic && en.state != Reverted {
			continue
		}
		views = append(views, e.view(k, en))
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Key.Category != views[j].Key.Category {
			return views[i].Key.Category < views[j].Key.Category
		}
		return views[i].Key.Name < views[j].Key.Name
	})
	return views
}

// Close stops pending timers and waits for in-flight commits. Pending
// levels that never reached their timer are dropped.
func (e *Editor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	for _, en := range e.entries {
		if en.timer != nil {
			en.timer.Stop()
			en.timer = nil
		}
	}
	e.mu.Unlock()

	e.wg.Wait()
}

func (e *Editor) entry(key Key) *entry {
	en, ok := e.entries[key]
	if !ok {
		en = &entry{}
		e.entries[key] = en
	}
	return en
}

func (e *Editor) view(key Key, en *entry) View {
	v := View{
		Key:       key,
		Level:     en.stored,
		Stored:    en.stored,
		HasStored: en.hasStored,
		State:     en.state,
		Err:       en.err,
	}
	if en.hasOptimistic {
		v.Level = en.optimistic
	}
	return v
}

// applyStored must be called with mu held.
func (e *Editor) applyStored(values map[Key]int) {
	for k, en := range e.entries {
		if _, ok := values[k]; !ok {
			en.hasStored = false
			en.stored = 0
		}
	}
	for k, level := range values {
		en := e.entry(k)
		en.stored = level
		en.hasStored = true
	}
}

func (e *Editor) fire(key Key, gen uint64) {
	e.mu.Lock()
	en, ok := e.entries[key]
	if e.closed || !ok || en.gen != gen {
		// Stop lost the race with an already-firing timer
		e.mu.Unlock()
		return
	}
	en.timer = nil
	if en.inflight {
		en.dirty = true
		e.mu.Unlock()
		return
	}
	en.inflight = true
	en.state = Committing
	level := en.optimistic
	e.wg.Add(1)
	e.mu.Unlock()

	e.commitLoop(key, gen, level)
}

func (e *Editor) commitLoop(key Key, gen uint64, level int) {
	defer e.wg.Done()

	for {
		err := e.committer.Commit(e.baseCtx, key, level)
		var values map[Key]int
		var reloadErr error
		if err == nil {
			values, reloadErr = e.committer.Reload(e.baseCtx)
		}

		e.mu.Lock()
		en := e.entries[key]
		switch {
		case err == nil && reloadErr == nil:
			e.applyStored(values)
		case err == nil:
			en.stored = level
			en.hasStored = true
		}

		if en.gen == gen {
			en.hasOptimistic = false
			if err != nil {
				en.state = Reverted
				en.err = err
			} else {
				en.state = Synced
				en.err = nil
			}
		}

		if en.dirty && en.timer == nil && !e.closed {
			en.dirty = false
			gen = en.gen
			level = en.optimistic
			en.state = Committing
			e.mu.Unlock()
			e.notify(key, err)
			continue
		}
		en.dirty = false
		en.inflight = false
		e.mu.Unlock()
		e.notify(key, err)
		return
	}
}

func (e *Editor) notify(key Key, err error) {
	if err != nil && e.onError != nil {
		e.onError(key, err)
	}
}
