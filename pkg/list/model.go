package list

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-programlist/pkg/catalog"
	"github.com/goliatone/go-programlist/pkg/program"
)

// Snapshot is an immutable copy of the model state handed to subscribers and
// renderers. Count is the total reported by the API and is independent of
// len(Programs); a paginated response carries only one page of results.
type Snapshot struct {
	Count    int
	Programs []program.Program
}

// Subscriber receives a Snapshot once per completed fetch.
type Subscriber func(Snapshot)

// Model owns the remote program list resource. The zero value is not usable;
// construct via New.
//
// All state transitions happen in two phases: attributes are mutated silently
// under the lock, then subscribers are notified once with the assembled
// snapshot. Concurrent GetList calls are permitted; a request-generation
// counter discards responses that complete after a newer request has already
// installed its payload.
type Model struct {
	loader catalog.Loader
	parser catalog.Parser
	source catalog.Source
	logger zerolog.Logger

	mu        sync.Mutex
	count     int
	results   *program.Collection
	extra     map[string]any
	started   uint64
	installed uint64

	subSeq int
	subs   map[int]Subscriber
}

// New constructs a Model. A loader and parser are required; the root
// programlist package wires the built-in implementations for callers that do
// not want to assemble the stages themselves.
func New(options ...Option) (*Model, error) {
	m := &Model{
		logger: zerolog.Nop(),
		subs:   make(map[int]Subscriber),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.source == nil {
		m.source = catalog.SourceFromURL(catalog.DefaultEndpoint)
	}
	if m.loader == nil {
		return nil, errors.New("list: loader is required")
	}
	if m.parser == nil {
		return nil, errors.New("list: parser is required")
	}
	return m, nil
}

// MustNew panics when construction fails. Useful for examples and tests.
func MustNew(options ...Option) *Model {
	m, err := New(options...)
	if err != nil {
		panic(err)
	}
	return m
}

// GetList fetches the list resource once. On success the payload is installed
// and subscribers are notified exactly once. On failure the error is logged
// and returned; state stays untouched and subscribers hear nothing. There is
// no retry.
func (m *Model) GetList(ctx context.Context) error {
	if ctx == nil {
		return errors.New("list: context is required")
	}

	gen := m.beginFetch()

	doc, err := m.loader.Load(ctx, m.source)
	if err != nil {
		err = fmt.Errorf("list: load %s: %w", m.source.Location(), err)
		m.logger.Error().Err(err).Str("source", m.source.Location()).Msg("program list fetch failed")
		return err
	}

	page, err := m.parser.Page(ctx, doc)
	if err != nil {
		err = fmt.Errorf("list: parse payload: %w", err)
		m.logger.Error().Err(err).Str("source", m.source.Location()).Msg("program list payload rejected")
		return err
	}

	installed, err := m.install(gen, page)
	if err != nil {
		m.logger.Error().Err(err).Msg("program list install failed")
		return err
	}
	if !installed {
		m.logger.Debug().Uint64("generation", gen).Msg("stale program list response discarded")
	}
	return nil
}

// SetData installs a decoded page: count and pass-through fields are merged
// silently, then the result set is replaced and subscribers are notified
// once. Calling it directly bypasses the staleness guard; GetList is the
// usual entry point.
func (m *Model) SetData(page program.Page) error {
	_, err := m.install(0, page)
	return err
}

func (m *Model) beginFetch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started++
	return m.started
}

// install merges the page under the lock and emits the single notification.
// gen 0 forces installation; any other generation must be newer than the one
// currently installed.
func (m *Model) install(gen uint64, page program.Page) (bool, error) {
	results, err := program.NewCollection(page.Results...)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	if gen != 0 && gen <= m.installed {
		m.mu.Unlock()
		return false, nil
	}
	if gen != 0 {
		m.installed = gen
	}

	// Silent phase: no notification per attribute.
	m.count = page.Count
	m.results = results
	if len(page.Extra) > 0 {
		if m.extra == nil {
			m.extra = make(map[string]any, len(page.Extra))
		}
		for key, value := range page.Extra {
			m.extra[key] = value
		}
	}

	snapshot := m.snapshotLocked()
	subscribers := make([]Subscriber, 0, len(m.subs))
	for _, fn := range m.subs {
		subscribers = append(subscribers, fn)
	}
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	return true, nil
}

// Subscribe registers fn for the per-fetch notification and returns an
// unsubscribe function. Unsubscribing twice is harmless.
func (m *Model) Subscribe(fn Subscriber) func() {
	if fn == nil {
		return func() {}
	}
	m.mu.Lock()
	m.subSeq++
	id := m.subSeq
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Snapshot returns a copy of the current model state.
func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Model) snapshotLocked() Snapshot {
	return Snapshot{
		Count:    m.count,
		Programs: m.results.Programs(),
	}
}

// Count returns the total result count reported by the last successful fetch.
func (m *Model) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// Results returns the currently installed collection, or nil before the
// first successful fetch. The collection is replaced wholesale on each fetch,
// never mutated, so callers may hold onto it.
func (m *Model) Results() *program.Collection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.results
}

// Extra returns a pass-through payload field retained from the last
// successful fetch, such as pagination cursors the model does not consume.
func (m *Model) Extra(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.extra[key]
	return value, ok
}
