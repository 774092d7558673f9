// Package inventory holds the device's system adapter set and derives the
// port plan the network stack configures from it.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lf-edge/eve-devmodel/api/config"
	"github.com/lf-edge/eve-devmodel/internal/logging"
	"google.golang.org/protobuf/proto"
)

var (
	// ErrAdapterNotFound indicates a requested adapter was not found.
	ErrAdapterNotFound = errors.New("adapter not found")
	// ErrAdapterInvalid indicates an adapter failed validation.
	ErrAdapterInvalid = errors.New("invalid adapter")
	// ErrAdapterConflict indicates the adapter set would contain dangling or
	// contradictory references between adapters.
	ErrAdapterConflict = errors.New("conflicting adapter references")
	// ErrAdapterInUse indicates an adapter is still referenced by a VLAN or bond.
	ErrAdapterInUse = errors.New("adapter is referenced by other adapters")
)

// MetricsRecorder receives count updates whenever the adapter set changes.
type MetricsRecorder interface {
	SetAdapterCounts(adapters, uplinks int)
}

// Filter narrows List results.
type Filter struct {
	// UplinksOnly keeps adapters flagged as management uplinks.
	UplinksOnly bool
}

// ApplyResult reports the outcome of a bulk Apply.
type ApplyResult struct {
	Applied int
	Removed int
}

// Option customises Inventory construction.
type Option func(*Inventory)

// WithMetricsRecorder attaches an optional metrics recorder for adapter counts.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(inv *Inventory) {
		inv.metrics = m
	}
}

// Inventory is a thread-safe store of SystemAdapter values keyed by name.
// Stored values are cloned on the way in and out, so callers never share
// memory with the store.
type Inventory struct {
	mu       sync.RWMutex
	adapters map[string]*config.SystemAdapter

	log     logging.Logger
	metrics MetricsRecorder
}

// New returns an empty inventory.
func New(log logging.Logger, opts ...Option) *Inventory {
	if log == nil {
		log = logging.Noop()
	}
	inv := &Inventory{
		adapters: make(map[string]*config.SystemAdapter),
		log:      log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(inv)
		}
	}
	inv.updateMetricsLocked()
	return inv
}

// Put creates or replaces the adapter with a's name.
func (inv *Inventory) Put(ctx context.Context, a *config.SystemAdapter) (*config.SystemAdapter, error) {
	if err := ValidateAdapter(a); err != nil {
		return nil, err
	}
	ctx, reqLog := logging.WithRequestLogger(ctx, inv.log)

	inv.mu.Lock()
	defer inv.mu.Unlock()

	next := inv.copyLocked()
	next[a.GetName()] = clone(a)
	if err := validateReferences(next); err != nil {
		return nil, err
	}
	_, replaced := inv.adapters[a.GetName()]
	inv.adapters = next
	inv.updateMetricsLocked()

	reqLog.Debug(ctx, "adapter stored",
		logging.String("entity_type", "adapter"),
		logging.String("operation", "put"),
		logging.String("name", a.GetName()),
		logging.String("type", a.GetAllocDetails().GetAType().String()),
		logging.Bool("replaced", replaced),
	)
	return clone(a), nil
}

// Get returns a copy of the named adapter.
func (inv *Inventory) Get(name string) (*config.SystemAdapter, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	a, ok := inv.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAdapterNotFound, name)
	}
	return clone(a), nil
}

// List returns copies of the adapters matching f, sorted by name.
func (inv *Inventory) List(f Filter) []*config.SystemAdapter {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]*config.SystemAdapter, 0, len(inv.adapters))
	for _, name := range sortedNames(inv.adapters) {
		a := inv.adapters[name]
		if f.UplinksOnly && !a.GetUplink() {
			continue
		}
		out = append(out, clone(a))
	}
	return out
}

// Delete removes the named adapter. Adapters still used as a VLAN underlay
// or bond member cannot be deleted.
func (inv *Inventory) Delete(ctx context.Context, name string) error {
	ctx, reqLog := logging.WithRequestLogger(ctx, inv.log)

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.adapters[name]; !ok {
		return fmt.Errorf("%w: %q", ErrAdapterNotFound, name)
	}
	if refs := referencedBy(inv.adapters, name); len(refs) > 0 {
		return fmt.Errorf("%w: %q used by %s", ErrAdapterInUse, name, strings.Join(refs, ", "))
	}
	delete(inv.adapters, name)
	inv.updateMetricsLocked()

	reqLog.Debug(ctx, "adapter deleted",
		logging.String("entity_type", "adapter"),
		logging.String("operation", "delete"),
		logging.String("name", name),
	)
	return nil
}

// Apply upserts adapters as one unit. With replace set, adapters absent from
// the batch are removed. Either the whole batch lands or nothing changes.
func (inv *Inventory) Apply(ctx context.Context, adapters []*config.SystemAdapter, replace bool) (ApplyResult, error) {
	if err := validateBatch(adapters); err != nil {
		return ApplyResult{}, err
	}
	ctx, reqLog := logging.WithRequestLogger(ctx, inv.log)

	inv.mu.Lock()
	defer inv.mu.Unlock()

	var next map[string]*config.SystemAdapter
	if replace {
		next = make(map[string]*config.SystemAdapter, len(adapters))
	} else {
		next = inv.copyLocked()
	}
	for _, a := range adapters {
		next[a.GetName()] = clone(a)
	}
	if err := validateReferences(next); err != nil {
		return ApplyResult{}, err
	}

	res := ApplyResult{Applied: len(adapters)}
	if replace {
		for name := range inv.adapters {
			if _, kept := next[name]; !kept {
				res.Removed++
			}
		}
	}
	inv.adapters = next
	inv.updateMetricsLocked()

	reqLog.Debug(ctx, "adapters applied",
		logging.String("entity_type", "adapter"),
		logging.String("operation", "apply"),
		logging.Bool("replace", replace),
		logging.Int("applied", res.Applied),
		logging.Int("removed", res.Removed),
	)
	return res, nil
}

// Count returns the number of stored adapters.
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.adapters)
}

func (inv *Inventory) copyLocked() map[string]*config.SystemAdapter {
	next := make(map[string]*config.SystemAdapter, len(inv.adapters)+1)
	for name, a := range inv.adapters {
		next[name] = a
	}
	return next
}

func (inv *Inventory) updateMetricsLocked() {
	if inv == nil || inv.metrics == nil {
		return
	}
	uplinks := 0
	for _, a := range inv.adapters {
		if a.GetUplink() {
			uplinks++
		}
	}
	inv.metrics.SetAdapterCounts(len(inv.adapters), uplinks)
}

func clone(a *config.SystemAdapter) *config.SystemAdapter {
	return proto.Clone(a).(*config.SystemAdapter)
}
