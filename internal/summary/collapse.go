package summary

import (
	"log"
	"sync"
)

// ExpandKey is the persisted key shared by every summary panel.
const ExpandKey = "nomadExpandJobSummary"

// PrefStore is the persisted key-value store the collapse flag lives in.
type PrefStore interface {
	// Get returns the stored value and whether one exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// CollapseState is the expand/collapse state of a summary panel.
type CollapseState int

const (
	Expanded CollapseState = iota
	Collapsed
)

func (s CollapseState) String() string {
	if s == Collapsed {
		return "collapsed"
	}
	return "expanded"
}

// stored is the literal text written to the store for s.
func (s CollapseState) stored() string {
	if s == Collapsed {
		return "false"
	}
	return "true"
}

// Collapse owns the expanded flag of one panel. The flag is read from the
// store once and written back on every toggle.
type Collapse struct {
	store PrefStore
	state CollapseState
	err   error

	mu        sync.Mutex
	nextID    int
	observers []observer
}

type observer struct {
	id int
	fn func(CollapseState)
}

// NewCollapse reads the initial state from store. Only the exact value
// "false" starts collapsed; absent, unexpected or unreadable values expand.
func NewCollapse(store PrefStore) *Collapse {
	c := &Collapse{store: store, state: Expanded}
	if store == nil {
		return c
	}
	v, ok, err := store.Get(ExpandKey)
	if err != nil {
		log.Printf("summary: read %s: %v (defaulting to expanded)", ExpandKey, err)
		return c
	}
	if ok && v == "false" {
		c.state = Collapsed
	}
	return c
}

// State returns the current state.
func (c *Collapse) State() CollapseState { return c.state }

// Expanded reports whether the panel is expanded.
func (c *Collapse) Expanded() bool { return c.state == Expanded }

// Err returns the error of the last store write, if any.
func (c *Collapse) Err() error { return c.err }

// Toggle flips the state, writes it to the store and notifies observers.
// A failed write is logged and kept in Err; the flip is not undone.
func (c *Collapse) Toggle() CollapseState {
	if c.state == Expanded {
		c.state = Collapsed
	} else {
		c.state = Expanded
	}

	c.err = nil
	if c.store != nil {
		if err := c.store.Set(ExpandKey, c.state.stored()); err != nil {
			log.Printf("summary: write %s: %v", ExpandKey, err)
			c.err = err
		}
	}

	c.mu.Lock()
	obs := make([]observer, len(c.observers))
	copy(obs, c.observers)
	c.mu.Unlock()

	for _, o := range obs {
		o.fn(c.state)
	}
	return c.state
}

// Subscribe registers fn to run after each toggle, in registration order.
// The returned func removes it.
func (c *Collapse) Subscribe(fn func(CollapseState)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}
