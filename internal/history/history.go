// Package history keeps a bounded, most-recent-first cache of completed
// analyses for the lifetime of the process.
package history

import (
	"time"

	"noticelens/internal/api"
	"noticelens/internal/document"
)

// DefaultCapacity is the number of past analyses kept.
const DefaultCapacity = 10

// Entry is one completed analysis. Entries are never mutated after
// Prepend; they leave the cache only through capacity eviction.
type Entry struct {
	ID      int64
	Summary api.Summary
	Doc     *document.Handle
}

// Cache is a capacity-bounded MRU list. It is owned and mutated by the
// workflow model only; no locking is needed under Bubble Tea's
// single-threaded update loop.
type Cache struct {
	capacity int
	entries  []Entry
	lastID   int64
}

// New returns an empty cache. A non-positive capacity falls back to
// DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{capacity: capacity}
}

// Prepend stores a completed analysis as the most recent entry, evicting
// the oldest once capacity is exceeded. Eviction releases the evicted
// entry's document copy. The same document analyzed twice yields two
// independent entries.
func (c *Cache) Prepend(summary api.Summary, doc *document.Handle) Entry {
	id := time.Now().UnixNano()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	e := Entry{ID: id, Summary: summary, Doc: doc}
	c.entries = append([]Entry{e}, c.entries...)
	for len(c.entries) > c.capacity {
		evicted := c.entries[len(c.entries)-1]
		c.entries = c.entries[:len(c.entries)-1]
		evicted.Doc.Release()
	}
	return e
}

// Select returns the entry with the given id for replay.
func (c *Cache) Select(id int64) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a most-recent-first copy of the list.
func (c *Cache) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports how many entries are cached.
func (c *Cache) Len() int { return len(c.entries) }

// Clear drops every entry and releases their document copies. Called on
// logout: the cache belongs to one session and is never shared across
// sessions.
func (c *Cache) Clear() {
	for _, e := range c.entries {
		e.Doc.Release()
	}
	c.entries = nil
}
