// Package exprcache keeps recently parsed expressions so repeated requests
// skip the parser.
package exprcache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/damedic/fhirpath-go/fhirpath"
)

// Cache is a thread-safe LRU of parsed expressions keyed by their source
// text. Parse errors are not cached.
type Cache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type entry struct {
	source string
	expr   fhirpath.Expression
}

// New creates a cache holding up to capacity expressions. A capacity of
// zero disables caching, every lookup parses.
func New(capacity int) *Cache {
	return &Cache{
		items:    make(map[string]*list.Element, max(capacity, 0)),
		order:    list.New(),
		capacity: capacity,
	}
}

// Parse returns the cached expression for source, parsing and storing it
// on a miss.
func (c *Cache) Parse(source string) (fhirpath.Expression, error) {
	if expr, ok := c.get(source); ok {
		c.hits.Add(1)
		return expr, nil
	}
	c.misses.Add(1)

	expr, err := fhirpath.Parse(source)
	if err != nil {
		return fhirpath.Expression{}, err
	}
	c.add(source, expr)
	return expr, nil
}

func (c *Cache) get(source string) (fhirpath.Expression, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[source]
	if !ok {
		return fhirpath.Expression{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).expr, true
}

func (c *Cache) add(source string, expr fhirpath.Expression) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[source]; ok {
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		delete(c.items, oldest.Value.(*entry).source)
		c.order.Remove(oldest)
	}
	c.items[source] = c.order.PushFront(&entry{source: source, expr: expr})
}

// Len returns the number of cached expressions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats holds lookup counters.
type Stats struct {
	Hits   uint64
	Misses uint64
}

func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
