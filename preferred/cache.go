package preferred

import (
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/robustrepair/automaton"
)

// key canonicalizes a memoization entry: sorted controllable labels, sorted
// observable labels, and p's identity (the checker never mutates p, so
// pointer identity is stable for the engine's lifetime).
type key struct {
	c string
	o string
	p *automaton.Automaton
}

// Cache memoizes Enforced results across the search engine's many revisits
// of the same (C, O) pair against different preferred-behavior subsets
// (§4.5). Entries live as long as the Cache does; search.Run creates a new
// Cache for every run, so nothing is shared between Synthesize calls.
type Cache struct {
	mu sync.Mutex
	m  map[key]bool
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{m: make(map[key]bool)}
}

// EnforcedCached returns Enforced(mprime, p), consulting and then
// populating the cache keyed on (sorted controllable, sorted observable, p).
func (c *Cache) EnforcedCached(mprime *automaton.Automaton, p *automaton.Automaton, controllable, observable map[string]bool) (bool, error) {
	k := key{c: canon(controllable), o: canon(observable), p: p}

	c.mu.Lock()
	if v, ok := c.m[k]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	result, err := Enforced(mprime, p)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.m[k] = result
	c.mu.Unlock()

	return result, nil
}

// Len reports the number of memoized entries, used by tests to assert a
// cache hit did not recompute (§8 scenario 6: "must invoke the underlying
// solver exactly once").
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func canon(m map[string]bool) string {
	labels := make([]string, 0, len(m))
	for l, ok := range m {
		if ok {
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
