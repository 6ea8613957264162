package sqlbind

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

/*
ClearCache clears the parsed template cache.

In most cases you don't need to care about it. It's there to
let caller free memory when a caller renders zillions of unique
templates.
*/
func (d *Dialect) ClearCache() {
	if c := d.getCache(); c != nil {
		c.Purge()
	}
}

// CacheLen returns the number of parsed templates in the cache.
func (d *Dialect) CacheLen() int {
	if c := d.getCache(); c != nil {
		return c.Len()
	}
	return 0
}

// getCache returns nil when caching is disabled.
func (d *Dialect) getCache() *lru.Cache[string, *parsedTemplate] {
	d.cacheOnce.Do(func() {
		if d.cacheSize > 0 {
			// lru.New only fails for a non-positive size.
			d.cache, _ = lru.New[string, *parsedTemplate](d.cacheSize)
		}
	})
	return d.cache
}

// parse returns a scanned template, reusing a cached one if possible.
func (d *Dialect) parse(template string) *parsedTemplate {
	c := d.getCache()
	if c == nil {
		return scan(template)
	}
	if t, ok := c.Get(template); ok {
		return t
	}
	t := scan(template)
	c.Add(template, t)
	return t
}
