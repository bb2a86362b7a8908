package storage

import (
	"context"
	"log"
)

var bgContext = context.Background()

// PageCache invalidates rendered-page entries kept in Redis so the next
// read regenerates them. Implements services.PageCache.
type PageCache struct{}

func NewPageCache() *PageCache {
	return &PageCache{}
}

// Invalidate drops the cached entry for path. Scope "page" removes the
// single page key; scope "layout" removes the path and everything
// nested under it. Failures are logged and swallowed: a stale page is
// not worth failing the mutation that triggered the signal.
func (c *PageCache) Invalidate(path string, scope string) {
	if Redis == nil {
		return
	}

	switch scope {
	case "layout":
		iter := Redis.Scan(bgContext, 0, "page:"+path+"*", 0).Iterator()
		for iter.Next(bgContext) {
			if err := Redis.Del(bgContext, iter.Val()).Err(); err != nil {
				log.Printf("cache: failed to drop %s: %v", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			log.Printf("cache: scan failed for %s: %v", path, err)
		}
	default:
		if err := Redis.Del(bgContext, "page:"+path).Err(); err != nil {
			log.Printf("cache: failed to drop page:%s: %v", path, err)
		}
	}
}
