package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Registry hands out one token-bucket limiter per client key.
type Registry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func NewRegistry(rps float64, burst int) *Registry {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &Registry{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (r *Registry) Visitor(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, exists := r.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r.limit, r.burst)
		r.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartCleanupLoop evicts idle visitors so the map cannot grow without bound.
func (r *Registry) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		r.mu.Lock()
		for key, v := range r.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(r.visitors, key)
			}
		}
		r.mu.Unlock()
	}
}

func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visitors = make(map[string]*visitor)
}
