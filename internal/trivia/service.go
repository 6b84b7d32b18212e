package trivia

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mwei-dev/CaseSim_Go/internal/concurrency"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/metrics"
)

// ErrNoContent is returned when the cache is empty and a direct fetch failed.
var ErrNoContent = errors.New("no trivia content available")

const (
	refillLockKey  = "trivia:refill"
	refillInterval = 30 * time.Second
	fetchTimeout   = 5 * time.Second
)

// Service hands out prefetched trivia cards so the reveal screen never blocks
// on an external fetch.
type Service interface {
	// Next pops the oldest prefetched card and triggers a background refill.
	Next(ctx context.Context) (*Card, error)
	// Run keeps the cache topped up until ctx is cancelled.
	Run(ctx context.Context)
}

type service struct {
	fetcher      Fetcher
	cache        *lru.Cache[string, *Card]
	locks        *concurrency.LockManager
	prefetchSize int
}

// NewService creates a prefetching trivia service.
// cacheSize bounds the LRU; prefetchSize is the fill target per refill pass.
func NewService(fetcher Fetcher, cacheSize, prefetchSize int) (Service, error) {
	cache, err := lru.New[string, *Card](cacheSize)
	if err != nil {
		return nil, err
	}
	if prefetchSize <= 0 || prefetchSize > cacheSize {
		prefetchSize = cacheSize
	}
	return &service{
		fetcher:      fetcher,
		cache:        cache,
		locks:        concurrency.NewLockManager(),
		prefetchSize: prefetchSize,
	}, nil
}

func (s *service) Next(ctx context.Context) (*Card, error) {
	log := logger.FromContext(ctx)

	if card, ok := s.pop(); ok {
		metrics.TriviaCacheHits.Inc()
		go s.refill(context.WithoutCancel(ctx))
		return card, nil
	}

	metrics.TriviaCacheMisses.Inc()

	// Cache empty: fall back to one bounded direct fetch.
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	card, err := s.fetcher.Fetch(fetchCtx)
	if err != nil {
		log.Warn("Trivia fetch failed with empty cache", "error", err)
		return nil, ErrNoContent
	}
	go s.refill(context.WithoutCancel(ctx))
	return card, nil
}

// pop removes and returns the oldest cached card.
func (s *service) pop() (*Card, bool) {
	key, card, ok := s.cache.GetOldest()
	if !ok {
		return nil, false
	}
	s.cache.Remove(key)
	return card, true
}

// Run tops up the cache on a fixed interval.
func (s *service) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info("Trivia prefetcher started", "target", s.prefetchSize)

	s.refill(ctx)

	ticker := time.NewTicker(refillInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Trivia prefetcher stopped")
			return
		case <-ticker.C:
			s.refill(ctx)
		}
	}
}

// refill fetches cards until the cache holds prefetchSize entries. A named
// lock keeps concurrent refills (ticker + post-Next triggers) from stacking.
// One pass issues at most prefetchSize fetches: cards are keyed by title, so
// an endpoint that keeps serving the same article must not spin the loop.
func (s *service) refill(ctx context.Context) {
	lock := s.locks.GetLock(refillLockKey)
	if !lock.TryLock() {
		return
	}
	defer lock.Unlock()

	log := logger.FromContext(ctx)

	for attempts := 0; attempts < s.prefetchSize && s.cache.Len() < s.prefetchSize; attempts++ {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		card, err := s.fetcher.Fetch(fetchCtx)
		cancel()
		if err != nil {
			if ctx.Err() == nil {
				log.Debug("Trivia prefetch failed", "error", err)
			}
			return
		}
		s.cache.Add(card.Title, card)
	}
}
