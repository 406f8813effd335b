package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"hospital-bed-backend/internal/models"
)

const (
	// DefaultDebounce is how long search input must be quiet before a fetch.
	DefaultDebounce = 300 * time.Millisecond
	// DefaultRefreshInterval is the background re-fetch period.
	DefaultRefreshInterval = 60 * time.Second
)

// Refresher keeps a hospital list current against the API. Search edits are
// debounced, region changes fetch immediately, and a background ticker
// re-fetches on an interval. Responses carry a generation number; a response
// that is not from the newest request is dropped so a slow fetch can never
// overwrite the result of a later one.
type Refresher struct {
	client   *Client
	debounce time.Duration
	interval time.Duration

	// OnUpdate receives each fresh hospital list. OnError receives fetch
	// failures. Both may be nil.
	OnUpdate func([]models.Hospital)
	OnError  func(error)

	gen atomic.Uint64

	mu     sync.Mutex
	timer  *time.Timer
	search string
	region string
}

func NewRefresher(client *Client) *Refresher {
	return &Refresher{
		client:   client,
		debounce: DefaultDebounce,
		interval: DefaultRefreshInterval,
	}
}

// SetSearch records a new search term and schedules a debounced fetch.
// Rapid successive calls collapse into a single request.
func (r *Refresher) SetSearch(ctx context.Context, search string) {
	r.mu.Lock()
	r.search = search
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.debounce, func() {
		r.Refresh(ctx)
	})
	r.mu.Unlock()
}

// SetRegion records a new region filter and fetches immediately.
func (r *Refresher) SetRegion(ctx context.Context, region string) {
	r.mu.Lock()
	r.region = region
	r.mu.Unlock()
	r.Refresh(ctx)
}

// Refresh fetches the list with the current filters. Safe to call from any
// goroutine; only the newest in-flight request's result is delivered.
func (r *Refresher) Refresh(ctx context.Context) {
	generation := r.gen.Add(1)

	r.mu.Lock()
	search, region := r.search, r.region
	r.mu.Unlock()

	hospitals, err := r.client.ListHospitals(ctx, search, region)

	// A newer request has been issued since this one started; its result
	// wins regardless of arrival order.
	if generation != r.gen.Load() {
		return
	}

	if err != nil {
		if r.OnError != nil {
			r.OnError(err)
		}
		return
	}
	if r.OnUpdate != nil {
		r.OnUpdate(hospitals)
	}
}

// Start fetches once and then re-fetches on the refresh interval until the
// context is cancelled. Blocks; run it in a goroutine.
func (r *Refresher) Start(ctx context.Context) {
	r.Refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}
