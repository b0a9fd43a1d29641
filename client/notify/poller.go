package notify

import (
	"context"
	"sort"
	"sync"
	"time"

	"dermacare/models"
	"dermacare/utils"

	"go.uber.org/zap"
)

const (
	// PollInterval is the fixed cadence while the app is foregrounded.
	PollInterval = 10 * time.Second

	// maxRetained caps the locally held notification list, newest first.
	maxRetained = 50

	// checkLimit is the page size of the unread poll.
	checkLimit = 20

	// alertStagger spaces consecutive alerts so they do not land at once.
	alertStagger = 500 * time.Millisecond
)

// Backend is the subset of the API client the poller needs.
type Backend interface {
	Notifications(ctx context.Context, limit, skip int, unreadOnly bool) (*models.NotificationPage, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
}

// AlertSurface is the platform-specific way to surface one notification to
// the user: a toast on web, an OS notification on mobile.
type AlertSurface interface {
	Notify(n models.Notification)
}

// Poller maintains a local cache of notifications keyed by ID and a seen-ID
// set so each notification is surfaced at most once per session. The unread
// count is always derived from the cache, never tracked separately.
type Poller struct {
	backend  Backend
	alerts   AlertSurface
	interval time.Duration
	stagger  time.Duration

	mu          sync.Mutex
	cache       map[string]models.Notification
	seen        map[string]struct{}
	lastChecked time.Time
	running     bool
	stop        chan struct{}
}

// NewPoller returns a stopped poller for the given backend and alert surface.
func NewPoller(backend Backend, alerts AlertSurface) *Poller {
	return &Poller{
		backend:  backend,
		alerts:   alerts,
		interval: PollInterval,
		stagger:  alertStagger,
		cache:    make(map[string]models.Notification),
		seen:     make(map[string]struct{}),
	}
}

// Start begins polling on the fixed interval. Starting a running poller is a
// no-op. Call on (re-)authentication.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.stop = make(chan struct{})
	stop := p.stop
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.CheckForNew(context.Background())
			case <-stop:
				return
			}
		}
	}()
}

// Stop suspends polling. Stopping a stopped poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	close(p.stop)
	p.running = false
}

// Reset stops polling and clears the cache and seen-set. Call on logout.
func (p *Poller) Reset() {
	p.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[string]models.Notification)
	p.seen = make(map[string]struct{})
	p.lastChecked = time.Time{}
}

// OnForeground triggers an immediate check when the app regains
// focus/visibility. No-op while stopped.
func (p *Poller) OnForeground() {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if running {
		go p.CheckForNew(context.Background())
	}
}

// LoadAll fetches the newest notifications and merges them into the local
// cache. Server data wins on ID collision.
func (p *Poller) LoadAll(ctx context.Context) error {
	page, err := p.backend.Notifications(ctx, maxRetained, 0, false)
	if err != nil {
		utils.GetLogger().Warn("Failed to load notifications", zap.Error(err))
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, n := range page.Notifications {
		p.cache[n.ID] = n
	}
	p.trimLocked()
	p.lastChecked = time.Now()
	return nil
}

// CheckForNew fetches unread notifications, surfaces the ones not yet seen
// this session in ascending triggeredAt order, and merges them into the
// cache. Poll failures are logged and recover on the next tick.
func (p *Poller) CheckForNew(ctx context.Context) error {
	page, err := p.backend.Notifications(ctx, checkLimit, 0, true)
	if err != nil {
		utils.GetLogger().Warn("Failed to check notifications", zap.Error(err))
		return err
	}

	p.mu.Lock()
	var fresh []models.Notification
	for _, n := range page.Notifications {
		if n.IsRead {
			continue
		}
		if _, ok := p.seen[n.ID]; ok {
			continue
		}
		fresh = append(fresh, n)
	}
	sort.Slice(fresh, func(i, j int) bool {
		return fresh[i].TriggeredAt.Before(fresh[j].TriggeredAt)
	})
	for _, n := range fresh {
		p.seen[n.ID] = struct{}{}
		p.cache[n.ID] = n
	}
	p.trimLocked()
	p.lastChecked = time.Now()
	p.mu.Unlock()

	for i, n := range fresh {
		if i > 0 && p.stagger > 0 {
			time.Sleep(p.stagger)
		}
		p.alerts.Notify(n)
	}
	return nil
}

// MarkRead marks one notification read on the backend, then optimistically
// flips the local flag.
func (p *Poller) MarkRead(ctx context.Context, id string) error {
	if err := p.backend.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n, ok := p.cache[id]; ok {
		n.IsRead = true
		p.cache[id] = n
	}
	return nil
}

// MarkAllRead marks everything read on the backend, then optimistically flips
// all local flags.
func (p *Poller) MarkAllRead(ctx context.Context) error {
	if _, err := p.backend.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, n := range p.cache {
		n.IsRead = true
		p.cache[id] = n
	}
	return nil
}

// Notifications returns the locally held list, newest first.
func (p *Poller) Notifications() []models.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sortedLocked()
}

// UnreadCount is derived from the local list; it cannot drift from it.
func (p *Poller) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, n := range p.cache {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// LastChecked returns the time of the most recent successful poll.
func (p *Poller) LastChecked() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastChecked
}

func (p *Poller) sortedLocked() []models.Notification {
	out := make([]models.Notification, 0, len(p.cache))
	for _, n := range p.cache {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TriggeredAt.After(out[j].TriggeredAt)
	})
	return out
}

// trimLocked drops everything past the newest maxRetained entries.
func (p *Poller) trimLocked() {
	if len(p.cache) <= maxRetained {
		return
	}
	sorted := p.sortedLocked()
	for _, n := range sorted[maxRetained:] {
		delete(p.cache, n.ID)
	}
}
