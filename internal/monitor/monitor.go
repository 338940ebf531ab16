// Package monitor simulates the background announcement crawler. On a
// fixed interval it rolls a probability and, on a hit, files one entry
// from a small pool of canned program announcements as an unread
// notification.
package monitor

import (
	"context"
	"log"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/good-yellow-bee/gradtrack/internal/tracker"
)

// announcement is one canned crawl result referencing a preset
// program.
type announcement struct {
	ProjectID   string
	ProjectName string
	Title       string
	Link        string
	PublishTime string
}

var crawlPool = []announcement{
	{
		ProjectID:   "preset-1",
		ProjectName: "Tsinghua University - Master of Finance",
		Title:       "2025 Master of Finance admissions brochure released",
		Link:        "https://www.pbcsf.tsinghua.edu.cn/",
		PublishTime: "2025-01-28",
	},
	{
		ProjectID:   "preset-2",
		ProjectName: "Peking University - Master of Finance",
		Title:       "Notice on 2025 recommended-admission registration",
		Link:        "https://www.gsm.pku.edu.cn/",
		PublishTime: "2025-01-27",
	},
	{
		ProjectID:   "preset-3",
		ProjectName: "Tsinghua University - Computer Science and Technology",
		Title:       "CS department 2025 graduate admissions info session",
		Link:        "https://www.cs.tsinghua.edu.cn/",
		PublishTime: "2025-01-26",
	},
}

const (
	// DefaultInterval is how often the crawler rolls for a new
	// announcement.
	DefaultInterval = 30 * time.Second
	// DefaultChance is the probability of a hit on each roll.
	DefaultChance = 0.3
)

// Monitor runs the simulated crawl loop against a Tracker.
type Monitor struct {
	tracker  *tracker.Tracker
	interval time.Duration
	chance   float64
	rng      *rand.Rand
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval overrides the crawl interval.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) { m.interval = d }
}

// WithChance overrides the per-roll hit probability.
func WithChance(p float64) Option {
	return func(m *Monitor) { m.chance = p }
}

// WithRand injects a deterministic random source.
func WithRand(rng *rand.Rand) Option {
	return func(m *Monitor) { m.rng = rng }
}

// New returns a Monitor with the default interval and chance.
func New(tr *tracker.Tracker, opts ...Option) *Monitor {
	m := &Monitor{
		tracker:  tr,
		interval: DefaultInterval,
		chance:   DefaultChance,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CheckOnce performs a single crawl roll. It returns the id of the
// notification it filed, or "" when the roll missed.
func (m *Monitor) CheckOnce(ctx context.Context) (string, error) {
	if m.rng.Float64() >= m.chance {
		return "", nil
	}
	a := crawlPool[m.rng.Intn(len(crawlPool))]
	id, err := m.tracker.AddNotification(ctx, tracker.NotificationDraft{
		ProjectID:   a.ProjectID,
		ProjectName: a.ProjectName,
		Title:       a.Title,
		Link:        a.Link,
		PublishTime: a.PublishTime,
	})
	if err != nil {
		return "", err
	}
	log.Printf("monitor: new announcement for %s: %s", a.ProjectName, a.Title)
	return id, nil
}

// Run drives the crawl loop and a periodic unread-count report until
// ctx is cancelled. Cancellation is the normal way to stop; Run
// returns nil in that case.
func (m *Monitor) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if _, err := m.CheckOnce(ctx); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				count, err := m.tracker.UnreadNotificationCount(ctx)
				if err != nil {
					return err
				}
				if count > 0 {
					log.Printf("monitor: %d unread notification(s)", count)
				}
			}
		}
	})

	return g.Wait()
}
