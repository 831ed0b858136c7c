package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
)

// Controller owns the single current checklist and applies intents to it one
// at a time, saving after each.
type Controller struct {
	mu        sync.Mutex
	project   checklist.Project
	lastSaved time.Time

	store  Store
	ids    checklist.IDGenerator
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDGenerator replaces the UUID-based id generator.
func WithIDGenerator(ids checklist.IDGenerator) Option {
	return func(c *Controller) {
		if ids != nil {
			c.ids = ids
		}
	}
}

// WithClock sets the time source used for LastSavedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// NewController loads the stored checklist, or the seed, and returns a
// controller for it.
func NewController(ctx context.Context, store Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		ids:    checklist.UUIDGenerator{},
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.project = store.Load(ctx)
	c.logger.Info("checklist loaded",
		"project", c.project.ProjectName,
		"sections", len(c.project.Sections),
		"active_section", c.project.ActiveSectionID)
	return c
}

// Snapshot returns a deep copy of the current checklist.
func (c *Controller) Snapshot() checklist.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.project.Clone()
}

// ExportSnapshot builds an export of the current checklist.
func (c *Controller) ExportSnapshot(scope checklist.Scope) checklist.Export {
	c.mu.Lock()
	defer c.mu.Unlock()
	return checklist.BuildExport(c.project, scope)
}

// LastSavedAt returns when the state was last written successfully. It is
// zero until the first successful save.
func (c *Controller) LastSavedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSaved
}

// Dispatch applies an intent, saves the result and returns a snapshot of it.
// Intents that reference unknown nodes leave the tree unchanged. Save
// failures are logged and counted but do not roll back the new state.
func (c *Controller) Dispatch(ctx context.Context, intent Intent) checklist.Project {
	c.mu.Lock()
	defer c.mu.Unlock()

	if intent == nil {
		return c.project.Clone()
	}

	dispatchTotal.WithLabelValues(intent.name()).Inc()
	c.project = intent.apply(c.project, c.ids)
	c.logger.Debug("intent applied", "intent", intent.name(), "active_section", c.project.ActiveSectionID)

	c.save(ctx)
	return c.project.Clone()
}

func (c *Controller) save(ctx context.Context) {
	start := time.Now()
	err := c.store.Save(ctx, c.project)
	saveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		saveFailuresTotal.Inc()
		c.logger.Error("failed to persist checklist", "error", err)
		return
	}
	c.lastSaved = c.now()
}
