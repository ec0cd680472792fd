// Package poller drives the fetch -> parse -> render cycle.
package poller

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"scorepanel/pkg/contracts"
	"scorepanel/pkg/models"
)

// Source fetches one raw scoreboard payload.
type Source interface {
	Fetch(ctx context.Context, url string) (map[string]interface{}, error)
}

// Renderer pushes one scoreboard to the display.
type Renderer interface {
	Render(board models.ScoreBoard) error
}

// Config holds the loop timing and mode.
type Config struct {
	// Date is the "YYYY-MM-DD" key for date-scoped feeds. Empty means
	// today, re-resolved each cycle so a long-running loop follows the
	// calendar.
	Date string
	// Interval is the dwell between successful cycles.
	Interval time.Duration
	// Cooldown is the shorter delay taken after a failed cycle.
	Cooldown time.Duration
	// Once runs a single cycle and returns instead of looping.
	Once bool
}

// Poller orchestrates one feed against one source and one renderer.
type Poller struct {
	feed     contracts.FeedModule
	source   Source
	renderer Renderer
	cfg      Config
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a poller.
func New(feed contracts.FeedModule, source Source, renderer Renderer, cfg Config, logger *zap.Logger) *Poller {
	return &Poller{
		feed:     feed,
		source:   source,
		renderer: renderer,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Run drives cycles until ctx is cancelled (or, in one-shot mode, after a
// single cycle). A failed cycle is logged and followed by the cooldown
// delay; it never stops the loop.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("starting poll loop",
		zap.String("feed", p.feed.Key()),
		zap.String("name", p.feed.DisplayName()),
		zap.Bool("once", p.cfg.Once))

	for {
		err := p.RunOnce(ctx)
		if err != nil {
			p.logger.Error("poll cycle failed",
				zap.String("feed", p.feed.Key()), zap.Error(err))
		}

		if p.cfg.Once {
			return
		}

		delay := p.cfg.Interval
		if err != nil {
			delay = p.cfg.Cooldown
		}

		select {
		case <-ctx.Done():
			p.logger.Info("stopping poll loop", zap.String("feed", p.feed.Key()))
			return
		case <-time.After(delay):
		}
	}
}

// RunOnce performs one fetch -> parse -> render cycle. A fetch failure is
// not a cycle failure: the board degrades to empty and the renderer still
// runs, so the panel shows "No games found." instead of going stale. Only
// a render failure is returned.
func (p *Poller) RunOnce(ctx context.Context) error {
	date := p.cfg.Date
	if date == "" {
		date = p.now().Format("2006-01-02")
	}

	raw, err := p.source.Fetch(ctx, p.feed.ScoreboardURL(date))
	if err != nil {
		p.logger.Warn("fetch failed, rendering empty board",
			zap.String("feed", p.feed.Key()), zap.Error(err))
		raw = nil
	}

	board := p.feed.Parse(raw)
	p.logger.Info("parsed scoreboard",
		zap.String("feed", p.feed.Key()),
		zap.String("date", date),
		zap.Int("games", len(board)))

	if err := p.renderer.Render(board); err != nil {
		return fmt.Errorf("rendering scoreboard: %w", err)
	}
	return nil
}
