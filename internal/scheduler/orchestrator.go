package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/fortuna/rinkside/internal/service"
)

// Broadcaster pushes refresh notifications to connected clients.
type Broadcaster interface {
	BroadcastRefresh(payload interface{})
}

// Orchestrator runs the periodic sheet refresh.
type Orchestrator struct {
	refresher   *service.RefreshService
	broadcaster Broadcaster
	config      *Config
	cancel      context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	RefreshInterval time.Duration // Default: 1h, matching the snapshot cache TTL
	EnableRefresh   bool          // Default: true
	MaxRetries      int           // Default: 3
	RetryDelay      time.Duration // Default: 5s
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		RefreshInterval: time.Hour,
		EnableRefresh:   true,
		MaxRetries:      3,
		RetryDelay:      5 * time.Second,
	}
}

// NewOrchestrator creates a new scheduler orchestrator. broadcaster may be nil.
func NewOrchestrator(refresher *service.RefreshService, broadcaster Broadcaster, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Orchestrator{
		refresher:   refresher,
		broadcaster: broadcaster,
		config:      config,
	}
}

// Start begins the refresh loop and blocks until the context is cancelled.
func (o *Orchestrator) Start(ctx context.Context) {
	log.Printf("Scheduler started (refresh: %v, interval: %v)", o.config.EnableRefresh, o.config.RefreshInterval)

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	if o.config.EnableRefresh {
		go o.runRefreshLoop(ctx)
	}

	<-ctx.Done()
	log.Println("Scheduler orchestrator stopping...")
}

// Stop cancels the refresh loop.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
}

func (o *Orchestrator) runRefreshLoop(ctx context.Context) {
	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	consecutiveErrors := 0
	maxConsecutiveErrors := 5

	// Run immediately on start
	o.refreshWithRetry(ctx, &consecutiveErrors, maxConsecutiveErrors)

	for {
		select {
		case <-ctx.Done():
			log.Println("Refresh loop stopped")
			return
		case <-ticker.C:
			o.refreshWithRetry(ctx, &consecutiveErrors, maxConsecutiveErrors)
		}
	}
}

func (o *Orchestrator) refreshWithRetry(ctx context.Context, consecutiveErrors *int, maxConsecutiveErrors int) {
	var result *service.RefreshResult
	var err error

	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		result, err = o.refresher.Refresh(ctx)
		if err == nil {
			*consecutiveErrors = 0
			break
		}

		log.Printf("Refresh attempt %d/%d failed: %v", attempt, o.config.MaxRetries, err)

		if attempt < o.config.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.config.RetryDelay):
			}
		}
	}

	if err != nil {
		*consecutiveErrors++
		log.Printf("All %d refresh attempts failed. Consecutive errors: %d/%d",
			o.config.MaxRetries, *consecutiveErrors, maxConsecutiveErrors)

		// Back off further when the sheet keeps failing
		if *consecutiveErrors >= maxConsecutiveErrors {
			log.Printf("High error rate detected, pausing before next cycle...")
			select {
			case <-ctx.Done():
			case <-time.After(o.config.RefreshInterval):
			}
		}
		return
	}

	log.Printf("Refresh complete: %d players, %d games, %d events, %d roster rows in %s",
		result.Players, result.Games, result.Events, result.RosterRows, result.Duration)

	if o.broadcaster != nil {
		o.broadcaster.BroadcastRefresh(result)
	}
}
