package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"FinSentinel/internal/engine"
)

// Scheduler drives the engine's cadence: a periodic re-evaluation while the
// consuming surface is active, and a forced re-run when the accounting period
// rolls over.
type Scheduler struct {
	Cron   *cron.Cron
	Engine *engine.Engine
	Ctx    context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *engine.Engine) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Engine: eng,
		Ctx:    ctx,
	}
}

// RegisterAll registers the periodic evaluation and the period-rollover task.
// periodStartDay is the day of month the accounting period begins on.
func (s *Scheduler) RegisterAll(interval time.Duration, periodStartDay int) error {
	if _, err := s.Cron.AddFunc(fmt.Sprintf("@every %s", interval), s.periodicTask); err != nil {
		return fmt.Errorf("register periodic task: %w", err)
	}
	// Period rollover: midnight on the period start day. Bypasses the cadence
	// gate because period boundaries invalidate prior aggregates.
	rolloverSpec := fmt.Sprintf("0 0 0 %d * *", periodStartDay)
	if _, err := s.Cron.AddFunc(rolloverSpec, s.rolloverTask); err != nil {
		return fmt.Errorf("register rollover task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler. Safe to call again after Stop, which is
// how the consuming surface resumes the cadence on reactivation.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop pauses the cron scheduler; in-flight runs finish.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes an analysis immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	if _, err := s.Engine.Analyze(s.Ctx); err != nil {
		log.Printf("[ERROR] manual analysis: %v", err)
	}
}

func (s *Scheduler) periodicTask() {
	if _, err := s.Engine.AnalyzeIfDue(s.Ctx); err != nil {
		log.Printf("[ERROR] periodic analysis: %v", err)
	}
}

func (s *Scheduler) rolloverTask() {
	log.Println("[INFO] accounting period rolled over, forcing re-evaluation")
	if _, err := s.Engine.ForceAnalyze(s.Ctx); err != nil {
		log.Printf("[ERROR] rollover analysis: %v", err)
	}
}
