package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"TradeSentinel/internal/advisor"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/portfolio"
	"TradeSentinel/internal/recorder"
	"TradeSentinel/internal/runner"

	"github.com/robfig/cron/v3"
)

// Scheduler re-invokes the batch runner on a fixed interval. Exactly one pass
// executes at a time: a tick arriving while a pass is still running is
// skipped. Once the daily profit target is reached the schedule stops and
// stays stopped until an explicit restart.
type Scheduler struct {
	Cron      *cron.Cron
	Runner    *runner.Runner
	Tracker   *portfolio.Tracker
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Advisor   *advisor.Advisor
	ReportDir string
	Ctx       context.Context

	running atomic.Bool // non-reentrant pass guard
	stopped atomic.Bool // target reached or explicit stop
}

// NewScheduler creates a Scheduler with a seconds-granularity cron.
func NewScheduler(ctx context.Context, r *runner.Runner, tr *portfolio.Tracker, tn *notifier.TelegramNotifier, rec recorder.Recorder, adv *advisor.Advisor, reportDir string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Runner:    r,
		Tracker:   tr,
		Notifier:  tn,
		Recorder:  rec,
		Advisor:   adv,
		ReportDir: reportDir,
		Ctx:       ctx,
	}
}

// Register adds the periodic pass at the given cron spec.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.tick); err != nil {
		return fmt.Errorf("register pass task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.stopped.Store(false)
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully. An in-flight pass runs to
// completion.
func (s *Scheduler) Stop() {
	s.stopped.Store(true)
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// tick is the cron entry point. Cancellation and the stop flag are observed
// here, at the tick boundary, never mid-pass.
func (s *Scheduler) tick() {
	if s.Ctx.Err() != nil || s.stopped.Load() {
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		log.Println("[WARN] previous pass still running, tick skipped")
		return
	}
	defer s.running.Store(false)
	s.runOnce()
}

// RunNow executes a pass immediately on the calling goroutine (manual
// trigger). Returns a short status string for command replies.
func (s *Scheduler) RunNow() string {
	if !s.running.CompareAndSwap(false, true) {
		return "a pass is already running"
	}
	defer s.running.Store(false)
	return s.runOnce()
}

// runOnce performs one full pass and all post-pass bookkeeping. Notification
// and recording failures are logged and swallowed; only the runner outcome
// decides the pass result.
func (s *Scheduler) runOnce() string {
	log.Println("[INFO] running analysis pass")
	run, err := s.Runner.Run()
	if err != nil {
		log.Printf("[ERROR] pass failed: %v", err)
		s.trySend(fmt.Sprintf("❌ analysis pass failed: %v", err))
		return fmt.Sprintf("pass failed: %v", err)
	}

	dailyReturn, targetReached := s.Tracker.Apply(run.ExpectedProfit)
	account := s.Tracker.Snapshot()

	if err := s.Recorder.RecordRun(run, account); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	if s.ReportDir != "" {
		if path, err := recorder.WriteRunCSV(s.ReportDir, run); err != nil {
			log.Printf("[ERROR] export run report: %v", err)
		} else {
			log.Printf("[INFO] run report written: %s", path)
		}
	}

	s.trySend(notifier.FormatRunReport(run, account))
	log.Printf("[INFO] pass complete: %d rows, expected profit %+.2f, daily return %.2f%%",
		len(run.Rows), run.ExpectedProfit, dailyReturn)

	if targetReached {
		s.stopped.Store(true)
		s.Cron.Stop()
		msg := fmt.Sprintf("🎯 daily profit target reached (%.2f%%), trading halted", dailyReturn)
		log.Printf("[INFO] %s", msg)
		s.trySend(msg)
		return msg
	}
	return fmt.Sprintf("pass complete: %d rows, daily return %.2f%%", len(run.Rows), dailyReturn)
}

// Halted reports whether scheduling is stopped.
func (s *Scheduler) Halted() bool { return s.stopped.Load() }

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		return s.RunNow()
	case "/status":
		account := s.Tracker.Snapshot()
		status := notifier.FormatAccountStatus(account)
		if s.Halted() {
			status += "schedule: stopped\n"
		} else {
			status += "schedule: active\n"
		}
		return status
	case "/advise":
		ctx, cancel := context.WithTimeout(s.Ctx, 60*time.Second)
		defer cancel()
		text, err := s.Advisor.Improve(ctx, advisor.DefaultPrompt)
		if err != nil {
			log.Printf("[ERROR] advisory request: %v", err)
			return fmt.Sprintf("advisory request failed: %v", err)
		}
		return text
	case "/stop":
		s.Stop()
		return "schedule stopped"
	case "/start":
		if !s.Halted() {
			return "schedule already active"
		}
		s.Start()
		return "schedule restarted"
	default:
		return "commands:\n• /run - run a pass now\n• /status - account status\n• /advise - strategy suggestion\n• /stop • /start"
	}
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
