// Package scheduler runs the periodic operational jobs of the front desk.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/citylib/frontdesk/internal/database/loans"
)

// OverdueScanScheduler periodically counts open loans past their due date
// and reports them in the server log so staff can chase them up.
type OverdueScanScheduler struct {
	loans      *loans.Repository
	schedule   string
	periodDays int

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewOverdueScanScheduler creates a new scheduler instance. periodDays is
// the loan period used to derive due dates.
func NewOverdueScanScheduler(repo *loans.Repository, schedule string, periodDays int) *OverdueScanScheduler {
	return &OverdueScanScheduler{
		loans:      repo,
		schedule:   schedule,
		periodDays: periodDays,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *OverdueScanScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runScan()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue scan: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Overdue scan scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running scan to finish.
func (s *OverdueScanScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Overdue scan scheduler: stopped")
}

// RunNow triggers an immediate scan.
func (s *OverdueScanScheduler) RunNow() {
	go s.runScan()
}

// IsRunning returns whether the scheduler is active.
func (s *OverdueScanScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next scan will occur.
func (s *OverdueScanScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *OverdueScanScheduler) runScan() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.loans.CountOverdue(ctx, s.periodDays)
	if err != nil {
		log.Printf("Overdue scan: failed: %v", err)
		return
	}
	if count == 0 {
		log.Printf("Overdue scan: no overdue loans")
		return
	}
	log.Printf("Overdue scan: %d loan(s) overdue by more than %d days", count, s.periodDays)
}
