// Package workflows implements the validate-then-persist core shared by all
// front desk operations: each workflow validates a handful of string form
// fields against persisted state, performs its writes as one transaction and
// reports a structured outcome the transport layer can render any way it
// likes.
package workflows

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/citylib/frontdesk/internal/database"
	"github.com/citylib/frontdesk/internal/database/catalog"
	"github.com/citylib/frontdesk/internal/database/events"
	"github.com/citylib/frontdesk/internal/database/loans"
	"github.com/citylib/frontdesk/internal/database/members"
)

// DateLayout is the calendar date format used on the wire and in the store.
const DateLayout = "2006-01-02"

// Service exposes one method per front desk workflow. All methods derive a
// deadline from the configured store timeout, so a stuck store surfaces as
// KindTimeout instead of a hung request.
type Service struct {
	catalog *catalog.Repository
	members *members.Repository
	loans   *loans.Repository
	events  *events.Repository

	queryTimeout time.Duration
	loanPeriod   int

	now func() time.Time // replaced in tests
}

// NewService wires the workflow core against db. loanPeriodDays is the
// calendar-day checkout period used to compute due dates.
func NewService(db *database.DB, queryTimeout time.Duration, loanPeriodDays int) *Service {
	return &Service{
		catalog:      catalog.NewRepository(db),
		members:      members.NewRepository(db),
		loans:        loans.NewRepository(db),
		events:       events.NewRepository(db),
		queryTimeout: queryTimeout,
		loanPeriod:   loanPeriodDays,
		now:          time.Now,
	}
}

// LoanPeriodDays returns the configured checkout period, for display on the
// borrow form.
func (s *Service) LoanPeriodDays() int {
	return s.loanPeriod
}

func (s *Service) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// parseID converts a form-supplied id to an integer key. Ids came in as
// free-text fields, so anything non-numeric simply resolves to no row.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
