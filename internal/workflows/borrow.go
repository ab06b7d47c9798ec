package workflows

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/citylib/frontdesk/internal/database/catalog"
	"github.com/citylib/frontdesk/internal/database/loans"
)

// BorrowReceipt is handed back to the borrower after a successful checkout.
type BorrowReceipt struct {
	LoanID  int64
	DueDate time.Time
}

// Borrow validates the member and item, then checks the item out for the
// configured loan period. The eventual status flip is conditional on the
// item still being available, so two simultaneous borrows of the same item
// cannot both succeed.
func (s *Service) Borrow(ctx context.Context, memberID, itemID string) (BorrowReceipt, error) {
	memberID = strings.TrimSpace(memberID)
	itemID = strings.TrimSpace(itemID)
	if memberID == "" {
		return BorrowReceipt{}, missingField("member_id")
	}
	if itemID == "" {
		return BorrowReceipt{}, missingField("item_id")
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	mid, ok := parseID(memberID)
	if !ok {
		return BorrowReceipt{}, notFound("member")
	}
	exists, err := s.members.Exists(ctx, mid)
	if err != nil {
		return BorrowReceipt{}, storeFailure(err)
	}
	if !exists {
		return BorrowReceipt{}, notFound("member")
	}

	iid, ok := parseID(itemID)
	if !ok {
		return BorrowReceipt{}, notFound("item")
	}
	status, found, err := s.catalog.ItemStatus(ctx, iid)
	if err != nil {
		return BorrowReceipt{}, storeFailure(err)
	}
	if !found {
		return BorrowReceipt{}, notFound("item")
	}
	if status != catalog.StatusAvailable {
		return BorrowReceipt{}, &Error{Kind: KindUnavailable}
	}

	loanID, err := s.loans.Checkout(ctx, iid, mid)
	if err != nil {
		// The pre-check can race another borrower; the conditional
		// update inside Checkout is the arbiter.
		if errors.Is(err, loans.ErrItemUnavailable) {
			return BorrowReceipt{}, &Error{Kind: KindUnavailable}
		}
		return BorrowReceipt{}, storeFailure(err)
	}

	return BorrowReceipt{
		LoanID:  loanID,
		DueDate: s.now().AddDate(0, 0, s.loanPeriod),
	}, nil
}
