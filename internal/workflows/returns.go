package workflows

import (
	"context"
	"strings"
	"time"
)

// ReturnResult reports the outcome of a return. Found is false when the loan
// id matched no row; the workflow still reports success in that case, the
// way the store's silent UPDATE no-op always has.
type ReturnResult struct {
	LoanID       int64
	ReturnedDate string
	Found        bool
}

// ReturnItem marks the loan returned as of returnedDate, defaulting to today
// when blank, and makes the item borrowable again. The returned date is not
// checked against the loan date.
func (s *Service) ReturnItem(ctx context.Context, loanID, returnedDate string) (ReturnResult, error) {
	loanID = strings.TrimSpace(loanID)
	if loanID == "" {
		return ReturnResult{}, missingField("loan_id")
	}

	returnedDate = strings.TrimSpace(returnedDate)
	if returnedDate == "" {
		returnedDate = s.now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, returnedDate); err != nil {
		return ReturnResult{}, invalidFormat("returned_date")
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	id, ok := parseID(loanID)
	if !ok {
		// Non-numeric ids match no loan; same silent no-op.
		return ReturnResult{ReturnedDate: returnedDate}, nil
	}

	found, err := s.loans.MarkReturned(ctx, id, returnedDate)
	if err != nil {
		return ReturnResult{}, storeFailure(err)
	}
	return ReturnResult{LoanID: id, ReturnedDate: returnedDate, Found: found}, nil
}
