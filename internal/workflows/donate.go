package workflows

import (
	"context"
	"strings"
	"time"

	"github.com/citylib/frontdesk/internal/database/catalog"
)

// DonationInput carries the donation form fields.
type DonationInput struct {
	Title           string
	PublicationDate string
	ItemType        string
	AuthorFirst     string
	AuthorLast      string
}

// DonationResult reports what the donation created. NewAuthor is false when
// an author with the exact same name pair was reused.
type DonationResult struct {
	ItemID    int64
	AuthorID  int64
	NewAuthor bool
}

// Donate records a donated item. The item starts out available for
// borrowing. All writes land in one transaction.
func (s *Service) Donate(ctx context.Context, in DonationInput) (DonationResult, error) {
	if _, err := time.Parse(DateLayout, in.PublicationDate); err != nil {
		return DonationResult{}, invalidFormat("publication_date")
	}
	if strings.TrimSpace(in.AuthorFirst) == "" {
		return DonationResult{}, missingField("author_first")
	}
	if strings.TrimSpace(in.AuthorLast) == "" {
		return DonationResult{}, missingField("author_last")
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	rec, err := s.catalog.CreateDonation(ctx, catalog.Donation{
		Title:           in.Title,
		PublicationDate: in.PublicationDate,
		ItemType:        in.ItemType,
		AuthorFirst:     in.AuthorFirst,
		AuthorLast:      in.AuthorLast,
	})
	if err != nil {
		return DonationResult{}, storeFailure(err)
	}
	return DonationResult(rec), nil
}
