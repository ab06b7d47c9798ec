package workflows

import (
	"context"

	"github.com/citylib/frontdesk/internal/database/catalog"
	"github.com/citylib/frontdesk/internal/database/events"
)

// SearchItems returns the catalog items matching query as a title substring,
// or every item when query is blank.
func (s *Service) SearchItems(ctx context.Context, query string) ([]catalog.ItemSummary, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	items, err := s.catalog.SearchItems(ctx, query)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}

// SearchEvents returns the events matching query as a name substring, or
// every event when query is blank. Events lacking a type or room reference
// do not appear.
func (s *Service) SearchEvents(ctx context.Context, query string) ([]events.EventSummary, error) {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	evs, err := s.events.SearchEvents(ctx, query)
	if err != nil {
		return nil, storeFailure(err)
	}
	return evs, nil
}
