package workflows

import (
	"context"
	"strings"
)

// RegistrationResult reports a successful event registration.
type RegistrationResult struct {
	RegistrationID int64
	EventID        int64
	MemberID       int64
}

// RegisterForEvent validates the event and member, then records the
// registration. Nothing stops a member registering for the same event twice;
// that laxness is load-bearing for walk-in desks and kept on purpose.
func (s *Service) RegisterForEvent(ctx context.Context, eventID, memberID string) (RegistrationResult, error) {
	eventID = strings.TrimSpace(eventID)
	memberID = strings.TrimSpace(memberID)
	if eventID == "" {
		return RegistrationResult{}, missingField("event_id")
	}
	if memberID == "" {
		return RegistrationResult{}, missingField("member_id")
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	eid, ok := parseID(eventID)
	if !ok {
		return RegistrationResult{}, notFound("event")
	}
	exists, err := s.events.Exists(ctx, eid)
	if err != nil {
		return RegistrationResult{}, storeFailure(err)
	}
	if !exists {
		return RegistrationResult{}, notFound("event")
	}

	mid, ok := parseID(memberID)
	if !ok {
		return RegistrationResult{}, notFound("member")
	}
	exists, err = s.members.Exists(ctx, mid)
	if err != nil {
		return RegistrationResult{}, storeFailure(err)
	}
	if !exists {
		return RegistrationResult{}, notFound("member")
	}

	regID, err := s.events.Register(ctx, eid, mid)
	if err != nil {
		return RegistrationResult{}, storeFailure(err)
	}
	return RegistrationResult{RegistrationID: regID, EventID: eid, MemberID: mid}, nil
}
