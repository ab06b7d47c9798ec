package workflows

import (
	"context"
	"errors"
	"strings"

	"github.com/citylib/frontdesk/internal/database/members"
)

// VolunteerInput carries the volunteer signup form fields.
type VolunteerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// VolunteerResult reports a successful signup. NewMember is true when the
// email was unknown and a member record was created on the fly.
type VolunteerResult struct {
	MemberID  int64
	NewMember bool
}

// Volunteer signs a person up as a library volunteer, creating a member
// record keyed by email if needed. A second signup for the same member is
// rejected, not duplicated.
func (s *Service) Volunteer(ctx context.Context, in VolunteerInput) (VolunteerResult, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return VolunteerResult{}, missingField("first_name")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return VolunteerResult{}, missingField("last_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		return VolunteerResult{}, missingField("email")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return VolunteerResult{}, missingField("phone")
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	enr, err := s.members.EnrollVolunteer(ctx, in.FirstName, in.LastName, in.Email, in.Phone)
	if err != nil {
		if errors.Is(err, members.ErrAlreadyVolunteered) {
			return VolunteerResult{}, &Error{Kind: KindAlreadyVolunteered}
		}
		return VolunteerResult{}, storeFailure(err)
	}
	return VolunteerResult(enr), nil
}
