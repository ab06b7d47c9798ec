package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolunteer_MissingFields(t *testing.T) {
	svc, db, cleanup := setupService(t)
	defer cleanup()

	inputs := []VolunteerInput{
		{FirstName: "", LastName: "Lovelace", Email: "ada@lib.org", Phone: "555-0100"},
		{FirstName: "Ada", LastName: "  ", Email: "ada@lib.org", Phone: "555-0100"},
		{FirstName: "Ada", LastName: "Lovelace", Email: "", Phone: "555-0100"},
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@lib.org", Phone: " "},
	}
	for _, in := range inputs {
		_, err := svc.Volunteer(context.Background(), in)
		requireKind(t, err, KindMissingField)
	}

	assert.Equal(t, 0, countRows(t, db, "member"))
	assert.Equal(t, 0, countRows(t, db, "personnel"))
}

func TestVolunteer_NewMember(t *testing.T) {
	svc, db, cleanup := setupService(t)
	defer cleanup()

	result, err := svc.Volunteer(context.Background(), VolunteerInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@lib.org", Phone: "555-0100",
	})
	require.NoError(t, err)

	assert.True(t, result.NewMember)
	assert.Equal(t, 1, countRows(t, db, "member"))
	assert.Equal(t, 1, countRows(t, db, "personnel"))
}

func TestVolunteer_ExistingMemberByEmail(t *testing.T) {
	svc, db, cleanup := setupService(t)
	defer cleanup()

	memberID := createTestMember(t, db, "ada@lib.org")

	result, err := svc.Volunteer(context.Background(), VolunteerInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@lib.org", Phone: "555-0100",
	})
	require.NoError(t, err)

	assert.False(t, result.NewMember)
	assert.Equal(t, memberID, result.MemberID)
	assert.Equal(t, 1, countRows(t, db, "member"))
}

func TestVolunteer_SecondSignupRejected(t *testing.T) {
	svc, db, cleanup := setupService(t)
	defer cleanup()

	in := VolunteerInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@lib.org", Phone: "555-0100"}

	_, err := svc.Volunteer(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Volunteer(context.Background(), in)
	requireKind(t, err, KindAlreadyVolunteered)

	assert.Equal(t, 1, countRows(t, db, "member"), "exactly one member row total")
	assert.Equal(t, 1, countRows(t, db, "personnel"), "exactly one personnel row total")
}
