package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/workflows"
)

// VolunteerPage renders the volunteer signup form.
func (f *FrontDeskController) VolunteerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "volunteer", f.pageData(c, nil))
}

// VolunteerSubmit signs the visitor up as a volunteer, registering them as a
// member first when their email is unknown.
func (f *FrontDeskController) VolunteerSubmit(c *gin.Context) {
	result, err := f.workflows.Volunteer(c.Request.Context(), workflows.VolunteerInput{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
	})
	if err != nil {
		f.flashAndRedirect(c, "/volunteer", userMessage("registering volunteer", err))
		return
	}
	if result.NewMember && f.sessions != nil {
		f.sessions.Flash(c.Request, fmt.Sprintf(
			"You are not a member of the library, we have registered you as a member, your member id is: %d. Thank you for volunteering",
			result.MemberID,
		))
	}
	f.flashAndRedirect(c, "/volunteer", "Volunteer registration successful!")
}
