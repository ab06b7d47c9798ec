package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterEventPage renders the event registration form.
func (f *FrontDeskController) RegisterEventPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register_event", f.pageData(c, nil))
}

// RegisterEventSubmit registers a member for an event.
func (f *FrontDeskController) RegisterEventSubmit(c *gin.Context) {
	_, err := f.workflows.RegisterForEvent(c.Request.Context(), c.PostForm("event_id"), c.PostForm("member_id"))
	if err != nil {
		f.flashAndRedirect(c, "/register_event", userMessage("registering for event", err))
		return
	}
	f.flashAndRedirect(c, "/register_event", "Registered for event successfully!")
}
