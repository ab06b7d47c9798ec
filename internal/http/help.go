package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/workflows"
)

// AskHelpPage renders the help request form.
func (f *FrontDeskController) AskHelpPage(c *gin.Context) {
	c.HTML(http.StatusOK, "ask_help", f.pageData(c, nil))
}

// AskHelpSubmit acknowledges a help request; librarians follow up in person.
func (f *FrontDeskController) AskHelpSubmit(c *gin.Context) {
	f.workflows.RequestHelp(c.Request.Context(), workflows.HelpRequest{
		Name:     c.PostForm("name"),
		Location: c.PostForm("location"),
		Message:  c.PostForm("message"),
	})
	f.flashAndRedirect(c, "/ask_help", "Your help request has been submitted. A librarian will contact you soon!")
}
