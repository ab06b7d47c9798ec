package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/session"
	"github.com/citylib/frontdesk/internal/workflows"
)

// FrontDeskController serves the form pages and runs the workflows behind
// them.
type FrontDeskController struct {
	workflows *workflows.Service
	sessions  *session.Manager
}

func NewFrontDeskController(wf *workflows.Service, sessions *session.Manager) *FrontDeskController {
	return &FrontDeskController{
		workflows: wf,
		sessions:  sessions,
	}
}

// IndexPage links to every front desk operation.
func (f *FrontDeskController) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index", f.pageData(c, nil))
}
