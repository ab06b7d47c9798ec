// Package http wires the front desk workflows onto gin: one endpoint per
// workflow, GET rendering the form and POST running the workflow, flashing
// the outcome and redirecting back.
package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/database"
	"github.com/citylib/frontdesk/internal/session"
	"github.com/citylib/frontdesk/internal/workflows"
)

// RouterConfig carries all router dependencies, improving testability and
// reducing parameter count.
type RouterConfig struct {
	Workflows     *workflows.Service
	Database      *database.DB
	Sessions      *session.Manager
	CSRFSecret    []byte
	SecureCookies bool
	TemplatesPath string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(session.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(session.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
	}

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	front := NewFrontDeskController(cfg.Workflows, cfg.Sessions)
	router.GET("/", front.IndexPage)

	router.GET("/find_item", front.FindItemPage)
	router.POST("/find_item", front.FindItemSearch)

	router.GET("/borrow_item", front.BorrowPage)
	router.POST("/borrow_item", front.BorrowSubmit)

	router.GET("/return_item", front.ReturnPage)
	router.POST("/return_item", front.ReturnSubmit)

	router.GET("/donate_item", front.DonatePage)
	router.POST("/donate_item", front.DonateSubmit)

	router.GET("/find_event", front.FindEventPage)
	router.POST("/find_event", front.FindEventSearch)

	router.GET("/register_event", front.RegisterEventPage)
	router.POST("/register_event", front.RegisterEventSubmit)

	router.GET("/volunteer", front.VolunteerPage)
	router.POST("/volunteer", front.VolunteerSubmit)

	router.GET("/ask_help", front.AskHelpPage)
	router.POST("/ask_help", front.AskHelpSubmit)

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	return router
}
