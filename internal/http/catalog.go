package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FindItemPage lists the whole catalog.
func (f *FrontDeskController) FindItemPage(c *gin.Context) {
	f.renderItemSearch(c, "")
}

// FindItemSearch lists the items whose title contains the submitted query.
// Search results render inline rather than redirecting.
func (f *FrontDeskController) FindItemSearch(c *gin.Context) {
	f.renderItemSearch(c, c.PostForm("search"))
}

func (f *FrontDeskController) renderItemSearch(c *gin.Context, query string) {
	items, err := f.workflows.SearchItems(c.Request.Context(), query)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "find_item", f.pageData(c, gin.H{
			"Error": userMessage("searching items", err),
		}))
		return
	}
	c.HTML(http.StatusOK, "find_item", f.pageData(c, gin.H{
		"Items": items,
		"Query": query,
	}))
}

// FindEventPage lists all upcoming events.
func (f *FrontDeskController) FindEventPage(c *gin.Context) {
	f.renderEventSearch(c, "")
}

// FindEventSearch lists the events whose name contains the submitted query.
func (f *FrontDeskController) FindEventSearch(c *gin.Context) {
	f.renderEventSearch(c, c.PostForm("search"))
}

func (f *FrontDeskController) renderEventSearch(c *gin.Context, query string) {
	events, err := f.workflows.SearchEvents(c.Request.Context(), query)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "find_event", f.pageData(c, gin.H{
			"Error": userMessage("searching events", err),
		}))
		return
	}
	c.HTML(http.StatusOK, "find_event", f.pageData(c, gin.H{
		"Events": events,
		"Query":  query,
	}))
}
