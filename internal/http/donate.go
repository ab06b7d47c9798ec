package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/workflows"
)

// DonatePage renders the donation form.
func (f *FrontDeskController) DonatePage(c *gin.Context) {
	c.HTML(http.StatusOK, "donate_item", f.pageData(c, nil))
}

// DonateSubmit records a donated item together with its author.
func (f *FrontDeskController) DonateSubmit(c *gin.Context) {
	_, err := f.workflows.Donate(c.Request.Context(), workflows.DonationInput{
		Title:           c.PostForm("title"),
		PublicationDate: c.PostForm("publication_date"),
		ItemType:        c.PostForm("item_type"),
		AuthorFirst:     c.PostForm("author_first"),
		AuthorLast:      c.PostForm("author_last"),
	})
	if err != nil {
		f.flashAndRedirect(c, "/donate_item", userMessage("donating item", err))
		return
	}
	f.flashAndRedirect(c, "/donate_item", "Item donated successfully!")
}
