package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/workflows"
)

// BorrowPage renders the borrow form.
func (f *FrontDeskController) BorrowPage(c *gin.Context) {
	c.HTML(http.StatusOK, "borrow_item", f.pageData(c, gin.H{
		"LoanPeriodDays": f.workflows.LoanPeriodDays(),
	}))
}

// BorrowSubmit checks the item out and flashes the due date and loan id.
func (f *FrontDeskController) BorrowSubmit(c *gin.Context) {
	receipt, err := f.workflows.Borrow(c.Request.Context(), c.PostForm("member_id"), c.PostForm("item_id"))
	if err != nil {
		f.flashAndRedirect(c, "/borrow_item", userMessage("borrowing item", err))
		return
	}
	f.flashAndRedirect(c, "/borrow_item", fmt.Sprintf(
		"Item borrowed successfully! It is due on %s. Your LoanID is %d, please note it down for future return",
		receipt.DueDate.Format(workflows.DateLayout), receipt.LoanID,
	))
}

// ReturnPage renders the return form.
func (f *FrontDeskController) ReturnPage(c *gin.Context) {
	c.HTML(http.StatusOK, "return_item", f.pageData(c, nil))
}

// ReturnSubmit records the return, defaulting the date to today.
func (f *FrontDeskController) ReturnSubmit(c *gin.Context) {
	_, err := f.workflows.ReturnItem(c.Request.Context(), c.PostForm("loan_id"), c.PostForm("returned_date"))
	if err != nil {
		f.flashAndRedirect(c, "/return_item", userMessage("returning item", err))
		return
	}
	f.flashAndRedirect(c, "/return_item", "Item returned successfully!")
}
