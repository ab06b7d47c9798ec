package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citylib/frontdesk/internal/session"
	"github.com/citylib/frontdesk/internal/workflows"
)

// flashAndRedirect queues a message and sends the browser back to the
// workflow's entry point (POST-redirect-GET).
func (f *FrontDeskController) flashAndRedirect(c *gin.Context, path, message string) {
	if f.sessions != nil {
		f.sessions.Flash(c.Request, message)
	}
	c.Redirect(http.StatusSeeOther, path)
}

// pageData assembles the values every form template expects: queued flash
// messages and the CSRF token.
func (f *FrontDeskController) pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{}
	if f.sessions != nil {
		data["Flashes"] = f.sessions.PopFlashes(c.Request)
	}
	// CSRF error redirects carry the message in the query string.
	if msg := c.Query("error"); msg != "" {
		flashes, _ := data["Flashes"].([]string)
		data["Flashes"] = append(flashes, msg)
	}
	if token, ok := c.Get(session.CSRFTokenContextKey); ok {
		data["CSRFToken"] = token
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// userMessage maps a workflow failure to the human-readable message flashed
// back at the form.
func userMessage(action string, err error) string {
	var wErr *workflows.Error
	if !errors.As(err, &wErr) {
		return fmt.Sprintf("Error %s: %v", action, err)
	}
	switch wErr.Kind {
	case workflows.KindMissingField:
		switch wErr.Field {
		case "member_id", "item_id":
			return "Both Member ID and Item ID are required."
		case "event_id":
			return "Both Event ID and Member ID are required."
		case "loan_id":
			return "Loan ID is required."
		case "author_first", "author_last":
			return "Author's first and last name are required."
		case "first_name", "last_name":
			return "First and last name are required."
		case "email", "phone":
			return "Your contact information are required."
		default:
			return fmt.Sprintf("Required field %s is missing.", wErr.Field)
		}
	case workflows.KindInvalidFormat:
		if wErr.Field == "publication_date" {
			return "Invalid publication date. Please use YYYY-MM-DD format."
		}
		return "Please enter the date in YYYY-MM-DD format."
	case workflows.KindNotFound:
		switch wErr.Entity {
		case "member":
			return "The provided Member ID does not exist."
		case "item":
			return "The provided Item ID does not exist."
		case "event":
			return "The provided Event ID does not exist."
		default:
			return fmt.Sprintf("The provided %s does not exist.", wErr.Entity)
		}
	case workflows.KindUnavailable:
		return "This item is not available for borrowing."
	case workflows.KindAlreadyVolunteered:
		return "You have already volunteered"
	case workflows.KindTimeout:
		return "The library database took too long to respond. Please try again."
	default:
		return fmt.Sprintf("Error %s: %v", action, wErr.Unwrap())
	}
}
