package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// CSRFTokenContextKey is the gin context key the templates read the CSRF
// token from.
const CSRFTokenContextKey = "csrf_token"

// CSRFMiddleware creates a gin middleware protecting every form POST with
// gorilla/csrf. Safe methods (GET, HEAD, OPTIONS, TRACE) pass through.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		passed := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			// Expose the token for templates and carry the CSRF
			// context into the rest of the chain.
			c.Set(CSRFTokenContextKey, csrf.Token(r))
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)

		// On rejection gorilla/csrf writes the error response itself and
		// never calls the wrapped handler; stop gin from running the rest
		// of the chain on top of it.
		if !passed {
			c.Abort()
		}
	}
}

// csrfErrorHandler sends expired-token form submissions back where they came
// from instead of dead-ending on a plain 403.
func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	referer := r.Referer()
	if referer != "" {
		separator := "?"
		if strings.Contains(referer, "?") {
			separator = "&"
		}
		http.Redirect(w, r, referer+separator+"error=Session+expired.+Please+try+again.", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("Forbidden: CSRF token invalid or missing"))
}
