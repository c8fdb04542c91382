package http

import (
	"net/http"
	"strconv"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/middleware"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
)

// currentUser pulls the authenticated user out of the request context and
// writes the 401 itself when the middleware did not run.
func currentUser(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return user.User{}, false
	}
	return actor, true
}

// parsePagination reads page/limit query parameters with sane defaults.
func parsePagination(r *http.Request) (page, limit int) {
	page, limit = 1, 20
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}
