package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/aquasense/water-quality-api/internal/core/domain"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

// ctxViewer extracts the identity injected by the Auth middleware. A missing
// user_id means the middleware did not run or the token carried no subject;
// either way the request is unauthenticated.
func ctxViewer(c echo.Context) (ports.Viewer, error) {
	userID, ok := c.Get("user_id").(int64)
	if !ok || userID == 0 {
		return ports.Viewer{}, domain.ErrAuthRequired
	}
	role, _ := c.Get("role").(domain.Role)
	return ports.Viewer{ID: userID, Role: role}, nil
}
