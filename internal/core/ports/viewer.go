package ports

import "github.com/aquasense/water-quality-api/internal/core/domain"

// Viewer is the authenticated identity on whose behalf a query runs. It is
// passed explicitly to every service call; there is no ambient current user.
type Viewer struct {
	ID   int64
	Role domain.Role
}

// Scope translates the viewer's role into the visibility predicate applied to
// reading queries: view-all roles see everything, everyone else is restricted
// to their own rows plus public ones.
func (v Viewer) Scope() ReadingScope {
	if v.Role.CanViewAll() {
		return ReadingScope{ViewAll: true}
	}
	return ReadingScope{ViewerID: v.ID}
}

// ReadingScope carries the visibility predicate for reading queries.
// ViewAll=true means no filter; otherwise restrict to
// user_id = ViewerID OR is_public = TRUE.
type ReadingScope struct {
	ViewerID int64
	ViewAll  bool
}
