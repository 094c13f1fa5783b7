package query

// Pagination carries optional list-window parameters from the HTTP layer to
// repositories. Nil fields mean "use the repository default". List ordering is
// fixed per resource, so there is no order parameter here.
type Pagination struct {
	Limit  *int
	Offset *int
}

// EffectiveLimit returns the requested limit or fallback when unset.
func (p *Pagination) EffectiveLimit(fallback int) int {
	if p == nil || p.Limit == nil || *p.Limit <= 0 {
		return fallback
	}
	return *p.Limit
}
