package service

import "bookmarks/internal/domain/entity"

// Decision is the outcome of an ownership check.
type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}

	return "denied"
}

// Authorize allows access only when the principal owns the resource.
// Callers must load the resource first and report a missing one as not found
// before asking.
func Authorize(principal *entity.Principal, ownerID int64) Decision {
	if principal == nil || principal.ID != ownerID {
		return Denied
	}

	return Allowed
}
