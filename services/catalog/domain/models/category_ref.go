package models

import "github.com/google/uuid"

// Display fallbacks for category references that cannot be resolved to a name.
const (
	// DisplayUncategorized is shown when a product has no category reference.
	DisplayUncategorized = "Uncategorized"
	// DisplayUnknown is shown when the reference is set but dangling, meaning
	// the category was deleted after the product pointed at it.
	DisplayUnknown = "Unknown"
)

// CategoryRef is the result of resolving a product's weak category reference
// for display. It is an explicit three-state value (not set / dangling /
// resolved) so callers never infer state from nil checks.
type CategoryRef struct {
	id       uuid.UUID
	set      bool
	resolved bool
	name     string
}

// NoCategory returns the ref for a product without a category.
func NoCategory() CategoryRef {
	return CategoryRef{}
}

// UnresolvedCategory returns the ref for a dangling category id.
func UnresolvedCategory(id uuid.UUID) CategoryRef {
	return CategoryRef{id: id, set: true}
}

// ResolvedCategory returns the ref for a category that resolved to name.
func ResolvedCategory(id uuid.UUID, name string) CategoryRef {
	return CategoryRef{id: id, set: true, resolved: true, name: name}
}

// ID returns the referenced category id and whether a reference is set at all.
func (r CategoryRef) ID() (uuid.UUID, bool) {
	return r.id, r.set
}

// DisplayName returns the category name for display, falling back to
// "Uncategorized" for an absent reference and "Unknown" for a dangling one.
func (r CategoryRef) DisplayName() string {
	switch {
	case !r.set:
		return DisplayUncategorized
	case !r.resolved:
		return DisplayUnknown
	default:
		return r.name
	}
}
