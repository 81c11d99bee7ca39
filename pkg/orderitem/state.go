// Package orderitem implements the order item page workflow: assembling the
// session draft on GET, and validating, persisting and error-translating on
// POST.
package orderitem

// newItemSentinel is the route parameter value the frontend uses for an
// order item that has not been created yet.
const newItemSentinel = "neworderitem"

// ItemRef is the two-state order item reference: a new item being assembled
// from session selections, or an existing item identified by its persisted
// id. It is decided once at the workflow entry point and threaded through.
type ItemRef struct {
	id string
}

// ParseItemRef decides the state from the route parameter.
func ParseItemRef(raw string) ItemRef {
	if raw == newItemSentinel {
		return ItemRef{}
	}
	return ItemRef{id: raw}
}

// NewItem returns the reference for a not-yet-created order item.
func NewItem() ItemRef {
	return ItemRef{}
}

// ExistingItem returns the reference for a persisted order item.
func ExistingItem(id string) ItemRef {
	return ItemRef{id: id}
}

// IsNew reports whether the reference is the new-item state.
func (r ItemRef) IsNew() bool {
	return r.id == ""
}

// ID returns the persisted order item id; empty for a new item.
func (r ItemRef) ID() string {
	return r.id
}
