package cart

// NoticeKind identifies the user-facing outcome of a cart operation.
type NoticeKind string

const (
	NoticeAdded       NoticeKind = "added"
	NoticeIncremented NoticeKind = "incremented"
	NoticeUpdated     NoticeKind = "updated"
	NoticeRemoved     NoticeKind = "removed"
	NoticeCleared     NoticeKind = "cleared"
	NoticeMerged      NoticeKind = "merged"
	NoticeOutOfStock  NoticeKind = "out_of_stock"
	NoticeUnchanged   NoticeKind = "unchanged"
)

// Notice describes the result of a mutation so the caller can show it to the
// shopper. Quantity is the line quantity after the operation, or the number of
// lines moved for NoticeMerged, and Available is the stock ceiling that
// applied to it.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	ProductID string     `json:"productId,omitempty"`
	Name      string     `json:"name,omitempty"`
	Quantity  int        `json:"quantity,omitempty"`
	Available int        `json:"available,omitempty"`
}

// Rejected reports whether the operation was refused.
func (n Notice) Rejected() bool {
	return n.Kind == NoticeOutOfStock
}

// Changed reports whether the operation modified the cart.
func (n Notice) Changed() bool {
	switch n.Kind {
	case NoticeAdded, NoticeIncremented, NoticeUpdated, NoticeRemoved, NoticeCleared, NoticeMerged:
		return true
	default:
		return false
	}
}
