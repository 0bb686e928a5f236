package model

// CartOwner identifies whose cart a request operates on: an authenticated
// user or an anonymous browser session.
type CartOwner struct {
	UserID    string
	SessionID string
}

// IsGuest reports whether the cart belongs to an anonymous session.
func (o CartOwner) IsGuest() bool {
	return o.UserID == ""
}

// Key is the storage key of the owner's cart.
func (o CartOwner) Key() string {
	if o.UserID != "" {
		return "user:" + o.UserID
	}
	return "guest:" + o.SessionID
}

// Valid reports whether the owner carries an identity.
func (o CartOwner) Valid() bool {
	return o.UserID != "" || o.SessionID != ""
}
