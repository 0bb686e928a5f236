package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntryKind tells request lines apart from audited actions in the activity
// journal.
type EntryKind string

const (
	KindRequest EntryKind = "request"
	KindAudit   EntryKind = "audit"
)

// Valid reports whether k is a known kind.
func (k EntryKind) Valid() bool {
	return k == KindRequest || k == KindAudit
}

// Page sizes for activity listings.
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// LogEntry is one line of the activity journal: a served HTTP request or an
// action taken by a shopper or store staff, such as placing an order.
type LogEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Kind      EntryKind          `bson:"kind" json:"kind"`
	Level     string             `bson:"level" json:"level"`
	Message   string             `bson:"message" json:"message"`
	RequestID string             `bson:"request_id,omitempty" json:"requestId,omitempty"`
	Method    string             `bson:"method,omitempty" json:"method,omitempty"`
	// Route is the matched route template, e.g. /api/cart/items/:productId.
	Route     string `bson:"route,omitempty" json:"route,omitempty"`
	Status    int    `bson:"status,omitempty" json:"status,omitempty"`
	LatencyMS int64  `bson:"latency_ms,omitempty" json:"latencyMs,omitempty"`
	ClientIP  string `bson:"client_ip,omitempty" json:"clientIp,omitempty"`
	UserAgent string `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	UserID    string `bson:"user_id,omitempty" json:"userId,omitempty"`
	// CartID is the guest cart session of the request, if any.
	CartID  string                 `bson:"cart_id,omitempty" json:"cartId,omitempty"`
	Action  string                 `bson:"action,omitempty" json:"action,omitempty"`
	Error   string                 `bson:"error,omitempty" json:"error,omitempty"`
	Details map[string]interface{} `bson:"details,omitempty" json:"details,omitempty"`
}

// Stamp gives a new entry its ID and timestamp. Set values are kept.
func (e *LogEntry) Stamp(now time.Time) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
}

// ActivityFilter selects journal entries. Results are newest first.
type ActivityFilter struct {
	Kind      EntryKind
	Action    string
	UserID    string
	RequestID string
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Skip      int
}

// Normalize applies the default page size and clamps limit and skip.
func (f ActivityFilter) Normalize() ActivityFilter {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultActivityLimit
	case f.Limit > MaxActivityLimit:
		f.Limit = MaxActivityLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}
