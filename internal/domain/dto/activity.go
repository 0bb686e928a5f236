package dto

import (
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// ActivityQuery is the query string of GET /api/admin/activity.
type ActivityQuery struct {
	Kind      string    `form:"kind" binding:"omitempty,oneof=request audit"`
	Action    string    `form:"action" binding:"omitempty,max=64"`
	UserID    string    `form:"user_id" binding:"omitempty,max=64"`
	RequestID string    `form:"request_id" binding:"omitempty,max=64"`
	Since     time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until     time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int       `form:"limit" binding:"omitempty,min=1,max=200"`
	Skip      int       `form:"skip" binding:"omitempty,min=0"`
}

// ToFilter converts the query to a journal filter. Zero times leave the
// window open.
func (q ActivityQuery) ToFilter() model.ActivityFilter {
	f := model.ActivityFilter{
		Kind:      model.EntryKind(q.Kind),
		Action:    q.Action,
		UserID:    q.UserID,
		RequestID: q.RequestID,
		Limit:     q.Limit,
		Skip:      q.Skip,
	}
	if !q.Since.IsZero() {
		since := q.Since
		f.Since = &since
	}
	if !q.Until.IsZero() {
		until := q.Until
		f.Until = &until
	}
	return f
}
