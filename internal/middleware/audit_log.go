package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/model"
)

// Audit journals an action taken during the request, such as an order being
// placed or a price rule changed.
func Audit(c *gin.Context, action, message string, details map[string]interface{}) {
	GetJournal(c).Write(auditEntry(c, "info", action, message, details))
}

// AuditFailure journals an action that failed.
func AuditFailure(c *gin.Context, action, message string, err error, details map[string]interface{}) {
	entry := auditEntry(c, "error", action, message, details)
	if err != nil {
		entry.Error = err.Error()
	}
	GetJournal(c).Write(entry)
}

func auditEntry(c *gin.Context, level, action, message string, details map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Kind:      model.KindAudit,
		Level:     level,
		Message:   message,
		Action:    action,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Route:     c.FullPath(),
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Details:   details,
	}
	fillActor(c, entry)
	return entry
}
