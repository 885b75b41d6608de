package entity

import (
	"time"

	"github.com/google/uuid"
)

// Severity tags a user notification for presentation purposes.
type Severity string

// The fixed severity enum for user notifications.
const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// UserNotification is one short message in a user's append-only message
// queue. Notifications are stored, never pushed; the client drains them on
// its next render and marks them read.
type UserNotification struct {
	ID        uuid.UUID  // The unique identifier for the notification.
	UserID    uuid.UUID  // The user the message is addressed to.
	Severity  Severity   // Presentation hint: success, warning, error or info.
	Message   string     // The short human-readable text.
	ReadAt    *time.Time // When the user acknowledged the message, nil if unread.
	CreatedAt time.Time  // Timestamp of when the message was enqueued.
}
