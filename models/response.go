package models

import (
	"time"
)

// Response records that a user responded to a job post.
type Response struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PostID    uint      `json:"postId" gorm:"index;not null"`
	AuthorID  uint      `json:"authorId" gorm:"index;not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"createdAt"`
}

const NotificationTypeResponse = "response"

// NotificationData carries the references a client needs to render and
// follow a notification.
type NotificationData struct {
	PostID     uint `json:"postId,omitempty"`
	ResponseID uint `json:"responseId,omitempty"`
	FromUserID uint `json:"fromUserId,omitempty"`
}

// Notification is the stored shape only; delivery is up to the client
// polling GET /api/responses/notifications/:userId.
type Notification struct {
	ID        uint             `json:"id" gorm:"primarykey"`
	UserID    uint             `json:"userId" gorm:"index;not null"`
	Type      string           `json:"type" gorm:"not null"`
	Message   string           `json:"message" gorm:"not null"`
	IsRead    bool             `json:"isRead" gorm:"not null;default:false"`
	Data      NotificationData `json:"data" gorm:"serializer:json"`
	CreatedAt time.Time        `json:"createdAt"`
}
