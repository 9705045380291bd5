package models

import (
	"time"
)

type PostType string

// Post types use the wire values the existing clients send.
const (
	PostTypeContent PostType = "Контент"
	PostTypeEvent   PostType = "Событие"
	PostTypeVacancy PostType = "Вакансия"
)

func (t PostType) IsValid() bool {
	switch t {
	case PostTypeContent, PostTypeEvent, PostTypeVacancy:
		return true
	}
	return false
}

type Post struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"not null"`
	Content      string    `json:"content" gorm:"not null"`
	Type         PostType  `json:"type" gorm:"not null"`
	Direction    string    `json:"direction" gorm:"not null"`
	PreviewImage string    `json:"previewImage"`
	AuthorID     uint      `json:"authorId" gorm:"index;not null"`
	Author       User      `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Likes and LikedBy are derived from post_likes on every read and
	// never stored on the post row, so the count cannot drift from the
	// membership set.
	Likes   int64  `json:"likes" gorm:"-"`
	LikedBy []uint `json:"likedBy" gorm:"-"`
}

// PostLike is one user's like on one post. The composite unique index
// makes the insert the atomic "not already liked" check.
type PostLike struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	PostID    uint      `json:"postId" gorm:"uniqueIndex:idx_post_likes_post_user;not null"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_post_likes_post_user;not null"`
	CreatedAt time.Time `json:"-"`
}
