package models

import "time"

// UserPayload is the server representation of a user profile.
type UserPayload struct {
	UserID         ID      `json:"user_id"`
	Username       *string `json:"username"`
	FullName       *string `json:"full_name"`
	Bio            *string `json:"bio"`
	AvatarURL      *string `json:"avatar_url"`
	FollowersCount *Count  `json:"followers_count"`
	FollowingCount *Count  `json:"following_count"`
	PostsCount     *Count  `json:"posts_count"`
	IsFollowing    *bool   `json:"is_following"`
}

// LocationPayload is the server representation of a post location.
type LocationPayload struct {
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// PostPayload is the server representation of a post.
type PostPayload struct {
	PostID        ID               `json:"post_id"`
	User          *UserPayload     `json:"user"`
	CreatedAt     *Timestamp       `json:"created_at"`
	Caption       *string          `json:"caption"`
	ImageURL      *string          `json:"image_url"`
	Location      *LocationPayload `json:"location"`
	IsLiked       *bool            `json:"is_liked"`
	LikesCount    *Count           `json:"likes_count"`
	CommentsCount *Count           `json:"comments_count"`
}

// CommentPayload is the server representation of a comment.
type CommentPayload struct {
	CommentID  ID           `json:"comment_id"`
	User       *UserPayload `json:"user"`
	CreatedAt  *Timestamp   `json:"created_at"`
	Content    *string      `json:"content"`
	LikesCount *Count       `json:"likes_count"`
	IsLiked    *bool        `json:"is_liked"`
}

// FilePayload is the response of the upload endpoint.
type FilePayload struct {
	URL *string `json:"url"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *Count) int64 {
	if p == nil || *p < 0 {
		return 0
	}
	return int64(*p)
}

func flag(p *bool) bool {
	return p != nil && *p
}

func timestamp(p *Timestamp) time.Time {
	if p == nil {
		return time.Time{}
	}
	return p.Time
}

func id(i ID) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}
