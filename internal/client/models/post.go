package models

import "time"

// Post is a normalized post with its author and location.
type Post struct {
	ID            *int64
	User          User
	CreatedAt     time.Time
	Caption       string
	ImageURL      string
	Location      Location
	IsLiked       bool
	LikesCount    int64
	CommentsCount int64
}

// NewPost normalizes a post payload, including its nested user and location.
func NewPost(p *PostPayload) Post {
	if p == nil {
		return Post{User: NewUser(nil), Location: NewLocation(nil)}
	}
	return Post{
		ID:            id(p.PostID),
		User:          NewUser(p.User),
		CreatedAt:     timestamp(p.CreatedAt),
		Caption:       str(p.Caption),
		ImageURL:      str(p.ImageURL),
		Location:      NewLocation(p.Location),
		IsLiked:       flag(p.IsLiked),
		LikesCount:    num(p.LikesCount),
		CommentsCount: num(p.CommentsCount),
	}
}

// NewPosts normalizes a list of post payloads preserving order.
func NewPosts(ps []PostPayload) []Post {
	out := make([]Post, 0, len(ps))
	for i := range ps {
		out = append(out, NewPost(&ps[i]))
	}
	return out
}

// Identity returns the post id and whether it is set.
func (p Post) Identity() (int64, bool) {
	if p.ID == nil {
		return 0, false
	}
	return *p.ID, true
}

func (p Post) DisplayName() string {
	return p.User.Username
}
