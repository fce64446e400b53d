package models

import "time"

// Comment is a normalized comment on a post.
type Comment struct {
	ID         *int64
	User       User
	CreatedAt  time.Time
	Content    string
	LikesCount int64
	IsLiked    bool
}

// NewComment normalizes a comment payload, including its author.
func NewComment(p *CommentPayload) Comment {
	if p == nil {
		return Comment{}
	}
	return Comment{
		ID:         id(p.CommentID),
		User:       NewUser(p.User),
		CreatedAt:  timestamp(p.CreatedAt),
		Content:    str(p.Content),
		LikesCount: num(p.LikesCount),
		IsLiked:    flag(p.IsLiked),
	}
}

// NewComments normalizes a list of comment payloads preserving order.
func NewComments(cs []CommentPayload) []Comment {
	out := make([]Comment, 0, len(cs))
	for i := range cs {
		out = append(out, NewComment(&cs[i]))
	}
	return out
}

// Identity returns the comment id and whether it is set.
func (c Comment) Identity() (int64, bool) {
	if c.ID == nil {
		return 0, false
	}
	return *c.ID, true
}

func (c Comment) DisplayName() string {
	return c.User.Username
}
