package models

import "strconv"

// User is a normalized user profile.
type User struct {
	ID             *int64
	Username       string
	FullName       string
	Bio            string
	AvatarURL      string
	FollowersCount int64
	FollowingCount int64
	PostsCount     int64
	IsFollowing    bool
}

// NewUser normalizes a user payload. A nil payload yields a defaulted user.
func NewUser(p *UserPayload) User {
	if p == nil {
		return User{}
	}
	return User{
		ID:             id(p.UserID),
		Username:       str(p.Username),
		FullName:       str(p.FullName),
		Bio:            str(p.Bio),
		AvatarURL:      str(p.AvatarURL),
		FollowersCount: num(p.FollowersCount),
		FollowingCount: num(p.FollowingCount),
		PostsCount:     num(p.PostsCount),
		IsFollowing:    flag(p.IsFollowing),
	}
}

// Identity returns the user id and whether it is set.
func (u User) Identity() (int64, bool) {
	if u.ID == nil {
		return 0, false
	}
	return *u.ID, true
}

func (u User) DisplayName() string {
	return u.Username
}

func (u User) String() string {
	ident := "-"
	if v, ok := u.Identity(); ok {
		ident = strconv.FormatInt(v, 10)
	}
	return "@" + u.Username + " (#" + ident + ")"
}
