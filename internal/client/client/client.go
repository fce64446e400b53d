package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
)

// PostCollection names a per-user post list.
type PostCollection string

const (
	CollectionPosts PostCollection = "posts"
	CollectionLiked PostCollection = "liked-posts"
	CollectionSaved PostCollection = "saved-posts"
)

// NearbyQuery scopes the map view.
type NearbyQuery struct {
	Latitude      float64
	Longitude     float64
	Zoom          int
	FollowingOnly bool
}

// NewPost is the body of a create-post call.
type NewPost struct {
	ImageURL     string  `json:"image_url"`
	Caption      string  `json:"caption"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// ProfileUpdate is the body of an update-profile call.
type ProfileUpdate struct {
	FullName  string `json:"full_name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// Client is the API contract used by the services.
type Client interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, email, username, password string) error
	LoginWithGoogle(ctx context.Context, code string) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) bool
	OnSessionInvalidated(fn func(ctx context.Context))

	GetUser(ctx context.Context, username string) (models.User, error)
	UserPosts(ctx context.Context, username string, c PostCollection, offset, limit int) (paging.Page[models.Post], error)
	Suggestions(ctx context.Context, limit int) ([]models.User, error)
	Follow(ctx context.Context, userID int64) error
	Unfollow(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, in ProfileUpdate) (models.User, error)

	Feed(ctx context.Context, offset, limit int) (paging.Page[models.Post], error)
	Comments(ctx context.Context, postID int64, offset, limit int) (paging.Page[models.Comment], error)
	Nearby(ctx context.Context, q NearbyQuery) ([]models.Post, error)
	CreatePost(ctx context.Context, in NewPost) (int64, error)
	DeletePost(ctx context.Context, postID int64) error
	LikePost(ctx context.Context, postID int64) error
	UnlikePost(ctx context.Context, postID int64) error
	SavePost(ctx context.Context, postID int64) error
	UnsavePost(ctx context.Context, postID int64) error
	AddComment(ctx context.Context, postID int64, content string) (models.Comment, error)
	LikeComment(ctx context.Context, commentID int64) error
	UnlikeComment(ctx context.Context, commentID int64) error

	UploadFile(ctx context.Context, filename string, r io.Reader) (models.FileReference, error)
}
