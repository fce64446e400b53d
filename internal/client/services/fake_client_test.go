package services

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
)

// fakeClient implements client.Client for service tests. It records the
// last arguments and counts calls per method.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int

	LoginErr    error
	GoogleErr   error
	OnGoogle    func(code string)
	RegisterErr error
	LogoutErr   error
	ActionErr   error

	FeedPages    map[int]paging.Page[models.Post]
	FeedErr      error
	CommentPages map[int]paging.Page[models.Comment]
	NearbyRet    []models.Post
	UserRet      models.User
	UserErr      error
	Suggested    []models.User
	CreatedID    int64
	UploadRet    models.FileReference

	LastUsername   string
	LastPassword   string
	LastEmail      string
	LastPostID     int64
	LastCommentID  int64
	LastUserID     int64
	LastContent    string
	LastCollection client.PostCollection
	LastNewPost    client.NewPost
	LastProfile    client.ProfileUpdate
	LastFilename   string
	LastOffsets    []int
	LastLimit      int
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}}
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) Login(_ context.Context, username, password string) error {
	f.hit("Login")
	f.LastUsername, f.LastPassword = username, password
	return f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, email, username, password string) error {
	f.hit("Register")
	f.LastEmail, f.LastUsername, f.LastPassword = email, username, password
	return f.RegisterErr
}

func (f *fakeClient) LoginWithGoogle(_ context.Context, code string) error {
	f.hit("LoginWithGoogle")
	if f.GoogleErr == nil && f.OnGoogle != nil {
		f.OnGoogle(code)
	}
	return f.GoogleErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.hit("Logout")
	return f.LogoutErr
}

func (f *fakeClient) Refresh(context.Context) bool {
	f.hit("Refresh")
	return false
}

func (f *fakeClient) OnSessionInvalidated(func(ctx context.Context)) {}

func (f *fakeClient) GetUser(_ context.Context, username string) (models.User, error) {
	f.hit("GetUser")
	f.LastUsername = username
	return f.UserRet, f.UserErr
}

func (f *fakeClient) UserPosts(_ context.Context, username string, c client.PostCollection, offset, limit int) (paging.Page[models.Post], error) {
	f.hit("UserPosts")
	f.LastUsername, f.LastCollection, f.LastLimit = username, c, limit
	f.LastOffsets = append(f.LastOffsets, offset)
	return paging.Page[models.Post]{Offset: offset, Limit: limit, IsEnd: true}, nil
}

func (f *fakeClient) Suggestions(_ context.Context, limit int) ([]models.User, error) {
	f.hit("Suggestions")
	f.LastLimit = limit
	return f.Suggested, nil
}

func (f *fakeClient) Follow(_ context.Context, userID int64) error {
	f.hit("Follow")
	f.LastUserID = userID
	return f.ActionErr
}

func (f *fakeClient) Unfollow(_ context.Context, userID int64) error {
	f.hit("Unfollow")
	f.LastUserID = userID
	return f.ActionErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, in client.ProfileUpdate) (models.User, error) {
	f.hit("UpdateProfile")
	f.LastProfile = in
	return models.User{FullName: in.FullName, Bio: in.Bio}, f.ActionErr
}

func (f *fakeClient) Feed(_ context.Context, offset, limit int) (paging.Page[models.Post], error) {
	f.hit("Feed")
	f.LastLimit = limit
	f.LastOffsets = append(f.LastOffsets, offset)
	if f.FeedErr != nil {
		return paging.Page[models.Post]{}, f.FeedErr
	}
	return f.FeedPages[offset], nil
}

func (f *fakeClient) Comments(_ context.Context, postID int64, offset, limit int) (paging.Page[models.Comment], error) {
	f.hit("Comments")
	f.LastPostID, f.LastLimit = postID, limit
	f.LastOffsets = append(f.LastOffsets, offset)
	return f.CommentPages[offset], nil
}

func (f *fakeClient) Nearby(context.Context, client.NearbyQuery) ([]models.Post, error) {
	f.hit("Nearby")
	return f.NearbyRet, nil
}

func (f *fakeClient) CreatePost(_ context.Context, in client.NewPost) (int64, error) {
	f.hit("CreatePost")
	f.LastNewPost = in
	return f.CreatedID, f.ActionErr
}

func (f *fakeClient) postAction(name string, postID int64) error {
	f.hit(name)
	f.LastPostID = postID
	return f.ActionErr
}

func (f *fakeClient) DeletePost(_ context.Context, id int64) error { return f.postAction("DeletePost", id) }
func (f *fakeClient) LikePost(_ context.Context, id int64) error { return f.postAction("LikePost", id) }
func (f *fakeClient) UnlikePost(_ context.Context, id int64) error { return f.postAction("UnlikePost", id) }
func (f *fakeClient) SavePost(_ context.Context, id int64) error { return f.postAction("SavePost", id) }
func (f *fakeClient) UnsavePost(_ context.Context, id int64) error { return f.postAction("UnsavePost", id) }

func (f *fakeClient) AddComment(_ context.Context, postID int64, content string) (models.Comment, error) {
	f.hit("AddComment")
	f.LastPostID, f.LastContent = postID, content
	return models.Comment{Content: content}, f.ActionErr
}

func (f *fakeClient) LikeComment(_ context.Context, id int64) error {
	f.hit("LikeComment")
	f.LastCommentID = id
	return f.ActionErr
}

func (f *fakeClient) UnlikeComment(_ context.Context, id int64) error {
	f.hit("UnlikeComment")
	f.LastCommentID = id
	return f.ActionErr
}

func (f *fakeClient) UploadFile(_ context.Context, filename string, r io.Reader) (models.FileReference, error) {
	f.hit("UploadFile")
	f.LastFilename = filename
	_, _ = io.Copy(io.Discard, r)
	return f.UploadRet, f.ActionErr
}

var _ client.Client = (*fakeClient)(nil)

func ptr[T any](v T) *T { return &v }

func post(id int64) models.Post { return models.Post{ID: ptr(id)} }
