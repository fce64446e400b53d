package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
)

// Records are kept raw so each one is normalized on its own.
type postsPage struct {
	Posts []json.RawMessage `json:"posts"`
	IsEnd bool              `json:"isEnd"`
}

type usersResponse struct {
	Users []json.RawMessage `json:"users"`
}

type followRequest struct {
	FollowingUserID int64 `json:"following_user_id"`
}

func pageQuery(offset, limit int) url.Values {
	return url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
	}
}

func (c *HTTPClient) GetUser(ctx context.Context, username string) (models.User, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, nil, &raw); err != nil {
		return models.User{}, err
	}
	return models.DecodeUser(raw), nil
}

func (c *HTTPClient) UserPosts(ctx context.Context, username string, coll PostCollection, offset, limit int) (paging.Page[models.Post], error) {
	var resp postsPage
	path := "/users/" + url.PathEscape(username) + "/" + string(coll)
	if err := c.doJSON(ctx, http.MethodGet, path, pageQuery(offset, limit), nil, &resp); err != nil {
		return paging.Page[models.Post]{}, err
	}
	return paging.Page[models.Post]{Items: models.DecodePosts(resp.Posts), Offset: offset, Limit: limit, IsEnd: resp.IsEnd}, nil
}

func (c *HTTPClient) Suggestions(ctx context.Context, limit int) ([]models.User, error) {
	var resp usersResponse
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.doJSON(ctx, http.MethodGet, "/users/suggestions", q, nil, &resp); err != nil {
		return nil, err
	}
	return models.DecodeUsers(resp.Users), nil
}

func (c *HTTPClient) Follow(ctx context.Context, userID int64) error {
	return c.doJSON(ctx, http.MethodPost, "/users/follow", nil, followRequest{FollowingUserID: userID}, nil)
}

func (c *HTTPClient) Unfollow(ctx context.Context, userID int64) error {
	return c.doJSON(ctx, http.MethodPost, "/users/unfollow", nil, followRequest{FollowingUserID: userID}, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, in ProfileUpdate) (models.User, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, "/users/update-profile", nil, in, &raw); err != nil {
		return models.User{}, err
	}
	return models.DecodeUser(raw), nil
}
