package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
)

type commentsPage struct {
	Comments []json.RawMessage `json:"comments"`
	IsEnd    bool              `json:"isEnd"`
}

type postRef struct {
	PostID int64 `json:"post_id"`
}

type commentRef struct {
	CommentID int64 `json:"comment_id"`
}

type addCommentRequest struct {
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

type createPostResponse struct {
	PostID models.ID `json:"post_id"`
}

func (c *HTTPClient) Feed(ctx context.Context, offset, limit int) (paging.Page[models.Post], error) {
	var resp postsPage
	if err := c.doJSON(ctx, http.MethodGet, "/posts/feed", pageQuery(offset, limit), nil, &resp); err != nil {
		return paging.Page[models.Post]{}, err
	}
	return paging.Page[models.Post]{Items: models.DecodePosts(resp.Posts), Offset: offset, Limit: limit, IsEnd: resp.IsEnd}, nil
}

func (c *HTTPClient) Comments(ctx context.Context, postID int64, offset, limit int) (paging.Page[models.Comment], error) {
	var resp commentsPage
	path := "/posts/" + strconv.FormatInt(postID, 10) + "/comments"
	if err := c.doJSON(ctx, http.MethodGet, path, pageQuery(offset, limit), nil, &resp); err != nil {
		return paging.Page[models.Comment]{}, err
	}
	return paging.Page[models.Comment]{Items: models.DecodeComments(resp.Comments), Offset: offset, Limit: limit, IsEnd: resp.IsEnd}, nil
}

func (c *HTTPClient) Nearby(ctx context.Context, q NearbyQuery) ([]models.Post, error) {
	var resp postsPage
	params := url.Values{
		"latitude":       {strconv.FormatFloat(q.Latitude, 'f', -1, 64)},
		"longitude":      {strconv.FormatFloat(q.Longitude, 'f', -1, 64)},
		"zoom":           {strconv.Itoa(q.Zoom)},
		"following_only": {strconv.FormatBool(q.FollowingOnly)},
	}
	if err := c.doJSON(ctx, http.MethodGet, "/posts/geographic-nearby", params, nil, &resp); err != nil {
		return nil, err
	}
	return models.DecodePosts(resp.Posts), nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, in NewPost) (int64, error) {
	var resp createPostResponse
	if err := c.doJSON(ctx, http.MethodPost, "/posts/create", nil, in, &resp); err != nil {
		return 0, err
	}
	if !resp.PostID.Valid {
		return 0, fmt.Errorf("%w: no post id", ErrBadResponse)
	}
	return resp.PostID.Value, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, postID int64, content string) (models.Comment, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, "/posts/add-comment", nil, addCommentRequest{PostID: postID, Content: content}, &raw); err != nil {
		return models.Comment{}, err
	}
	return models.DecodeComment(raw), nil
}

func (c *HTTPClient) postAction(ctx context.Context, action string, postID int64) error {
	return c.doJSON(ctx, http.MethodPost, "/posts/"+action, nil, postRef{PostID: postID}, nil)
}

func (c *HTTPClient) commentAction(ctx context.Context, action string, commentID int64) error {
	return c.doJSON(ctx, http.MethodPost, "/posts/"+action, nil, commentRef{CommentID: commentID}, nil)
}

func (c *HTTPClient) DeletePost(ctx context.Context, postID int64) error {
	return c.postAction(ctx, "delete", postID)
}

func (c *HTTPClient) LikePost(ctx context.Context, postID int64) error {
	return c.postAction(ctx, "like", postID)
}

func (c *HTTPClient) UnlikePost(ctx context.Context, postID int64) error {
	return c.postAction(ctx, "unlike", postID)
}

func (c *HTTPClient) SavePost(ctx context.Context, postID int64) error {
	return c.postAction(ctx, "save-post", postID)
}

func (c *HTTPClient) UnsavePost(ctx context.Context, postID int64) error {
	return c.postAction(ctx, "unsave-post", postID)
}

func (c *HTTPClient) LikeComment(ctx context.Context, commentID int64) error {
	return c.commentAction(ctx, "like-comment", commentID)
}

func (c *HTTPClient) UnlikeComment(ctx context.Context, commentID int64) error {
	return c.commentAction(ctx, "unlike-comment", commentID)
}
