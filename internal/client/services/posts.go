package services

import (
	"context"
	"io"
	"strings"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
	"github.com/dmitrijs2005/geofeed/internal/logging"
)

// PostService covers the feed, comments, the map view and post mutations.
type PostService struct {
	client  client.Client
	queries *QueryStore
	log     logging.Logger
}

func NewPostService(c client.Client, queries *QueryStore, log logging.Logger) *PostService {
	if log == nil {
		log = logging.Nop()
	}
	return &PostService{client: c, queries: queries, log: log}
}

// Feed returns the pager of the home feed.
func (s *PostService) Feed() *paging.Pager[models.Post] {
	return PagerFor(s.queries, KeyFeed, func(ctx context.Context, offset int) (paging.Page[models.Post], error) {
		return s.client.Feed(ctx, offset, paging.FeedLimit)
	})
}

// Comments returns the pager of one post's comments.
func (s *PostService) Comments(postID int64) *paging.Pager[models.Comment] {
	return PagerFor(s.queries, CommentsKey(postID), func(ctx context.Context, offset int) (paging.Page[models.Comment], error) {
		return s.client.Comments(ctx, postID, offset, paging.CommentsLimit)
	})
}

// Nearby returns the posts around a map position, without repeats.
func (s *PostService) Nearby(ctx context.Context, q client.NearbyQuery) ([]models.Post, error) {
	return Load(ctx, s.queries, NearbyKey(q), func(ctx context.Context) ([]models.Post, error) {
		posts, err := s.client.Nearby(ctx, q)
		if err != nil {
			return nil, err
		}
		return paging.Dedupe(posts), nil
	})
}

// Upload stores an image and returns its URL for use in Create.
func (s *PostService) Upload(ctx context.Context, filename string, r io.Reader) (models.FileReference, error) {
	ref, err := s.client.UploadFile(ctx, filename, r)
	if err != nil {
		return models.FileReference{}, err
	}
	s.log.Info(ctx, "file uploaded", "url", ref.URL)
	return ref, nil
}

func (s *PostService) Create(ctx context.Context, in client.NewPost) (int64, error) {
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if err := validateNewPost(in.ImageURL); err != nil {
		return 0, err
	}

	id, err := s.client.CreatePost(ctx, in)
	if err != nil {
		return 0, err
	}
	s.mutated(ctx, MutationCreatePost, id)
	return id, nil
}

func (s *PostService) AddComment(ctx context.Context, postID int64, content string) (models.Comment, error) {
	content = strings.TrimSpace(content)
	if err := validateComment(content); err != nil {
		return models.Comment{}, err
	}

	c, err := s.client.AddComment(ctx, postID, content)
	if err != nil {
		return models.Comment{}, err
	}
	s.mutated(ctx, MutationAddComment, postID)
	return c, nil
}

func (s *PostService) Delete(ctx context.Context, postID int64) error {
	return s.apply(ctx, MutationDeletePost, postID, s.client.DeletePost)
}

func (s *PostService) Like(ctx context.Context, postID int64) error {
	return s.apply(ctx, MutationLikePost, postID, s.client.LikePost)
}

func (s *PostService) Unlike(ctx context.Context, postID int64) error {
	return s.apply(ctx, MutationUnlikePost, postID, s.client.UnlikePost)
}

func (s *PostService) Save(ctx context.Context, postID int64) error {
	return s.apply(ctx, MutationSavePost, postID, s.client.SavePost)
}

func (s *PostService) Unsave(ctx context.Context, postID int64) error {
	return s.apply(ctx, MutationUnsavePost, postID, s.client.UnsavePost)
}

func (s *PostService) LikeComment(ctx context.Context, commentID int64) error {
	return s.apply(ctx, MutationLikeComment, 0, func(ctx context.Context, _ int64) error {
		return s.client.LikeComment(ctx, commentID)
	})
}

func (s *PostService) UnlikeComment(ctx context.Context, commentID int64) error {
	return s.apply(ctx, MutationUnlikeComment, 0, func(ctx context.Context, _ int64) error {
		return s.client.UnlikeComment(ctx, commentID)
	})
}

func (s *PostService) apply(ctx context.Context, m Mutation, postID int64, call func(context.Context, int64) error) error {
	if err := call(ctx, postID); err != nil {
		return err
	}
	s.mutated(ctx, m, postID)
	return nil
}

func (s *PostService) mutated(ctx context.Context, m Mutation, postID int64) {
	s.log.Info(ctx, "mutation applied", "mutation", m, "post_id", postID)
	s.queries.Invalidate(ctx, Invalidates(m, postID)...)
}
