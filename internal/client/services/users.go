package services

import (
	"context"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
	"github.com/dmitrijs2005/geofeed/internal/logging"
)

// UserService covers profiles, per-user post grids and follows.
type UserService struct {
	client  client.Client
	queries *QueryStore
	log     logging.Logger
}

func NewUserService(c client.Client, queries *QueryStore, log logging.Logger) *UserService {
	if log == nil {
		log = logging.Nop()
	}
	return &UserService{client: c, queries: queries, log: log}
}

func (s *UserService) Profile(ctx context.Context, username string) (models.User, error) {
	if err := required("username", username); err != nil {
		return models.User{}, err
	}
	return Load(ctx, s.queries, ProfileKey(username), func(ctx context.Context) (models.User, error) {
		return s.client.GetUser(ctx, username)
	})
}

// Posts returns the pager of a user's posts, liked posts or saved posts.
func (s *UserService) Posts(username string, coll client.PostCollection) *paging.Pager[models.Post] {
	return PagerFor(s.queries, UserPostsKey(coll, username), func(ctx context.Context, offset int) (paging.Page[models.Post], error) {
		return s.client.UserPosts(ctx, username, coll, offset, paging.ProfilePostsLimit)
	})
}

func (s *UserService) Suggestions(ctx context.Context) ([]models.User, error) {
	return Load(ctx, s.queries, KeySuggestions, func(ctx context.Context) ([]models.User, error) {
		return s.client.Suggestions(ctx, paging.SuggestionsLimit)
	})
}

func (s *UserService) Follow(ctx context.Context, userID int64) error {
	if err := s.client.Follow(ctx, userID); err != nil {
		return err
	}
	s.mutated(ctx, MutationFollow, userID)
	return nil
}

func (s *UserService) Unfollow(ctx context.Context, userID int64) error {
	if err := s.client.Unfollow(ctx, userID); err != nil {
		return err
	}
	s.mutated(ctx, MutationUnfollow, userID)
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in client.ProfileUpdate) (models.User, error) {
	u, err := s.client.UpdateProfile(ctx, in)
	if err != nil {
		return models.User{}, err
	}
	s.mutated(ctx, MutationUpdateProfile, 0)
	return u, nil
}

func (s *UserService) mutated(ctx context.Context, m Mutation, userID int64) {
	s.log.Info(ctx, "mutation applied", "mutation", m, "user_id", userID)
	s.queries.Invalidate(ctx, Invalidates(m, 0)...)
}
