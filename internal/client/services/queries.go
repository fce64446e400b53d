package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
	"github.com/dmitrijs2005/geofeed/internal/logging"
	"github.com/dmitrijs2005/geofeed/internal/lru"
)

// Query identities.
const (
	KeyFeed        = "post-feed"
	KeySuggestions = "user-suggestions"
)

func CommentsKey(postID int64) string {
	return "post-comments/" + strconv.FormatInt(postID, 10)
}

func UserPostsKey(coll client.PostCollection, username string) string {
	return string(coll) + "/" + username
}

func ProfileKey(username string) string {
	return "profile/" + username
}

func NearbyKey(q client.NearbyQuery) string {
	return "nearby-posts/" +
		strconv.FormatFloat(q.Latitude, 'f', -1, 64) + "/" +
		strconv.FormatFloat(q.Longitude, 'f', -1, 64) + "/" +
		strconv.Itoa(q.Zoom) + "/" +
		strconv.FormatBool(q.FollowingOnly)
}

// Mutation names a state-changing API call.
type Mutation string

const (
	MutationAddComment    Mutation = "add-comment"
	MutationLikePost      Mutation = "like-post"
	MutationUnlikePost    Mutation = "unlike-post"
	MutationDeletePost    Mutation = "delete-post"
	MutationLikeComment   Mutation = "like-comment"
	MutationUnlikeComment Mutation = "unlike-comment"
	MutationSavePost      Mutation = "save-post"
	MutationUnsavePost    Mutation = "unsave-post"
	MutationFollow        Mutation = "follow"
	MutationUnfollow      Mutation = "unfollow"
	MutationUpdateProfile Mutation = "update-profile"
	MutationCreatePost    Mutation = "create-post"
)

// Invalidates returns the query identities made stale by m. A trailing
// "/*" matches every identity under that prefix. postID is only used by
// mutations scoped to one post.
func Invalidates(m Mutation, postID int64) []string {
	switch m {
	case MutationAddComment:
		return []string{CommentsKey(postID)}
	case MutationLikePost, MutationUnlikePost, MutationDeletePost:
		return []string{KeyFeed, "liked-posts/*"}
	case MutationLikeComment, MutationUnlikeComment:
		return []string{"post-comments/*"}
	case MutationSavePost, MutationUnsavePost:
		return []string{"saved-posts/*"}
	case MutationFollow, MutationUnfollow:
		return []string{KeyFeed}
	case MutationUpdateProfile, MutationCreatePost:
		return []string{"profile/*", "posts/*"}
	default:
		return nil
	}
}

type resettable interface {
	Reset()
}

// QueryStore keeps the pagers and single-value results of recent queries
// in a bounded LRU keyed by query identity.
type QueryStore struct {
	mu    sync.Mutex
	cache *lru.Cache[string, resettable]
	log   logging.Logger
}

func NewQueryStore(capacity int, log logging.Logger) *QueryStore {
	if log == nil {
		log = logging.Nop()
	}
	return &QueryStore{cache: lru.New[string, resettable](capacity), log: log}
}

// PagerFor returns the pager registered under key, creating it with fetch
// on first use.
func PagerFor[T paging.Identified](s *QueryStore, key string, fetch paging.FetchFunc[T]) *paging.Pager[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(key); ok {
		if p, ok := v.(*paging.Pager[T]); ok {
			return p
		}
	}
	p := paging.NewPager(fetch)
	s.cache.Set(key, p)
	return p
}

type valueEntry[T any] struct {
	mu    sync.Mutex
	value T
	ok    bool
}

func (e *valueEntry[T]) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero T
	e.value, e.ok = zero, false
}

// Load returns the cached value under key or fetches and caches it.
// Failures are not cached.
func Load[T any](ctx context.Context, s *QueryStore, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	var e *valueEntry[T]
	if v, ok := s.cache.Get(key); ok {
		e, _ = v.(*valueEntry[T])
	}
	if e == nil {
		e = &valueEntry[T]{}
		s.cache.Set(key, e)
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ok {
		return e.value, nil
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	e.value, e.ok = v, true
	return v, nil
}

// Invalidate resets every entry matching one of patterns. An exact
// identity also matches the identities nested under it.
func (s *QueryStore) Invalidate(ctx context.Context, patterns ...string) {
	s.mu.Lock()
	var hit []resettable
	var keys []string
	for _, key := range s.cache.Keys() {
		if !matchesAny(key, patterns) {
			continue
		}
		if v, ok := s.cache.Peek(key); ok {
			hit = append(hit, v)
			keys = append(keys, key)
		}
	}
	s.mu.Unlock()

	for _, v := range hit {
		v.Reset()
	}
	if len(keys) > 0 {
		s.log.Debug(ctx, "queries invalidated", "patterns", patterns, "keys", keys)
	}
}

// Clear drops every cached query.
func (s *QueryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Clear()
}

// Len returns the number of cached queries.
func (s *QueryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func matchesAny(key string, patterns []string) bool {
	for _, p := range patterns {
		if prefix, ok := strings.CutSuffix(p, "/*"); ok {
			if strings.HasPrefix(key, prefix+"/") {
				return true
			}
			continue
		}
		if key == p || strings.HasPrefix(key, p+"/") {
			return true
		}
	}
	return false
}
