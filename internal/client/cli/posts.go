package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
)

// Explore page defaults for the map view.
const (
	defaultLatitude  = 40.889942
	defaultLongitude = -103.9560727
	defaultZoom      = 5
)

// Feed shows the home feed, fetching its first page when nothing is cached.
func (a *App) Feed(ctx context.Context, _ []string) error {
	return a.showPosts(ctx, a.posts.Feed())
}

// More continues the post list shown last.
func (a *App) More(ctx context.Context, _ []string) error {
	if a.list == nil {
		printlnFn("Nothing to continue. Try 'feed' first.")
		return nil
	}
	posts, err := a.list.FetchNext(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		printlnFn("No more posts.")
		return nil
	}
	a.printPosts(posts)
	return nil
}

func (a *App) showPosts(ctx context.Context, p *paging.Pager[models.Post]) error {
	a.list = p

	if p.Pages() == 0 {
		if _, err := p.FetchNext(ctx); err != nil {
			return err
		}
	}

	posts := p.Items()
	if len(posts) == 0 {
		printlnFn("No posts yet.")
		return nil
	}
	a.printPosts(posts)
	if !p.Done() {
		printlnFn("Type 'more' to load more.")
	}
	return nil
}

func (a *App) printPosts(posts []models.Post) {
	now := a.now()
	for _, p := range posts {
		printlnFn(renderPost(p, now))
	}
}

// Comments shows the comments of one post.
func (a *App) Comments(ctx context.Context, args []string) error {
	postID, err := parseID(args)
	if err != nil {
		return err
	}

	p := a.posts.Comments(postID)
	a.comments = p
	if p.Pages() == 0 {
		if _, err := p.FetchNext(ctx); err != nil {
			return err
		}
	}

	cs := p.Items()
	if len(cs) == 0 {
		printlnFn("No comments yet.")
		return nil
	}
	a.printComments(cs)
	if !p.Done() {
		printlnFn("Type 'morecomments' to load more.")
	}
	return nil
}

func (a *App) MoreComments(ctx context.Context, _ []string) error {
	if a.comments == nil {
		printlnFn("Nothing to continue. Try 'comments <post-id>' first.")
		return nil
	}
	cs, err := a.comments.FetchNext(ctx)
	if err != nil {
		return err
	}
	if len(cs) == 0 {
		printlnFn("No more comments.")
		return nil
	}
	a.printComments(cs)
	return nil
}

func (a *App) printComments(cs []models.Comment) {
	now := a.now()
	for _, c := range cs {
		printlnFn(renderComment(c, now))
	}
}

// AddComment posts the rest of the line as a comment.
func (a *App) AddComment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	postID, err := parseID(args[:1])
	if err != nil {
		return err
	}

	c, err := a.posts.AddComment(ctx, postID, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	printlnFn(renderComment(c, a.now()))
	return nil
}

// Nearby shows posts around a position. Without coordinates the explore
// page defaults are used; a trailing "following" limits results to people
// the user follows.
func (a *App) Nearby(ctx context.Context, args []string) error {
	q := client.NearbyQuery{Latitude: defaultLatitude, Longitude: defaultLongitude, Zoom: defaultZoom}

	if n := len(args); n > 0 && args[n-1] == "following" {
		q.FollowingOnly = true
		args = args[:n-1]
	}

	switch len(args) {
	case 0:
	case 3:
		var err error
		if q.Latitude, err = strconv.ParseFloat(args[0], 64); err != nil {
			return errUsage
		}
		if q.Longitude, err = strconv.ParseFloat(args[1], 64); err != nil {
			return errUsage
		}
		if q.Zoom, err = strconv.Atoi(args[2]); err != nil {
			return errUsage
		}
	default:
		return errUsage
	}

	posts, err := a.posts.Nearby(ctx, q)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		printlnFn("No posts around here.")
		return nil
	}
	a.printPosts(posts)
	return nil
}

// Upload sends a local image and prints the URL to use in a post.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	ref, err := a.uploadPath(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn("Uploaded:", ref.URL)
	return nil
}

func (a *App) uploadPath(ctx context.Context, path string) (models.FileReference, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.FileReference{}, err
	}
	defer f.Close()

	return a.posts.Upload(ctx, filepath.Base(path), f)
}

// CreatePost prompts for the image, caption and location. The image may be
// a local file, which is uploaded first, or an existing URL.
func (a *App) CreatePost(ctx context.Context, _ []string) error {
	image, err := getSimpleText(a.reader, "Image file or URL", a.out)
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(image); image != "" && statErr == nil {
		ref, err := a.uploadPath(ctx, image)
		if err != nil {
			return err
		}
		image = ref.URL
	}

	in := client.NewPost{ImageURL: image}
	if in.Caption, err = getSimpleText(a.reader, "Caption", a.out); err != nil {
		return err
	}
	if in.LocationName, err = getSimpleText(a.reader, "Location name (optional)", a.out); err != nil {
		return err
	}
	if in.Latitude, err = a.getFloat("Latitude (optional)"); err != nil {
		return err
	}
	if in.Longitude, err = a.getFloat("Longitude (optional)"); err != nil {
		return err
	}

	id, err := a.posts.Create(ctx, in)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Post #%d created.", id))
	return nil
}

func (a *App) getFloat(prompt string) (float64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil || s == "" {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}
