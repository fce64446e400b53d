package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
)

// commands lists the REPL verbs in the order help shows them.
func (a *App) commands() []command {
	return []command{
		{name: "register", help: "create an account", run: a.Register},
		{name: "login", args: "[username]", help: "sign in", run: a.Login},
		{name: "login-google", args: "[code]", help: "sign in with Google", run: a.LoginGoogle},
		{name: "logout", help: "sign out", auth: true, run: a.Logout},
		{name: "forget", help: "sign out and erase local state", run: a.Forget},
		{name: "state", help: "show locally stored state", run: a.State},
		{name: "whoami", help: "show the signed-in user", auth: true, run: a.WhoAmI},

		{name: "feed", help: "show the home feed", auth: true, run: a.Feed},
		{name: "more", help: "load more of the current post list", auth: true, run: a.More},
		{name: "nearby", args: "[lat lng zoom] [following]", help: "posts around a map position", auth: true, run: a.Nearby},
		{name: "post", help: "create a post", auth: true, run: a.CreatePost},
		{name: "upload", args: "<path>", help: "upload an image", auth: true, run: a.Upload},
		{name: "delete", args: "<post-id>", help: "delete your post", auth: true, run: a.idAction(a.posts.Delete, "Deleted.")},
		{name: "like", args: "<post-id>", help: "like a post", auth: true, run: a.idAction(a.posts.Like, "Liked.")},
		{name: "unlike", args: "<post-id>", help: "remove a like", auth: true, run: a.idAction(a.posts.Unlike, "Unliked.")},
		{name: "save", args: "<post-id>", help: "bookmark a post", auth: true, run: a.idAction(a.posts.Save, "Saved.")},
		{name: "unsave", args: "<post-id>", help: "remove a bookmark", auth: true, run: a.idAction(a.posts.Unsave, "Removed from saved.")},

		{name: "comments", args: "<post-id>", help: "show comments of a post", auth: true, run: a.Comments},
		{name: "morecomments", help: "load more comments", auth: true, run: a.MoreComments},
		{name: "comment", args: "<post-id> <text>", help: "add a comment", auth: true, run: a.AddComment},
		{name: "likecomment", args: "<comment-id>", help: "like a comment", auth: true, run: a.idAction(a.posts.LikeComment, "Liked.")},
		{name: "unlikecomment", args: "<comment-id>", help: "remove a comment like", auth: true, run: a.idAction(a.posts.UnlikeComment, "Unliked.")},

		{name: "profile", args: "[username]", help: "show a profile", auth: true, run: a.Profile},
		{name: "posts", args: "[username]", help: "posts of a user", auth: true, run: a.collection(client.CollectionPosts)},
		{name: "liked", args: "[username]", help: "posts a user liked", auth: true, run: a.collection(client.CollectionLiked)},
		{name: "saved", args: "[username]", help: "posts a user saved", auth: true, run: a.collection(client.CollectionSaved)},
		{name: "suggest", help: "people to follow", auth: true, run: a.Suggestions},
		{name: "follow", args: "<user-id>", help: "follow a user", auth: true, run: a.idAction(a.users.Follow, "Following.")},
		{name: "unfollow", args: "<user-id>", help: "unfollow a user", auth: true, run: a.idAction(a.users.Unfollow, "Unfollowed.")},
		{name: "editprofile", help: "update your profile", auth: true, run: a.EditProfile},
	}
}

// parseID reads the single numeric argument of id-taking commands.
func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an id", errUsage, args[0])
	}
	return id, nil
}

// idAction adapts a mutation keyed by one id into a command.
func (a *App) idAction(call func(ctx context.Context, id int64) error, done string) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := call(ctx, id); err != nil {
			return err
		}
		printlnFn(done)
		return nil
	}
}
