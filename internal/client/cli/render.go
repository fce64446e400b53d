package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/geofeed/internal/client/models"
)

func idString(id int64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatInt(id, 10)
}

func renderPost(p models.Post, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%s @%s", idString(p.Identity()), p.DisplayName())
	if ago := models.TimeAgo(p.CreatedAt, now); ago != "" {
		fmt.Fprintf(&b, " · %s", ago)
	}
	fmt.Fprintf(&b, " · %s\n", p.Location.DisplayName())

	if p.Caption != "" {
		fmt.Fprintf(&b, "  %s\n", p.Caption)
	}
	fmt.Fprintf(&b, "  %s\n", p.ImageURL)

	fmt.Fprintf(&b, "  %s likes · %s comments", models.CompactCount(p.LikesCount), models.CompactCount(p.CommentsCount))
	if p.IsLiked {
		b.WriteString(" · liked")
	}

	return b.String()
}

func renderComment(c models.Comment, now time.Time) string {
	line := fmt.Sprintf("#%s @%s: %s", idString(c.Identity()), c.DisplayName(), c.Content)
	if ago := models.TimeAgo(c.CreatedAt, now); ago != "" {
		line += " (" + ago + ")"
	}
	if c.LikesCount > 0 {
		line += " · " + models.CompactCount(c.LikesCount) + " likes"
	}
	if c.IsLiked {
		line += " · liked"
	}
	return line
}

func renderUser(u models.User) string {
	var b strings.Builder

	b.WriteString(u.String())
	if u.FullName != "" {
		b.WriteString(" " + u.FullName)
	}
	if u.IsFollowing {
		b.WriteString(" [following]")
	}
	fmt.Fprintf(&b, "\n  %s posts · %s followers · %s following",
		models.CompactCount(u.PostsCount), models.CompactCount(u.FollowersCount), models.CompactCount(u.FollowingCount))
	if u.Bio != "" {
		b.WriteString("\n  " + u.Bio)
	}

	return b.String()
}
