package cli

import (
	"context"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
)

// targetUser resolves an optional username argument to the signed-in user.
func (a *App) targetUser(args []string) (string, error) {
	switch len(args) {
	case 0:
		u, _ := a.authService.CurrentUsername()
		return u, nil
	case 1:
		return args[0], nil
	default:
		return "", errUsage
	}
}

func (a *App) Profile(ctx context.Context, args []string) error {
	username, err := a.targetUser(args)
	if err != nil {
		return err
	}
	u, err := a.users.Profile(ctx, username)
	if err != nil {
		return err
	}
	printlnFn(renderUser(u))
	return nil
}

// collection shows one of a user's post lists.
func (a *App) collection(coll client.PostCollection) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		username, err := a.targetUser(args)
		if err != nil {
			return err
		}
		return a.showPosts(ctx, a.users.Posts(username, coll))
	}
}

func (a *App) Suggestions(ctx context.Context, _ []string) error {
	users, err := a.users.Suggestions(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		printlnFn("No suggestions right now.")
		return nil
	}
	for _, u := range users {
		printlnFn(renderUser(u))
	}
	return nil
}

// EditProfile prompts for each field. An empty answer keeps the current value.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	username, _ := a.authService.CurrentUsername()
	current, err := a.users.Profile(ctx, username)
	if err != nil {
		return err
	}

	in := client.ProfileUpdate{FullName: current.FullName, Bio: current.Bio, AvatarURL: current.AvatarURL}
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Full name", &in.FullName},
		{"Bio", &in.Bio},
		{"Avatar URL", &in.AvatarURL},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt+" ["+*f.value+"]", a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.value = v
		}
	}

	u, err := a.users.UpdateProfile(ctx, in)
	if err != nil {
		return err
	}
	printlnFn(renderUser(u))
	return nil
}
