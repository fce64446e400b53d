package config

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// googleScopes are the profile scopes the server needs to match an account.
var googleScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// GoogleOAuth returns the consent-screen configuration, or nil when no
// client ID is configured. The code exchange itself happens on the server,
// so no client secret is held here.
func (c *Config) GoogleOAuth() *oauth2.Config {
	if c.GoogleClientID == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:    c.GoogleClientID,
		RedirectURL: c.GoogleRedirectURL,
		Scopes:      googleScopes,
		Endpoint:    google.Endpoint,
	}
}
