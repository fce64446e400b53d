package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGoogleOAuth_DisabledWithoutClientID(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Nil(t, cfg.GoogleOAuth())
}

func TestGoogleOAuth_ConsentURL(t *testing.T) {
	cfg := &Config{GoogleClientID: "cid", GoogleRedirectURL: "http://localhost:5173/auth/google/callback"}

	oc := cfg.GoogleOAuth()
	require.NotNil(t, oc)

	u, err := url.Parse(oc.AuthCodeURL("st", oauth2.AccessTypeOnline))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "cid", q.Get("client_id"))
	assert.Equal(t, "http://localhost:5173/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "st", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Contains(t, q.Get("scope"), "userinfo.email")
}

func TestParseEnv_GoogleSettings(t *testing.T) {
	useDotenv(t, "")
	t.Setenv(EnvGoogleClientID, "cid")
	t.Setenv(EnvGoogleRedirectURL, "http://cb")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "cid", cfg.GoogleClientID)
	assert.Equal(t, "http://cb", cfg.GoogleRedirectURL)
}
