package client

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// loopbackJar treats plain http to a loopback host as a secure origin, the
// way browsers do, so Secure cookies issued by a local server are sent back.
type loopbackJar struct {
	http.CookieJar
}

func (j loopbackJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.CookieJar.SetCookies(secureOrigin(u), cookies)
}

func (j loopbackJar) Cookies(u *url.URL) []*http.Cookie {
	return j.CookieJar.Cookies(secureOrigin(u))
}

func secureOrigin(u *url.URL) *url.URL {
	if u.Scheme != "http" || !isLoopback(u.Hostname()) {
		return u
	}
	out := *u
	out.Scheme = "https"
	return &out
}

func isLoopback(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
