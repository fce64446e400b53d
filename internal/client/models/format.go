package models

import (
	"strconv"
	"strings"
	"time"
)

// CompactCount renders large counters the way the feed shows them:
// values below 10000 verbatim, then K, M and B with one decimal and
// a trailing ".0" dropped (15300 -> "15.3K", 2000000 -> "2M").
func CompactCount(n int64) string {
	switch {
	case n < 10_000:
		return strconv.FormatInt(n, 10)
	case n < 1_000_000:
		return oneDecimal(float64(n)/1_000) + "K"
	case n < 1_000_000_000:
		return oneDecimal(float64(n)/1_000_000) + "M"
	default:
		return oneDecimal(float64(n)/1_000_000_000) + "B"
	}
}

func oneDecimal(f float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(f, 'f', 1, 64), ".0")
}

// TimeAgo renders the age of t relative to now using the largest whole
// unit: "1y ago", "2w ago", "3d ago", "4h ago", "5m ago" or "just now".
// A zero t renders as "".
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	secs := int64(now.Sub(t) / time.Second)
	minutes := secs / 60
	hours := secs / 3600
	days := secs / (3600 * 24)
	weeks := days / 7
	years := days / 365

	switch {
	case years >= 1:
		return strconv.FormatInt(years, 10) + "y ago"
	case weeks >= 1:
		return strconv.FormatInt(weeks, 10) + "w ago"
	case days >= 1:
		return strconv.FormatInt(days, 10) + "d ago"
	case hours >= 1:
		return strconv.FormatInt(hours, 10) + "h ago"
	case minutes >= 1:
		return strconv.FormatInt(minutes, 10) + "m ago"
	default:
		return "just now"
	}
}
