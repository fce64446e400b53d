package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Lenient scalars never fail decoding. A value they cannot read becomes
// the zero value, so one malformed field never rejects its record or page.

// serverTimeLayouts are tried in order. The API emits naive UTC timestamps
// as well as zoned ones.
var serverTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a server time. Zone-less values are read as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range serverTimeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return nil
}

// Count is a server counter sent as a number or a numeric string.
type Count int64

func (c *Count) UnmarshalJSON(b []byte) error {
	*c = 0
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		b = []byte(strings.TrimSpace(s))
	}
	if v, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*c = Count(v)
		return nil
	}
	if f, err := strconv.ParseFloat(string(b), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f <= math.MaxInt64 {
		*c = Count(f)
	}
	return nil
}

// ID is a server identifier. Valid is false when the field is absent,
// null or unreadable, which keeps a missing id distinct from id 0.
type ID struct {
	Value int64
	Valid bool
}

// SomeID returns a valid ID.
func SomeID(v int64) ID {
	return ID{Value: v, Valid: true}
}

func (i *ID) UnmarshalJSON(b []byte) error {
	*i = ID{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var c Count
	_ = c.UnmarshalJSON(b)
	if c != 0 || isZeroLiteral(b) {
		*i = SomeID(int64(c))
	}
	return nil
}

func isZeroLiteral(b []byte) bool {
	s := strings.Trim(string(bytes.TrimSpace(b)), `" `)
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v == 0
}

// The Decode functions read one server record. Fields of the wrong type
// are skipped and take their defaults; the remaining fields still decode.

func DecodeUser(raw json.RawMessage) User {
	var p UserPayload
	_ = json.Unmarshal(raw, &p)
	return NewUser(&p)
}

func DecodePost(raw json.RawMessage) Post {
	var p PostPayload
	_ = json.Unmarshal(raw, &p)
	return NewPost(&p)
}

func DecodeComment(raw json.RawMessage) Comment {
	var p CommentPayload
	_ = json.Unmarshal(raw, &p)
	return NewComment(&p)
}

func DecodeUsers(raws []json.RawMessage) []User {
	out := make([]User, 0, len(raws))
	for _, r := range raws {
		out = append(out, DecodeUser(r))
	}
	return out
}

func DecodePosts(raws []json.RawMessage) []Post {
	out := make([]Post, 0, len(raws))
	for _, r := range raws {
		out = append(out, DecodePost(r))
	}
	return out
}

func DecodeComments(raws []json.RawMessage) []Comment {
	out := make([]Comment, 0, len(raws))
	for _, r := range raws {
		out = append(out, DecodeComment(r))
	}
	return out
}
