package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePost(t *testing.T, raw string) Post {
	t.Helper()
	var p PostPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return NewPost(&p)
}

func TestNewUser_Defaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want User
	}{
		{name: "empty object", raw: `{}`, want: User{}},
		{name: "explicit nulls", raw: `{"user_id":null,"full_name":null,"bio":null,"followers_count":null,"is_following":null}`, want: User{}},
		{
			name: "full",
			raw: `{"user_id":7,"username":"ann","full_name":"Ann A","bio":"hi","avatar_url":"http://a/x.png",
				"followers_count":3,"following_count":4,"posts_count":5,"is_following":true}`,
			want: User{ID: ptr(int64(7)), Username: "ann", FullName: "Ann A", Bio: "hi", AvatarURL: "http://a/x.png",
				FollowersCount: 3, FollowingCount: 4, PostsCount: 5, IsFollowing: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p UserPayload
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &p))
			assert.Equal(t, tt.want, NewUser(&p))
		})
	}
}

func TestNewUser_NilPayload(t *testing.T) {
	u := NewUser(nil)
	assert.Nil(t, u.ID)
	_, ok := u.Identity()
	assert.False(t, ok)
}

func TestNewPost_MissingNestedRecordsAreDefaulted(t *testing.T) {
	p := decodePost(t, `{"post_id":1,"image_url":"http://img"}`)

	require.NotNil(t, p.ID)
	assert.Equal(t, int64(1), *p.ID)
	assert.Equal(t, User{}, p.User)
	assert.Equal(t, Location{Name: DefaultLocationName}, p.Location)
	assert.Equal(t, "", p.Caption)
	assert.False(t, p.IsLiked)
	assert.Zero(t, p.LikesCount)
	assert.Zero(t, p.CommentsCount)
	assert.True(t, p.CreatedAt.IsZero())
}

func TestNewPost_FullPayload(t *testing.T) {
	p := decodePost(t, `{
		"post_id": 42,
		"user": {"user_id": 2, "username": "bob"},
		"created_at": "2024-05-01T10:00:00Z",
		"caption": "sunset",
		"image_url": "http://img/1.jpg",
		"location": {"name": "Riga", "latitude": 56.95, "longitude": 24.1},
		"is_liked": true,
		"likes_count": 12,
		"comments_count": 3
	}`)

	assert.Equal(t, int64(42), *p.ID)
	assert.Equal(t, "bob", p.User.Username)
	assert.Equal(t, "bob", p.DisplayName())
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), p.CreatedAt.UTC())
	assert.Equal(t, Location{Name: "Riga", Latitude: 56.95, Longitude: 24.1}, p.Location)
	assert.True(t, p.IsLiked)
	assert.Equal(t, int64(12), p.LikesCount)
	assert.Equal(t, int64(3), p.CommentsCount)
}

func TestNewPost_NilPayload(t *testing.T) {
	p := NewPost(nil)
	assert.Nil(t, p.ID)
	assert.Equal(t, DefaultLocationName, p.Location.Name)
}

func TestNewLocation_Defaults(t *testing.T) {
	tests := []struct {
		name string
		in   *LocationPayload
		want Location
	}{
		{"nil", nil, Location{Name: DefaultLocationName}},
		{"empty name", &LocationPayload{Name: ptr("")}, Location{Name: DefaultLocationName}},
		{"coords only", &LocationPayload{Latitude: ptr(1.5), Longitude: ptr(-2.5)}, Location{Name: DefaultLocationName, Latitude: 1.5, Longitude: -2.5}},
		{"named", &LocationPayload{Name: ptr("Oslo")}, Location{Name: "Oslo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLocation(tt.in))
		})
	}
}

func TestNewComment_Defaults(t *testing.T) {
	var p CommentPayload
	require.NoError(t, json.Unmarshal([]byte(`{"comment_id":null,"user":{"username":"c"}}`), &p))

	c := NewComment(&p)
	assert.Nil(t, c.ID)
	assert.Equal(t, "c", c.DisplayName())
	assert.Equal(t, "", c.Content)
	assert.Zero(t, c.LikesCount)
	assert.False(t, c.IsLiked)
}

func TestIdentity_NilNeverCollidesWithZero(t *testing.T) {
	withZero := Post{ID: ptr(int64(0))}
	without := Post{}

	zid, zok := withZero.Identity()
	_, nok := without.Identity()

	assert.True(t, zok)
	assert.Equal(t, int64(0), zid)
	assert.False(t, nok)
}

func TestNewPosts_PreservesOrder(t *testing.T) {
	ps := NewPosts([]PostPayload{{PostID: SomeID(3)}, {PostID: SomeID(1)}, {PostID: SomeID(2)}})
	require.Len(t, ps, 3)
	assert.Equal(t, int64(3), *ps[0].ID)
	assert.Equal(t, int64(1), *ps[1].ID)
	assert.Equal(t, int64(2), *ps[2].ID)
}

func TestNewPost_IDIsCopied(t *testing.T) {
	payload := PostPayload{PostID: SomeID(5)}
	p := NewPost(&payload)
	payload.PostID.Value = 6
	assert.Equal(t, int64(5), *p.ID)
}

func TestID_ZeroIsDistinctFromMissing(t *testing.T) {
	tests := map[string]ID{
		`0`:     SomeID(0),
		`"0"`:   SomeID(0),
		`42`:    SomeID(42),
		`"42"`:  SomeID(42),
		`null`:  {},
		`"abc"`: {},
		`{}`:    {},
	}

	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			var p PostPayload
			require.NoError(t, json.Unmarshal([]byte(`{"post_id":`+raw+`}`), &p))
			assert.Equal(t, want, p.PostID)
		})
	}
}

func TestNewFileReference(t *testing.T) {
	assert.Equal(t, FileReference{}, NewFileReference(nil))
	assert.Equal(t, FileReference{URL: "http://x/y.png"}, NewFileReference(&FilePayload{URL: ptr("http://x/y.png")}))
}

func TestCompactCount(t *testing.T) {
	tests := map[int64]string{
		0:             "0",
		9999:          "9999",
		10000:         "10K",
		15300:         "15.3K",
		1_000_000:     "1M",
		1_500_000:     "1.5M",
		2_000_000_000: "2B",
	}
	for in, want := range tests {
		assert.Equal(t, want, CompactCount(in), "input %d", in)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{15 * 24 * time.Hour, "2w ago"},
		{400 * 24 * time.Hour, "1y ago"},
		{-time.Hour, "just now"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeAgo(now.Add(-tt.ago), now))
	}
	assert.Equal(t, "", TimeAgo(time.Time{}, now))
}

func ptr[T any](v T) *T { return &v }

func TestTimestamp_AcceptsServerLayouts(t *testing.T) {
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"zoned", `"2024-05-01T10:00:00Z"`, want},
		{"offset", `"2024-05-01T13:00:00+03:00"`, want},
		{"naive", `"2024-05-01T10:00:00"`, want},
		{"naive fractional", `"2024-05-01T10:00:00.000000"`, want},
		{"space separated", `"2024-05-01 10:00:00"`, want},
		{"garbage", `"yesterday"`, time.Time{}},
		{"number", `1714557600`, time.Time{}},
		{"object", `{}`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestCount_AcceptsNumbersAndNumericStrings(t *testing.T) {
	tests := map[string]Count{
		`12`:      12,
		`"12"`:    12,
		`" 7 "`:   7,
		`3.0`:     3,
		`"lots"`:  0,
		`true`:    0,
		`[1]`:     0,
		`"1e400"`: 0,
	}

	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			var c Count
			require.NoError(t, json.Unmarshal([]byte(raw), &c))
			assert.Equal(t, want, c)
		})
	}
}

func TestDecodePost_MalformedFieldsFallBackToDefaults(t *testing.T) {
	p := DecodePost(json.RawMessage(`{
		"post_id": 4,
		"user": {"username": "ann", "followers_count": "many", "is_following": "yes"},
		"created_at": "2024-05-01T10:00:00",
		"caption": 17,
		"is_liked": "true",
		"likes_count": "9",
		"comments_count": {"n": 1},
		"location": "Riga"
	}`))

	require.NotNil(t, p.ID)
	assert.Equal(t, int64(4), *p.ID)
	assert.Equal(t, "ann", p.User.Username)
	assert.Zero(t, p.User.FollowersCount)
	assert.False(t, p.User.IsFollowing)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), p.CreatedAt)
	assert.Equal(t, "", p.Caption)
	assert.False(t, p.IsLiked)
	assert.Equal(t, int64(9), p.LikesCount)
	assert.Zero(t, p.CommentsCount)
	assert.Equal(t, Location{Name: DefaultLocationName}, p.Location)
}

func TestDecodeComments_OneBadRecordKeepsThePage(t *testing.T) {
	cs := DecodeComments([]json.RawMessage{
		json.RawMessage(`{"comment_id": 1, "content": "ok"}`),
		json.RawMessage(`{"comment_id": "x", "created_at": "not a time", "likes_count": -3}`),
		json.RawMessage(`"not even an object"`),
	})

	require.Len(t, cs, 3)
	assert.Equal(t, "ok", cs[0].Content)
	assert.Nil(t, cs[1].ID)
	assert.True(t, cs[1].CreatedAt.IsZero())
	assert.Zero(t, cs[1].LikesCount)
	assert.Equal(t, Comment{}, cs[2])
}
