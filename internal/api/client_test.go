package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
)

// fakeTransport records the last request and answers with a canned response.
type fakeTransport struct {
	lastReq  *http.Request
	lastBody string
	status   int
	body     string
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		f.lastBody = string(raw)
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	body := f.body
	if body == "" {
		body = `{"status":"success","data":[]}`
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newTestClient(transport *fakeTransport, session *store.Session, mockMode bool, onUnauthorized func()) *Client {
	return New(Options{
		BaseURL:        "http://kampus.local/api/v1",
		Session:        session,
		Transport:      transport,
		MockMode:       mockMode,
		OnUnauthorized: onUnauthorized,
	})
}

func TestEmptyFiltersAreOmittedFromQuery(t *testing.T) {
	ft := &fakeTransport{}
	client := newTestClient(ft, nil, true, nil)

	_, _, err := client.ListForums(context.Background(), ForumFilter{})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/forums", ft.lastReq.URL.Path)
	assert.Empty(t, ft.lastReq.URL.RawQuery)

	_, _, err = client.ListForums(context.Background(), ForumFilter{
		Page: 2, PerPage: 10, Category: "spor", Search: "maç",
	})
	require.NoError(t, err)
	q := ft.lastReq.URL.Query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("per_page"))
	assert.Equal(t, "spor", q.Get("kategori"))
	assert.Equal(t, "maç", q.Get("search"))
	assert.NotContains(t, q, "universite")
}

func TestPollActiveFilterIsTriState(t *testing.T) {
	ft := &fakeTransport{}
	client := newTestClient(ft, nil, true, nil)
	ctx := context.Background()

	_, _, err := client.ListPolls(ctx, PollFilter{})
	require.NoError(t, err)
	assert.NotContains(t, ft.lastReq.URL.Query(), "aktif")

	active := false
	_, _, err = client.ListPolls(ctx, PollFilter{Active: &active})
	require.NoError(t, err)
	assert.Equal(t, "false", ft.lastReq.URL.Query().Get("aktif"))
}

func TestBearerTokenIsAttached(t *testing.T) {
	session := store.NewSession(store.NewMemoryBackend())
	ft := &fakeTransport{}
	client := newTestClient(ft, session, true, nil)
	ctx := context.Background()

	_, _, err := client.ListForums(ctx, ForumFilter{})
	require.NoError(t, err)
	assert.Empty(t, ft.lastReq.Header.Get("Authorization"))

	session.SetToken("tok-abc")
	_, _, err = client.ListForums(ctx, ForumFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", ft.lastReq.Header.Get("Authorization"))
}

func TestErrorEnvelopeBecomesAppError(t *testing.T) {
	ft := &fakeTransport{
		status: http.StatusNotFound,
		body:   `{"status":"error","message":"Forum bulunamadı"}`,
	}
	client := newTestClient(ft, nil, true, nil)

	_, err := client.GetForum(context.Background(), "f1")
	require.Error(t, err)
	assert.Equal(t, "Forum bulunamadı", err.Error())
	assert.Equal(t, http.StatusNotFound, apperror.MapErrorToStatus(err))
}

func TestUnauthorizedTearsDownSessionInRealMode(t *testing.T) {
	session := store.NewSession(store.NewMemoryBackend())
	session.SetToken("stale")
	session.SetUser(store.Record{"user_id": "u1"})

	redirected := false
	ft := &fakeTransport{
		status: http.StatusUnauthorized,
		body:   `{"status":"error","message":"Yetkilendirme başarısız"}`,
	}
	client := newTestClient(ft, session, false, func() { redirected = true })

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, redirected)

	_, ok := session.Token()
	assert.False(t, ok)
	_, ok = session.User()
	assert.False(t, ok)
}

func TestUnauthorizedKeepsSessionInMockMode(t *testing.T) {
	session := store.NewSession(store.NewMemoryBackend())
	session.SetToken("tok")

	redirected := false
	ft := &fakeTransport{
		status: http.StatusUnauthorized,
		body:   `{"status":"error","message":"Yetkilendirme başarısız"}`,
	}
	client := newTestClient(ft, session, true, func() { redirected = true })

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.False(t, redirected)

	_, ok := session.Token()
	assert.True(t, ok)
}

func TestNonEnvelopeBodyIsAnError(t *testing.T) {
	ft := &fakeTransport{body: `<!doctype html>`}
	client := newTestClient(ft, nil, true, nil)

	_, _, err := client.ListForums(context.Background(), ForumFilter{})
	assert.Error(t, err)
}

func TestLoginStoresSessionPair(t *testing.T) {
	session := store.NewSession(store.NewMemoryBackend())
	ft := &fakeTransport{
		body: `{"status":"success","data":{"token":"tok-1","user":{"user_id":"u1","username":"ayse","email":"ayse@example.com"}}}`,
	}
	client := newTestClient(ft, session, false, nil)

	payload, err := client.Login(context.Background(), LoginRequest{Email: "ayse@example.com", Password: "sifre123"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", payload.Token)
	assert.Equal(t, "ayse", payload.User.Username)
	assert.JSONEq(t, `{"email":"ayse@example.com","password":"sifre123"}`, ft.lastBody)

	token, ok := session.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	user, ok := session.User()
	require.True(t, ok)
	assert.Equal(t, "u1", user.String("user_id"))
}

func TestUpdateRequestsOmitUnsetFields(t *testing.T) {
	ft := &fakeTransport{body: `{"status":"success","data":{"forum_id":"f1"}}`}
	client := newTestClient(ft, nil, true, nil)

	header := "Yeni başlık"
	_, err := client.UpdateForum(context.Background(), "f1", UpdateForumRequest{Header: &header})
	require.NoError(t, err)
	assert.JSONEq(t, `{"baslik":"Yeni başlık"}`, ft.lastBody)
}

func TestMultipartUploadBuildsForm(t *testing.T) {
	ft := &fakeTransport{body: `{"status":"success","data":{"media_id":"m1","url":"local://media/forum/1-afis.png","dosya_adi":"afis.png"}}`}
	client := newTestClient(ft, nil, true, nil)

	media, err := client.UploadMedia(context.Background(), "afis.png", strings.NewReader("bytes"), "forum", "f1")
	require.NoError(t, err)
	assert.Equal(t, "m1", media.MediaID)

	contentType := ft.lastReq.Header.Get("Content-Type")
	assert.Contains(t, contentType, "multipart/form-data")
	assert.Contains(t, ft.lastBody, `filename="afis.png"`)
	assert.Contains(t, ft.lastBody, `name="model_type"`)
}
