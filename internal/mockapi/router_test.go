package mockapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusgo.dev/kampussosyal/internal/api"
	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

type testEnv struct {
	store   *store.Store
	session *store.Session
	router  *Router
	client  *api.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := store.NewMemoryBackend()
	st := store.New(backend)
	session := store.NewSession(backend)
	router := New(Options{Store: st, Session: session})

	client := api.New(api.Options{
		BaseURL:   "http://kampus.local/api/v1",
		Session:   session,
		Transport: router.Transport(),
		MockMode:  true,
	})

	return &testEnv{store: st, session: session, router: router, client: client}
}

// signUp registers a user, which also signs them in.
func (e *testEnv) signUp(t *testing.T, username string) *model.User {
	t.Helper()
	payload, err := e.client.Register(context.Background(), api.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "sifre123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, payload.Token)
	return &payload.User
}

// signIn switches the acting user.
func (e *testEnv) signIn(t *testing.T, username string) {
	t.Helper()
	_, err := e.client.Login(context.Background(), api.LoginRequest{
		Email:    username + "@example.com",
		Password: "sifre123",
	})
	require.NoError(t, err)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return apperror.MapErrorToStatus(err)
}

func TestRegisterIssuesSessionAndStripsCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	payload, err := env.client.Register(ctx, api.RegisterRequest{
		Username: "ayse", Email: "ayse@example.com", Password: "sifre123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Token)
	assert.NotEmpty(t, payload.User.UserID)

	token, ok := env.session.Token()
	require.True(t, ok)
	assert.Equal(t, payload.Token, token)

	// Credentials never leave the backend, in any shape.
	sessionUser, ok := env.session.User()
	require.True(t, ok)
	assert.NotContains(t, sessionUser, "password")
	assert.NotContains(t, sessionUser, "password_hash")

	me, err := env.client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ayse", me.Username)
}

func TestIssuedTokenParsesWithConfiguredSecret(t *testing.T) {
	backend := store.NewMemoryBackend()
	st := store.New(backend)
	session := store.NewSession(backend)
	router := New(Options{Store: st, Session: session, JWTSecret: "test-secret"})

	client := api.New(api.Options{
		BaseURL:   "http://kampus.local/api/v1",
		Session:   session,
		Transport: router.Transport(),
		MockMode:  true,
	})

	payload, err := client.Register(context.Background(), api.RegisterRequest{
		Username: "ayse", Email: "ayse@example.com", Password: "sifre123",
	})
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(payload.Token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, payload.User.UserID, claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	_, err := env.client.Register(ctx, api.RegisterRequest{
		Username: "other", Email: "ayse@example.com", Password: "sifre123",
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Contains(t, err.Error(), "e-posta")

	_, err = env.client.Register(ctx, api.RegisterRequest{
		Username: "ayse", Email: "new@example.com", Password: "sifre123",
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Contains(t, err.Error(), "kullanıcı adı")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "ayse")

	_, err := env.client.Login(context.Background(), api.LoginRequest{
		Email: "ayse@example.com", Password: "yanlis",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Geçersiz e-posta veya şifre")
}

func TestUnauthenticatedMutationIsRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "ayse")
	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Kampüste ulaşım"})
	require.NoError(t, err)

	env.client.Logout()

	_, err = env.client.ReactForum(ctx, forum.ForumID, model.ReactionLike)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	assert.Contains(t, err.Error(), "Yetkilendirme başarısız")

	// The rejected reaction left no trace.
	got, ok := env.store.GetByID(store.CollectionForums, forum.ForumID)
	require.True(t, ok)
	assert.Equal(t, 0, got.Int("begeni_sayisi"))
	assert.Equal(t, 0, got.Int("begenmeme_sayisi"))
}

func TestForumLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{
		Header:      "Yurt yemekleri",
		Description: "Yemekhane menüsü üzerine",
		Category:    "kampus",
	})
	require.NoError(t, err)
	require.NotEmpty(t, forum.ForumID)
	assert.Equal(t, "ayse", forum.Creator.Username)
	assert.NotEmpty(t, forum.OpenedAt)

	// A partial edit leaves omitted fields untouched.
	header := "Yurt yemekleri 2026"
	updated, err := env.client.UpdateForum(ctx, forum.ForumID, api.UpdateForumRequest{Header: &header})
	require.NoError(t, err)
	assert.Equal(t, header, updated.Header)
	assert.Equal(t, "Yemekhane menüsü üzerine", updated.Description)
	assert.Equal(t, "kampus", updated.Category)

	require.NoError(t, env.client.DeleteForum(ctx, forum.ForumID))
	_, err = env.client.GetForum(ctx, forum.ForumID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestForumEditRequiresOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "ayse")
	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Ayşenin forumu"})
	require.NoError(t, err)

	env.signUp(t, "mehmet")
	header := "ele geçirildi"
	_, err = env.client.UpdateForum(ctx, forum.ForumID, api.UpdateForumRequest{Header: &header})
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	err = env.client.DeleteForum(ctx, forum.ForumID)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestForumListingFiltersAndPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	for i := 0; i < 25; i++ {
		_, err := env.client.CreateForum(ctx, api.CreateForumRequest{
			Header:   fmt.Sprintf("Forum numara %02d", i),
			Category: "genel",
		})
		require.NoError(t, err)
	}
	_, err := env.client.CreateForum(ctx, api.CreateForumRequest{
		Header: "Sınav takvimi", Category: "ders",
	})
	require.NoError(t, err)

	page1, meta, err := env.client.ListForums(ctx, api.ForumFilter{Category: "genel", PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	require.NotNil(t, meta)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasPrev)
	assert.True(t, meta.HasNext)

	page3, meta, err := env.client.ListForums(ctx, api.ForumFilter{Category: "genel", Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page3, 5)
	assert.True(t, meta.HasPrev)
	assert.False(t, meta.HasNext)

	found, _, err := env.client.ListForums(ctx, api.ForumFilter{Search: "sınav"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Sınav takvimi", found[0].Header)
}

func TestUserTextIsSanitized(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{
		Header:      "Duyuru<script>alert(1)</script>",
		Description: "<img src=x onerror=alert(1)>Merhaba",
	})
	require.NoError(t, err)
	assert.Equal(t, "Duyuru", forum.Header)
	assert.NotContains(t, forum.Description, "onerror")
	assert.Contains(t, forum.Description, "Merhaba")
}

func TestReactionToggle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Tepki testi"})
	require.NoError(t, err)

	counts, err := env.client.ReactForum(ctx, forum.ForumID, model.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.LikeCount)
	assert.Equal(t, 0, counts.DislikeCount)

	// Switching moves the count.
	counts, err = env.client.ReactForum(ctx, forum.ForumID, model.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.LikeCount)
	assert.Equal(t, 1, counts.DislikeCount)

	// Repeating removes it.
	counts, err = env.client.ReactForum(ctx, forum.ForumID, model.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.LikeCount)
	assert.Equal(t, 0, counts.DislikeCount)

	_, err = env.client.ReactForum(ctx, forum.ForumID, "sevgi")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestReactionIsPerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "ayse")
	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Tepki testi"})
	require.NoError(t, err)
	_, err = env.client.ReactForum(ctx, forum.ForumID, model.ReactionLike)
	require.NoError(t, err)

	env.signUp(t, "mehmet")
	counts, err := env.client.ReactForum(ctx, forum.ForumID, model.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.LikeCount)
}

func TestCommentThreading(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Yorum testi"})
	require.NoError(t, err)

	parent, err := env.client.CreateComment(ctx, api.CreateCommentRequest{
		ForumID: forum.ForumID, Content: "İlk yorum",
	})
	require.NoError(t, err)

	reply, err := env.client.CreateComment(ctx, api.CreateCommentRequest{
		ForumID: forum.ForumID, Content: "Cevap", ParentCommentID: parent.CommentID,
	})
	require.NoError(t, err)
	assert.Equal(t, parent.CommentID, reply.ParentCommentID)

	// The forum tracks every comment id, but its listing shows only the
	// top level.
	got, err := env.client.GetForum(ctx, forum.ForumID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{parent.CommentID, reply.CommentID}, got.CommentIDs)

	topLevel, _, err := env.client.ForumComments(ctx, forum.ForumID, 0, 0)
	require.NoError(t, err)
	require.Len(t, topLevel, 1)
	assert.Equal(t, parent.CommentID, topLevel[0].CommentID)

	replies, _, err := env.client.CommentReplies(ctx, parent.CommentID, 0, 0)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.CommentID, replies[0].CommentID)

	_, err = env.client.CreateComment(ctx, api.CreateCommentRequest{
		ForumID: forum.ForumID, Content: "x", ParentCommentID: "yok-boyle-yorum",
	})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestDeleteCommentCascadesToReplies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	forum, err := env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Silme testi"})
	require.NoError(t, err)

	parent, err := env.client.CreateComment(ctx, api.CreateCommentRequest{
		ForumID: forum.ForumID, Content: "Üst",
	})
	require.NoError(t, err)
	reply, err := env.client.CreateComment(ctx, api.CreateCommentRequest{
		ForumID: forum.ForumID, Content: "Alt", ParentCommentID: parent.CommentID,
	})
	require.NoError(t, err)

	require.NoError(t, env.client.DeleteComment(ctx, parent.CommentID))

	_, err = env.client.GetComment(ctx, parent.CommentID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	_, err = env.client.GetComment(ctx, reply.CommentID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	got, err := env.client.GetForum(ctx, forum.ForumID)
	require.NoError(t, err)
	assert.Empty(t, got.CommentIDs)
}

func TestPollVoteRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	poll, err := env.client.CreatePoll(ctx, api.CreatePollRequest{
		Header: "En iyi kantin?",
		Options: []api.CreatePollOption{
			{Label: "Merkez"}, {Label: "Kütüphane"},
		},
	})
	require.NoError(t, err)
	require.Len(t, poll.Options, 2)
	assert.Equal(t, "1", poll.Options[0].OptionID)

	result, err := env.client.VotePoll(ctx, poll.PollID, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Results[0].VoteCount)

	_, err = env.client.VotePoll(ctx, poll.PollID, "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zaten oy verdiniz")

	env.signUp(t, "mehmet")
	_, err = env.client.VotePoll(ctx, poll.PollID, "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Geçersiz seçenek")

	results, err := env.client.PollResults(ctx, poll.PollID)
	require.NoError(t, err)
	assert.Equal(t, 1, results.TotalVotes)
}

func TestVoteOnClosedPoll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	poll, err := env.client.CreatePoll(ctx, api.CreatePollRequest{
		Header:   "Kapanmış anket",
		ClosesAt: "2020-01-01T00:00:00Z",
		Options:  []api.CreatePollOption{{Label: "A"}, {Label: "B"}},
	})
	require.NoError(t, err)

	_, err = env.client.VotePoll(ctx, poll.PollID, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Anket kapanmış")
}

func TestPollActiveFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	_, err := env.client.CreatePoll(ctx, api.CreatePollRequest{
		Header: "Açık anket", Options: []api.CreatePollOption{{Label: "A"}, {Label: "B"}},
	})
	require.NoError(t, err)
	_, err = env.client.CreatePoll(ctx, api.CreatePollRequest{
		Header:   "Kapalı anket",
		ClosesAt: "2020-01-01T00:00:00Z",
		Options:  []api.CreatePollOption{{Label: "A"}, {Label: "B"}},
	})
	require.NoError(t, err)

	active := true
	open, _, err := env.client.ListPolls(ctx, api.PollFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Açık anket", open[0].Header)

	active = false
	closed, _, err := env.client.ListPolls(ctx, api.PollFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, "Kapalı anket", closed[0].Header)
}

func TestPollEditPreservesVoteCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	poll, err := env.client.CreatePoll(ctx, api.CreatePollRequest{
		Header:  "Düzenleme testi",
		Options: []api.CreatePollOption{{Label: "Eski A"}, {Label: "Eski B"}},
	})
	require.NoError(t, err)
	_, err = env.client.VotePoll(ctx, poll.PollID, "1")
	require.NoError(t, err)

	options := []api.CreatePollOption{{Label: "Yeni A"}, {Label: "Yeni B"}}
	updated, err := env.client.UpdatePoll(ctx, poll.PollID, api.UpdatePollRequest{Options: &options})
	require.NoError(t, err)
	require.Len(t, updated.Options, 2)
	assert.Equal(t, "Yeni A", updated.Options[0].Label)
	assert.Equal(t, 1, updated.Options[0].VoteCount)
	assert.Equal(t, 0, updated.Options[1].VoteCount)
}

func TestGroupJoinByPrivacy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "kurucu")
	open, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Açık grup", Privacy: model.PrivacyOpen})
	require.NoError(t, err)
	closed, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Kapalı grup", Privacy: model.PrivacyClosed})
	require.NoError(t, err)
	hidden, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Gizli grup", Privacy: model.PrivacyHidden})
	require.NoError(t, err)

	// The creator is immediately the group's active admin.
	assert.Equal(t, 1, open.MemberCount)
	require.Len(t, open.Members, 1)
	assert.Equal(t, model.RoleAdmin, open.Members[0].Role)

	env.signUp(t, "aday2")

	member, _, err := env.client.JoinGroup(ctx, open.GroupID)
	require.NoError(t, err)
	assert.Equal(t, model.MemberActive, member.Status)

	member, message, err := env.client.JoinGroup(ctx, closed.GroupID)
	require.NoError(t, err)
	assert.Equal(t, model.MemberPending, member.Status)
	assert.Contains(t, message, "onay bekliyor")

	_, _, err = env.client.JoinGroup(ctx, hidden.GroupID)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, _, err = env.client.JoinGroup(ctx, open.GroupID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zaten üyesiniz")
}

func TestPendingMemberDoesNotCountAsActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "kurucu")
	group, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Kapalı grup", Privacy: model.PrivacyClosed})
	require.NoError(t, err)

	env.signUp(t, "aday")
	_, _, err = env.client.JoinGroup(ctx, group.GroupID)
	require.NoError(t, err)

	got, err := env.client.GetGroup(ctx, group.GroupID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MemberCount)
	assert.Len(t, got.Members, 2)
}

func TestMembershipApprovalFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "kurucu")
	group, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Kapalı grup", Privacy: model.PrivacyClosed})
	require.NoError(t, err)

	aday := env.signUp(t, "aday")
	_, _, err = env.client.JoinGroup(ctx, group.GroupID)
	require.NoError(t, err)

	// Only an admin can resolve the request.
	err = env.client.ApproveMembership(ctx, group.GroupID, aday.UserID, true)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	env.signIn(t, "kurucu")
	require.NoError(t, env.client.ApproveMembership(ctx, group.GroupID, aday.UserID, true))

	got, err := env.client.GetGroup(ctx, group.GroupID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.MemberCount)

	// A second resolution has nothing pending to act on.
	err = env.client.ApproveMembership(ctx, group.GroupID, aday.UserID, true)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestRejectionRemovesPendingMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "kurucu")
	group, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Kapalı grup", Privacy: model.PrivacyClosed})
	require.NoError(t, err)

	aday := env.signUp(t, "aday")
	_, _, err = env.client.JoinGroup(ctx, group.GroupID)
	require.NoError(t, err)

	env.signIn(t, "kurucu")
	require.NoError(t, env.client.ApproveMembership(ctx, group.GroupID, aday.UserID, false))

	got, err := env.client.GetGroup(ctx, group.GroupID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 1)
}

func TestOwnerCannotLeaveGroup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "kurucu")
	group, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Grubum"})
	require.NoError(t, err)

	err = env.client.LeaveGroup(ctx, group.GroupID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Grup sahibi gruptan ayrılamaz")
}

func TestHiddenGroupsStayOutOfListings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signUp(t, "kurucu")
	_, err := env.client.CreateGroup(ctx, api.CreateGroupRequest{Name: "Gizli grup", Privacy: model.PrivacyHidden})
	require.NoError(t, err)

	// Members see it.
	groups, _, err := env.client.ListGroups(ctx, api.GroupFilter{})
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	// Everyone else doesn't.
	env.signUp(t, "yabanci")
	groups, _, err = env.client.ListGroups(ctx, api.GroupFilter{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestMediaUploadAndOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	media, err := env.client.UploadMedia(ctx, "afis.png", strings.NewReader("png-bytes"), "forum", "f1")
	require.NoError(t, err)
	assert.NotEmpty(t, media.MediaID)
	assert.NotEmpty(t, media.URL)
	assert.Equal(t, "afis.png", media.FileName)

	attached, err := env.client.MediaByModel(ctx, "forum", "f1")
	require.NoError(t, err)
	require.Len(t, attached, 1)

	signed, err := env.client.MediaURL(ctx, media.URL, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)

	// Someone else's file cannot be deleted.
	env.signUp(t, "mehmet")
	err = env.client.DeleteMedia(ctx, media.MediaID, "")
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	env.signIn(t, "ayse")
	require.NoError(t, env.client.DeleteMedia(ctx, media.MediaID, ""))
	attached, err = env.client.MediaByModel(ctx, "forum", "f1")
	require.NoError(t, err)
	assert.Empty(t, attached)
}

func TestUserContentListings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ayse := env.signUp(t, "ayse")
	_, err := env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Ayşenin forumu"})
	require.NoError(t, err)

	env.signUp(t, "mehmet")
	_, err = env.client.CreateForum(ctx, api.CreateForumRequest{Header: "Mehmetin forumu"})
	require.NoError(t, err)

	mine, _, err := env.client.MyForums(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mehmetin forumu", mine[0].Header)

	theirs, _, err := env.client.UserForums(ctx, ayse.UserID, 0, 0)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "Ayşenin forumu", theirs[0].Header)
}

func TestProfileUpdateRefreshesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "ayse")

	username := "ayse2026"
	updated, err := env.client.UpdateProfile(ctx, api.UpdateProfileRequest{Username: &username})
	require.NoError(t, err)
	assert.Equal(t, username, updated.Username)

	sessionUser, ok := env.session.User()
	require.True(t, ok)
	assert.Equal(t, username, sessionUser.String("username"))

	got, err := env.client.GetUserByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, updated.UserID, got.UserID)
}

func TestDeleteAccountClearsSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.signUp(t, "ayse")

	require.NoError(t, env.client.DeleteAccount(ctx))

	_, ok := env.session.Token()
	assert.False(t, ok)

	_, err := env.client.GetUser(ctx, user.UserID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestUnhandledRoutesFallBackToGenericSuccess(t *testing.T) {
	env := newTestEnv(t)
	httpClient := &http.Client{Transport: env.router.Transport()}

	resp, err := httpClient.Get("http://kampus.local/api/v1/bildirimler")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	env1, err := response.Decode(body)
	require.NoError(t, err)
	assert.Equal(t, response.StatusSuccess, env1.Status)

	var list []store.Record
	require.NoError(t, env1.Bind(&list))
	assert.Empty(t, list)

	resp, err = httpClient.Post("http://kampus.local/api/v1/bildirimler/okundu", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	env2, err := response.Decode(body)
	require.NoError(t, err)

	var ack struct {
		ID string `json:"id"`
	}
	require.NoError(t, env2.Bind(&ack))
	assert.NotEmpty(t, ack.ID)
}

func TestSeedRunsOncePerBackend(t *testing.T) {
	backend := store.NewMemoryBackend()
	st := store.New(backend)
	session := store.NewSession(backend)

	New(Options{Store: st, Session: session, Seed: true})
	users := st.Get(store.CollectionUsers, nil)
	require.NotEmpty(t, users)
	forums := len(st.Get(store.CollectionForums, nil))

	// A second router over the same backend must not duplicate demo data.
	New(Options{Store: st, Session: session, Seed: true})
	assert.Len(t, st.Get(store.CollectionUsers, nil), len(users))
	assert.Len(t, st.Get(store.CollectionForums, nil), forums)

	// The demo password works.
	client := api.New(api.Options{
		BaseURL:   "http://kampus.local/api/v1",
		Session:   session,
		Transport: New(Options{Store: st, Session: session}).Transport(),
		MockMode:  true,
	})
	_, err := client.Login(context.Background(), api.LoginRequest{
		Email: "demo@example.com", Password: "password123",
	})
	assert.NoError(t, err)
}
