package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New(NewMemoryBackend())
}

func TestStoreGetDefault(t *testing.T) {
	s := newTestStore()

	def := []Record{{"forum_id": "f1"}}
	assert.Equal(t, def, s.Get(CollectionForums, def))
	assert.Nil(t, s.Get(CollectionForums, nil))
}

func TestStoreGetCorruptCollectionFailsSoft(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Backend().Set(CollectionForums, []byte("{not json")))

	def := []Record{{"forum_id": "fallback"}}
	assert.Equal(t, def, s.Get(CollectionForums, def))
}

func TestStoreAddAssignsIdentity(t *testing.T) {
	s := newTestStore()

	rec := s.Add(CollectionForums, Record{"baslik": "Kampüste ulaşım"})
	assert.NotEmpty(t, rec.String("forum_id"))
	assert.Equal(t, "Kampüste ulaşım", rec.String("baslik"))

	got, ok := s.GetByID(CollectionForums, rec.String("forum_id"))
	require.True(t, ok)
	assert.Equal(t, rec.String("baslik"), got.String("baslik"))
}

func TestStoreAddKeepsExistingIdentity(t *testing.T) {
	s := newTestStore()

	rec := s.Add(CollectionForums, Record{"forum_id": "f1"})
	assert.Equal(t, "f1", rec.String("forum_id"))
}

func TestStoreAddIdentitiesAreUnique(t *testing.T) {
	s := newTestStore()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		rec := s.Add(CollectionComments, Record{"icerik": "yorum"})
		id := rec.String("comment_id")
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate identity %s", id)
		seen[id] = true
	}
}

func TestStoreAddDoesNotMutateInput(t *testing.T) {
	s := newTestStore()

	in := Record{"baslik": "orijinal"}
	stored := s.Add(CollectionForums, in)

	assert.NotContains(t, in, "forum_id")
	stored["baslik"] = "değişti"
	assert.Equal(t, "orijinal", in.String("baslik"))
}

func TestStoreUpdateShallowMerge(t *testing.T) {
	s := newTestStore()

	rec := s.Add(CollectionForums, Record{
		"baslik":        "Eski başlık",
		"aciklama":      "Açıklama",
		"begeni_sayisi": 5,
	})
	id := rec.String("forum_id")

	updated, ok := s.Update(CollectionForums, id, Record{"baslik": "Yeni başlık"})
	require.True(t, ok)

	// Supplied fields overwrite, omitted fields persist.
	assert.Equal(t, "Yeni başlık", updated.String("baslik"))
	assert.Equal(t, "Açıklama", updated.String("aciklama"))
	assert.Equal(t, 5, updated.Int("begeni_sayisi"))

	got, _ := s.GetByID(CollectionForums, id)
	assert.Equal(t, "Yeni başlık", got.String("baslik"))
}

func TestStoreUpdateMissingRecord(t *testing.T) {
	s := newTestStore()

	_, ok := s.Update(CollectionForums, "missing", Record{"baslik": "x"})
	assert.False(t, ok)
}

func TestStoreRemoveIsIdempotent(t *testing.T) {
	s := newTestStore()

	rec := s.Add(CollectionForums, Record{"baslik": "Silinecek"})
	id := rec.String("forum_id")

	assert.True(t, s.Remove(CollectionForums, id))
	_, ok := s.GetByID(CollectionForums, id)
	assert.False(t, ok)

	// Removing an absent id still succeeds.
	assert.True(t, s.Remove(CollectionForums, id))
	assert.True(t, s.Remove(CollectionForums, "never-existed"))
}

func TestStoreGetWherePreservesOrder(t *testing.T) {
	s := newTestStore()

	s.Add(CollectionForums, Record{"forum_id": "f1", "kategori": "spor"})
	s.Add(CollectionForums, Record{"forum_id": "f2", "kategori": "ders"})
	s.Add(CollectionForums, Record{"forum_id": "f3", "kategori": "spor"})

	got := s.GetWhere(CollectionForums, func(r Record) bool {
		return r.String("kategori") == "spor"
	})
	require.Len(t, got, 2)
	assert.Equal(t, "f1", got[0].String("forum_id"))
	assert.Equal(t, "f3", got[1].String("forum_id"))
}

func TestIdentityFieldPerCollection(t *testing.T) {
	assert.Equal(t, "user_id", IdentityField(CollectionUsers))
	assert.Equal(t, "forum_id", IdentityField(CollectionForums))
	assert.Equal(t, "poll_id", IdentityField(CollectionPolls))
	assert.Equal(t, "group_id", IdentityField(CollectionGroups))
	assert.Equal(t, "comment_id", IdentityField(CollectionComments))
	assert.Equal(t, "media_id", IdentityField(CollectionMedia))
	assert.Equal(t, GenericIDField, IdentityField("unknown"))
}

func TestMatchesIdentityFallsBackToGenericField(t *testing.T) {
	rec := Record{"id": "x1"}
	assert.True(t, MatchesIdentity("unknown", rec, "x1"))
	assert.False(t, MatchesIdentity("unknown", rec, "x2"))
}

func TestSessionRoundTrip(t *testing.T) {
	sess := NewSession(NewMemoryBackend())

	_, ok := sess.Token()
	assert.False(t, ok)

	require.True(t, sess.SetToken("tok-1"))
	token, ok := sess.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	require.True(t, sess.SetUser(Record{"user_id": "u1", "username": "demo"}))
	user, ok := sess.User()
	require.True(t, ok)
	assert.Equal(t, "u1", user.String("user_id"))

	sess.Clear()
	_, ok = sess.Token()
	assert.False(t, ok)
	_, ok = sess.User()
	assert.False(t, ok)
}

func TestSessionInitializedFlag(t *testing.T) {
	sess := NewSession(NewMemoryBackend())

	assert.False(t, sess.Initialized())
	sess.MarkInitialized()
	assert.True(t, sess.Initialized())

	// Clearing the session does not forget the seed marker.
	sess.Clear()
	assert.True(t, sess.Initialized())
}
