package store

import "github.com/google/uuid"

// Collection names as persisted in the local store.
const (
	CollectionUsers    = "users"
	CollectionForums   = "forums"
	CollectionPolls    = "polls"
	CollectionGroups   = "groups"
	CollectionComments = "comments"
	CollectionMedia    = "media"
)

// GenericIDField is used for collections without a registered identity field.
const GenericIDField = "id"

// identityFields maps each known collection to the field that carries a
// record's identity.
var identityFields = map[string]string{
	CollectionUsers:    "user_id",
	CollectionForums:   "forum_id",
	CollectionPolls:    "poll_id",
	CollectionGroups:   "group_id",
	CollectionComments: "comment_id",
	CollectionMedia:    "media_id",
}

// IdentityField returns the identity field name for a collection, falling
// back to the generic "id" field for unrecognized collections.
func IdentityField(collection string) string {
	if field, ok := identityFields[collection]; ok {
		return field
	}
	return GenericIDField
}

// IdentityOf returns the identity value of a record within a collection.
// It checks the collection-specific field first, then the generic one.
func IdentityOf(collection string, rec Record) string {
	if id := rec.String(IdentityField(collection)); id != "" {
		return id
	}
	return rec.String(GenericIDField)
}

// MatchesIdentity reports whether a record's identity equals id.
func MatchesIdentity(collection string, rec Record, id string) bool {
	if id == "" {
		return false
	}
	return rec.String(IdentityField(collection)) == id || rec.String(GenericIDField) == id
}

// EnsureIdentity assigns a freshly generated identity to the record when it
// carries none, and returns the identity value. Generated values are random
// UUIDs, so duplicates within a collection are not a practical concern.
func EnsureIdentity(collection string, rec Record) string {
	if id := IdentityOf(collection, rec); id != "" {
		return id
	}
	id := uuid.NewString()
	rec[IdentityField(collection)] = id
	return id
}
