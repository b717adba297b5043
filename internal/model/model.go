// Package model holds the wire-format types exchanged with the backend. JSON
// field names follow the platform's API, which uses Turkish identifiers.
package model

// Author is the embedded creator summary carried on forums, polls, groups and
// comments.
type Author struct {
	Username  string `json:"username"`
	AvatarURL string `json:"profil_resmi_url"`
}

type User struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	AvatarURL  string `json:"profil_resmi_url,omitempty"`
	Gender     string `json:"cinsiyet,omitempty"`
	University string `json:"universite,omitempty"`
	SignupDate string `json:"kayit_tarihi,omitempty"`
}

type Forum struct {
	ForumID      string   `json:"forum_id"`
	Header       string   `json:"baslik"`
	Description  string   `json:"aciklama"`
	OpenedAt     string   `json:"acilis_tarihi"`
	CreatorID    string   `json:"acan_kisi_id"`
	Creator      Author   `json:"acan_kisi"`
	PhotoURLs    []string `json:"foto_urls"`
	CommentIDs   []string `json:"yorum_ids"`
	LikeCount    int      `json:"begeni_sayisi"`
	DislikeCount int      `json:"begenmeme_sayisi"`
	University   string   `json:"universite"`
	Category     string   `json:"kategori"`
}

type PollOption struct {
	OptionID  string `json:"option_id"`
	Label     string `json:"metin"`
	VoteCount int    `json:"oy_sayisi"`
}

type Poll struct {
	PollID      string       `json:"poll_id"`
	Header      string       `json:"baslik"`
	Description string       `json:"aciklama"`
	OpenedAt    string       `json:"acilis_tarihi"`
	ClosesAt    string       `json:"bitis_tarihi"`
	CreatorID   string       `json:"acan_kisi_id"`
	Creator     Author       `json:"acan_kisi"`
	Options     []PollOption `json:"secenekler"`
	University  string       `json:"universite"`
	Category    string       `json:"kategori"`
}

type PollResults struct {
	PollID     string       `json:"poll_id"`
	TotalVotes int          `json:"toplam_oy"`
	Options    []PollOption `json:"secenekler"`
}

type GroupMember struct {
	UserID    string `json:"kullanici_id"`
	Role      string `json:"rol"`
	Status    string `json:"durum"`
	Username  string `json:"username"`
	AvatarURL string `json:"profil_resmi_url"`
}

type Group struct {
	GroupID     string        `json:"group_id"`
	Name        string        `json:"grup_adi"`
	Description string        `json:"aciklama"`
	CreatedAt   string        `json:"olusturulma_tarihi"`
	CreatorID   string        `json:"olusturan_id"`
	LogoURL     string        `json:"logo_url"`
	CoverURL    string        `json:"kapak_resmi_url"`
	Privacy     string        `json:"gizlilik"`
	Categories  []string      `json:"kategoriler"`
	MemberCount int           `json:"uye_sayisi"`
	Members     []GroupMember `json:"uyeler"`
}

type Comment struct {
	CommentID       string   `json:"comment_id"`
	ForumID         string   `json:"forum_id"`
	CreatorID       string   `json:"acan_kisi_id"`
	Creator         Author   `json:"acan_kisi"`
	Content         string   `json:"icerik"`
	OpenedAt        string   `json:"acilis_tarihi"`
	PhotoURLs       []string `json:"foto_urls"`
	LikeCount       int      `json:"begeni_sayisi"`
	DislikeCount    int      `json:"begenmeme_sayisi"`
	ParentCommentID string   `json:"ust_yorum_id,omitempty"`
}

type Media struct {
	MediaID    string `json:"media_id"`
	UserID     string `json:"user_id"`
	URL        string `json:"url"`
	FileName   string `json:"dosya_adi"`
	ModelType  string `json:"model_type,omitempty"`
	ModelID    string `json:"model_id,omitempty"`
	UploadedAt string `json:"yukleme_tarihi"`
}

// AuthPayload is the data field of register/login/refresh responses.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ReactionCounts is the data field of react responses: counters only, never
// the whole record.
type ReactionCounts struct {
	LikeCount    int `json:"begeni_sayisi"`
	DislikeCount int `json:"begenmeme_sayisi"`
}

// VoteResult is the data field of a poll vote response.
type VoteResult struct {
	Results []PollOption `json:"results"`
}

// Reaction types accepted by the react operations.
const (
	ReactionLike    = "begeni"
	ReactionDislike = "begenmeme"
)

// Group privacy modes.
const (
	PrivacyOpen   = "acik"
	PrivacyClosed = "kapali"
	PrivacyHidden = "gizli"
)

// Group member roles.
const (
	RoleMember    = "uye"
	RoleModerator = "moderator"
	RoleAdmin     = "yonetici"
)

// Group membership statuses.
const (
	MemberActive  = "aktif"
	MemberPending = "beklemede"
)
