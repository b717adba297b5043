package api

import (
	"context"
	"net/http"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/pkg/response"
)

// ForumFilter narrows forum listings. Zero values are omitted from the query.
type ForumFilter struct {
	Page       int
	PerPage    int
	Category   string
	University string
	Search     string
}

type CreateForumRequest struct {
	Header      string   `json:"baslik"`
	Description string   `json:"aciklama,omitempty"`
	Category    string   `json:"kategori,omitempty"`
	University  string   `json:"universite,omitempty"`
	PhotoURLs   []string `json:"foto_urls,omitempty"`
}

// UpdateForumRequest carries only the fields the caller wants changed.
type UpdateForumRequest struct {
	Header      *string   `json:"baslik,omitempty"`
	Description *string   `json:"aciklama,omitempty"`
	Category    *string   `json:"kategori,omitempty"`
	University  *string   `json:"universite,omitempty"`
	PhotoURLs   *[]string `json:"foto_urls,omitempty"`
}

func (c *Client) ListForums(ctx context.Context, f ForumFilter) ([]model.Forum, *response.Pagination, error) {
	q := pageQuery(f.Page, f.PerPage)
	setIf(q, "kategori", f.Category)
	setIf(q, "universite", f.University)
	setIf(q, "search", f.Search)

	env, err := c.do(ctx, http.MethodGet, "/forums", q, nil)
	if err != nil {
		return nil, nil, err
	}
	var forums []model.Forum
	if err := env.Bind(&forums); err != nil {
		return nil, nil, err
	}
	return forums, pagination(env), nil
}

func (c *Client) GetForum(ctx context.Context, id string) (*model.Forum, error) {
	env, err := c.do(ctx, http.MethodGet, "/forums/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var forum model.Forum
	if err := env.Bind(&forum); err != nil {
		return nil, err
	}
	return &forum, nil
}

func (c *Client) CreateForum(ctx context.Context, req CreateForumRequest) (*model.Forum, error) {
	env, err := c.do(ctx, http.MethodPost, "/forums", nil, req)
	if err != nil {
		return nil, err
	}
	var forum model.Forum
	if err := env.Bind(&forum); err != nil {
		return nil, err
	}
	return &forum, nil
}

func (c *Client) UpdateForum(ctx context.Context, id string, req UpdateForumRequest) (*model.Forum, error) {
	env, err := c.do(ctx, http.MethodPut, "/forums/"+id, nil, req)
	if err != nil {
		return nil, err
	}
	var forum model.Forum
	if err := env.Bind(&forum); err != nil {
		return nil, err
	}
	return &forum, nil
}

func (c *Client) DeleteForum(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/forums/"+id, nil, nil)
	return err
}

// ForumComments lists a forum's top-level comments.
func (c *Client) ForumComments(ctx context.Context, forumID string, page, perPage int) ([]model.Comment, *response.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, "/forums/"+forumID+"/comments", pageQuery(page, perPage), nil)
	if err != nil {
		return nil, nil, err
	}
	var comments []model.Comment
	if err := env.Bind(&comments); err != nil {
		return nil, nil, err
	}
	return comments, pagination(env), nil
}

// ReactForum toggles the caller's reaction on a forum.
func (c *Client) ReactForum(ctx context.Context, forumID, reactionType string) (*model.ReactionCounts, error) {
	body := map[string]string{"reaction_type": reactionType}
	env, err := c.do(ctx, http.MethodPost, "/forums/"+forumID+"/react", nil, body)
	if err != nil {
		return nil, err
	}
	var counts model.ReactionCounts
	if err := env.Bind(&counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

// pagination pulls pagination metadata off an envelope, if present.
func pagination(env *response.Envelope) *response.Pagination {
	if env.Meta == nil {
		return nil
	}
	return env.Meta.Pagination
}
