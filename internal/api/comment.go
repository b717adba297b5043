package api

import (
	"context"
	"net/http"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/pkg/response"
)

type CreateCommentRequest struct {
	ForumID         string   `json:"forum_id"`
	Content         string   `json:"icerik"`
	ParentCommentID string   `json:"ust_yorum_id,omitempty"`
	PhotoURLs       []string `json:"foto_urls,omitempty"`
}

type UpdateCommentRequest struct {
	Content   *string   `json:"icerik,omitempty"`
	PhotoURLs *[]string `json:"foto_urls,omitempty"`
}

func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*model.Comment, error) {
	env, err := c.do(ctx, http.MethodPost, "/comments", nil, req)
	if err != nil {
		return nil, err
	}
	var comment model.Comment
	if err := env.Bind(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	env, err := c.do(ctx, http.MethodGet, "/comments/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var comment model.Comment
	if err := env.Bind(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) UpdateComment(ctx context.Context, id string, req UpdateCommentRequest) (*model.Comment, error) {
	env, err := c.do(ctx, http.MethodPut, "/comments/"+id, nil, req)
	if err != nil {
		return nil, err
	}
	var comment model.Comment
	if err := env.Bind(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/comments/"+id, nil, nil)
	return err
}

// CommentReplies lists the direct replies of a comment.
func (c *Client) CommentReplies(ctx context.Context, id string, page, perPage int) ([]model.Comment, *response.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, "/comments/"+id+"/replies", pageQuery(page, perPage), nil)
	if err != nil {
		return nil, nil, err
	}
	var replies []model.Comment
	if err := env.Bind(&replies); err != nil {
		return nil, nil, err
	}
	return replies, pagination(env), nil
}

// ReactComment toggles the caller's reaction on a comment.
func (c *Client) ReactComment(ctx context.Context, id, reactionType string) (*model.ReactionCounts, error) {
	body := map[string]string{"reaction_type": reactionType}
	env, err := c.do(ctx, http.MethodPost, "/comments/"+id+"/react", nil, body)
	if err != nil {
		return nil, err
	}
	var counts model.ReactionCounts
	if err := env.Bind(&counts); err != nil {
		return nil, err
	}
	return &counts, nil
}
