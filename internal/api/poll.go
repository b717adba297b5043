package api

import (
	"context"
	"net/http"
	"strconv"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/pkg/response"
)

// PollFilter narrows poll listings. Active is a tri-state: nil means no
// filter, otherwise only open (true) or closed (false) polls come back.
type PollFilter struct {
	Page       int
	PerPage    int
	Category   string
	University string
	Active     *bool
}

type CreatePollOption struct {
	Label string `json:"metin"`
}

type CreatePollRequest struct {
	Header      string             `json:"baslik"`
	Description string             `json:"aciklama,omitempty"`
	Options     []CreatePollOption `json:"secenekler"`
	ClosesAt    string             `json:"bitis_tarihi,omitempty"`
	Category    string             `json:"kategori,omitempty"`
	University  string             `json:"universite,omitempty"`
}

type UpdatePollRequest struct {
	Header      *string             `json:"baslik,omitempty"`
	Description *string             `json:"aciklama,omitempty"`
	Options     *[]CreatePollOption `json:"secenekler,omitempty"`
	ClosesAt    *string             `json:"bitis_tarihi,omitempty"`
	Category    *string             `json:"kategori,omitempty"`
	University  *string             `json:"universite,omitempty"`
}

func (c *Client) ListPolls(ctx context.Context, f PollFilter) ([]model.Poll, *response.Pagination, error) {
	q := pageQuery(f.Page, f.PerPage)
	setIf(q, "kategori", f.Category)
	setIf(q, "universite", f.University)
	if f.Active != nil {
		q.Set("aktif", strconv.FormatBool(*f.Active))
	}

	env, err := c.do(ctx, http.MethodGet, "/polls", q, nil)
	if err != nil {
		return nil, nil, err
	}
	var polls []model.Poll
	if err := env.Bind(&polls); err != nil {
		return nil, nil, err
	}
	return polls, pagination(env), nil
}

func (c *Client) GetPoll(ctx context.Context, id string) (*model.Poll, error) {
	env, err := c.do(ctx, http.MethodGet, "/polls/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var poll model.Poll
	if err := env.Bind(&poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func (c *Client) CreatePoll(ctx context.Context, req CreatePollRequest) (*model.Poll, error) {
	env, err := c.do(ctx, http.MethodPost, "/polls", nil, req)
	if err != nil {
		return nil, err
	}
	var poll model.Poll
	if err := env.Bind(&poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func (c *Client) UpdatePoll(ctx context.Context, id string, req UpdatePollRequest) (*model.Poll, error) {
	env, err := c.do(ctx, http.MethodPut, "/polls/"+id, nil, req)
	if err != nil {
		return nil, err
	}
	var poll model.Poll
	if err := env.Bind(&poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func (c *Client) DeletePoll(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/polls/"+id, nil, nil)
	return err
}

// VotePoll records the caller's vote and returns the refreshed option counts.
func (c *Client) VotePoll(ctx context.Context, pollID, optionID string) (*model.VoteResult, error) {
	body := map[string]string{"option_id": optionID}
	env, err := c.do(ctx, http.MethodPost, "/polls/"+pollID+"/vote", nil, body)
	if err != nil {
		return nil, err
	}
	var result model.VoteResult
	if err := env.Bind(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) PollResults(ctx context.Context, pollID string) (*model.PollResults, error) {
	env, err := c.do(ctx, http.MethodGet, "/polls/"+pollID+"/results", nil, nil)
	if err != nil {
		return nil, err
	}
	var results model.PollResults
	if err := env.Bind(&results); err != nil {
		return nil, err
	}
	return &results, nil
}
