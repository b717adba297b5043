package api

import (
	"context"
	"net/http"
	"strings"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/pkg/response"
)

// GroupFilter narrows group listings. Categories match if any overlap.
type GroupFilter struct {
	Page       int
	PerPage    int
	Search     string
	Categories []string
}

type CreateGroupRequest struct {
	Name        string   `json:"grup_adi"`
	Description string   `json:"aciklama,omitempty"`
	Privacy     string   `json:"gizlilik,omitempty"`
	Categories  []string `json:"kategoriler,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
	CoverURL    string   `json:"kapak_resmi_url,omitempty"`
}

type UpdateGroupRequest struct {
	Name        *string   `json:"grup_adi,omitempty"`
	Description *string   `json:"aciklama,omitempty"`
	Privacy     *string   `json:"gizlilik,omitempty"`
	Categories  *[]string `json:"kategoriler,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	CoverURL    *string   `json:"kapak_resmi_url,omitempty"`
}

// MemberFilter narrows a group's member listing.
type MemberFilter struct {
	Page    int
	PerPage int
	Status  string
	Role    string
}

func (c *Client) ListGroups(ctx context.Context, f GroupFilter) ([]model.Group, *response.Pagination, error) {
	q := pageQuery(f.Page, f.PerPage)
	setIf(q, "search", f.Search)
	setIf(q, "kategoriler", strings.Join(f.Categories, ","))

	env, err := c.do(ctx, http.MethodGet, "/groups", q, nil)
	if err != nil {
		return nil, nil, err
	}
	var groups []model.Group
	if err := env.Bind(&groups); err != nil {
		return nil, nil, err
	}
	return groups, pagination(env), nil
}

func (c *Client) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	env, err := c.do(ctx, http.MethodGet, "/groups/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var group model.Group
	if err := env.Bind(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (*model.Group, error) {
	env, err := c.do(ctx, http.MethodPost, "/groups", nil, req)
	if err != nil {
		return nil, err
	}
	var group model.Group
	if err := env.Bind(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id string, req UpdateGroupRequest) (*model.Group, error) {
	env, err := c.do(ctx, http.MethodPut, "/groups/"+id, nil, req)
	if err != nil {
		return nil, err
	}
	var group model.Group
	if err := env.Bind(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/groups/"+id, nil, nil)
	return err
}

// JoinGroup requests membership. Open groups activate immediately, closed
// groups leave the caller pending; the message distinguishes the two.
func (c *Client) JoinGroup(ctx context.Context, id string) (*model.GroupMember, string, error) {
	env, err := c.do(ctx, http.MethodPost, "/groups/"+id+"/join", nil, nil)
	if err != nil {
		return nil, "", err
	}
	var member model.GroupMember
	if err := env.Bind(&member); err != nil {
		return nil, "", err
	}
	return &member, env.Message, nil
}

func (c *Client) LeaveGroup(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPost, "/groups/"+id+"/leave", nil, nil)
	return err
}

func (c *Client) GroupMembers(ctx context.Context, id string, f MemberFilter) ([]model.GroupMember, *response.Pagination, error) {
	q := pageQuery(f.Page, f.PerPage)
	setIf(q, "status", f.Status)
	setIf(q, "role", f.Role)

	env, err := c.do(ctx, http.MethodGet, "/groups/"+id+"/members", q, nil)
	if err != nil {
		return nil, nil, err
	}
	var members []model.GroupMember
	if err := env.Bind(&members); err != nil {
		return nil, nil, err
	}
	return members, pagination(env), nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, groupID, userID, role string) error {
	body := map[string]string{"role": role}
	_, err := c.do(ctx, http.MethodPut, "/groups/"+groupID+"/members/"+userID+"/role", nil, body)
	return err
}

// ApproveMembership approves or rejects a pending membership request.
func (c *Client) ApproveMembership(ctx context.Context, groupID, userID string, approve bool) error {
	body := map[string]bool{"approve": approve}
	_, err := c.do(ctx, http.MethodPost, "/groups/"+groupID+"/members/"+userID+"/approve", nil, body)
	return err
}
