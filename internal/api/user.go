package api

import (
	"context"
	"net/http"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/response"
)

type UpdateProfileRequest struct {
	Username   *string `json:"username,omitempty"`
	AvatarURL  *string `json:"profil_resmi_url,omitempty"`
	Gender     *string `json:"cinsiyet,omitempty"`
	University *string `json:"universite,omitempty"`
}

func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := env.Bind(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/by-username/"+username, nil, nil)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := env.Bind(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the caller's profile and refreshes the stored
// session user.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*model.User, error) {
	env, err := c.do(ctx, http.MethodPut, "/users/profile", nil, req)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := env.Bind(&user); err != nil {
		return nil, err
	}
	if c.session != nil {
		c.session.SetUser(userRecord(user))
	}
	return &user, nil
}

// DeleteAccount removes the caller's account and drops the session.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodDelete, "/users/account", nil, nil); err != nil {
		return err
	}
	if c.session != nil {
		c.session.Clear()
	}
	return nil
}

// MyForums lists the authenticated user's forums.
func (c *Client) MyForums(ctx context.Context, page, perPage int) ([]model.Forum, *response.Pagination, error) {
	return c.forumListing(ctx, "/users/forums", page, perPage)
}

// UserForums lists another user's forums.
func (c *Client) UserForums(ctx context.Context, userID string, page, perPage int) ([]model.Forum, *response.Pagination, error) {
	return c.forumListing(ctx, "/users/"+userID+"/forums", page, perPage)
}

func (c *Client) MyComments(ctx context.Context, page, perPage int) ([]model.Comment, *response.Pagination, error) {
	return c.commentListing(ctx, "/users/comments", page, perPage)
}

func (c *Client) UserComments(ctx context.Context, userID string, page, perPage int) ([]model.Comment, *response.Pagination, error) {
	return c.commentListing(ctx, "/users/"+userID+"/comments", page, perPage)
}

func (c *Client) MyPolls(ctx context.Context, page, perPage int) ([]model.Poll, *response.Pagination, error) {
	return c.pollListing(ctx, "/users/polls", page, perPage)
}

func (c *Client) UserPolls(ctx context.Context, userID string, page, perPage int) ([]model.Poll, *response.Pagination, error) {
	return c.pollListing(ctx, "/users/"+userID+"/polls", page, perPage)
}

func (c *Client) MyGroups(ctx context.Context, page, perPage int) ([]model.Group, *response.Pagination, error) {
	return c.groupListing(ctx, "/users/groups", page, perPage)
}

func (c *Client) UserGroups(ctx context.Context, userID string, page, perPage int) ([]model.Group, *response.Pagination, error) {
	return c.groupListing(ctx, "/users/"+userID+"/groups", page, perPage)
}

func (c *Client) forumListing(ctx context.Context, path string, page, perPage int) ([]model.Forum, *response.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, path, pageQuery(page, perPage), nil)
	if err != nil {
		return nil, nil, err
	}
	var forums []model.Forum
	if err := env.Bind(&forums); err != nil {
		return nil, nil, err
	}
	return forums, pagination(env), nil
}

func (c *Client) commentListing(ctx context.Context, path string, page, perPage int) ([]model.Comment, *response.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, path, pageQuery(page, perPage), nil)
	if err != nil {
		return nil, nil, err
	}
	var comments []model.Comment
	if err := env.Bind(&comments); err != nil {
		return nil, nil, err
	}
	return comments, pagination(env), nil
}

func (c *Client) pollListing(ctx context.Context, path string, page, perPage int) ([]model.Poll, *response.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, path, pageQuery(page, perPage), nil)
	if err != nil {
		return nil, nil, err
	}
	var polls []model.Poll
	if err := env.Bind(&polls); err != nil {
		return nil, nil, err
	}
	return polls, pagination(env), nil
}

func (c *Client) groupListing(ctx context.Context, path string, page, perPage int) ([]model.Group, *response.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, path, pageQuery(page, perPage), nil)
	if err != nil {
		return nil, nil, err
	}
	var groups []model.Group
	if err := env.Bind(&groups); err != nil {
		return nil, nil, err
	}
	return groups, pagination(env), nil
}

// userRecord converts a typed user back into the session's record form.
func userRecord(u model.User) store.Record {
	rec := store.Record{
		"user_id":  u.UserID,
		"username": u.Username,
		"email":    u.Email,
	}
	if u.AvatarURL != "" {
		rec["profil_resmi_url"] = u.AvatarURL
	}
	if u.Gender != "" {
		rec["cinsiyet"] = u.Gender
	}
	if u.University != "" {
		rec["universite"] = u.University
	}
	if u.SignupDate != "" {
		rec["kayit_tarihi"] = u.SignupDate
	}
	return rec
}
