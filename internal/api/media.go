package api

import (
	"context"
	"io"
	"net/http"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/pkg/response"
)

// UploadMedia uploads one file, optionally attached to a model instance
// (forum, group, comment). modelType and modelID may be empty.
func (c *Client) UploadMedia(ctx context.Context, fileName string, content io.Reader, modelType, modelID string) (*model.Media, error) {
	fields := map[string]string{}
	if modelType != "" {
		fields["model_type"] = modelType
	}
	if modelID != "" {
		fields["model_id"] = modelID
	}
	files := map[string][]Upload{"file": {{FileName: fileName, Content: content}}}

	env, err := c.upload(ctx, "/media/upload", files, fields)
	if err != nil {
		return nil, err
	}
	var media model.Media
	if err := env.Bind(&media); err != nil {
		return nil, err
	}
	return &media, nil
}

// UploadMultipleMedia uploads several files in one request.
func (c *Client) UploadMultipleMedia(ctx context.Context, uploads []Upload, modelType, modelID string) ([]model.Media, error) {
	fields := map[string]string{}
	if modelType != "" {
		fields["model_type"] = modelType
	}
	if modelID != "" {
		fields["model_id"] = modelID
	}

	env, err := c.upload(ctx, "/media/upload-multiple", map[string][]Upload{"files": uploads}, fields)
	if err != nil {
		return nil, err
	}
	var media []model.Media
	if err := env.Bind(&media); err != nil {
		return nil, err
	}
	return media, nil
}

// DeleteMedia removes a file by id or URL; either may be empty but not both.
func (c *Client) DeleteMedia(ctx context.Context, mediaID, fileURL string) error {
	body := map[string]string{}
	if mediaID != "" {
		body["media_id"] = mediaID
	}
	if fileURL != "" {
		body["url"] = fileURL
	}
	_, err := c.do(ctx, http.MethodPost, "/media/delete", nil, body)
	return err
}

// MediaURL resolves a signed URL for a stored file. expires is in seconds;
// zero takes the backend default.
func (c *Client) MediaURL(ctx context.Context, fileURL string, expires int) (string, error) {
	body := map[string]interface{}{"url": fileURL}
	if expires > 0 {
		body["expires"] = expires
	}
	env, err := c.do(ctx, http.MethodPost, "/media/url", nil, body)
	if err != nil {
		return "", err
	}
	var payload struct {
		URL string `json:"url"`
	}
	if err := env.Bind(&payload); err != nil {
		return "", err
	}
	return payload.URL, nil
}

// MediaByModel lists the files attached to one model instance.
func (c *Client) MediaByModel(ctx context.Context, modelType, modelID string) ([]model.Media, error) {
	env, err := c.do(ctx, http.MethodGet, "/media/by-model/"+modelType+"/"+modelID, nil, nil)
	if err != nil {
		return nil, err
	}
	var media []model.Media
	if err := env.Bind(&media); err != nil {
		return nil, err
	}
	return media, nil
}

// UserMedia lists a user's uploads, optionally filtered by model type.
func (c *Client) UserMedia(ctx context.Context, userID, modelType string, page, perPage int) ([]model.Media, *response.Pagination, error) {
	q := pageQuery(page, perPage)
	setIf(q, "model_type", modelType)

	env, err := c.do(ctx, http.MethodGet, "/media/user/"+userID, q, nil)
	if err != nil {
		return nil, nil, err
	}
	var media []model.Media
	if err := env.Bind(&media); err != nil {
		return nil, nil, err
	}
	return media, pagination(env), nil
}
