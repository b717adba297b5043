package mockapi

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

const mediaNotFound = "Medya bulunamadı"

func (r *Router) storeUpload(c *gin.Context, user store.Record, header *multipart.FileHeader) (store.Record, error) {
	file, err := header.Open()
	if err != nil {
		return nil, apperror.BadRequest("Dosya okunamadı")
	}
	defer file.Close()

	modelType := c.PostForm("model_type")
	folder := modelType
	if folder == "" {
		folder = "uploads"
	}

	url, err := r.media.Upload(c.Request.Context(), file, folder, header.Filename)
	if err != nil {
		return nil, err
	}

	return r.store.Add(store.CollectionMedia, store.Record{
		"user_id":        user.String("user_id"),
		"url":            url,
		"dosya_adi":      header.Filename,
		"model_type":     modelType,
		"model_id":       c.PostForm("model_id"),
		"yukleme_tarihi": time.Now().Format(time.RFC3339),
	}), nil
}

func (r *Router) uploadMedia(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.ResponseError(c, apperror.BadRequest("Dosya zorunludur"))
		return
	}

	media, err := r.storeUpload(c, user, header)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, media, "Dosya başarıyla yüklendi")
}

func (r *Router) uploadMultipleMedia(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		response.ResponseError(c, apperror.BadRequest("En az bir dosya zorunludur"))
		return
	}

	var uploaded []store.Record
	for _, header := range form.File["files"] {
		media, err := r.storeUpload(c, user, header)
		if err != nil {
			response.ResponseError(c, err)
			return
		}
		uploaded = append(uploaded, media)
	}

	response.Success(c, http.StatusCreated, uploaded, "Dosyalar başarıyla yüklendi")
}

type deleteMediaRequest struct {
	MediaID string `json:"media_id"`
	URL     string `json:"url"`
}

func (r *Router) deleteMedia(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req deleteMediaRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}
	if req.MediaID == "" && req.URL == "" {
		response.ResponseError(c, apperror.BadRequest("media_id veya url zorunludur"))
		return
	}

	var media store.Record
	if req.MediaID != "" {
		media, _ = r.store.GetByID(store.CollectionMedia, req.MediaID)
	} else {
		matches := r.store.GetWhere(store.CollectionMedia, func(m store.Record) bool {
			return m.String("url") == req.URL
		})
		if len(matches) > 0 {
			media = matches[0]
		}
	}
	if media == nil {
		response.ResponseError(c, apperror.NotFound(mediaNotFound))
		return
	}
	if media.String("user_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Bu dosyayı silme yetkiniz yok"))
		return
	}

	if err := r.media.Delete(c.Request.Context(), media.String("url")); err != nil {
		response.ResponseError(c, err)
		return
	}
	r.store.Remove(store.CollectionMedia, media.String("media_id"))

	response.Success(c, http.StatusOK, nil, "Dosya başarıyla silindi")
}

type mediaURLRequest struct {
	URL     string `json:"url" binding:"required"`
	Expires int    `json:"expires"`
}

func (r *Router) mediaURL(c *gin.Context) {
	var req mediaURLRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}
	if req.Expires <= 0 {
		req.Expires = 3600
	}

	url, err := r.media.SignedURL(c.Request.Context(), req.URL, time.Duration(req.Expires)*time.Second)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url, "expires": req.Expires}, "")
}

func (r *Router) mediaByModel(c *gin.Context) {
	modelType := c.Param("type")
	modelID := c.Param("id")

	media := r.store.GetWhere(store.CollectionMedia, func(m store.Record) bool {
		return m.String("model_type") == modelType && m.String("model_id") == modelID
	})
	if media == nil {
		media = []store.Record{}
	}

	response.Success(c, http.StatusOK, media, "")
}

func (r *Router) userMedia(c *gin.Context) {
	userID := c.Param("id")
	modelType := c.Query("model_type")

	media := r.store.GetWhere(store.CollectionMedia, func(m store.Record) bool {
		if m.String("user_id") != userID {
			return false
		}
		if modelType != "" && m.String("model_type") != modelType {
			return false
		}
		return true
	})

	page, perPage := pageParams(c, 20)
	items, meta := paginate(media, page, perPage)
	response.SuccessPage(c, items, "", meta)
}
