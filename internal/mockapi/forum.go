package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

const forumNotFound = "Forum bulunamadı"

type forumFilterQuery struct {
	Kategori   string `form:"kategori"`
	Universite string `form:"universite"`
	Search     string `form:"search"`
}

func (r *Router) listForums(c *gin.Context) {
	var filter forumFilterQuery
	_ = c.ShouldBindQuery(&filter)

	forums := r.store.GetWhere(store.CollectionForums, func(f store.Record) bool {
		if filter.Kategori != "" && f.String("kategori") != filter.Kategori {
			return false
		}
		if filter.Universite != "" && f.String("universite") != filter.Universite {
			return false
		}
		if filter.Search != "" &&
			!containsFold(f.String("baslik"), filter.Search) &&
			!containsFold(f.String("aciklama"), filter.Search) {
			return false
		}
		return true
	})

	page, perPage := pageParams(c, 10)
	items, meta := paginate(forums, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

type createForumRequest struct {
	Header      string   `json:"baslik" binding:"required,min=3"`
	Description string   `json:"aciklama"`
	PhotoURLs   []string `json:"foto_urls"`
	University  string   `json:"universite"`
	Category    string   `json:"kategori"`
}

func (r *Router) createForum(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req createForumRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	photoURLs := req.PhotoURLs
	if photoURLs == nil {
		photoURLs = []string{}
	}

	forum := r.store.Add(store.CollectionForums, store.Record{
		"baslik":           r.clean(req.Header),
		"aciklama":         r.clean(req.Description),
		"acilis_tarihi":    time.Now().Format(time.RFC3339),
		"acan_kisi_id":     user.String("user_id"),
		"acan_kisi":        authorOf(user),
		"foto_urls":        photoURLs,
		"yorum_ids":        []string{},
		"begeni_sayisi":    0,
		"begenmeme_sayisi": 0,
		"universite":       req.University,
		"kategori":         req.Category,
	})

	response.Success(c, http.StatusCreated, forum, "Forum başarıyla oluşturuldu")
}

func (r *Router) getForum(c *gin.Context) {
	forum, ok := r.store.GetByID(store.CollectionForums, c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound(forumNotFound))
		return
	}
	response.Success(c, http.StatusOK, forum, "")
}

type updateForumRequest struct {
	Header      *string   `json:"baslik"`
	Description *string   `json:"aciklama"`
	PhotoURLs   *[]string `json:"foto_urls"`
	University  *string   `json:"universite"`
	Category    *string   `json:"kategori"`
}

func (r *Router) updateForum(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	forum, ok := r.store.GetByID(store.CollectionForums, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(forumNotFound))
		return
	}
	if forum.String("acan_kisi_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Bu forumu düzenleme yetkiniz yok"))
		return
	}

	var req updateForumRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	// Only supplied fields overwrite; counters and identity are never
	// reachable through an edit.
	partial := store.Record{}
	if req.Header != nil {
		partial["baslik"] = r.clean(*req.Header)
	}
	if req.Description != nil {
		partial["aciklama"] = r.clean(*req.Description)
	}
	if req.PhotoURLs != nil {
		partial["foto_urls"] = *req.PhotoURLs
	}
	if req.University != nil {
		partial["universite"] = *req.University
	}
	if req.Category != nil {
		partial["kategori"] = *req.Category
	}

	updated, _ := r.store.Update(store.CollectionForums, id, partial)
	response.Success(c, http.StatusOK, updated, "Forum başarıyla güncellendi")
}

func (r *Router) deleteForum(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	forum, ok := r.store.GetByID(store.CollectionForums, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(forumNotFound))
		return
	}
	if forum.String("acan_kisi_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Bu forumu silme yetkiniz yok"))
		return
	}

	// A forum takes its comment tree with it.
	for _, comment := range r.store.GetWhere(store.CollectionComments, func(cm store.Record) bool {
		return cm.String("forum_id") == id
	}) {
		r.store.Remove(store.CollectionComments, comment.String("comment_id"))
	}
	r.store.Remove(store.CollectionForums, id)

	response.Success(c, http.StatusOK, nil, "Forum başarıyla silindi")
}

func (r *Router) forumComments(c *gin.Context) {
	id := c.Param("id")
	if _, ok := r.store.GetByID(store.CollectionForums, id); !ok {
		response.ResponseError(c, apperror.NotFound(forumNotFound))
		return
	}

	// Top-level comments only; replies hang off their parent. Dangling
	// parents are the caller's concern, matching the platform contract.
	comments := r.store.GetWhere(store.CollectionComments, func(cm store.Record) bool {
		return cm.String("forum_id") == id && cm.String("ust_yorum_id") == ""
	})

	page, perPage := pageParams(c, 20)
	items, meta := paginate(comments, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

func (r *Router) reactForum(c *gin.Context) {
	r.toggleReaction(c, store.CollectionForums, forumNotFound)
}
