package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

const commentNotFound = "Yorum bulunamadı"

type createCommentRequest struct {
	ForumID         string   `json:"forum_id" binding:"required"`
	Content         string   `json:"icerik" binding:"required"`
	ParentCommentID string   `json:"ust_yorum_id"`
	PhotoURLs       []string `json:"foto_urls"`
}

func (r *Router) createComment(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req createCommentRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	forum, ok := r.store.GetByID(store.CollectionForums, req.ForumID)
	if !ok {
		response.ResponseError(c, apperror.NotFound(forumNotFound))
		return
	}
	if req.ParentCommentID != "" {
		if _, ok := r.store.GetByID(store.CollectionComments, req.ParentCommentID); !ok {
			response.ResponseError(c, apperror.NotFound("Üst yorum bulunamadı"))
			return
		}
	}

	photoURLs := req.PhotoURLs
	if photoURLs == nil {
		photoURLs = []string{}
	}

	comment := r.store.Add(store.CollectionComments, store.Record{
		"forum_id":         req.ForumID,
		"acan_kisi_id":     user.String("user_id"),
		"acan_kisi":        authorOf(user),
		"icerik":           r.clean(req.Content),
		"acilis_tarihi":    time.Now().Format(time.RFC3339),
		"foto_urls":        photoURLs,
		"begeni_sayisi":    0,
		"begenmeme_sayisi": 0,
		"ust_yorum_id":     req.ParentCommentID,
	})

	commentIDs := append(forum.Strings("yorum_ids"), comment.String("comment_id"))
	r.store.Update(store.CollectionForums, req.ForumID, store.Record{"yorum_ids": commentIDs})

	response.Success(c, http.StatusCreated, comment, "Yorum başarıyla oluşturuldu")
}

func (r *Router) getComment(c *gin.Context) {
	comment, ok := r.store.GetByID(store.CollectionComments, c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound(commentNotFound))
		return
	}
	response.Success(c, http.StatusOK, comment, "")
}

type updateCommentRequest struct {
	Content   *string   `json:"icerik"`
	PhotoURLs *[]string `json:"foto_urls"`
}

func (r *Router) updateComment(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	comment, ok := r.store.GetByID(store.CollectionComments, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(commentNotFound))
		return
	}
	if comment.String("acan_kisi_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Bu yorumu düzenleme yetkiniz yok"))
		return
	}

	var req updateCommentRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	partial := store.Record{}
	if req.Content != nil {
		partial["icerik"] = r.clean(*req.Content)
	}
	if req.PhotoURLs != nil {
		partial["foto_urls"] = *req.PhotoURLs
	}

	updated, _ := r.store.Update(store.CollectionComments, id, partial)
	response.Success(c, http.StatusOK, updated, "Yorum başarıyla güncellendi")
}

func (r *Router) deleteComment(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	comment, ok := r.store.GetByID(store.CollectionComments, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(commentNotFound))
		return
	}
	if comment.String("acan_kisi_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Bu yorumu silme yetkiniz yok"))
		return
	}

	removed := []string{id}
	// Deleting a top-level comment takes its direct replies with it; deeper
	// levels don't exist in this model. Deleting a reply removes only that
	// reply.
	if comment.String("ust_yorum_id") == "" {
		for _, reply := range r.store.GetWhere(store.CollectionComments, func(cm store.Record) bool {
			return cm.String("ust_yorum_id") == id
		}) {
			removed = append(removed, reply.String("comment_id"))
		}
	}
	for _, commentID := range removed {
		r.store.Remove(store.CollectionComments, commentID)
	}

	// Keep the forum's comment-id list consistent.
	if forum, ok := r.store.GetByID(store.CollectionForums, comment.String("forum_id")); ok {
		kept := []string{}
		for _, commentID := range forum.Strings("yorum_ids") {
			keep := true
			for _, removedID := range removed {
				if commentID == removedID {
					keep = false
					break
				}
			}
			if keep {
				kept = append(kept, commentID)
			}
		}
		r.store.Update(store.CollectionForums, comment.String("forum_id"), store.Record{"yorum_ids": kept})
	}

	response.Success(c, http.StatusOK, nil, "Yorum başarıyla silindi")
}

func (r *Router) commentReplies(c *gin.Context) {
	id := c.Param("id")
	if _, ok := r.store.GetByID(store.CollectionComments, id); !ok {
		response.ResponseError(c, apperror.NotFound(commentNotFound))
		return
	}

	replies := r.store.GetWhere(store.CollectionComments, func(cm store.Record) bool {
		return cm.String("ust_yorum_id") == id
	})

	page, perPage := pageParams(c, 20)
	items, meta := paginate(replies, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

func (r *Router) reactComment(c *gin.Context) {
	r.toggleReaction(c, store.CollectionComments, commentNotFound)
}
