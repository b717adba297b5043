package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

type reactionRequest struct {
	ReactionType string `json:"reaction_type" binding:"required,oneof=begeni begenmeme"`
}

// toggleReaction applies the one-reaction-per-user rule shared by forums and
// comments: a new reaction increments its counter, switching moves the count,
// and repeating the same reaction removes it. Counters are only ever adjusted
// here, never through a direct field edit.
func (r *Router) toggleReaction(c *gin.Context, collection, notFoundMsg string) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req reactionRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	rec, ok := r.store.GetByID(collection, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(notFoundMsg))
		return
	}

	reactions := rec.StringMap("reaksiyonlar")
	if reactions == nil {
		reactions = make(map[string]string)
	}

	likes := rec.Int("begeni_sayisi")
	dislikes := rec.Int("begenmeme_sayisi")
	actorID := user.String("user_id")
	previous := reactions[actorID]

	decrement := func(kind string) {
		switch kind {
		case model.ReactionLike:
			if likes > 0 {
				likes--
			}
		case model.ReactionDislike:
			if dislikes > 0 {
				dislikes--
			}
		}
	}

	switch {
	case previous == req.ReactionType:
		// Same reaction again removes it.
		decrement(previous)
		delete(reactions, actorID)
	case previous != "":
		// Switching moves the count.
		decrement(previous)
		fallthrough
	default:
		if req.ReactionType == model.ReactionLike {
			likes++
		} else {
			dislikes++
		}
		reactions[actorID] = req.ReactionType
	}

	r.store.Update(collection, id, store.Record{
		"begeni_sayisi":    likes,
		"begenmeme_sayisi": dislikes,
		"reaksiyonlar":     reactions,
	})

	response.Success(c, http.StatusOK, model.ReactionCounts{
		LikeCount:    likes,
		DislikeCount: dislikes,
	}, "")
}
