package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

const userNotFound = "Kullanıcı bulunamadı"

func (r *Router) getUser(c *gin.Context) {
	user, ok := r.store.GetByID(store.CollectionUsers, c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound(userNotFound))
		return
	}
	response.Success(c, http.StatusOK, publicUser(user), "")
}

func (r *Router) getUserByUsername(c *gin.Context) {
	username := c.Param("username")
	users := r.store.GetWhere(store.CollectionUsers, func(u store.Record) bool {
		return u.String("username") == username
	})
	if len(users) == 0 {
		response.ResponseError(c, apperror.NotFound(userNotFound))
		return
	}
	response.Success(c, http.StatusOK, publicUser(users[0]), "")
}

type updateProfileRequest struct {
	Username   *string `json:"username" binding:"omitempty,min=3"`
	AvatarURL  *string `json:"profil_resmi_url"`
	Gender     *string `json:"cinsiyet"`
	University *string `json:"universite"`
}

func (r *Router) updateProfile(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req updateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	actorID := user.String("user_id")
	partial := store.Record{}
	if req.Username != nil {
		taken := r.store.GetWhere(store.CollectionUsers, func(u store.Record) bool {
			return u.String("username") == *req.Username && u.String("user_id") != actorID
		})
		if len(taken) > 0 {
			response.ResponseError(c, apperror.BadRequest("Bu kullanıcı adı zaten kullanılıyor"))
			return
		}
		partial["username"] = *req.Username
	}
	if req.AvatarURL != nil {
		partial["profil_resmi_url"] = *req.AvatarURL
	}
	if req.Gender != nil {
		partial["cinsiyet"] = *req.Gender
	}
	if req.University != nil {
		partial["universite"] = *req.University
	}

	updated, ok := r.store.Update(store.CollectionUsers, actorID, partial)
	if !ok {
		response.ResponseError(c, apperror.NotFound(userNotFound))
		return
	}

	public := publicUser(updated)
	r.session.SetUser(public)
	response.Success(c, http.StatusOK, public, "Profil başarıyla güncellendi")
}

func (r *Router) deleteAccount(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	r.store.Remove(store.CollectionUsers, user.String("user_id"))
	r.session.Clear()

	response.Success(c, http.StatusOK, nil, "Hesabınız silindi")
}

// listByCreator pages a collection filtered on its creator field.
func (r *Router) listByCreator(c *gin.Context, collection, field, userID string, defaultPerPage int) {
	records := r.store.GetWhere(collection, func(rec store.Record) bool {
		return rec.String(field) == userID
	})

	page, perPage := pageParams(c, defaultPerPage)
	items, meta := paginate(records, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

func (r *Router) listGroupsForUser(c *gin.Context, userID string) {
	groups := r.store.GetWhere(store.CollectionGroups, func(g store.Record) bool {
		_, isMember := memberOf(g, userID)
		return isMember
	})

	page, perPage := pageParams(c, 10)
	items, meta := paginate(groups, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

func (r *Router) userForums(c *gin.Context) {
	r.listByCreator(c, store.CollectionForums, "acan_kisi_id", c.Param("id"), 10)
}

func (r *Router) userComments(c *gin.Context) {
	r.listByCreator(c, store.CollectionComments, "acan_kisi_id", c.Param("id"), 10)
}

func (r *Router) userPolls(c *gin.Context) {
	r.listByCreator(c, store.CollectionPolls, "acan_kisi_id", c.Param("id"), 10)
}

func (r *Router) userGroups(c *gin.Context) {
	r.listGroupsForUser(c, c.Param("id"))
}

func (r *Router) myForums(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	r.listByCreator(c, store.CollectionForums, "acan_kisi_id", user.String("user_id"), 10)
}

func (r *Router) myComments(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	r.listByCreator(c, store.CollectionComments, "acan_kisi_id", user.String("user_id"), 10)
}

func (r *Router) myPolls(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	r.listByCreator(c, store.CollectionPolls, "acan_kisi_id", user.String("user_id"), 10)
}

func (r *Router) myGroups(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	r.listGroupsForUser(c, user.String("user_id"))
}
