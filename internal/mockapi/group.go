package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

const groupNotFound = "Grup bulunamadı"

// memberOf returns the membership entry for userID, if any.
func memberOf(group store.Record, userID string) (store.Record, bool) {
	for _, m := range group.Records("uyeler") {
		if m.String("kullanici_id") == userID {
			return m, true
		}
	}
	return nil, false
}

func activeMemberCount(members []store.Record) int {
	n := 0
	for _, m := range members {
		if m.String("durum") == model.MemberActive {
			n++
		}
	}
	return n
}

func (r *Router) saveMembers(groupID string, members []store.Record) {
	r.store.Update(store.CollectionGroups, groupID, store.Record{
		"uyeler":     members,
		"uye_sayisi": activeMemberCount(members),
	})
}

type groupFilterQuery struct {
	Search      string `form:"search"`
	Kategoriler string `form:"kategoriler"`
}

func (r *Router) listGroups(c *gin.Context) {
	var filter groupFilterQuery
	_ = c.ShouldBindQuery(&filter)

	var wantCategories []string
	if filter.Kategoriler != "" {
		wantCategories = strings.Split(filter.Kategoriler, ",")
	}

	// Hidden groups stay out of listings unless the viewer belongs to them.
	viewerID := ""
	if viewer, ok := r.session.User(); ok {
		viewerID = viewer.String("user_id")
	}

	groups := r.store.GetWhere(store.CollectionGroups, func(g store.Record) bool {
		if g.String("gizlilik") == model.PrivacyHidden {
			if _, member := memberOf(g, viewerID); !member {
				return false
			}
		}
		if filter.Search != "" &&
			!containsFold(g.String("grup_adi"), filter.Search) &&
			!containsFold(g.String("aciklama"), filter.Search) {
			return false
		}
		if len(wantCategories) > 0 {
			have := g.Strings("kategoriler")
			match := false
			for _, want := range wantCategories {
				for _, cat := range have {
					if strings.EqualFold(strings.TrimSpace(want), cat) {
						match = true
					}
				}
			}
			if !match {
				return false
			}
		}
		return true
	})

	page, perPage := pageParams(c, 10)
	items, meta := paginate(groups, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

type createGroupRequest struct {
	Name        string   `json:"grup_adi" binding:"required,min=3"`
	Description string   `json:"aciklama"`
	Privacy     string   `json:"gizlilik" binding:"omitempty,oneof=acik kapali gizli"`
	Categories  []string `json:"kategoriler"`
	LogoURL     string   `json:"logo_url"`
	CoverURL    string   `json:"kapak_resmi_url"`
}

func (r *Router) createGroup(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req createGroupRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	if req.Privacy == "" {
		req.Privacy = model.PrivacyOpen
	}
	categories := req.Categories
	if categories == nil {
		categories = []string{}
	}

	creator := store.Record{
		"kullanici_id":     user.String("user_id"),
		"rol":              model.RoleAdmin,
		"durum":            model.MemberActive,
		"username":         user.String("username"),
		"profil_resmi_url": user.String("profil_resmi_url"),
	}

	group := r.store.Add(store.CollectionGroups, store.Record{
		"grup_adi":           r.clean(req.Name),
		"aciklama":           r.clean(req.Description),
		"olusturulma_tarihi": time.Now().Format(time.RFC3339),
		"olusturan_id":       user.String("user_id"),
		"logo_url":           req.LogoURL,
		"kapak_resmi_url":    req.CoverURL,
		"gizlilik":           req.Privacy,
		"kategoriler":        categories,
		"uye_sayisi":         1,
		"uyeler":             []store.Record{creator},
	})

	response.Success(c, http.StatusCreated, group, "Grup başarıyla oluşturuldu")
}

func (r *Router) getGroup(c *gin.Context) {
	group, ok := r.store.GetByID(store.CollectionGroups, c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound(groupNotFound))
		return
	}
	response.Success(c, http.StatusOK, group, "")
}

type updateGroupRequest struct {
	Name        *string   `json:"grup_adi"`
	Description *string   `json:"aciklama"`
	Privacy     *string   `json:"gizlilik" binding:"omitempty,oneof=acik kapali gizli"`
	Categories  *[]string `json:"kategoriler"`
	LogoURL     *string   `json:"logo_url"`
	CoverURL    *string   `json:"kapak_resmi_url"`
}

// requireGroupAdmin resolves the group and checks the actor holds the admin
// role in it.
func (r *Router) requireGroupAdmin(c *gin.Context, id string) (store.Record, store.Record, bool) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return nil, nil, false
	}

	group, ok := r.store.GetByID(store.CollectionGroups, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(groupNotFound))
		return nil, nil, false
	}

	member, isMember := memberOf(group, user.String("user_id"))
	if !isMember || member.String("rol") != model.RoleAdmin {
		response.ResponseError(c, apperror.Forbidden("Bu işlem için yönetici yetkisi gerekiyor"))
		return nil, nil, false
	}
	return user, group, true
}

func (r *Router) updateGroup(c *gin.Context) {
	id := c.Param("id")
	_, _, ok := r.requireGroupAdmin(c, id)
	if !ok {
		return
	}

	var req updateGroupRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	partial := store.Record{}
	if req.Name != nil {
		partial["grup_adi"] = r.clean(*req.Name)
	}
	if req.Description != nil {
		partial["aciklama"] = r.clean(*req.Description)
	}
	if req.Privacy != nil {
		partial["gizlilik"] = *req.Privacy
	}
	if req.Categories != nil {
		partial["kategoriler"] = *req.Categories
	}
	if req.LogoURL != nil {
		partial["logo_url"] = *req.LogoURL
	}
	if req.CoverURL != nil {
		partial["kapak_resmi_url"] = *req.CoverURL
	}

	updated, _ := r.store.Update(store.CollectionGroups, id, partial)
	response.Success(c, http.StatusOK, updated, "Grup başarıyla güncellendi")
}

func (r *Router) deleteGroup(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	group, ok := r.store.GetByID(store.CollectionGroups, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(groupNotFound))
		return
	}
	if group.String("olusturan_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Sadece grup sahibi grubu silebilir"))
		return
	}

	r.store.Remove(store.CollectionGroups, id)
	response.Success(c, http.StatusOK, nil, "Grup başarıyla silindi")
}

func (r *Router) joinGroup(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	group, ok := r.store.GetByID(store.CollectionGroups, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(groupNotFound))
		return
	}

	if _, already := memberOf(group, user.String("user_id")); already {
		response.ResponseError(c, apperror.BadRequest("Bu gruba zaten üyesiniz"))
		return
	}

	status := model.MemberActive
	message := "Gruba katıldınız"
	switch group.String("gizlilik") {
	case model.PrivacyHidden:
		response.ResponseError(c, apperror.Forbidden("Bu grup gizlidir"))
		return
	case model.PrivacyClosed:
		status = model.MemberPending
		message = "Üyelik başvurunuz onay bekliyor"
	}

	members := group.Records("uyeler")
	member := store.Record{
		"kullanici_id":     user.String("user_id"),
		"rol":              model.RoleMember,
		"durum":            status,
		"username":         user.String("username"),
		"profil_resmi_url": user.String("profil_resmi_url"),
	}
	members = append(members, member)
	r.saveMembers(id, members)

	response.Success(c, http.StatusOK, member, message)
}

func (r *Router) leaveGroup(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	group, ok := r.store.GetByID(store.CollectionGroups, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(groupNotFound))
		return
	}

	actorID := user.String("user_id")
	if group.String("olusturan_id") == actorID {
		response.ResponseError(c, apperror.BadRequest("Grup sahibi gruptan ayrılamaz"))
		return
	}
	if _, isMember := memberOf(group, actorID); !isMember {
		response.ResponseError(c, apperror.BadRequest("Bu grubun üyesi değilsiniz"))
		return
	}

	members := group.Records("uyeler")
	kept := members[:0]
	for _, m := range members {
		if m.String("kullanici_id") != actorID {
			kept = append(kept, m)
		}
	}
	r.saveMembers(id, kept)

	response.Success(c, http.StatusOK, nil, "Gruptan ayrıldınız")
}

type memberFilterQuery struct {
	Status string `form:"status"`
	Role   string `form:"role"`
}

func (r *Router) groupMembers(c *gin.Context) {
	group, ok := r.store.GetByID(store.CollectionGroups, c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound(groupNotFound))
		return
	}

	var filter memberFilterQuery
	_ = c.ShouldBindQuery(&filter)

	var members []store.Record
	for _, m := range group.Records("uyeler") {
		if filter.Status != "" && m.String("durum") != filter.Status {
			continue
		}
		if filter.Role != "" && m.String("rol") != filter.Role {
			continue
		}
		members = append(members, m)
	}

	page, perPage := pageParams(c, 20)
	items, meta := paginate(members, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=uye moderator yonetici"`
}

func (r *Router) updateMemberRole(c *gin.Context) {
	id := c.Param("id")
	_, group, ok := r.requireGroupAdmin(c, id)
	if !ok {
		return
	}

	var req updateRoleRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	targetID := c.Param("userId")
	members := group.Records("uyeler")
	found := false
	for _, m := range members {
		if m.String("kullanici_id") == targetID {
			m["rol"] = req.Role
			found = true
			break
		}
	}
	if !found {
		response.ResponseError(c, apperror.NotFound("Üye bulunamadı"))
		return
	}

	r.saveMembers(id, members)
	response.Success(c, http.StatusOK, nil, "Üye rolü güncellendi")
}

type approveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

func (r *Router) approveMembership(c *gin.Context) {
	id := c.Param("id")
	_, group, ok := r.requireGroupAdmin(c, id)
	if !ok {
		return
	}

	var req approveRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	targetID := c.Param("userId")
	members := group.Records("uyeler")
	var target store.Record
	for _, m := range members {
		if m.String("kullanici_id") == targetID {
			target = m
			break
		}
	}
	if target == nil {
		response.ResponseError(c, apperror.NotFound("Üye bulunamadı"))
		return
	}
	if target.String("durum") != model.MemberPending {
		response.ResponseError(c, apperror.BadRequest("Bekleyen bir üyelik başvurusu yok"))
		return
	}

	if *req.Approve {
		target["durum"] = model.MemberActive
		r.saveMembers(id, members)
		response.Success(c, http.StatusOK, target, "Üyelik başvurusu onaylandı")
		return
	}

	kept := members[:0]
	for _, m := range members {
		if m.String("kullanici_id") != targetID {
			kept = append(kept, m)
		}
	}
	r.saveMembers(id, kept)
	response.Success(c, http.StatusOK, nil, "Üyelik başvurusu reddedildi")
}
