package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

const pollNotFound = "Anket bulunamadı"

// pollOpen reports whether a poll still accepts votes. A missing or
// unparseable close timestamp counts as open.
func pollOpen(poll store.Record) bool {
	closesAt := poll.String("bitis_tarihi")
	if closesAt == "" {
		return true
	}
	t, err := time.Parse(time.RFC3339, closesAt)
	if err != nil {
		return true
	}
	return t.After(time.Now())
}

type pollFilterQuery struct {
	Kategori   string `form:"kategori"`
	Universite string `form:"universite"`
	Aktif      string `form:"aktif"`
}

func (r *Router) listPolls(c *gin.Context) {
	var filter pollFilterQuery
	_ = c.ShouldBindQuery(&filter)

	polls := r.store.GetWhere(store.CollectionPolls, func(p store.Record) bool {
		if filter.Kategori != "" && p.String("kategori") != filter.Kategori {
			return false
		}
		if filter.Universite != "" && p.String("universite") != filter.Universite {
			return false
		}
		if filter.Aktif != "" {
			wantOpen, err := strconv.ParseBool(filter.Aktif)
			if err == nil && pollOpen(p) != wantOpen {
				return false
			}
		}
		return true
	})

	page, perPage := pageParams(c, 10)
	items, meta := paginate(polls, page, perPage)
	response.SuccessPage(c, items, "", meta)
}

type pollOptionRequest struct {
	Label string `json:"metin" binding:"required"`
}

type createPollRequest struct {
	Header      string              `json:"baslik" binding:"required,min=3"`
	Description string              `json:"aciklama"`
	ClosesAt    string              `json:"bitis_tarihi"`
	Options     []pollOptionRequest `json:"secenekler" binding:"required,min=2,dive"`
	University  string              `json:"universite"`
	Category    string              `json:"kategori"`
}

func (r *Router) createPoll(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req createPollRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	options := make([]store.Record, 0, len(req.Options))
	for i, opt := range req.Options {
		options = append(options, store.Record{
			"option_id": strconv.Itoa(i + 1),
			"metin":     r.clean(opt.Label),
			"oy_sayisi": 0,
		})
	}

	poll := r.store.Add(store.CollectionPolls, store.Record{
		"baslik":        r.clean(req.Header),
		"aciklama":      r.clean(req.Description),
		"acilis_tarihi": time.Now().Format(time.RFC3339),
		"bitis_tarihi":  req.ClosesAt,
		"acan_kisi_id":  user.String("user_id"),
		"acan_kisi":     authorOf(user),
		"secenekler":    options,
		"oylar":         map[string]string{},
		"universite":    req.University,
		"kategori":      req.Category,
	})

	response.Success(c, http.StatusCreated, poll, "Anket başarıyla oluşturuldu")
}

func (r *Router) getPoll(c *gin.Context) {
	poll, ok := r.store.GetByID(store.CollectionPolls, c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound(pollNotFound))
		return
	}
	response.Success(c, http.StatusOK, poll, "")
}

type updatePollRequest struct {
	Header      *string              `json:"baslik"`
	Description *string              `json:"aciklama"`
	ClosesAt    *string              `json:"bitis_tarihi"`
	Options     *[]pollOptionRequest `json:"secenekler"`
	University  *string              `json:"universite"`
	Category    *string              `json:"kategori"`
}

func (r *Router) updatePoll(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	poll, ok := r.store.GetByID(store.CollectionPolls, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(pollNotFound))
		return
	}
	if poll.String("acan_kisi_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Bu anketi düzenleme yetkiniz yok"))
		return
	}

	var req updatePollRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	partial := store.Record{}
	if req.Header != nil {
		partial["baslik"] = r.clean(*req.Header)
	}
	if req.Description != nil {
		partial["aciklama"] = r.clean(*req.Description)
	}
	if req.ClosesAt != nil {
		partial["bitis_tarihi"] = *req.ClosesAt
	}
	if req.University != nil {
		partial["universite"] = *req.University
	}
	if req.Category != nil {
		partial["kategori"] = *req.Category
	}
	if req.Options != nil {
		// Vote counts survive an option edit: an edit can relabel options
		// but never touch tallies, which belong to the vote operation alone.
		existing := map[string]int{}
		for _, opt := range poll.Records("secenekler") {
			existing[opt.String("option_id")] = opt.Int("oy_sayisi")
		}
		options := make([]store.Record, 0, len(*req.Options))
		for i, opt := range *req.Options {
			optionID := strconv.Itoa(i + 1)
			options = append(options, store.Record{
				"option_id": optionID,
				"metin":     r.clean(opt.Label),
				"oy_sayisi": existing[optionID],
			})
		}
		partial["secenekler"] = options
	}

	updated, _ := r.store.Update(store.CollectionPolls, id, partial)
	response.Success(c, http.StatusOK, updated, "Anket başarıyla güncellendi")
}

func (r *Router) deletePoll(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	poll, ok := r.store.GetByID(store.CollectionPolls, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(pollNotFound))
		return
	}
	if poll.String("acan_kisi_id") != user.String("user_id") {
		response.ResponseError(c, apperror.Forbidden("Bu anketi silme yetkiniz yok"))
		return
	}

	r.store.Remove(store.CollectionPolls, id)
	response.Success(c, http.StatusOK, nil, "Anket başarıyla silindi")
}

type voteRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

func (r *Router) votePoll(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req voteRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	id := c.Param("id")
	poll, ok := r.store.GetByID(store.CollectionPolls, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(pollNotFound))
		return
	}
	if !pollOpen(poll) {
		response.ResponseError(c, apperror.BadRequest("Anket kapanmış"))
		return
	}

	votes := poll.StringMap("oylar")
	if votes == nil {
		votes = make(map[string]string)
	}
	actorID := user.String("user_id")
	if _, voted := votes[actorID]; voted {
		response.ResponseError(c, apperror.BadRequest("Bu ankete zaten oy verdiniz"))
		return
	}

	options := poll.Records("secenekler")
	found := false
	for _, opt := range options {
		if opt.String("option_id") == req.OptionID {
			opt["oy_sayisi"] = opt.Int("oy_sayisi") + 1
			found = true
			break
		}
	}
	if !found {
		response.ResponseError(c, apperror.BadRequest("Geçersiz seçenek"))
		return
	}

	votes[actorID] = req.OptionID
	r.store.Update(store.CollectionPolls, id, store.Record{
		"secenekler": options,
		"oylar":      votes,
	})

	response.Success(c, http.StatusOK, gin.H{"results": options}, "Oy başarıyla kaydedildi")
}

func (r *Router) pollResults(c *gin.Context) {
	id := c.Param("id")
	poll, ok := r.store.GetByID(store.CollectionPolls, id)
	if !ok {
		response.ResponseError(c, apperror.NotFound(pollNotFound))
		return
	}

	options := poll.Records("secenekler")
	total := 0
	for _, opt := range options {
		total += opt.Int("oy_sayisi")
	}

	response.Success(c, http.StatusOK, gin.H{
		"poll_id":    poll.String("poll_id"),
		"toplam_oy":  total,
		"secenekler": options,
	}, "Anket sonuçları başarıyla getirildi")
}
