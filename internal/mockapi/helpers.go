package mockapi

import (
	"strings"

	"github.com/gin-gonic/gin"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
	"kampusgo.dev/kampussosyal/pkg/validator"
)

// actor resolves the authenticated user from the stored session, the mock's
// authentication convention. Handlers must call this before any mutating side
// effect.
func (r *Router) actor() (store.Record, error) {
	user, ok := r.session.User()
	if !ok {
		return nil, apperror.Unauthorized("Yetkilendirme başarısız")
	}
	id := user.String("user_id")
	if id == "" {
		return nil, apperror.Unauthorized("Yetkilendirme başarısız")
	}
	// Refresh from the store so profile updates are visible immediately.
	if fresh, ok := r.store.GetByID(store.CollectionUsers, id); ok {
		return fresh, nil
	}
	return user, nil
}

func bindJSON(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return apperror.BadRequest(validator.FormatValidationError(err))
	}
	return nil
}

type pageQuery struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

func pageParams(c *gin.Context, defaultPerPage int) (int, int) {
	var q pageQuery
	_ = c.ShouldBindQuery(&q)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	return q.Page, q.PerPage
}

// paginate slices records for the requested page and computes the metadata.
func paginate(records []store.Record, page, perPage int) ([]store.Record, response.Pagination) {
	meta := response.NewPagination(page, perPage, len(records))

	start := (meta.Page - 1) * meta.PerPage
	if start >= len(records) {
		return []store.Record{}, meta
	}
	end := start + meta.PerPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], meta
}

// clean strips markup the platform does not allow in user-generated text.
func (r *Router) clean(s string) string {
	return strings.TrimSpace(r.sanitize.Sanitize(s))
}

// authorOf builds the embedded creator summary carried on created records.
func authorOf(user store.Record) store.Record {
	return store.Record{
		"username":         user.String("username"),
		"profil_resmi_url": user.String("profil_resmi_url"),
	}
}

// containsFold reports whether s contains substr case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
