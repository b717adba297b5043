package response

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"kampusgo.dev/kampussosyal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the wire format shared by the real backend and the mock router:
// {status, data, message?, meta?}. Data is kept raw so callers decode it into
// whatever shape the operation returns.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// NewPagination computes pagination metadata for a listing.
// total_pages == ceil(total/per_page); has_next iff page < total_pages.
func NewPagination(page, perPage, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	totalPages := (total + perPage - 1) / perPage
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Bind decodes the envelope payload into v.
func (e *Envelope) Bind(v interface{}) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Decode parses a response body into an Envelope.
func Decode(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	return &env, nil
}

// Success writes a success envelope with the given payload.
func Success(c *gin.Context, code int, data interface{}, message string) {
	raw, err := json.Marshal(data)
	if err != nil {
		ResponseError(c, err)
		return
	}
	c.JSON(code, Envelope{Status: StatusSuccess, Data: raw, Message: message})
}

// SuccessPage writes a success envelope carrying pagination metadata.
func SuccessPage(c *gin.Context, data interface{}, message string, p Pagination) {
	raw, err := json.Marshal(data)
	if err != nil {
		ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{
		Status:  StatusSuccess,
		Data:    raw,
		Message: message,
		Meta:    &Meta{Pagination: &p},
	})
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, Envelope{Status: StatusError, Message: err.Error()})
}
