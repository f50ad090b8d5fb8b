package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitKey is the gin context key the rate limiter stores its state under.
const RateLimitKey = "rateLimit"

type ApiResponse struct {
	Message         string      `json:"message"`
	Data            any         `json:"data,omitempty"`
	Error           bool        `json:"error,omitempty"`
	Meta            *Pagination `json:"meta"`
	Rate            *RateLimit  `json:"rate_limit,omitempty"`
	RequestedEntity string      `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"12"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"4"`
}

// NewPagination fills TotalPages from total and limit.
func NewPagination(page, limit, total int) *Pagination {
	p := &Pagination{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}

type RateLimit struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

func rateFromContext(c *gin.Context) *RateLimit {
	if c == nil {
		return nil
	}
	if v, ok := c.Get(RateLimitKey); ok {
		if rl, ok := v.(*RateLimit); ok {
			return rl
		}
	}
	return nil
}

// requestedEntity is "<METHOD> <route pattern>", e.g. "GET /api/v1/store/categories/:slug/filters".
func requestedEntity(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := SuccessResponse(c, message, data)
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}
