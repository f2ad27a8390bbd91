package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Context is what every page template receives.
type Context struct {
	Data      any
	RequestID string
	Path      string
	G         *gin.Context
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		RequestID: c.GetString(requestIDKey),
		Path:      c.Request.URL.Path,
		G:         c,
	}
}

func (s *Context) WithData(d any) *Context {
	s.Data = d
	return s
}

func (s *Context) GetGinContext() *gin.Context {
	return s.G
}

// RequestID tags every request with an id, reusing the incoming X-Request-ID when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
