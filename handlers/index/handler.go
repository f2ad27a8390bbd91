package index

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/cinepeek/web-ui/services/template"
	"github.com/cinepeek/web-ui/services/web"
	"github.com/gin-gonic/gin"
)

type Data struct {
	ID string
}

type Handler struct {
	tb template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context]) {
	h := &Handler{
		tb: tm.MustRegisterViews("*").WithLayout("main"),
	}
	r.GET("/", h.index)
	r.GET("/go", h.redirect)
}

func (s *Handler) index(c *gin.Context) {
	s.tb.Build("index").HTML(http.StatusOK, web.NewContext(c).WithData(&Data{
		ID: c.Query("id"),
	}))
}

func (s *Handler) redirect(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, "/movies/"+url.PathEscape(id))
}
