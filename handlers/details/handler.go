package details

import (
	"net/http"

	"github.com/cinepeek/web-ui/services/content"
	"github.com/cinepeek/web-ui/services/template"
	"github.com/cinepeek/web-ui/services/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Data struct {
	content.Snapshot
}

type Handler struct {
	tb template.Builder[*web.Context]
	cs *content.Service
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], cs *content.Service) {
	h := &Handler{
		tb: tm.MustRegisterViews("details/*").WithLayout("main"),
		cs: cs,
	}
	r.GET("/movies/:id", h.index)

	gr := r.Group("/api")
	gr.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET"},
	}))
	gr.GET("/content/:id", h.json)
}

func (s *Handler) load(c *gin.Context) (*content.Snapshot, error) {
	id := c.Param("id")
	snap, err := s.cs.Load(c.Request.Context(), id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load content %v", id)
	}
	return &snap, nil
}

func (s *Handler) index(c *gin.Context) {
	snap, err := s.load(c)
	if err != nil {
		log.WithError(err).Warn("failed to load content page")
		_ = c.AbortWithError(http.StatusServiceUnavailable, err)
		return
	}
	code := http.StatusOK
	if snap.Status() == content.StatusNotFound {
		code = http.StatusNotFound
	}
	s.tb.Build("details/index").HTML(code, web.NewContext(c).WithData(&Data{
		Snapshot: *snap,
	}))
}

func (s *Handler) json(c *gin.Context) {
	snap, err := s.load(c)
	if err != nil {
		_ = c.AbortWithError(http.StatusServiceUnavailable, err)
		return
	}
	code := http.StatusOK
	if snap.Status() == content.StatusNotFound {
		code = http.StatusNotFound
	}
	c.JSON(code, snap)
}
