package main

import (
	"net/http"

	"github.com/cinepeek/web-ui/handlers/details"
	"github.com/cinepeek/web-ui/handlers/details/helpers"
	wi "github.com/cinepeek/web-ui/handlers/index"
	"github.com/cinepeek/web-ui/handlers/poster"
	"github.com/cinepeek/web-ui/services/content"
	"github.com/cinepeek/web-ui/services/metrics"
	"github.com/cinepeek/web-ui/services/template"
	"github.com/cinepeek/web-ui/services/tmdb"
	w "github.com/cinepeek/web-ui/services/web"
	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = w.RegisterHelperFlags(c.Flags)
	c.Flags = template.RegisterFlags(c.Flags)
	c.Flags = metrics.RegisterFlags(c.Flags)
	c.Flags = configureContent(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := tmdb.MakeClient(c, http.DefaultClient)

	// Setting TMDB Api
	api, err := makeTMDB(c, cl)
	if err != nil {
		return err
	}

	// Setting Content Service
	cts := content.New(api)

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager[*w.Context](re).
		WithDir(template.GetDir(c)).
		WithHelper(w.NewHelper(c)).
		WithHelper(helpers.NewStarsHelper()).
		WithHelper(helpers.NewFormatHelper(tmdb.GetLanguage(c)))

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Metrics
	m := metrics.New(c)
	if m != nil {
		servers = append(servers, m)
		defer m.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.HTMLRender = re

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	servers = append(servers, web)
	defer web.Close()

	// Setting IndexHandler
	wi.RegisterHandler(r, tm)

	// Setting DetailsHandler
	details.RegisterHandler(r, tm, cts)

	// Setting PosterHandler
	poster.RegisterHandler(r, cl, api)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
