package template

import (
	"html/template"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/yargevad/filepathx"
)

const (
	templatesDirFlag = "templates-dir"

	viewsDir    = "views"
	layoutsDir  = "layouts"
	partialsDir = "partials"
	ext         = ".html"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   templatesDirFlag,
			Usage:  "templates dir",
			Value:  "templates",
			EnvVar: "TEMPLATES_DIR",
		},
	)
}

func GetDir(c *cli.Context) string {
	return c.String(templatesDirFlag)
}

// Context is the data passed to every template. It knows its request.
type Context interface {
	GetGinContext() *gin.Context
}

type viewSet struct {
	pattern string
	layout  string
}

type Manager[T Context] struct {
	re     multitemplate.Renderer
	dir    string
	funcs  template.FuncMap
	views  []*viewSet
	names  map[string]bool
	inited bool
}

func NewManager[T Context](re multitemplate.Renderer) *Manager[T] {
	return &Manager[T]{
		re:    re,
		dir:   "templates",
		funcs: template.FuncMap{},
		names: map[string]bool{},
	}
}

func (s *Manager[T]) WithDir(dir string) *Manager[T] {
	s.dir = dir
	return s
}

// WithHelper exposes every exported method of h as a template function of the same name.
func (s *Manager[T]) WithHelper(h any) *Manager[T] {
	v := reflect.ValueOf(h)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		s.funcs[t.Method(i).Name] = v.Method(i).Interface()
	}
	return s
}

// MustRegisterViews registers views matching pattern (relative to the views dir, without extension).
func (s *Manager[T]) MustRegisterViews(pattern string) Builder[T] {
	if s.inited {
		panic("views must be registered before init")
	}
	vs := &viewSet{pattern: pattern}
	s.views = append(s.views, vs)
	return Builder[T]{m: s, vs: vs}
}

func (s *Manager[T]) Init() error {
	partials, err := filepathx.Glob(filepath.Join(s.dir, partialsDir, "**", "*"+ext))
	if err != nil {
		return errors.Wrap(err, "failed to glob partials")
	}
	for _, vs := range s.views {
		files, err := filepathx.Glob(filepath.Join(s.dir, viewsDir, vs.pattern+ext))
		if err != nil {
			return errors.Wrapf(err, "failed to glob views %v", vs.pattern)
		}
		if len(files) == 0 {
			return errors.Errorf("no views found for pattern %v", vs.pattern)
		}
		for _, f := range files {
			name, err := s.viewName(f)
			if err != nil {
				return err
			}
			// the first file is the one executed
			var tfs []string
			if vs.layout != "" {
				tfs = append(tfs, filepath.Join(s.dir, layoutsDir, vs.layout+ext))
				tfs = append(tfs, partials...)
				tfs = append(tfs, f)
			} else {
				tfs = append(tfs, f)
				tfs = append(tfs, partials...)
			}
			s.re.AddFromFilesFuncs(name, s.funcs, tfs...)
			s.names[name] = true
			log.Debugf("registered view %v", name)
		}
	}
	s.inited = true
	return nil
}

func (s *Manager[T]) viewName(f string) (string, error) {
	rel, err := filepath.Rel(filepath.Join(s.dir, viewsDir), f)
	if err != nil {
		return "", errors.Wrapf(err, "failed to get view name for %v", f)
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), ext), nil
}

func (s *Manager[T]) has(name string) bool {
	return s.names[name]
}

type Builder[T Context] struct {
	m  *Manager[T]
	vs *viewSet
}

func (s Builder[T]) WithLayout(name string) Builder[T] {
	s.vs.layout = name
	return s
}

func (s Builder[T]) Build(name string) *Template[T] {
	return &Template[T]{m: s.m, name: name}
}

type Template[T Context] struct {
	m    *Manager[T]
	name string
}

func (s *Template[T]) HTML(code int, ctx T) {
	c := ctx.GetGinContext()
	if !s.m.has(s.name) {
		_ = c.AbortWithError(500, errors.Errorf("view %v not registered", s.name))
		return
	}
	c.HTML(code, s.name, ctx)
}
