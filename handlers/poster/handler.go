package poster

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"image/jpeg"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	PosterJPEGQuality = 85
	MaxWidth          = 780
)

// Sizes offered by the TMDB image service, narrowest first.
var Sizes = []int{92, 154, 185, 342, 500, 780}

var pathRe = regexp.MustCompile(`^/[A-Za-z0-9_-]+\.(jpg|png)$`)

type ImageSource interface {
	ImageURL(size string, path string) string
}

type PosterArgs struct {
	width int
	path  string
}

type Handler struct {
	cl  *http.Client
	src ImageSource
}

func RegisterHandler(r *gin.Engine, cl *http.Client, src ImageSource) {
	h := &Handler{
		cl:  cl,
		src: src,
	}
	r.GET("/poster/:width/*path", h.poster)
}

// SizeFor returns the narrowest TMDB size that is at least width pixels wide.
func SizeFor(width int) string {
	for _, s := range Sizes {
		if s >= width {
			return "w" + strconv.Itoa(s)
		}
	}
	return "original"
}

func (s *Handler) bindPosterArgs(c *gin.Context) (*PosterArgs, error) {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil {
		return nil, errors.Errorf("wrong width %v", c.Param("width"))
	}
	if width < 1 || width > MaxWidth {
		return nil, errors.Errorf("width %v out of range", width)
	}
	path := c.Param("path")
	if !pathRe.MatchString(path) {
		return nil, errors.Errorf("wrong poster path %v", path)
	}
	return &PosterArgs{
		width: width,
		path:  path,
	}, nil
}

func (s *Handler) poster(c *gin.Context) {
	pa, err := s.bindPosterArgs(c)
	if err != nil {
		log.WithError(err).Warn("failed to bind poster args")
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	b, err := s.getResizedJPEGPoster(c.Request.Context(), pa)
	if err != nil {
		log.WithError(err).WithField("path", pa.path).Error("failed to get resized image")
		_ = c.AbortWithError(http.StatusBadGateway, err)
		return
	}

	etag := s.generateETag(b.Bytes())

	if match := c.Request.Header.Get("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Length", strconv.Itoa(b.Len()))
	c.Header("ETag", etag)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)

	_, _ = io.Copy(c.Writer, b)
}

func (s *Handler) generateETag(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf(`"%x"`, sum[:])
}

func (s *Handler) getResizedJPEGPoster(ctx context.Context, args *PosterArgs) (*bytes.Buffer, error) {
	u := s.src.ImageURL(SizeFor(args.width), args.path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to make poster request")
	}
	log.Debugf("fetching poster %v", u)
	resp, err := s.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch poster")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected poster status code %v", resp.StatusCode)
	}

	srcImg, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode poster")
	}

	resized := imaging.Resize(srcImg, args.width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: PosterJPEGQuality})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode poster")
	}
	return &buf, nil
}
