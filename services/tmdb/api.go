package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cinepeek/web-ui/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/text/language"
)

const (
	tmdbApiKeyFlag    = "tmdb-api-key"
	tmdbApiTokenFlag  = "tmdb-api-token"
	tmdbApiHostFlag   = "tmdb-api-host"
	tmdbApiPortFlag   = "tmdb-api-port"
	tmdbApiSecureFlag = "tmdb-api-secure"
	tmdbImageHostFlag = "tmdb-image-host"
	tmdbLanguageFlag  = "tmdb-language"
	tmdbTimeoutFlag   = "tmdb-timeout"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   tmdbApiHostFlag,
			Usage:  "tmdb api host",
			EnvVar: "TMDB_API_HOST",
			Value:  "api.themoviedb.org",
		},
		cli.IntFlag{
			Name:   tmdbApiPortFlag,
			Usage:  "tmdb api port",
			EnvVar: "TMDB_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   tmdbApiSecureFlag,
			Usage:  "tmdb api secure (https)",
			EnvVar: "TMDB_API_SECURE",
		},
		cli.StringFlag{
			Name:   tmdbApiKeyFlag,
			Usage:  "tmdb api key (v3, sent as api_key query param)",
			Value:  "",
			EnvVar: "TMDB_API_KEY,NEXT_PUBLIC_TMDB_API_KEY",
		},
		cli.StringFlag{
			Name:   tmdbApiTokenFlag,
			Usage:  "tmdb read access token (v4, sent as bearer token, takes precedence over api key)",
			Value:  "",
			EnvVar: "TMDB_API_TOKEN",
		},
		cli.StringFlag{
			Name:   tmdbImageHostFlag,
			Usage:  "tmdb image host",
			EnvVar: "TMDB_IMAGE_HOST",
			Value:  "image.tmdb.org",
		},
		cli.StringFlag{
			Name:   tmdbLanguageFlag,
			Usage:  "tmdb response language (BCP 47 tag, e.g. en-US)",
			EnvVar: "TMDB_LANGUAGE",
		},
		cli.DurationFlag{
			Name:   tmdbTimeoutFlag,
			Usage:  "tmdb request timeout",
			EnvVar: "TMDB_TIMEOUT",
			Value:  10 * time.Second,
		},
	)
}

// GetLanguage returns the configured response language, English when unset or invalid.
func GetLanguage(c *cli.Context) language.Tag {
	l := c.String(tmdbLanguageFlag)
	if l == "" {
		return language.English
	}
	tag, err := language.Parse(l)
	if err != nil {
		return language.English
	}
	return tag
}

// Config holds everything the client needs. Exactly one of Key or Token is used as credential.
type Config struct {
	BaseURL  string
	ImageURL string
	Key      string
	Token    string
	Language string
}

type Api struct {
	url            string
	imageURL       string
	cl             *http.Client
	prepareRequest func(r *http.Request) (*http.Request, error)
}

// MakeClient returns a copy of cl bounded by the tmdb timeout. A client with its own
// timeout is returned as is.
func MakeClient(c *cli.Context, cl *http.Client) *http.Client {
	timeout := c.Duration(tmdbTimeoutFlag)
	if timeout <= 0 || cl.Timeout != 0 {
		return cl
	}
	ncl := *cl
	ncl.Timeout = timeout
	return &ncl
}

func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(tmdbApiHostFlag)
	port := c.Int(tmdbApiPortFlag)
	secure := c.BoolT(tmdbApiSecureFlag)
	protocol := "http"
	if secure {
		protocol = "https"
	}
	return NewApi(MakeClient(c, cl), &Config{
		BaseURL:  fmt.Sprintf("%v://%v:%v", protocol, host, port),
		ImageURL: fmt.Sprintf("%v://%v", protocol, c.String(tmdbImageHostFlag)),
		Key:      c.String(tmdbApiKeyFlag),
		Token:    c.String(tmdbApiTokenFlag),
		Language: c.String(tmdbLanguageFlag),
	})
}

// NewApi returns nil when no credential is configured.
func NewApi(cl *http.Client, cfg *Config) *Api {
	if cfg.Key == "" && cfg.Token == "" {
		return nil
	}
	lang := ""
	if cfg.Language != "" {
		tag, err := language.Parse(cfg.Language)
		if err != nil {
			log.WithError(err).Warnf("ignoring tmdb language %v", cfg.Language)
		} else {
			lang = tag.String()
		}
	}
	key := cfg.Key
	token := cfg.Token
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		q := r.URL.Query()
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		} else {
			q.Set("api_key", key)
		}
		if lang != "" {
			q.Set("language", lang)
		}
		r.URL.RawQuery = q.Encode()
		r.Header.Set("Accept", "application/json")
		return r, nil
	}
	u := strings.TrimSuffix(cfg.BaseURL, "/")
	log.Infof("tmdb api endpoint %v", u)
	return &Api{
		url:            u,
		imageURL:       strings.TrimSuffix(cfg.ImageURL, "/"),
		cl:             cl,
		prepareRequest: prepareRequest,
	}
}

// ImageURL builds the image URL of a poster path for the given TMDB size (w92 ... original).
func (api *Api) ImageURL(size string, path string) string {
	return fmt.Sprintf("%s/t/p/%s/%s", api.imageURL, size, strings.TrimPrefix(path, "/"))
}

// GetDetails fetches /3/{movie|tv}/{id}. It returns nil, nil when the catalog has no such item.
func (api *Api) GetDetails(ctx context.Context, kind models.ContentKind, id string) (*DetailsResponse, error) {
	var res DetailsResponse
	found, err := api.get(ctx, endpointDetails, kind, fmt.Sprintf("%s/3/%s/%s", api.url, kind.Path(), url.PathEscape(id)), &res)
	if err != nil || !found {
		return nil, err
	}
	return &res, nil
}

// GetVideos fetches /3/{movie|tv}/{id}/videos. It returns nil, nil when the catalog has no such item.
func (api *Api) GetVideos(ctx context.Context, kind models.ContentKind, id string) (*VideosResponse, error) {
	var res VideosResponse
	found, err := api.get(ctx, endpointVideos, kind, fmt.Sprintf("%s/3/%s/%s/videos", api.url, kind.Path(), url.PathEscape(id)), &res)
	if err != nil || !found {
		return nil, err
	}
	return &res, nil
}

func (api *Api) get(ctx context.Context, endpoint string, kind models.ContentKind, reqURL string, v any) (found bool, err error) {
	start := time.Now()
	status := "error"
	defer func() {
		observe(endpoint, kind, status, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return false, errors.Wrap(err, "create request")
	}

	req, err = api.prepareRequest(req)
	if err != nil {
		return false, errors.Wrap(err, "prepare request")
	}

	log.WithField("url", reqURL).Debug("tmdb request")

	resp, err := api.cl.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	status = fmt.Sprintf("%d", resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, newStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return false, errors.Wrap(err, "decode response")
	}
	return true, nil
}
