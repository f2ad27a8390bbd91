package tmdb

import (
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinepeek/web-ui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"golang.org/x/text/language"
)

func newTestApi(t *testing.T, h http.HandlerFunc, cfg *Config) *Api {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	cfg.BaseURL = server.URL
	cfg.ImageURL = server.URL
	api := NewApi(server.Client(), cfg)
	require.NotNil(t, api)
	return api
}

func TestNewApi_NoCredential(t *testing.T) {
	assert.Nil(t, NewApi(&http.Client{}, &Config{BaseURL: "http://localhost"}))
}

func TestApi_GetDetails_Movie(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/27205", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":27205,"title":"Inception","overview":"Dreams.","poster_path":"/inception.jpg","release_date":"2010-07-15","vote_average":8.4}`))
	}, &Config{Key: "secret"})

	res, err := api.GetDetails(context.Background(), models.ContentKindMovie, "27205")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.HasID())
	assert.Equal(t, int64(27205), *res.ID)
	assert.Equal(t, "Inception", *res.Title)
	assert.Nil(t, res.Name)
	assert.Nil(t, res.FirstAirDate)
	assert.Equal(t, 8.4, *res.VoteAverage)
}

func TestApi_GetDetails_SeriesWithTokenAndLanguage(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/1399", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.Query().Get("api_key"))
		assert.Equal(t, "de-DE", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"id":1399,"name":"Game of Thrones","first_air_date":"2011-04-17"}`))
	}, &Config{Token: "tok", Key: "ignored", Language: "de-DE"})

	res, err := api.GetDetails(context.Background(), models.ContentKindSeries, "1399")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Game of Thrones", *res.Name)
	assert.Nil(t, res.Title)
}

func TestApi_GetDetails_InvalidLanguageIgnored(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.URL.Query()["language"]
		assert.False(t, ok)
		_, _ = w.Write([]byte(`{"id":1}`))
	}, &Config{Key: "k", Language: "not a language!"})

	_, err := api.GetDetails(context.Background(), models.ContentKindMovie, "1")
	require.NoError(t, err)
}

func TestApi_GetDetails_EscapesIdentifier(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	}, &Config{Key: "k"})

	res, err := api.GetDetails(context.Background(), models.ContentKindMovie, "a/b")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestApi_GetDetails_NotFound(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}, &Config{Key: "k"})

	res, err := api.GetDetails(context.Background(), models.ContentKindMovie, "0")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestApi_GetDetails_StatusError(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`))
	}, &Config{Key: "bad"})

	res, err := api.GetDetails(context.Background(), models.ContentKindMovie, "27205")
	require.Error(t, err)
	assert.Nil(t, res)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Contains(t, se.Error(), "Invalid API key")
}

func TestApi_GetDetails_InvalidJSON(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}, &Config{Key: "k"})

	_, err := api.GetDetails(context.Background(), models.ContentKindMovie, "27205")
	assert.Error(t, err)
}

func TestApi_GetDetails_NoID(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}, &Config{Key: "k"})

	res, err := api.GetDetails(context.Background(), models.ContentKindMovie, "0")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.HasID())
}

func TestApi_GetVideos(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/27205/videos", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":27205,"results":[{"key":"abc","name":"Teaser","type":"Teaser","site":"YouTube"},{"key":"YoHD9XEInc0","name":"Official Trailer","type":"Trailer","site":"YouTube"}]}`))
	}, &Config{Key: "k"})

	res, err := api.GetVideos(context.Background(), models.ContentKindMovie, "27205")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "Trailer", *res.Results[1].Type)
	assert.Equal(t, "YoHD9XEInc0", *res.Results[1].Key)
}

func TestApi_ImageURL(t *testing.T) {
	api := NewApi(&http.Client{}, &Config{Key: "k", BaseURL: "https://api.themoviedb.org:443", ImageURL: "https://image.tmdb.org/"})
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", api.ImageURL("w500", "/abc.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/abc.jpg", api.ImageURL("original", "abc.jpg"))
}

func TestGetLanguage(t *testing.T) {
	for _, tc := range []struct {
		value string
		want  language.Tag
	}{
		{"de-DE", language.MustParse("de-DE")},
		{"", language.English},
		{"not a tag", language.English},
	} {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String(tmdbLanguageFlag, tc.value, "")
		assert.Equal(t, tc.want, GetLanguage(cli.NewContext(nil, set, nil)), tc.value)
	}
}

func TestMakeClient(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Duration(tmdbTimeoutFlag, 3*time.Second, "")
	c := cli.NewContext(nil, set, nil)

	cl := MakeClient(c, http.DefaultClient)
	assert.Equal(t, 3*time.Second, cl.Timeout)
	assert.NotSame(t, http.DefaultClient, cl)
	assert.Zero(t, http.DefaultClient.Timeout)

	own := &http.Client{Timeout: time.Second}
	assert.Same(t, own, MakeClient(c, own))

	set = flag.NewFlagSet("test", flag.ContinueOnError)
	set.Duration(tmdbTimeoutFlag, 0, "")
	assert.Same(t, http.DefaultClient, MakeClient(cli.NewContext(nil, set, nil), http.DefaultClient))
}
