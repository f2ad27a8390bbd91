package main

import (
	"net/http"

	"github.com/cinepeek/web-ui/services/content"
	"github.com/cinepeek/web-ui/services/tmdb"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func configureContent(f []cli.Flag) []cli.Flag {
	return tmdb.RegisterFlags(f)
}

func makeTMDB(c *cli.Context, cl *http.Client) (*tmdb.Api, error) {
	api := tmdb.New(c, cl)
	if api == nil {
		return nil, errors.New("no tmdb credential, set TMDB_API_KEY or TMDB_API_TOKEN")
	}
	return api, nil
}

func makeContentService(c *cli.Context, cl *http.Client) (*content.Service, error) {
	api, err := makeTMDB(c, cl)
	if err != nil {
		return nil, err
	}
	return content.New(api), nil
}
