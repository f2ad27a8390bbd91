package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/cinepeek/web-ui/handlers/details/helpers"
	"github.com/cinepeek/web-ui/services/tmdb"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const jsonFlag = "json"

func makeShowCMD() cli.Command {
	showCMD := cli.Command{
		Name:      "show",
		Usage:     "Prints details and the selected trailer of one item",
		ArgsUsage: "<id>",
		Action:    show,
	}
	configureShow(&showCMD)
	return showCMD
}

func configureShow(c *cli.Command) {
	c.Flags = append(c.Flags, cli.BoolFlag{
		Name:  jsonFlag,
		Usage: "print the snapshot as json",
	})
	c.Flags = configureContent(c.Flags)
}

func show(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("content id required")
	}
	cts, err := makeContentService(c, http.DefaultClient)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	snap, err := cts.Load(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "failed to load content %v", id)
	}
	if c.Bool(jsonFlag) {
		b, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal snapshot")
		}
		_, err = fmt.Fprintln(c.App.Writer, string(b))
		return err
	}
	r := newRenderer(helpers.NewFormatHelper(tmdb.GetLanguage(c)))
	_, err = fmt.Fprintln(c.App.Writer, r.Render(snap))
	return err
}
