package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/cinepeek/web-ui/handlers/details/helpers"
	"github.com/cinepeek/web-ui/services/content"
	"github.com/cinepeek/web-ui/services/tmdb"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli"
)

func makeBrowseCMD() cli.Command {
	browseCMD := cli.Command{
		Name:   "browse",
		Usage:  "Reads ids from stdin, one per line, and shows each as its state arrives",
		Action: browse,
	}
	configureBrowse(&browseCMD)
	return browseCMD
}

func configureBrowse(c *cli.Command) {
	c.Flags = configureContent(c.Flags)
}

func browse(c *cli.Context) error {
	cts, err := makeContentService(c, http.DefaultClient)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	r := newRenderer(helpers.NewFormatHelper(tmdb.GetLanguage(c)))
	return runBrowse(ctx, cts, os.Stdin, c.App.Writer, r)
}

// runBrowse loads every id read from in into one view. A new id supersedes the one still loading.
func runBrowse(ctx context.Context, cts *content.Service, in io.Reader, out io.Writer, r *renderer) error {
	v := cts.NewView(content.WithOnChange(func(s content.Snapshot) {
		_, _ = fmt.Fprintln(out, r.Render(s))
	}))
	defer v.Close()

	var wg conc.WaitGroup
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id == "" {
			continue
		}
		wait := v.Start(ctx, id)
		wg.Go(func() {
			_, err := wait()
			if err != nil && !errors.Is(err, content.ErrSuperseded) && !errors.Is(err, context.Canceled) {
				log.WithError(err).WithField("content_id", id).Warn("failed to load content")
			}
		})
	}
	wg.Wait()
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "failed to read ids")
	}
	return nil
}
