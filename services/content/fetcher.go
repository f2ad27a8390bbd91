package content

import (
	"context"

	"github.com/cinepeek/web-ui/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrNoDetails = errors.New("no details returned")

type Fetcher struct {
	cat Catalog
}

func NewFetcher(cat Catalog) *Fetcher {
	return &Fetcher{
		cat: cat,
	}
}

func (s *Fetcher) FetchDetails(ctx context.Context, kind models.ContentKind, id string) (*models.ContentDetails, error) {
	res, err := s.cat.GetDetails(ctx, kind, id)
	if err == nil && res == nil {
		err = ErrNoDetails
	}
	if err != nil {
		log.WithError(err).
			WithField("content_id", id).
			WithField("kind", kind).
			Warn("failed to fetch content details")
		return nil, errors.Wrap(err, "failed to fetch details")
	}
	md := &tmdbMetadata{DetailsResponse: res, kind: kind}
	return md.MakeContentDetails(id), nil
}

// FetchVideos returns the videos in catalog order. A missing list is an empty list.
func (s *Fetcher) FetchVideos(ctx context.Context, kind models.ContentKind, id string) ([]models.PromotionalVideo, error) {
	res, err := s.cat.GetVideos(ctx, kind, id)
	if err != nil {
		log.WithError(err).
			WithField("content_id", id).
			WithField("kind", kind).
			Warn("failed to fetch content videos")
		return nil, errors.Wrap(err, "failed to fetch videos")
	}
	return makeVideos(res), nil
}
