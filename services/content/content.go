package content

import (
	"context"

	"github.com/cinepeek/web-ui/models"
	"github.com/cinepeek/web-ui/services/tmdb"
)

// Catalog is the subset of the catalog api the content core depends on.
type Catalog interface {
	GetDetails(ctx context.Context, kind models.ContentKind, id string) (*tmdb.DetailsResponse, error)
	GetVideos(ctx context.Context, kind models.ContentKind, id string) (*tmdb.VideosResponse, error)
}

var _ Catalog = (*tmdb.Api)(nil)

type Service struct {
	resolver *Resolver
	fetcher  *Fetcher
}

func New(cat Catalog) *Service {
	return &Service{
		resolver: NewResolver(cat),
		fetcher:  NewFetcher(cat),
	}
}

func (s *Service) NewView(opts ...ViewOption) *View {
	return newView(s.resolver, s.fetcher, opts...)
}

// Load runs a single view to completion for id.
func (s *Service) Load(ctx context.Context, id string) (Snapshot, error) {
	v := s.NewView()
	defer v.Close()
	return v.Load(ctx, id)
}
