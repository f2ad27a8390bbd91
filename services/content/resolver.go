package content

import (
	"context"

	"github.com/cinepeek/web-ui/models"
	log "github.com/sirupsen/logrus"
)

// Resolution is the outcome of kind detection: either found with a kind, or not found.
type Resolution struct {
	kind  models.ContentKind
	found bool
}

func Found(kind models.ContentKind) Resolution {
	return Resolution{kind: kind, found: true}
}

func NotFound() Resolution {
	return Resolution{}
}

func (s Resolution) Kind() (models.ContentKind, bool) {
	return s.kind, s.found
}

func (s Resolution) IsFound() bool {
	return s.found
}

func (s Resolution) String() string {
	if !s.found {
		return "not found"
	}
	return s.kind.String()
}

type Resolver struct {
	cat Catalog
}

func NewResolver(cat Catalog) *Resolver {
	return &Resolver{
		cat: cat,
	}
}

// Resolve probes kinds in models.ProbeOrder and stops at the first one that knows id.
// A failed probe counts as a negative answer for its kind.
func (s *Resolver) Resolve(ctx context.Context, id string) Resolution {
	for _, kind := range models.ProbeOrder {
		if s.probe(ctx, kind, id) {
			log.WithField("content_id", id).Debugf("resolved as %v", kind)
			return Found(kind)
		}
	}
	log.WithField("content_id", id).Info("no content found")
	return NotFound()
}

func (s *Resolver) probe(ctx context.Context, kind models.ContentKind, id string) bool {
	res, err := s.cat.GetDetails(ctx, kind, id)
	if err != nil {
		log.WithError(err).
			WithField("content_id", id).
			WithField("kind", kind).
			Warn("failed to probe content kind")
		return false
	}
	return res.HasID()
}
