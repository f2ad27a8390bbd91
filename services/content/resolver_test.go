package content

import (
	"context"
	"errors"
	"testing"

	"github.com/cinepeek/web-ui/models"
	"github.com/cinepeek/web-ui/services/tmdb"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Movie_NoSeriesProbe(t *testing.T) {
	cat := newFixtureCatalog()
	r := NewResolver(cat)

	res := r.Resolve(context.Background(), "27205")

	kind, found := res.Kind()
	assert.True(t, found)
	assert.Equal(t, models.ContentKindMovie, kind)
	assert.Equal(t, []string{"details:movie/27205"}, cat.Calls())
	assert.Equal(t, 0, cat.count("details:tv/27205"))
}

func TestResolver_Series(t *testing.T) {
	cat := newFixtureCatalog()
	r := NewResolver(cat)

	res := r.Resolve(context.Background(), "1399")

	kind, found := res.Kind()
	assert.True(t, found)
	assert.Equal(t, models.ContentKindSeries, kind)
	assert.Equal(t, []string{"details:movie/1399", "details:tv/1399"}, cat.Calls())
}

func TestResolver_NotFound(t *testing.T) {
	cat := newFixtureCatalog()
	cat.details["movie/0"] = &tmdb.DetailsResponse{}
	cat.details["tv/0"] = &tmdb.DetailsResponse{ID: ptr(int64(0))}
	r := NewResolver(cat)

	res := r.Resolve(context.Background(), "0")

	assert.False(t, res.IsFound())
	assert.Equal(t, NotFound(), res)
	assert.Equal(t, "not found", res.String())
	assert.Equal(t, []string{"details:movie/0", "details:tv/0"}, cat.Calls())
}

func TestResolver_MovieProbeErrorFallsBackToSeries(t *testing.T) {
	cat := newFixtureCatalog()
	cat.detailsErr["movie/1399"] = errors.New("connection reset")
	r := NewResolver(cat)

	res := r.Resolve(context.Background(), "1399")

	kind, found := res.Kind()
	assert.True(t, found)
	assert.Equal(t, models.ContentKindSeries, kind)
}

func TestResolver_BothProbesFail(t *testing.T) {
	cat := newMockCatalog()
	cat.detailsErr["movie/x"] = errors.New("boom")
	cat.detailsErr["tv/x"] = &tmdb.StatusError{Code: 500}
	r := NewResolver(cat)

	res := r.Resolve(context.Background(), "x")

	assert.False(t, res.IsFound())
	assert.Len(t, cat.Calls(), 2)
}

func TestResolver_NilResponseIsNegative(t *testing.T) {
	cat := newMockCatalog()
	r := NewResolver(cat)

	assert.False(t, r.Resolve(context.Background(), "missing").IsFound())
}
