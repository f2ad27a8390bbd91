package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/cinepeek/web-ui/models"
	"github.com/cinepeek/web-ui/services/tmdb"
)

// mockCatalog serves canned responses keyed by "<kind>/<id>" and records every call.
type mockCatalog struct {
	mu         sync.Mutex
	details    map[string]*tmdb.DetailsResponse
	videos     map[string]*tmdb.VideosResponse
	detailsErr map[string]error
	videosErr  map[string]error
	// block, when set, is waited on before answering the keyed call.
	block map[string]chan struct{}
	calls []string
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		details:    map[string]*tmdb.DetailsResponse{},
		videos:     map[string]*tmdb.VideosResponse{},
		detailsErr: map[string]error{},
		videosErr:  map[string]error{},
		block:      map[string]chan struct{}{},
	}
}

func key(kind models.ContentKind, id string) string {
	return fmt.Sprintf("%s/%s", kind.Path(), id)
}

func (m *mockCatalog) record(call string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
	return m.block[call]
}

func (m *mockCatalog) wait(ctx context.Context, ch chan struct{}) error {
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *mockCatalog) GetDetails(ctx context.Context, kind models.ContentKind, id string) (*tmdb.DetailsResponse, error) {
	k := key(kind, id)
	if err := m.wait(ctx, m.record("details:"+k)); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.details[k], m.detailsErr[k]
}

func (m *mockCatalog) GetVideos(ctx context.Context, kind models.ContentKind, id string) (*tmdb.VideosResponse, error) {
	k := key(kind, id)
	if err := m.wait(ctx, m.record("videos:"+k)); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.videos[k], m.videosErr[k]
}

func (m *mockCatalog) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := make([]string, len(m.calls))
	copy(c, m.calls)
	return c
}

func (m *mockCatalog) count(call string) int {
	n := 0
	for _, c := range m.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

func ptr[T any](v T) *T {
	return &v
}

func video(key, name, tpe string) tmdb.VideoResponse {
	return tmdb.VideoResponse{Key: ptr(key), Name: ptr(name), Type: ptr(tpe), Site: ptr("YouTube")}
}

// newFixtureCatalog knows Inception as a movie and Game of Thrones as a series.
func newFixtureCatalog() *mockCatalog {
	m := newMockCatalog()
	m.details["movie/27205"] = &tmdb.DetailsResponse{
		ID:          ptr(int64(27205)),
		Title:       ptr("Inception"),
		Overview:    ptr("Cobb steals secrets from dreams."),
		PosterPath:  ptr("/inception.jpg"),
		ReleaseDate: ptr("2010-07-15"),
		VoteAverage: ptr(8.4),
	}
	m.videos["movie/27205"] = &tmdb.VideosResponse{
		ID: ptr(int64(27205)),
		Results: []tmdb.VideoResponse{
			video("teaser1", "Teaser", "Teaser"),
			video("YoHD9XEInc0", "Official Trailer", "Trailer"),
			video("trailer2", "Trailer 2", "Trailer"),
		},
	}
	m.details["movie/1399"] = &tmdb.DetailsResponse{}
	m.details["tv/1399"] = &tmdb.DetailsResponse{
		ID:           ptr(int64(1399)),
		Name:         ptr("Game of Thrones"),
		Overview:     ptr("Seven noble families fight for control."),
		FirstAirDate: ptr("2011-04-17"),
		VoteAverage:  ptr(8.5),
	}
	m.videos["tv/1399"] = &tmdb.VideosResponse{
		ID:      ptr(int64(1399)),
		Results: []tmdb.VideoResponse{video("gotclip", "Behind the scenes", "Featurette")},
	}
	return m
}
