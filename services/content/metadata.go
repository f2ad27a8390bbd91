package content

import (
	"github.com/cinepeek/web-ui/models"
	"github.com/cinepeek/web-ui/services/tmdb"
)

const UntitledTitle = "Untitled"

type tmdbMetadata struct {
	*tmdb.DetailsResponse
	kind models.ContentKind
}

func (s *tmdbMetadata) MakeContentDetails(id string) *models.ContentDetails {
	return &models.ContentDetails{
		ContentID:  id,
		Kind:       s.kind,
		Title:      s.GetTitle(),
		Overview:   str(s.Overview),
		PosterPath: str(s.PosterPath),
		Date:       s.GetDate(),
		Rating:     s.VoteAverage,
	}
}

func (s *tmdbMetadata) GetTitle() string {
	if t := str(s.Title); t != "" {
		return t
	}
	if n := str(s.Name); n != "" {
		return n
	}
	return UntitledTitle
}

func (s *tmdbMetadata) GetDate() string {
	if s.kind == models.ContentKindSeries {
		return str(s.FirstAirDate)
	}
	return str(s.ReleaseDate)
}

// makeVideos keeps every result in catalog order. A missing key stays empty.
func makeVideos(res *tmdb.VideosResponse) []models.PromotionalVideo {
	if res == nil {
		return nil
	}
	videos := make([]models.PromotionalVideo, 0, len(res.Results))
	for _, r := range res.Results {
		videos = append(videos, models.PromotionalVideo{
			Key:  str(r.Key),
			Name: str(r.Name),
			Type: str(r.Type),
			Site: str(r.Site),
		})
	}
	return videos
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
