package tmdb

// DetailsResponse is the body of /3/movie/{id} and /3/tv/{id}.
// Every field is optional; nil means the catalog did not send it.
type DetailsResponse struct {
	ID           *int64   `json:"id"`
	Title        *string  `json:"title"`
	Name         *string  `json:"name"`
	Overview     *string  `json:"overview"`
	PosterPath   *string  `json:"poster_path"`
	ReleaseDate  *string  `json:"release_date"`
	FirstAirDate *string  `json:"first_air_date"`
	VoteAverage  *float64 `json:"vote_average"`
}

// HasID reports whether the response identifies a real record.
func (s *DetailsResponse) HasID() bool {
	return s != nil && s.ID != nil && *s.ID != 0
}

type VideosResponse struct {
	ID      *int64          `json:"id"`
	Results []VideoResponse `json:"results"`
}

type VideoResponse struct {
	Key  *string `json:"key"`
	Name *string `json:"name"`
	Type *string `json:"type"`
	Site *string `json:"site"`
}

type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
