package models

// ContentKind classifies a catalog identifier. It is determined by probing, never supplied.
type ContentKind string

const (
	ContentKindMovie  ContentKind = "movie"
	ContentKindSeries ContentKind = "series"
)

// ProbeOrder is the order in which kinds are tried for an untyped identifier.
var ProbeOrder = []ContentKind{ContentKindMovie, ContentKindSeries}

func (s ContentKind) String() string {
	return string(s)
}

// Path returns the catalog path segment for the kind.
func (s ContentKind) Path() string {
	if s == ContentKindSeries {
		return "tv"
	}
	return "movie"
}

func (s ContentKind) DateLabel() string {
	if s == ContentKindSeries {
		return "First Air Date"
	}
	return "Release Date"
}

func (s ContentKind) Noun() string {
	if s == ContentKindSeries {
		return "TV show"
	}
	return "movie"
}
