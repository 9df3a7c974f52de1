package domain

// Movie represents the canonical movie entity served by the catalog.
type Movie struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Genre       string `json:"genre" yaml:"genre"`
	Description string `json:"description" yaml:"description"`
	VideoURL    string `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
}

// HasVideo reports whether the movie carries a trailer link.
func (m Movie) HasVideo() bool {
	return m.VideoURL != ""
}
