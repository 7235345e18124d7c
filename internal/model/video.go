package model

import "time"

// VideoRecord is one video in the active query window. Source fields come
// straight from the provider's videos.list item; display fields and the
// per-view percentages are derived at build time. Records are immutable once
// the table is built.
type VideoRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// PublishedAt is the machine-sortable timestamp; zero when the provider
	// value was absent or unparsable.
	PublishedAt time.Time `json:"publishedAt"`
	// PublishedDate is the "Jan 02, 2006" display form, or "Unknown".
	PublishedDate   string  `json:"publishedDate"`
	Views           int64   `json:"views"`
	Likes           int64   `json:"likes"`
	Comments        int64   `json:"comments"`
	DurationSeconds float64 `json:"durationSeconds"`
	// Duration is the compact display form: "1:02:03" or "4:13".
	Duration  string `json:"duration"`
	Thumbnail string `json:"thumbnail"`
	// LikesPerView and CommentsPerView are percentages, 0 when Views is 0.
	LikesPerView    float64 `json:"likesPerView"`
	CommentsPerView float64 `json:"commentsPerView"`
}

// EngagementRatio is likes over views, 0 when the video has no views.
func (v VideoRecord) EngagementRatio() float64 {
	if v.Views == 0 {
		return 0
	}
	return float64(v.Likes) / float64(v.Views)
}

// VideoTable is the ordered per-window collection of records, sorted by
// publish date descending when built. Query helpers return re-ordered or
// filtered copies; the underlying records are never mutated.
type VideoTable []VideoRecord

// VideoListReport is the response for the video-level view.
type VideoListReport struct {
	Count  int        `json:"count"`
	Videos VideoTable `json:"videos"`
	Window string     `json:"window"`
	Notice string     `json:"notice,omitempty"`
}

// CommentEntry is one plain-text top-level comment.
type CommentEntry struct {
	Author      string `json:"author"`
	Text        string `json:"text"`
	Likes       int    `json:"likes"`
	PublishedAt string `json:"publishedAt"`
	Replies     int    `json:"replies"`
}

// CommentsReport is the response for a video's comment listing. Disabled
// comments yield an empty list, not an error.
type CommentsReport struct {
	VideoID  string         `json:"videoId"`
	Count    int            `json:"count"`
	Comments []CommentEntry `json:"comments"`
}

// CorrelationReport is the pairwise Pearson correlation matrix across the
// table's numeric metrics. Matrix[i][j] correlates Metrics[i] with
// Metrics[j].
type CorrelationReport struct {
	Metrics []string    `json:"metrics"`
	Matrix  [][]float64 `json:"matrix"`
	Window  string      `json:"window"`
}
