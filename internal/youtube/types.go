package youtube

// Response envelopes mirroring the YouTube Data API v3 JSON wire shapes.
// Numeric counters arrive as decimal strings and are converted downstream.

// Thumbnail is a single thumbnail rendition.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnails holds the renditions the API returns per resource.
type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

// ChannelSnippet is the descriptive part of a channel resource.
type ChannelSnippet struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CustomURL   string     `json:"customUrl"`
	PublishedAt string     `json:"publishedAt"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

// ChannelStatistics carries channel-level counters (decimal strings).
type ChannelStatistics struct {
	ViewCount             string `json:"viewCount"`
	SubscriberCount       string `json:"subscriberCount"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
	VideoCount            string `json:"videoCount"`
}

// ChannelItem is one channel resource from channels.list.
type ChannelItem struct {
	ID         string            `json:"id"`
	Snippet    ChannelSnippet    `json:"snippet"`
	Statistics ChannelStatistics `json:"statistics"`
}

// ChannelListResponse is the channels.list envelope.
type ChannelListResponse struct {
	Items []ChannelItem `json:"items"`
}

// SearchID identifies the resource a search result points at.
type SearchID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

// SearchSnippet is the metadata stub search.list returns per hit.
type SearchSnippet struct {
	PublishedAt  string     `json:"publishedAt"`
	ChannelID    string     `json:"channelId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ChannelTitle string     `json:"channelTitle"`
}

// SearchItem is one search.list hit.
type SearchItem struct {
	ID      SearchID      `json:"id"`
	Snippet SearchSnippet `json:"snippet"`
}

// SearchListResponse is the search.list envelope.
type SearchListResponse struct {
	Items         []SearchItem `json:"items"`
	NextPageToken string       `json:"nextPageToken"`
}

// VideoSnippet is the descriptive part of a video resource.
type VideoSnippet struct {
	PublishedAt string     `json:"publishedAt"`
	ChannelID   string     `json:"channelId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnails  Thumbnails `json:"thumbnails"`
	Tags        []string   `json:"tags"`
	CategoryID  string     `json:"categoryId"`
}

// VideoStatistics carries per-video counters (decimal strings). Fields the
// provider withholds (e.g. hidden like counts) arrive empty.
type VideoStatistics struct {
	ViewCount     string `json:"viewCount"`
	LikeCount     string `json:"likeCount"`
	CommentCount  string `json:"commentCount"`
	FavoriteCount string `json:"favoriteCount"`
}

// VideoContentDetails holds the ISO-8601 duration among other format info.
type VideoContentDetails struct {
	Duration   string `json:"duration"`
	Definition string `json:"definition"`
	Caption    string `json:"caption"`
}

// VideoItem is one video resource from videos.list.
type VideoItem struct {
	ID             string              `json:"id"`
	Snippet        VideoSnippet        `json:"snippet"`
	Statistics     VideoStatistics     `json:"statistics"`
	ContentDetails VideoContentDetails `json:"contentDetails"`
}

// VideoListResponse is the videos.list envelope.
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

// CommentSnippet is a single top-level comment body.
type CommentSnippet struct {
	AuthorDisplayName string `json:"authorDisplayName"`
	TextDisplay       string `json:"textDisplay"`
	LikeCount         int    `json:"likeCount"`
	PublishedAt       string `json:"publishedAt"`
}

// Comment wraps a comment resource.
type Comment struct {
	ID      string         `json:"id"`
	Snippet CommentSnippet `json:"snippet"`
}

// CommentThreadSnippet is one thread: its top-level comment plus reply count.
type CommentThreadSnippet struct {
	VideoID         string  `json:"videoId"`
	TopLevelComment Comment `json:"topLevelComment"`
	TotalReplyCount int     `json:"totalReplyCount"`
}

// CommentThreadItem is one commentThreads.list hit.
type CommentThreadItem struct {
	ID      string               `json:"id"`
	Snippet CommentThreadSnippet `json:"snippet"`
}

// CommentThreadListResponse is the commentThreads.list envelope.
type CommentThreadListResponse struct {
	Items []CommentThreadItem `json:"items"`
}

// apiErrorBody is the provider's error envelope.
type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
