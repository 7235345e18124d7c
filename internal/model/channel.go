package model

// ChannelProfile is the channel header block: identity plus the provider's
// lifetime counters from channels.list.
type ChannelProfile struct {
	ChannelID   string `json:"channelId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Subscribers int64  `json:"subscribers"`
	TotalViews  int64  `json:"totalViews"`
	TotalVideos int64  `json:"totalVideos"`
}

// ChannelSummary is the rollup over the videos in the active query window.
// Computed fresh per request and never mutated afterwards.
type ChannelSummary struct {
	VideoCount         int     `json:"videoCount"`
	TotalViews         int64   `json:"totalViews"`
	TotalLikes         int64   `json:"totalLikes"`
	TotalComments      int64   `json:"totalComments"`
	AvgViews           float64 `json:"avgViews"`
	AvgLikes           float64 `json:"avgLikes"`
	AvgComments        float64 `json:"avgComments"`
	AvgDurationSeconds float64 `json:"avgDurationSeconds"`
	AvgDuration        string  `json:"avgDuration"`
	// EngagementRate is (avgLikes+avgComments)/avgViews*100, 0 when the
	// window has no views.
	EngagementRate float64 `json:"engagementRate"`
}

// ChannelReport is the response for the channel-level view: header, window
// rollup and the video table the charts are drawn from.
type ChannelReport struct {
	Profile *ChannelProfile `json:"profile,omitempty"`
	Summary ChannelSummary  `json:"summary"`
	Videos  VideoTable      `json:"videos"`
	Window  string          `json:"window"`
	// Notice carries the "no videos found …" message when the window is
	// empty. Empty otherwise.
	Notice string `json:"notice,omitempty"`
}
