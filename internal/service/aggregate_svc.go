package service

import (
	"sort"
	"strconv"
	"time"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/model"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/youtube"
	"github.com/Achyut17/Mrbeast-Dashboard/pkg/isoduration"
)

// publishedAtLayout is the literal timestamp format the provider emits.
const publishedAtLayout = "2006-01-02T15:04:05Z"

// AggregateChannel rolls two provider envelopes up into the window summary.
// The video count comes from the search window; totals and averages come
// from the statistics records, with absent counters treated as zero. An
// empty window on either side yields the all-zero summary.
func AggregateChannel(search *youtube.SearchListResponse, stats *youtube.VideoListResponse) model.ChannelSummary {
	var summary model.ChannelSummary
	summary.AvgDuration = isoduration.Humanize(0)
	if search == nil || stats == nil {
		return summary
	}

	videoCount := len(search.Items)
	if videoCount == 0 || len(stats.Items) == 0 {
		return summary
	}

	var totalDuration float64
	for _, item := range stats.Items {
		summary.TotalViews += parseCount(item.Statistics.ViewCount)
		summary.TotalLikes += parseCount(item.Statistics.LikeCount)
		summary.TotalComments += parseCount(item.Statistics.CommentCount)
		totalDuration += parseDuration(item.ContentDetails.Duration)
	}

	n := float64(videoCount)
	summary.VideoCount = videoCount
	summary.AvgViews = float64(summary.TotalViews) / n
	summary.AvgLikes = float64(summary.TotalLikes) / n
	summary.AvgComments = float64(summary.TotalComments) / n
	summary.AvgDurationSeconds = totalDuration / n
	summary.AvgDuration = isoduration.Humanize(summary.AvgDurationSeconds)
	if summary.AvgViews > 0 {
		summary.EngagementRate = (summary.AvgLikes + summary.AvgComments) / summary.AvgViews * 100
	}
	return summary
}

// BuildVideoTable joins the search window with the per-video statistics into
// the report table, newest first. The statistics source is authoritative for
// every display field; the search lookup only backfills a title or thumbnail
// the statistics snippet lacks. A statistics item whose id is missing from
// the search lookup is still included. Empty input on either side yields an
// empty table.
func BuildVideoTable(search *youtube.SearchListResponse, stats *youtube.VideoListResponse) model.VideoTable {
	if search == nil || stats == nil || len(search.Items) == 0 || len(stats.Items) == 0 {
		return model.VideoTable{}
	}

	searchByID := make(map[string]youtube.SearchItem, len(search.Items))
	for _, item := range search.Items {
		if id := item.ID.VideoID; id != "" {
			searchByID[id] = item
		}
	}

	table := make(model.VideoTable, 0, len(stats.Items))
	for _, item := range stats.Items {
		durationSeconds := parseDuration(item.ContentDetails.Duration)

		rec := model.VideoRecord{
			ID:              item.ID,
			Title:           item.Snippet.Title,
			Description:     item.Snippet.Description,
			Views:           parseCount(item.Statistics.ViewCount),
			Likes:           parseCount(item.Statistics.LikeCount),
			Comments:        parseCount(item.Statistics.CommentCount),
			DurationSeconds: durationSeconds,
			Duration:        isoduration.Compact(durationSeconds),
			Thumbnail:       item.Snippet.Thumbnails.Medium.URL,
		}

		if fallback, ok := searchByID[item.ID]; ok {
			if rec.Title == "" {
				rec.Title = fallback.Snippet.Title
			}
			if rec.Thumbnail == "" {
				rec.Thumbnail = fallback.Snippet.Thumbnails.Medium.URL
			}
		}

		if ts, err := time.Parse(publishedAtLayout, item.Snippet.PublishedAt); err == nil {
			rec.PublishedAt = ts
			rec.PublishedDate = ts.Format("Jan 02, 2006")
		} else {
			rec.PublishedDate = "Unknown"
		}

		if rec.Views > 0 {
			rec.LikesPerView = float64(rec.Likes) / float64(rec.Views) * 100
			rec.CommentsPerView = float64(rec.Comments) / float64(rec.Views) * 100
		}

		table = append(table, rec)
	}

	// Newest first; records with an unparsable timestamp (zero time) end up last.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].PublishedAt.After(table[j].PublishedAt)
	})
	return table
}

// parseCount converts a provider decimal-string counter. Absent or
// malformed values count as zero.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseDuration converts the ISO-8601 duration, defaulting to zero when the
// field is absent or malformed.
func parseDuration(s string) float64 {
	if s == "" {
		return 0
	}
	secs, err := isoduration.Parse(s)
	if err != nil {
		return 0
	}
	return secs
}
