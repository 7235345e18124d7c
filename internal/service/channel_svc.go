package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/model"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/youtube"
)

// Provider is the slice of the YouTube client the report services consume.
type Provider interface {
	ChannelInfo(ctx context.Context, channelID string) (*youtube.ChannelListResponse, error)
	ChannelVideos(ctx context.Context, channelID string, publishedAfter time.Time, maxResults int) (*youtube.SearchListResponse, error)
	VideosStatistics(ctx context.Context, videoIDs []string) (*youtube.VideoListResponse, error)
	VideoComments(ctx context.Context, videoID string, maxResults int) (*youtube.CommentThreadListResponse, error)
}

// ChannelService runs the fetch→aggregate pass for the dashboard's single
// channel. Provider failures are logged and degraded to empty results; a
// request only errors when the provider call failed for a non-provider
// reason (e.g. cancelled context).
type ChannelService struct {
	client    Provider
	channelID string
	now       func() time.Time
}

func NewChannelService(client Provider, channelID string) *ChannelService {
	return &ChannelService{client: client, channelID: channelID, now: time.Now}
}

// Report builds the channel-level view for the window: profile header,
// rollup summary and the full video table.
func (s *ChannelService) Report(ctx context.Context, w Window) (*model.ChannelReport, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	search, stats, err := s.fetchWindow(ctx, w)
	if err != nil {
		return nil, err
	}

	summary := AggregateChannel(search, stats)
	table := BuildVideoTable(search, stats)

	report := &model.ChannelReport{
		Profile: profile,
		Summary: summary,
		Videos:  table,
		Window:  w.Label(),
	}
	if len(table) == 0 {
		report.Notice = w.EmptyNotice()
	}
	return report, nil
}

// Videos builds the video-level view: the window's table filtered by a
// minimum view count and re-ordered by the requested key.
func (s *ChannelService) Videos(ctx context.Context, w Window, minViews int64, key SortKey) (*model.VideoListReport, error) {
	table, err := s.table(ctx, w)
	if err != nil {
		return nil, err
	}

	filtered := SortTable(FilterMinViews(table, minViews), key)
	report := &model.VideoListReport{
		Count:  len(filtered),
		Videos: filtered,
		Window: w.Label(),
	}
	if len(table) == 0 {
		report.Notice = w.EmptyNotice()
	}
	return report, nil
}

// TopVideos ranks the window's table by a metric and keeps the first n.
func (s *ChannelService) TopVideos(ctx context.Context, w Window, m Metric, n int) (*model.VideoListReport, error) {
	table, err := s.table(ctx, w)
	if err != nil {
		return nil, err
	}

	top := TopN(table, m, n)
	report := &model.VideoListReport{
		Count:  len(top),
		Videos: top,
		Window: w.Label(),
	}
	if len(table) == 0 {
		report.Notice = w.EmptyNotice()
	}
	return report, nil
}

// MetricCorrelations computes the correlation matrix over the window's table.
func (s *ChannelService) MetricCorrelations(ctx context.Context, w Window) (*model.CorrelationReport, error) {
	table, err := s.table(ctx, w)
	if err != nil {
		return nil, err
	}

	report := Correlations(table)
	report.Window = w.Label()
	return &report, nil
}

// Comments lists a video's plain-text top-level comments. Disabled comments
// surface as an empty listing.
func (s *ChannelService) Comments(ctx context.Context, videoID string, maxResults int) (*model.CommentsReport, error) {
	resp, err := s.client.VideoComments(ctx, videoID, maxResults)
	if err != nil {
		if !isProviderError(err) {
			return nil, err
		}
		log.Printf("youtube: comments fetch failed for %s: %v", videoID, err)
		resp = &youtube.CommentThreadListResponse{}
	}

	comments := make([]model.CommentEntry, 0, len(resp.Items))
	for _, item := range resp.Items {
		top := item.Snippet.TopLevelComment.Snippet
		comments = append(comments, model.CommentEntry{
			Author:      top.AuthorDisplayName,
			Text:        top.TextDisplay,
			Likes:       top.LikeCount,
			PublishedAt: top.PublishedAt,
			Replies:     item.Snippet.TotalReplyCount,
		})
	}
	return &model.CommentsReport{VideoID: videoID, Count: len(comments), Comments: comments}, nil
}

// profile fetches the channel header, degrading to nil on provider failure.
func (s *ChannelService) profile(ctx context.Context) (*model.ChannelProfile, error) {
	resp, err := s.client.ChannelInfo(ctx, s.channelID)
	if err != nil {
		if !isProviderError(err) {
			return nil, err
		}
		log.Printf("youtube: channel info fetch failed: %v", err)
		return nil, nil
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	return &model.ChannelProfile{
		ChannelID:   item.ID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   item.Snippet.Thumbnails.Default.URL,
		Subscribers: parseCount(item.Statistics.SubscriberCount),
		TotalViews:  parseCount(item.Statistics.ViewCount),
		TotalVideos: parseCount(item.Statistics.VideoCount),
	}, nil
}

// fetchWindow runs the two bulk reads behind every report: the search
// window, then statistics for the ids it returned.
func (s *ChannelService) fetchWindow(ctx context.Context, w Window) (*youtube.SearchListResponse, *youtube.VideoListResponse, error) {
	search, err := s.client.ChannelVideos(ctx, s.channelID, w.PublishedAfter(s.now()), 50)
	if err != nil {
		if !isProviderError(err) {
			return nil, nil, err
		}
		log.Printf("youtube: video search failed: %v", err)
		return &youtube.SearchListResponse{}, &youtube.VideoListResponse{}, nil
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}

	stats, err := s.client.VideosStatistics(ctx, ids)
	if err != nil {
		if !isProviderError(err) {
			return nil, nil, err
		}
		log.Printf("youtube: video statistics fetch failed: %v", err)
		return search, &youtube.VideoListResponse{}, nil
	}
	return search, stats, nil
}

func (s *ChannelService) table(ctx context.Context, w Window) (model.VideoTable, error) {
	search, stats, err := s.fetchWindow(ctx, w)
	if err != nil {
		return nil, err
	}
	return BuildVideoTable(search, stats), nil
}

func isProviderError(err error) bool {
	var apiErr *youtube.APIError
	return errors.As(err, &apiErr)
}
