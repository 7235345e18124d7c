package service

import (
	"context"
	"testing"
	"time"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/youtube"
)

// fakeProvider scripts provider responses and records the calls made.
type fakeProvider struct {
	channel       *youtube.ChannelListResponse
	search        *youtube.SearchListResponse
	stats         *youtube.VideoListResponse
	comments      *youtube.CommentThreadListResponse
	channelErr    error
	searchErr     error
	statsErr      error
	commentsErr   error
	statsRequests [][]string
}

func (f *fakeProvider) ChannelInfo(_ context.Context, _ string) (*youtube.ChannelListResponse, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channel, nil
}

func (f *fakeProvider) ChannelVideos(_ context.Context, _ string, _ time.Time, _ int) (*youtube.SearchListResponse, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.search, nil
}

func (f *fakeProvider) VideosStatistics(_ context.Context, ids []string) (*youtube.VideoListResponse, error) {
	f.statsRequests = append(f.statsRequests, ids)
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeProvider) VideoComments(_ context.Context, _ string, _ int) (*youtube.CommentThreadListResponse, error) {
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return f.comments, nil
}

func mustPreset(t *testing.T, days int) Window {
	t.Helper()
	w, err := PresetWindow(days)
	if err != nil {
		t.Fatalf("PresetWindow(%d): %v", days, err)
	}
	return w
}

func TestReportHappyPath(t *testing.T) {
	fake := &fakeProvider{
		channel: &youtube.ChannelListResponse{Items: []youtube.ChannelItem{{
			ID:         "UC123",
			Snippet:    youtube.ChannelSnippet{Title: "Test Channel"},
			Statistics: youtube.ChannelStatistics{SubscriberCount: "1000", ViewCount: "50000", VideoCount: "42"},
		}}},
		search: searchResults("a", "b"),
		stats: &youtube.VideoListResponse{Items: []youtube.VideoItem{
			statsItem("a", "100", "10", "2", "PT1M", "2024-02-01T00:00:00Z"),
			statsItem("b", "50", "5", "1", "PT3M", "2024-01-01T00:00:00Z"),
		}},
	}
	svc := NewChannelService(fake, "UC123")

	report, err := svc.Report(context.Background(), mustPreset(t, 30))
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if report.Profile == nil || report.Profile.Title != "Test Channel" {
		t.Errorf("Profile = %+v, want Test Channel", report.Profile)
	}
	if report.Profile.Subscribers != 1000 {
		t.Errorf("Subscribers = %d, want 1000", report.Profile.Subscribers)
	}
	if report.Summary.VideoCount != 2 || report.Summary.TotalViews != 150 {
		t.Errorf("Summary = %+v, want 2 videos / 150 views", report.Summary)
	}
	if len(report.Videos) != 2 {
		t.Errorf("table rows = %d, want 2", len(report.Videos))
	}
	if report.Notice != "" {
		t.Errorf("Notice = %q, want empty", report.Notice)
	}
	if report.Window != "last 30 days" {
		t.Errorf("Window = %q, want %q", report.Window, "last 30 days")
	}

	// Statistics were requested exactly for the searched ids.
	if len(fake.statsRequests) != 1 || len(fake.statsRequests[0]) != 2 {
		t.Errorf("statsRequests = %v, want one call with both ids", fake.statsRequests)
	}
}

func TestReportEmptyWindowNotice(t *testing.T) {
	fake := &fakeProvider{
		channel: &youtube.ChannelListResponse{},
		search:  searchResults(),
		stats:   &youtube.VideoListResponse{},
	}
	svc := NewChannelService(fake, "UC123")

	report, err := svc.Report(context.Background(), mustPreset(t, 7))
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	want := "No videos found in the selected time period (last 7 days)"
	if report.Notice != want {
		t.Errorf("Notice = %q, want %q", report.Notice, want)
	}
	if report.Summary.VideoCount != 0 {
		t.Errorf("VideoCount = %d, want 0", report.Summary.VideoCount)
	}
}

func TestReportProviderFailureDegradesToEmpty(t *testing.T) {
	fake := &fakeProvider{
		channelErr: &youtube.APIError{StatusCode: 403, Reason: "quotaExceeded", Message: "quota"},
		searchErr:  &youtube.APIError{StatusCode: 500, Message: "backend error"},
	}
	svc := NewChannelService(fake, "UC123")

	report, err := svc.Report(context.Background(), mustPreset(t, 30))
	if err != nil {
		t.Fatalf("provider failures must not surface as request errors, got %v", err)
	}
	if report.Profile != nil {
		t.Error("Profile should be nil after a failed channel lookup")
	}
	if len(report.Videos) != 0 || report.Summary.VideoCount != 0 {
		t.Error("failed fetches should yield an empty report")
	}
	if report.Notice == "" {
		t.Error("empty report should carry the no-videos notice")
	}
}

func TestReportNonProviderErrorSurfaces(t *testing.T) {
	fake := &fakeProvider{
		channel:   &youtube.ChannelListResponse{},
		searchErr: context.Canceled,
	}
	svc := NewChannelService(fake, "UC123")

	if _, err := svc.Report(context.Background(), mustPreset(t, 30)); err == nil {
		t.Fatal("cancelled context should surface as an error")
	}
}

func TestVideosFilterAndSort(t *testing.T) {
	fake := &fakeProvider{
		search: searchResults("a", "b", "c"),
		stats: &youtube.VideoListResponse{Items: []youtube.VideoItem{
			statsItem("a", "100", "10", "2", "PT1M", "2024-03-01T00:00:00Z"),
			statsItem("b", "50", "5", "1", "PT2M", "2024-02-01T00:00:00Z"),
			statsItem("c", "10", "1", "0", "PT3M", "2024-01-01T00:00:00Z"),
		}},
	}
	svc := NewChannelService(fake, "UC123")

	report, err := svc.Videos(context.Background(), mustPreset(t, 90), 50, SortViewsAsc)
	if err != nil {
		t.Fatalf("Videos: %v", err)
	}
	if report.Count != 2 {
		t.Fatalf("Count = %d, want 2 after minViews=50", report.Count)
	}
	if report.Videos[0].ID != "b" || report.Videos[1].ID != "a" {
		t.Errorf("order = [%s, %s], want [b, a]", report.Videos[0].ID, report.Videos[1].ID)
	}
}

func TestTopVideos(t *testing.T) {
	fake := &fakeProvider{
		search: searchResults("a", "b", "c"),
		stats: &youtube.VideoListResponse{Items: []youtube.VideoItem{
			statsItem("a", "100", "10", "2", "PT1M", "2024-03-01T00:00:00Z"),
			statsItem("b", "50", "5", "1", "PT2M", "2024-02-01T00:00:00Z"),
			statsItem("c", "10", "1", "0", "PT3M", "2024-01-01T00:00:00Z"),
		}},
	}
	svc := NewChannelService(fake, "UC123")

	report, err := svc.TopVideos(context.Background(), mustPreset(t, 90), MetricDuration, 1)
	if err != nil {
		t.Fatalf("TopVideos: %v", err)
	}
	if report.Count != 1 || report.Videos[0].ID != "c" {
		t.Errorf("top by duration = %+v, want single record c", report.Videos)
	}
}

func TestCommentsMapping(t *testing.T) {
	fake := &fakeProvider{
		comments: &youtube.CommentThreadListResponse{Items: []youtube.CommentThreadItem{
			{Snippet: youtube.CommentThreadSnippet{
				VideoID: "vid1",
				TopLevelComment: youtube.Comment{Snippet: youtube.CommentSnippet{
					AuthorDisplayName: "viewer",
					TextDisplay:       "great video",
					LikeCount:         3,
				}},
				TotalReplyCount: 2,
			}},
		}},
	}
	svc := NewChannelService(fake, "UC123")

	report, err := svc.Comments(context.Background(), "vid1", 100)
	if err != nil {
		t.Fatalf("Comments: %v", err)
	}
	if report.Count != 1 {
		t.Fatalf("Count = %d, want 1", report.Count)
	}
	c := report.Comments[0]
	if c.Author != "viewer" || c.Text != "great video" || c.Likes != 3 || c.Replies != 2 {
		t.Errorf("unexpected comment mapping: %+v", c)
	}
}

func TestCommentsProviderFailureIsEmpty(t *testing.T) {
	fake := &fakeProvider{
		commentsErr: &youtube.APIError{StatusCode: 500, Message: "backend error"},
	}
	svc := NewChannelService(fake, "UC123")

	report, err := svc.Comments(context.Background(), "vid1", 100)
	if err != nil {
		t.Fatalf("Comments: %v", err)
	}
	if report.Count != 0 {
		t.Errorf("Count = %d, want 0", report.Count)
	}
}

func TestWindowValidation(t *testing.T) {
	if _, err := PresetWindow(14); err == nil {
		t.Error("PresetWindow(14) expected error, presets are 7/30/90/365")
	}

	start := time.Now().AddDate(0, -1, 0)
	end := time.Now()
	if _, err := RangeWindow(start, end); err != nil {
		t.Errorf("RangeWindow valid pair: %v", err)
	}
	if _, err := RangeWindow(end, start); err == nil {
		t.Error("RangeWindow with end before start expected error")
	}
	if _, err := RangeWindow(time.Now().AddDate(-3, 0, 0), end); err == nil {
		t.Error("RangeWindow older than two years expected error")
	}
}

func TestWindowPublishedAfter(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	w := mustPreset(t, 30)
	if got := w.PublishedAfter(now); !got.Equal(now.AddDate(0, 0, -30)) {
		t.Errorf("PublishedAfter = %v, want now-30d", got)
	}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rw := Window{Start: start, End: now}
	if got := rw.PublishedAfter(now); !got.Equal(start) {
		t.Errorf("PublishedAfter = %v, want the range start", got)
	}
}
