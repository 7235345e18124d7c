package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/cache"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// maxIDsPerRequest is the provider's hard limit on ids per videos.list call.
const maxIDsPerRequest = 50

// APIError is a failed provider call: a transport error or a non-2xx
// response, with the provider's reason when one was decodable.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube: %d %s: %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube: %d: %s", e.StatusCode, e.Message)
}

// Client issues read-only requests against the YouTube Data API v3.
// Successful responses are cached in the injected store, keyed by the full
// request URL (which includes the API key), for the store's TTL window.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	store       cache.Store
	limiter     *rate.Limiter
	requestHook func(resource string, statusCode int)
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimiter throttles outbound requests (cache hits are not counted).
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithRequestHook observes every outbound request's resource and HTTP
// status. Transport failures report status 0. Used for metrics.
func WithRequestHook(hook func(resource string, statusCode int)) Option {
	return func(c *Client) { c.requestHook = hook }
}

// NewClient creates a client authenticated by apiKey, caching responses in
// store. A nil store disables caching.
func NewClient(apiKey string, store cache.Store, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChannelInfo fetches snippet and statistics for one channel.
func (c *Client) ChannelInfo(ctx context.Context, channelID string) (*ChannelListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", channelID)

	var resp ChannelListResponse
	if err := c.getCached(ctx, "channels", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChannelVideos fetches the channel's video stubs, newest first. A zero
// publishedAfter omits the lower bound and the provider returns its default
// most-recent window.
func (c *Client) ChannelVideos(ctx context.Context, channelID string, publishedAfter time.Time, maxResults int) (*SearchListResponse, error) {
	if maxResults <= 0 {
		maxResults = 50
	}
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("channelId", channelID)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("order", "date")
	params.Set("type", "video")
	if !publishedAfter.IsZero() {
		params.Set("publishedAfter", publishedAfter.UTC().Format("2006-01-02T15:04:05Z"))
	}

	var resp SearchListResponse
	if err := c.getCached(ctx, "search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VideosStatistics fetches snippet, statistics and contentDetails for every
// id, transparently splitting the list into provider-sized batches and
// merging the results. An empty id list is a no-op success.
func (c *Client) VideosStatistics(ctx context.Context, videoIDs []string) (*VideoListResponse, error) {
	merged := &VideoListResponse{Items: []VideoItem{}}
	if len(videoIDs) == 0 {
		return merged, nil
	}

	for start := 0; start < len(videoIDs); start += maxIDsPerRequest {
		end := start + maxIDsPerRequest
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		chunk := videoIDs[start:end]

		params := url.Values{}
		params.Set("part", "snippet,statistics,contentDetails")
		params.Set("id", strings.Join(chunk, ","))

		var resp VideoListResponse
		if err := c.getCached(ctx, "videos", params, &resp); err != nil {
			return nil, err
		}
		merged.Items = append(merged.Items, resp.Items...)
	}
	return merged, nil
}

// VideoComments fetches plain-text top-level comment threads for a video.
// A 403 from the provider means comments are disabled for that video and is
// returned as an empty result, not an error. Comment listings are volatile
// and are not cached.
func (c *Client) VideoComments(ctx context.Context, videoID string, maxResults int) (*CommentThreadListResponse, error) {
	if maxResults <= 0 {
		maxResults = 100
	}
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("textFormat", "plainText")

	var resp CommentThreadListResponse
	err := c.get(ctx, "commentThreads", params, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
			return &CommentThreadListResponse{Items: []CommentThreadItem{}}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// getCached serves out from the store when the fingerprint is live,
// otherwise fetches and populates the store with the raw body.
func (c *Client) getCached(ctx context.Context, resource string, params url.Values, out interface{}) error {
	key := c.requestURL(resource, params)

	if c.store != nil {
		if body, ok := c.store.Get(ctx, key); ok {
			return json.Unmarshal(body, out)
		}
	}

	body, err := c.fetch(ctx, resource, key)
	if err != nil {
		return err
	}
	if c.store != nil {
		c.store.Set(ctx, key, body)
	}
	return json.Unmarshal(body, out)
}

func (c *Client) get(ctx context.Context, resource string, params url.Values, out interface{}) error {
	body, err := c.fetch(ctx, resource, c.requestURL(resource, params))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) fetch(ctx context.Context, resource, reqURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.requestHook != nil {
			c.requestHook(resource, 0)
		}
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if c.requestHook != nil {
		c.requestHook(resource, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb apiErrorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error.Message != "" {
			apiErr.Message = eb.Error.Message
			if len(eb.Error.Errors) > 0 {
				apiErr.Reason = eb.Error.Errors[0].Reason
			}
		}
		return nil, apiErr
	}
	return body, nil
}

// requestURL builds the full request URL; params are encoded in sorted key
// order so the URL doubles as a stable cache fingerprint.
func (c *Client) requestURL(resource string, params url.Values) string {
	params.Set("key", c.apiKey)
	return c.baseURL + "/" + resource + "?" + params.Encode()
}

