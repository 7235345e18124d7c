package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/model"
)

// SortKey selects an ordering for the video table.
type SortKey string

const (
	SortDateDesc       SortKey = "date_desc"
	SortDateAsc        SortKey = "date_asc"
	SortViewsDesc      SortKey = "views_desc"
	SortViewsAsc       SortKey = "views_asc"
	SortLikesDesc      SortKey = "likes_desc"
	SortEngagementDesc SortKey = "engagement_desc"
)

// ParseSortKey validates a sort parameter. Empty selects the default order.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortDateDesc, nil
	}
	switch k := SortKey(s); k {
	case SortDateDesc, SortDateAsc, SortViewsDesc, SortViewsAsc, SortLikesDesc, SortEngagementDesc:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Metric selects a numeric column for rankings.
type Metric string

const (
	MetricViews           Metric = "views"
	MetricLikes           Metric = "likes"
	MetricComments        Metric = "comments"
	MetricDuration        Metric = "duration"
	MetricLikesPerView    Metric = "likesPerView"
	MetricCommentsPerView Metric = "commentsPerView"
)

// ParseMetric validates a ranking metric parameter. Empty selects views.
func ParseMetric(s string) (Metric, error) {
	if s == "" {
		return MetricViews, nil
	}
	switch m := Metric(s); m {
	case MetricViews, MetricLikes, MetricComments, MetricDuration, MetricLikesPerView, MetricCommentsPerView:
		return m, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

func metricValue(v model.VideoRecord, m Metric) float64 {
	switch m {
	case MetricLikes:
		return float64(v.Likes)
	case MetricComments:
		return float64(v.Comments)
	case MetricDuration:
		return v.DurationSeconds
	case MetricLikesPerView:
		return v.LikesPerView
	case MetricCommentsPerView:
		return v.CommentsPerView
	default:
		return float64(v.Views)
	}
}

// FilterMinViews returns the records with at least minViews views,
// preserving order.
func FilterMinViews(t model.VideoTable, minViews int64) model.VideoTable {
	out := make(model.VideoTable, 0, len(t))
	for _, v := range t {
		if v.Views >= minViews {
			out = append(out, v)
		}
	}
	return out
}

// SortTable returns a copy of the table ordered by the given key. The input
// is left untouched.
func SortTable(t model.VideoTable, key SortKey) model.VideoTable {
	out := make(model.VideoTable, len(t))
	copy(out, t)

	switch key {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.Before(out[j].PublishedAt) })
	case SortViewsDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	case SortViewsAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views < out[j].Views })
	case SortLikesDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	case SortEngagementDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].EngagementRatio() > out[j].EngagementRatio() })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	}
	return out
}

// TopN returns the n highest-ranked records by the given metric.
func TopN(t model.VideoTable, m Metric, n int) model.VideoTable {
	if n <= 0 {
		return model.VideoTable{}
	}
	out := make(model.VideoTable, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool { return metricValue(out[i], m) > metricValue(out[j], m) })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// correlationMetrics are the columns the correlation matrix spans.
var correlationMetrics = []Metric{MetricViews, MetricLikes, MetricComments, MetricDuration}

// Correlations computes the pairwise Pearson correlation across the table's
// numeric metrics. A column with zero variance (or a table shorter than two
// rows) correlates as 0 with everything but itself.
func Correlations(t model.VideoTable) model.CorrelationReport {
	names := make([]string, len(correlationMetrics))
	cols := make([][]float64, len(correlationMetrics))
	for i, m := range correlationMetrics {
		names[i] = string(m)
		col := make([]float64, len(t))
		for j, v := range t {
			col[j] = metricValue(v, m)
		}
		cols[i] = col
	}

	matrix := make([][]float64, len(cols))
	for i := range cols {
		matrix[i] = make([]float64, len(cols))
		for j := range cols {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			matrix[i][j] = pearson(cols[i], cols[j])
		}
	}
	return model.CorrelationReport{Metrics: names, Matrix: matrix}
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
