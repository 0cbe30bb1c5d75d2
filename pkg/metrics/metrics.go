// Package metrics holds the histogram layouts shared by the gateway's
// instruments.
package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// UpstreamBuckets cover remote calls up to the generation budget of the AI
// backend, which runs far longer than a feed read.
var UpstreamBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30} //nolint: gochecknoglobals
