package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"spacescope/pkg/logger"
	"spacescope/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout is the time budget of a single call.
	DefaultTimeout = 5 * time.Second
	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes int64 = 4 << 20

	instrumentationName = "spacescope/pkg/remote"
)

// Options configure a Fetcher. Zero values fall back to the defaults.
type Options struct {
	// HTTPClient performs the requests. Its own Timeout is left untouched; the
	// time budget is enforced with a context deadline so the request is aborted.
	HTTPClient *http.Client
	// Timeout is the time budget of every call.
	Timeout time.Duration
	// MaxBodyBytes caps the size of a response body. Larger bodies are treated
	// as malformed.
	MaxBodyBytes int64
	// UserAgent is sent with every request when set.
	UserAgent string
	// MeterProvider records call outcomes and latency. Defaults to the global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider opens a client span per call. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Fetcher performs bounded-time reads. It is safe for concurrent use and holds
// no per-call state.
type Fetcher struct {
	httpClient   *http.Client
	timeout      time.Duration
	maxBodyBytes int64
	userAgent    string

	tracer   trace.Tracer
	outcomes metric.Int64Counter
	duration metric.Float64Histogram
}

// New constructs a Fetcher from the provided options.
func New(opts Options) (*Fetcher, error) {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = otel.GetMeterProvider()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	meter := opts.MeterProvider.Meter(instrumentationName)
	outcomes, err := meter.Int64Counter("remote.fetch.outcomes",
		metric.WithDescription("Number of remote calls by resulting status"))
	if err != nil {
		return nil, fmt.Errorf("could not create outcomes counter: %w", err)
	}
	duration, err := meter.Float64Histogram("remote.fetch.duration",
		metric.WithDescription("Latency of remote calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.UpstreamBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Fetcher{
		httpClient:   opts.HTTPClient,
		timeout:      opts.Timeout,
		maxBodyBytes: opts.MaxBodyBytes,
		userAgent:    opts.UserAgent,
		tracer:       opts.TracerProvider.Tracer(instrumentationName),
		outcomes:     outcomes,
		duration:     duration,
	}, nil
}

// Timeout returns the time budget applied to every call.
func (f *Fetcher) Timeout() time.Duration { return f.timeout }

// Fetch issues a single GET to rawURL and decodes the JSON body into T.
//
// A 2xx answer with a valid body within the time budget yields a live result.
// A non-2xx answer yields fallback tagged StatusError. A timeout, a transport
// failure, an oversized or malformed body yield fallback tagged
// StatusSimulated; the in-flight request is aborted. Fetch never fails.
func Fetch[T any](ctx context.Context, f *Fetcher, rawURL string, fallback T) Result[T] {
	target := targetOf(rawURL)
	ctx, span := f.tracer.Start(ctx, "remote.Fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("remote.target", target)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	payload, code, err := get[T](ctx, f, rawURL)
	res := Live(payload)
	switch {
	case err != nil:
		res = Degrade(fallback, StatusSimulated)
	case code < 200 || code >= 300:
		res = Degrade(fallback, StatusError)
		err = fmt.Errorf("remote responded with status %d", code)
	}

	f.record(ctx, span, "fetch", target, res.Status, time.Since(start), err,
		zap.Int("statusCode", code))

	return res
}

// get performs the request. code is zero when no response was received.
func get[T any](ctx context.Context, f *Fetcher, rawURL string) (T, int, error) {
	var out T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return out, 0, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return out, 0, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBodyBytes))

		return out, resp.StatusCode, nil
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return out, resp.StatusCode, fmt.Errorf("could not read response body: %w", err)
	}
	if int64(len(b)) > f.maxBodyBytes {
		return out, resp.StatusCode, fmt.Errorf("response body exceeds %d bytes", f.maxBodyBytes)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, resp.StatusCode, fmt.Errorf("could not decode response: %w", err)
	}

	return out, resp.StatusCode, nil
}

// record emits the metrics, span status and log line of a finished call.
func (f *Fetcher) record(ctx context.Context,
	span trace.Span,
	kind, target string,
	status Status,
	elapsed time.Duration,
	err error,
	fields ...zap.Field) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("target", target),
		attribute.String("status", string(status)))
	f.outcomes.Add(ctx, 1, attrs)
	f.duration.Record(ctx, elapsed.Seconds(), attrs)

	span.SetAttributes(attribute.String("remote.status", string(status)))

	fields = append(fields,
		zap.String("kind", kind),
		zap.String("target", target),
		zap.String("status", string(status)),
		zap.Duration("latency", elapsed))
	if err == nil {
		logger.Debug(ctx, "remote call succeeded", fields...)

		return
	}

	span.SetStatus(codes.Error, err.Error())
	logger.Warn(ctx, "remote call degraded to fallback", append(fields, zap.Error(err))...)
}

// targetOf reduces a URL to its host and path so API keys in the query string
// never reach logs or metric labels.
func targetOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "invalid"
	}

	return u.Host + u.Path
}
