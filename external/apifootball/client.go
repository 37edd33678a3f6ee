package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
	"github.com/riskibarqy/football-chatbot/internal/platform/resilience"
	"github.com/riskibarqy/football-chatbot/internal/usecase"
)

const (
	defaultBaseURL  = "https://v3.football.api-sports.io"
	defaultTimeout  = 10 * time.Second
	defaultLiveTTL  = time.Minute
	defaultCacheTTL = time.Hour
	maxResponseBody = 6 << 20
)

const (
	outcomeOK          = "ok"
	outcomeNoData      = "no_data"
	outcomeRateLimited = "rate_limited"
	outcomeTransient   = "transient"
	outcomeMalformed   = "malformed"
	outcomeInvalid     = "invalid_request"
	outcomeBudget      = "budget_exceeded"
	outcomeCircuitOpen = "circuit_open"
)

var (
	errTransient = crerr.New("api-football transient failure")

	// ErrRateLimited is returned when upstream still limits the call after the retry.
	ErrRateLimited = fmt.Errorf("%w: rate limited by upstream", errTransient)
)

// Recorder receives client-side metrics. A nil Recorder disables them.
type Recorder interface {
	ObserveUpstream(endpoint, outcome string)
	ObserveCacheLookup(hit bool)
	SetBudgetUsed(used int)
	SetDegraded(degraded bool)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	APIHost        string
	Timeout        time.Duration
	LiveTTL        time.Duration
	RateLimit      resilience.RateLimitConfig
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
	Recorder       Recorder
}

// Client is the single gateway to API-Football. Every read goes through the response
// cache first; a miss passes the breaker, the daily budget and the throttle, in that
// order, before a request is sent.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	apiHost        string
	liveTTL        time.Duration
	backoff        time.Duration
	store          *cache.Store
	budget         *resilience.RequestBudget
	throttle       *resilience.Throttle
	health         *resilience.HealthTracker
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
	logger         *logging.Logger
	recorder       Recorder
	after          func(time.Duration) <-chan time.Time
}

func NewClient(cfg ClientConfig, store *cache.Store) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("apifootball")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	liveTTL := cfg.LiveTTL
	if liveTTL <= 0 {
		liveTTL = defaultLiveTTL
	}
	if store == nil {
		store = cache.NewStore(defaultCacheTTL, cache.WithLogger(logger))
	}

	rate := resilience.NormalizeRateLimitConfig(cfg.RateLimit)
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	c := &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		apiHost:        strings.TrimSpace(cfg.APIHost),
		liveTTL:        liveTTL,
		backoff:        rate.Backoff,
		store:          store,
		budget:         resilience.NewRequestBudget(rate.DailyLimit),
		throttle:       resilience.NewThrottle(rate.MinInterval),
		health:         resilience.NewHealthTracker(rate.DegradedAfter),
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		logger:         logger,
		recorder:       cfg.Recorder,
		after:          time.After,
	}

	c.health.OnChange(func(state resilience.HealthState) {
		c.logger.Warn("api-football health changed", "state", state)
		if c.recorder != nil {
			c.recorder.SetDegraded(state == resilience.HealthStateDegraded)
		}
	})
	c.breaker.OnStateChange(func(from, to resilience.CircuitState) {
		c.logger.Warn("api-football circuit breaker changed", "from", from, "to", to)
	})

	return c
}

func (c *Client) Status() usecase.DataSourceStatus {
	return usecase.DataSourceStatus{
		RequestsMade:   c.budget.Used(),
		RequestLimit:   c.budget.Limit(),
		Remaining:      c.budget.Remaining(),
		State:          string(c.health.State()),
		CircuitState:   string(c.breaker.State()),
		Backoffs:       c.health.TotalBackoffs(),
		WindowResetsAt: c.budget.ResetsAt(),
	}
}

func (c *Client) RequestsMade() int {
	return c.budget.Used()
}

func (c *Client) RequestLimit() int {
	return c.budget.Limit()
}

// Cache exposes the response cache for the admin endpoints.
func (c *Client) Cache() *cache.Store {
	return c.store
}

type apiCall struct {
	endpoint string
	params   url.Values
	ttl      time.Duration
}

// fetch resolves one call into T. An endpoint always decodes into the same T, so
// callers collapsed by singleflight can share the decoded value.
func fetch[T any](ctx context.Context, c *Client, call apiCall) (T, error) {
	var zero T

	key := cache.Key(call.endpoint, call.params)
	if body, ok := c.store.Get(ctx, key); ok {
		out, err := decodeBody[T](body)
		if err == nil {
			c.observeCache(true)
			return out, nil
		}
		c.logger.WarnContext(ctx, "cached api-football payload is unreadable, refetching", "key", key, "error", err)
	}
	c.observeCache(false)

	shared, err, _ := c.flight.Do(key, func() (any, error) {
		body, err := c.roundTrip(ctx, call)
		if err != nil {
			return nil, err
		}
		out, err := decodeBody[T](body)
		if err != nil {
			return nil, err
		}
		c.store.PutWithTTL(ctx, cache.Entry{
			Key:      key,
			Endpoint: strings.Trim(call.endpoint, "/"),
			Params:   cache.CanonicalParams(call.params),
			Payload:  body,
		}, call.ttl)
		return out, nil
	})
	if err != nil {
		return zero, err
	}

	out, ok := shared.(T)
	if !ok {
		return zero, fmt.Errorf("%w: unexpected shared payload type %T", usecase.ErrMalformedPayload, shared)
	}
	return out, nil
}

// roundTrip runs the upstream half of the pipeline and returns a non-empty envelope.
func (c *Client) roundTrip(ctx context.Context, call apiCall) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.observe(call.endpoint, outcomeCircuitOpen)
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "endpoint", call.endpoint, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, crerr.Wrap(err, "football data provider is temporarily unavailable"))
		}
	}

	if err := c.budget.Reserve(); err != nil {
		c.cancelBreaker()
		c.observe(call.endpoint, outcomeBudget)
		c.logger.WarnContext(ctx, "api-football daily budget exhausted",
			"endpoint", call.endpoint,
			"used", c.budget.Used(),
			"limit", c.budget.Limit(),
		)
		return nil, fmt.Errorf("%w: %d/%d requests used, resets at %s",
			usecase.ErrBudgetExceeded, c.budget.Used(), c.budget.Limit(), c.budget.ResetsAt().Format(time.RFC3339))
	}

	for attempt := 0; ; attempt++ {
		if err := c.throttle.Wait(ctx); err != nil {
			c.abandon()
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, crerr.Wrap(err, "wait for request slot"))
		}

		res := c.send(ctx, call)
		switch res.outcome {
		case outcomeOK:
			c.succeed(call.endpoint, outcomeOK)
			return res.body, nil
		case outcomeNoData:
			c.succeed(call.endpoint, outcomeNoData)
			return nil, fmt.Errorf("%w: %s returned no results", usecase.ErrNoData, call.endpoint)
		case outcomeMalformed:
			c.succeed(call.endpoint, outcomeMalformed)
			return nil, fmt.Errorf("%w: %w", usecase.ErrMalformedPayload, res.err)
		case outcomeInvalid:
			c.abandon()
			c.observe(call.endpoint, outcomeInvalid)
			return nil, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, res.err)
		case outcomeTransient:
			c.budget.Release()
			if c.circuitEnabled {
				c.breaker.RecordFailure()
			}
			c.observe(call.endpoint, outcomeTransient)
			c.logger.WarnContext(ctx, "api-football request failed", "endpoint", call.endpoint, "error", res.err)
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, res.err)
		}

		// Rate limited.
		c.health.RecordBackoff()
		c.observe(call.endpoint, outcomeRateLimited)
		if attempt > 0 {
			c.abandon()
			if res.quotaExhausted {
				c.budget.Exhaust()
				c.recordBudget()
			}
			c.logger.WarnContext(ctx, "api-football still rate limited after retry",
				"endpoint", call.endpoint,
				"quota_exhausted", res.quotaExhausted,
			)
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, ErrRateLimited)
		}

		wait := c.backoff
		if res.retryAfter > wait {
			wait = res.retryAfter
		}
		c.logger.InfoContext(ctx, "api-football rate limited, backing off", "endpoint", call.endpoint, "wait", wait.String())
		select {
		case <-ctx.Done():
			c.abandon()
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, crerr.Wrap(ctx.Err(), "rate limit backoff"))
		case <-c.after(wait):
		}
	}
}

type sendResult struct {
	outcome        string
	body           []byte
	err            error
	retryAfter     time.Duration
	quotaExhausted bool
}

func (c *Client) send(ctx context.Context, call apiCall) sendResult {
	fullURL := c.baseURL + "/" + strings.Trim(call.endpoint, "/")
	if encoded := call.params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return sendResult{outcome: outcomeInvalid, err: crerr.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
		req.Header.Set("x-apisports-key", c.apiKey)
	}
	if c.apiHost != "" {
		req.Header.Set("X-RapidAPI-Host", c.apiHost)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sendResult{outcome: outcomeTransient, err: crerr.Wrapf(errTransient, "send request: %s", c.sanitize(err.Error()))}
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	_ = resp.Body.Close()
	if readErr != nil {
		return sendResult{outcome: outcomeTransient, err: crerr.Wrapf(errTransient, "read response body: %v", readErr)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		env, _ := parseEnvelope(raw)
		return sendResult{
			outcome:        outcomeRateLimited,
			retryAfter:     parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
			quotaExhausted: env.quotaExhausted(),
		}
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode >= http.StatusInternalServerError:
		return sendResult{outcome: outcomeTransient, err: crerr.Wrapf(errTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return sendResult{outcome: outcomeMalformed, err: crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))}
	}

	env, err := parseEnvelope(raw)
	if err != nil {
		return sendResult{outcome: outcomeMalformed, err: err}
	}
	if env.rateLimited() {
		return sendResult{
			outcome:        outcomeRateLimited,
			retryAfter:     parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
			quotaExhausted: env.quotaExhausted(),
		}
	}
	if msg := env.errorText(); msg != "" {
		return sendResult{outcome: outcomeMalformed, err: crerr.Newf("provider rejected request: %s", c.sanitize(msg))}
	}
	if env.empty() {
		return sendResult{outcome: outcomeNoData}
	}
	return sendResult{outcome: outcomeOK, body: raw}
}

// succeed settles a call that got an HTTP answer from upstream.
func (c *Client) succeed(endpoint, outcome string) {
	c.budget.Commit()
	if c.circuitEnabled {
		c.breaker.RecordSuccess()
	}
	c.health.RecordSuccess()
	c.observe(endpoint, outcome)
	c.recordBudget()
}

// abandon settles a call that was given up before upstream answered.
func (c *Client) abandon() {
	c.budget.Release()
	c.cancelBreaker()
}

func (c *Client) cancelBreaker() {
	if c.circuitEnabled {
		c.breaker.Cancel()
	}
}

func (c *Client) observe(endpoint, outcome string) {
	if c.recorder != nil {
		c.recorder.ObserveUpstream(strings.Trim(endpoint, "/"), outcome)
	}
}

func (c *Client) observeCache(hit bool) {
	if c.recorder != nil {
		c.recorder.ObserveCacheLookup(hit)
	}
}

func (c *Client) recordBudget() {
	if c.recorder != nil {
		c.recorder.SetBudgetUsed(c.budget.Used())
	}
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

// envelope is the API-Football v3 wrapper. errors is [] when clean and an object
// keyed by problem otherwise.
type envelope struct {
	Results  int             `json:"results"`
	Errors   any             `json:"errors"`
	Response json.RawMessage `json:"response"`
}

func parseEnvelope(raw []byte) (envelope, error) {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return envelope{}, crerr.Wrap(err, "decode provider envelope")
	}
	return env, nil
}

func (e envelope) errorMap() map[string]string {
	m, ok := e.Errors.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprint(v)
	}
	return out
}

func (e envelope) rateLimited() bool {
	errs := e.errorMap()
	_, rate := errs["rateLimit"]
	_, quota := errs["requests"]
	return rate || quota
}

func (e envelope) quotaExhausted() bool {
	_, ok := e.errorMap()["requests"]
	return ok
}

func (e envelope) errorText() string {
	errs := e.errorMap()
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errs))
	for k, v := range errs {
		parts = append(parts, k+": "+v)
	}
	return strings.Join(parts, "; ")
}

func (e envelope) empty() bool {
	if e.Results == 0 {
		return true
	}
	switch strings.TrimSpace(string(e.Response)) {
	case "", "null", "[]", "{}":
		return true
	default:
		return false
	}
}

// decodeBody reads a cached or fresh envelope into T.
func decodeBody[T any](body []byte) (T, error) {
	var out T
	env, err := parseEnvelope(body)
	if err != nil {
		return out, fmt.Errorf("%w: %w", usecase.ErrMalformedPayload, err)
	}
	if err := sonic.Unmarshal(env.Response, &out); err != nil {
		return out, fmt.Errorf("%w: %w", usecase.ErrMalformedPayload, crerr.Wrap(err, "decode provider response"))
	}
	return out, nil
}

func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
