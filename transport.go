package accountkit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// Response is the envelope returned by every successful call: the decoded
// body plus the HTTP status and headers exactly as received.
type Response[T any] struct {
	Data       T
	StatusCode int
	Header     http.Header
}

// transport executes requests against a fixed base URL with fixed default
// headers and timeout. It holds no mutable cross-call state; concurrent use
// is safe.
type transport struct {
	rc             *resty.Client
	defaultHeaders map[string]string
	logger         RequestLogger
	debug          bool
	red            *redactor
}

func newTransport(baseURL string, timeout time.Duration, defaultHeaders map[string]string, logger RequestLogger, debug bool, red *redactor) *transport {
	t := &transport{
		rc:             resty.New(),
		defaultHeaders: defaultHeaders,
		logger:         logger,
		debug:          debug,
		red:            red,
	}

	t.rc.SetBaseURL(baseURL)
	t.rc.SetTimeout(timeout)
	t.rc.SetHeaders(defaultHeaders)

	t.rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		t.traceResponse(resp)
		return nil
	})
	t.rc.OnError(func(req *resty.Request, err error) {
		if t.debug {
			t.logger.Errorf("accountkit: request %s failed: %v", req.Header.Get(headerRequestID), err)
		}
	})

	return t
}

func (t *transport) baseURL() string { return t.rc.BaseURL }

// do builds and executes one request, then normalizes the result: a 2xx
// response is decoded into T and wrapped in a [Response]; a completed non-2xx
// response becomes an [*HTTPError] carrying the remote body verbatim; a
// request that never produced a response becomes a [*NetworkError].
func do[T any](ctx context.Context, t *transport, method, path string, query, headers map[string]string, body any) (*Response[T], error) {
	reqID := uuid.NewString()

	req := t.rc.R().
		SetContext(ctx).
		SetHeader(headerRequestID, reqID)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	if body != nil {
		req.SetBody(body)
	}

	t.traceRequest(reqID, method, path, query, headers, body)

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: t.rc.BaseURL + path, Err: err}
	}

	if resp.IsError() {
		return nil, &HTTPError{
			Method:     method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Header:     resp.Header(),
			Body:       resp.Body(),
		}
	}

	var data T
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &data); err != nil {
			return nil, fmt.Errorf("accountkit: %s %s: decode response: %w", method, resp.Request.URL, err)
		}
	}

	return &Response[T]{
		Data:       data,
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
	}, nil
}

func (t *transport) traceRequest(reqID, method, path string, query, headers map[string]string, body any) {
	if !t.debug {
		return
	}

	merged := make(map[string]string, len(t.defaultHeaders)+len(headers)+1)
	for k, v := range t.defaultHeaders {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	merged[headerRequestID] = reqID

	var encoded []byte
	if body != nil {
		encoded, _ = json.Marshal(body)
	}

	t.logger.Debugf("accountkit: request %s %s %s%s query=%v headers=%v body=%s",
		reqID, method, t.rc.BaseURL, path, query, t.red.headerMap(merged), encoded)
}

func (t *transport) traceResponse(resp *resty.Response) {
	if !t.debug {
		return
	}

	t.logger.Debugf("accountkit: response %s status=%d headers=%v body=%s",
		resp.Request.Header.Get(headerRequestID), resp.StatusCode(), t.red.header(resp.Header()), resp.Body())
}
