package accountkit

import (
	"net/http"
	"strings"
)

// redactedMask replaces sensitive header values in trace output.
const redactedMask = "[REDACTED]"

// redactor masks header values in log output. The secret set is fixed at
// construction: every value found in the supplied environment snapshot plus
// every configured extra-header value. Matching is exact; a secret passed as
// a plain literal is never masked and a coincidental match always is. Wire
// traffic is unaffected.
type redactor struct {
	secrets map[string]struct{}
}

func newRedactor(environ []string, extraValues []string) *redactor {
	secrets := make(map[string]struct{}, len(environ)+len(extraValues))

	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i >= 0 && kv[i+1:] != "" {
			secrets[kv[i+1:]] = struct{}{}
		}
	}

	for _, v := range extraValues {
		if v != "" {
			secrets[v] = struct{}{}
		}
	}

	return &redactor{secrets: secrets}
}

func (r *redactor) value(v string) string {
	if _, ok := r.secrets[v]; ok {
		return redactedMask
	}
	return v
}

func (r *redactor) headerMap(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = r.value(v)
	}
	return out
}

func (r *redactor) header(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, vs := range h {
		for _, v := range vs {
			out.Add(k, r.value(v))
		}
	}
	return out
}
