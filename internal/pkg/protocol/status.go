package protocol

import (
	"strconv"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
)

// StatusCode is a GURT response status code, compatible with HTTP semantics.
type StatusCode int

// The closed set of GURT status codes.
const (
	StatusSwitchingProtocols StatusCode = 101

	StatusOK        StatusCode = 200
	StatusCreated   StatusCode = 201
	StatusAccepted  StatusCode = 202
	StatusNoContent StatusCode = 204

	StatusBadRequest           StatusCode = 400
	StatusUnauthorized         StatusCode = 401
	StatusForbidden            StatusCode = 403
	StatusNotFound             StatusCode = 404
	StatusMethodNotAllowed     StatusCode = 405
	StatusTimeout              StatusCode = 408
	StatusTooLarge             StatusCode = 413
	StatusUnsupportedMediaType StatusCode = 415
	StatusTooManyRequests      StatusCode = 429

	StatusInternalServerError StatusCode = 500
	StatusNotImplemented      StatusCode = 501
	StatusBadGateway          StatusCode = 502
	StatusServiceUnavailable  StatusCode = 503
	StatusGatewayTimeout      StatusCode = 504
)

var statusMessages = map[StatusCode]string{
	StatusSwitchingProtocols:   "SWITCHING_PROTOCOLS",
	StatusOK:                   "OK",
	StatusCreated:              "CREATED",
	StatusAccepted:             "ACCEPTED",
	StatusNoContent:            "NO_CONTENT",
	StatusBadRequest:           "BAD_REQUEST",
	StatusUnauthorized:         "UNAUTHORIZED",
	StatusForbidden:            "FORBIDDEN",
	StatusNotFound:             "NOT_FOUND",
	StatusMethodNotAllowed:     "METHOD_NOT_ALLOWED",
	StatusTimeout:              "TIMEOUT",
	StatusTooLarge:             "TOO_LARGE",
	StatusUnsupportedMediaType: "UNSUPPORTED_MEDIA_TYPE",
	StatusTooManyRequests:      "TOO_MANY_REQUESTS",
	StatusInternalServerError:  "INTERNAL_SERVER_ERROR",
	StatusNotImplemented:       "NOT_IMPLEMENTED",
	StatusBadGateway:           "BAD_GATEWAY",
	StatusServiceUnavailable:   "SERVICE_UNAVAILABLE",
	StatusGatewayTimeout:       "GATEWAY_TIMEOUT",
}

// ParseStatusCode parses a wire token into a StatusCode.
// Tokens outside the closed set are a protocol error, never a silent default.
func ParseStatusCode(token string) (StatusCode, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, gurterr.Newf(gurterr.Protocol, "invalid status code: %s", token)
	}
	code := StatusCode(n)
	if !code.Known() {
		return 0, gurterr.Newf(gurterr.Protocol, "invalid status code: %s", token)
	}
	return code, nil
}

// Known reports whether the code is part of the closed GURT set.
func (c StatusCode) Known() bool {
	_, ok := statusMessages[c]
	return ok
}

// Message returns the canonical status message for the code.
func (c StatusCode) Message() string {
	if msg, ok := statusMessages[c]; ok {
		return msg
	}
	return "UNKNOWN"
}

// IsSuccess reports whether the code indicates success.
func (c StatusCode) IsSuccess() bool {
	switch c {
	case StatusOK, StatusCreated, StatusAccepted, StatusNoContent:
		return true
	}
	return false
}

// IsClientError reports whether the code is in the client error range.
func (c StatusCode) IsClientError() bool {
	return c >= 400 && c < 500
}

// IsServerError reports whether the code is in the server error range.
func (c StatusCode) IsServerError() bool {
	return c >= 500 && c < 600
}

func (c StatusCode) String() string {
	return strconv.Itoa(int(c)) + " " + c.Message()
}
