// Package api provides the HTTP API endpoints of the lr1construct server:
// constructing a canonical LR(1) parser from a submitted grammar and,
// optionally, driving it over an input string. Grounded on
// dekarrin/tunaq's server/api package, trimmed of everything tied to
// accounts/sessions (this service has none) and of the generic
// Backend/Secret fields an auth-bearing service would need.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/corvidlabs/lr1construct/internal/icerrors"
	"github.com/corvidlabs/lr1construct/server/result"
)

const (
	// PathPrefix is the prefix of all paths in the API. Routers should mount
	// a sub-router that routes all requests to the API at this path.
	PathPrefix = "/api/v1"
)

// API holds the handlers for the lr1construct HTTP surface. It carries no
// state of its own: construction is pure (grammar text + input string) in,
// report or error out.
type API struct{}

// EndpointFunc is a handler that returns the Result to send, rather than
// writing to the ResponseWriter directly, so that panics, logging, and
// marshal failures are handled uniformly by Endpoint.
type EndpointFunc func(req *http.Request) result.Result

// Endpoint adapts an EndpointFunc into an http.HandlerFunc: recovers
// panics into an HTTP-500, pre-marshals the response so a marshal failure
// can itself be reported as an error, and logs the outcome.
func Endpoint(ep EndpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer panicTo500(w, req)

		r := ep(req)
		if r.Status == 0 {
			result.InternalServerError("endpoint result was never populated").WriteResponse(w)
			return
		}

		if err := r.PrepareMarshaledResponse(); err != nil {
			r = result.InternalServerError("could not marshal JSON response: %s", err.Error())
		}

		r.Log(req)
		r.WriteResponse(w)
	}
}

// parseJSON decodes the request body as JSON into v, which must be a
// pointer. Returns an icerrors.ErrBadArgument-wrapped error on any failure,
// including a non-JSON Content-Type.
func parseJSON(req *http.Request, v interface{}) error {
	contentType := req.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
		return icerrors.New("request content-type is not application/json", icerrors.ErrBadArgument)
	}

	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return icerrors.New("could not read request body", icerrors.ErrBadArgument, err)
	}
	defer func() {
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewBuffer(bodyData))
	}()

	if err := json.Unmarshal(bodyData, v); err != nil {
		return icerrors.New("malformed JSON in request body", icerrors.ErrBadArgument, err)
	}
	return nil
}

func panicTo500(w http.ResponseWriter, req *http.Request) (panicVal interface{}) {
	if panicErr := recover(); panicErr != nil {
		r := result.TextErr(
			http.StatusInternalServerError,
			"An internal server error occurred",
			fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())),
		)
		r.Log(req)
		r.WriteResponse(w)
		return true
	}
	return false
}
