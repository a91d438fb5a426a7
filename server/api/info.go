package api

import (
	"net/http"

	"github.com/corvidlabs/lr1construct/internal/version"
	"github.com/corvidlabs/lr1construct/server/result"
)

// InfoResponse is the body of GET /api/v1/info.
type InfoResponse struct {
	Version string `json:"version"`
}

// HTTPGetInfo returns the handler for GET /api/v1/info.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return Endpoint(api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	return result.OK(InfoResponse{Version: version.Current}, "reported server info")
}
