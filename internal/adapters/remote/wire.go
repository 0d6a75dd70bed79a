// Package remote implements the HTTP clients talking to workers and coordinators.
package remote

import "go.trai.ch/pacforge/internal/core/domain"

// Endpoint paths of the worker service.
const (
	ServiceAddPath     = "/api/v1/service/add"
	ServiceProcessPath = "/api/v1/service/process/"
	DistributedPath    = "/api/v1/distributed"
)

// AddRequest is the body of a service add request.
type AddRequest struct {
	Packages  []string       `json:"packages"`
	Packager  *string        `json:"packager"`
	Patches   []domain.Patch `json:"patches"`
	Increment bool           `json:"increment"`
	Refresh   bool           `json:"refresh"`
}

// NewAddRequest builds the request body for bases and opts.
func NewAddRequest(bases []string, opts domain.UpdateOptions) AddRequest {
	req := AddRequest{
		Packages:  bases,
		Patches:   opts.Patches,
		Increment: opts.BumpPkgrel,
		Refresh:   opts.Refresh,
	}
	if req.Packages == nil {
		req.Packages = []string{}
	}
	if req.Patches == nil {
		req.Patches = []domain.Patch{}
	}
	if opts.Packager != "" {
		packager := opts.Packager
		req.Packager = &packager
	}
	return req
}

// Options converts the request back into update options.
func (r AddRequest) Options() domain.UpdateOptions {
	opts := domain.UpdateOptions{
		Patches:    r.Patches,
		BumpPkgrel: r.Increment,
		Refresh:    r.Refresh,
	}
	if r.Packager != nil {
		opts.Packager = *r.Packager
	}
	return opts
}

// AddResponse is returned by a service add request.
type AddResponse struct {
	ProcessID string `json:"process_id"`
}

// ProcessResponse reports the state of a process.
type ProcessResponse struct {
	IsAlive bool `json:"is_alive"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
