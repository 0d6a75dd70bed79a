package domain

import (
	"net/url"
	"strings"
)

// Worker is a remote build endpoint.
type Worker struct {
	Address    string `json:"address"`
	Identifier string `json:"identifier"`
}

// NewWorker creates a worker for address. If identifier is empty it is
// derived from the address: the host and port of a URL, or the address itself.
func NewWorker(address, identifier string) Worker {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if identifier == "" {
		identifier = address
		if u, err := url.Parse(address); err == nil && u.Host != "" {
			identifier = u.Host
		}
	}
	return Worker{Address: address, Identifier: identifier}
}
