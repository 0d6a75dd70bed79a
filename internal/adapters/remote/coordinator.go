package remote

import (
	"context"
	"net/http"
	"net/url"

	"go.trai.ch/pacforge/internal/core/domain"
)

// Coordinator is a ports.WorkerRegistrar talking to the coordinator service.
type Coordinator struct {
	client *Client
}

// NewCoordinator creates a registrar for the coordinator at address.
func NewCoordinator(address string, httpClient *http.Client) (*Coordinator, error) {
	client, err := NewClient(address, httpClient)
	if err != nil {
		return nil, err
	}
	return &Coordinator{client: client}, nil
}

// Register announces worker to the coordinator.
func (c *Coordinator) Register(ctx context.Context, worker domain.Worker) error {
	return c.client.do(ctx, http.MethodPost, DistributedPath, worker, nil)
}

// Unregister removes worker from the coordinator.
func (c *Coordinator) Unregister(ctx context.Context, worker domain.Worker) error {
	err := c.client.do(ctx, http.MethodDelete, DistributedPath+"/"+url.PathEscape(worker.Identifier), nil, nil)
	if isNotFound(err) {
		return nil
	}
	return err
}

// Workers lists the live workers known to the coordinator.
func (c *Coordinator) Workers(ctx context.Context) ([]domain.Worker, error) {
	var workers []domain.Worker
	if err := c.client.do(ctx, http.MethodGet, DistributedPath, nil, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}
