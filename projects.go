package payzcore

import (
	"context"
)

// ProjectsService manages projects. The server requires master-key
// authentication for these operations; construct the client with
// WithMasterKey.
type ProjectsService struct {
	client *Client
}

// Create creates a new project. The response includes the project API key
// and the webhook secret; the secret is not retrievable afterwards.
func (s *ProjectsService) Create(ctx context.Context, params CreateProjectParams) (*CreateProjectResponse, error) {
	if err := s.client.validateParams(params); err != nil {
		return nil, err
	}

	var resp CreateProjectResponse
	if err := s.client.post(ctx, "/v1/projects", params, &resp); err != nil {
		return nil, err
	}
	resp.Success = true
	return &resp, nil
}

// List returns all projects.
func (s *ProjectsService) List(ctx context.Context) (*ListProjectsResponse, error) {
	var resp ListProjectsResponse
	if err := s.client.get(ctx, "/v1/projects", nil, &resp); err != nil {
		return nil, err
	}
	resp.Success = true
	return &resp, nil
}
