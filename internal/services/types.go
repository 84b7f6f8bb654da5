// Package services manages services inside projects: listing, inspection,
// creation, exposed ports and domains.
package services

import (
	"context"
	"encoding/json"
)

// ListInput selects the project whose services are listed.
type ListInput struct {
	ProjectID string `json:"projectId" validate:"required"`
}

// GetInput selects one service.
type GetInput struct {
	ServiceID string `json:"serviceId" validate:"required"`
}

// CreateInput creates an empty prebuilt service in a project.
type CreateInput struct {
	Name      string `json:"name" validate:"required"`
	ProjectID string `json:"projectId" validate:"required"`
}

// Port is one port exposed by a service.
type Port struct {
	ID   string `json:"id" validate:"required"`
	Port int    `json:"port" validate:"min=1,max=65535"`
	Type string `json:"type" validate:"required,oneof=HTTP TCP UDP"`
}

// UpdatePortsInput replaces every exposed port of a service in an
// environment.
type UpdatePortsInput struct {
	ServiceID     string `json:"serviceId" validate:"required"`
	EnvironmentID string `json:"environmentId" validate:"required"`
	Ports         []Port `json:"ports" validate:"required,dive"`
}

// AddDomainInput binds a domain to a named port. A generated domain takes
// only the subdomain prefix.
type AddDomainInput struct {
	ServiceID   string `json:"serviceId" validate:"required"`
	Domain      string `json:"domain" validate:"required"`
	IsGenerated *bool  `json:"isGenerated" validate:"required"`
	PortName    string `json:"portName" validate:"required"`
}

// Manager is the service contract consumed by the MCP tools.
type Manager interface {
	List(ctx context.Context, in ListInput) (json.RawMessage, error)
	Get(ctx context.Context, in GetInput) (json.RawMessage, error)
	Create(ctx context.Context, in CreateInput) (json.RawMessage, error)
	UpdatePorts(ctx context.Context, in UpdatePortsInput) (json.RawMessage, error)
	AddDomain(ctx context.Context, in AddDomainInput) (json.RawMessage, error)
}
