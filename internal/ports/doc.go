// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// HTTP handlers and the CLI. Repository ports are implemented by outbound
// persistence adapters and called by the application layer.
package ports
