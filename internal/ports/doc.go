// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// command-line entry point. Client ports are implemented by outbound adapters
// (storage, report exporters) and called by the application layer.
package ports
