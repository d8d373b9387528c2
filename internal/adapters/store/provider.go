package store

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/workforce/internal/domain/employee"
	"github.com/jsamuelsen11/workforce/internal/ports"
)

var _ ports.RepositoryProvider = (*Provider)(nil)

// Provider hands out employee repositories per scope. Without a connection
// every scope gets a fresh in-memory repository; with one, every scope gets
// a SQLRepository on the shared connection.
type Provider struct {
	conn  *Connection
	repos []*SQLRepository
}

// NewProvider returns a Provider on conn. A nil conn selects memory storage.
func NewProvider(conn *Connection) *Provider {
	return &Provider{conn: conn}
}

// Persistent reports whether repositories are backed by a database.
func (p *Provider) Persistent() bool { return p.conn != nil }

// EmployeeRepository implements ports.RepositoryProvider.
func (p *Provider) EmployeeRepository(ctx context.Context, scope string) (employee.Repository, error) {
	if p.conn == nil {
		return employee.NewMemoryRepository(), nil
	}

	repo, err := NewSQLRepository(ctx, p.conn, scope)
	if err != nil {
		return nil, err
	}
	p.repos = append(p.repos, repo)
	return repo, nil
}

// Flush writes back every repository handed out so far. Failures do not
// stop the remaining flushes.
func (p *Provider) Flush(ctx context.Context) error {
	var errs []error
	for _, repo := range p.repos {
		errs = append(errs, repo.Flush(ctx))
	}
	return errors.Join(errs...)
}
