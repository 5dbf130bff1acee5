// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewResidenceRepository creates a transaction-bound residence repository.
	NewResidenceRepository() ResidenceRepository

	// NewDirectorRepository creates a transaction-bound director repository.
	NewDirectorRepository() DirectorRepository

	// NewFavoriteRepository creates a transaction-bound favorite repository.
	NewFavoriteRepository() FavoriteRepository
}

// TransactionManager runs multi-step persistence operations atomically.
// The callback receives a factory whose repositories share one transaction;
// returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
