// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNewsNotFound is returned when a news post is not found.
var ErrNewsNotFound = errors.New("news post not found")

// NewsRepository defines persistence operations for news posts.
type NewsRepository interface {
	// FindPublished retrieves published posts ordered by published_at descending.
	FindPublished(ctx context.Context) ([]*entity.NewsPost, error)

	// FindAll retrieves every post, newest first (admin surface).
	FindAll(ctx context.Context) ([]*entity.NewsPost, error)

	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsPost, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.NewsPost) error

	// Update modifies an existing post.
	Update(ctx context.Context, post *entity.NewsPost) error

	// Delete removes a post.
	Delete(ctx context.Context, id uuid.UUID) error
}
