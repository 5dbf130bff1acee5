package usecase

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// NewsUsecase serves association news. The public side only ever sees
// published posts; the admin side manages the full set.
type NewsUsecase interface {
	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]*entity.NewsPost, error)

	// GetPublished returns one published post by id.
	GetPublished(ctx context.Context, id uuid.UUID) (*entity.NewsPost, error)

	// ListAll returns every post for the back office.
	ListAll(ctx context.Context) ([]*entity.NewsPost, error)

	// Create stores a new post. Publishing stamps PublishedAt.
	Create(ctx context.Context, post *entity.NewsPost) (*entity.NewsPost, error)

	// Update rewrites a post. Transitioning to published stamps PublishedAt
	// if it was never set.
	Update(ctx context.Context, post *entity.NewsPost) (*entity.NewsPost, error)

	// Delete removes a post.
	Delete(ctx context.Context, id uuid.UUID) error
}
