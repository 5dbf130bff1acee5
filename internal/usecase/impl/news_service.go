package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// newsService implements the NewsUsecase interface.
type newsService struct {
	newsRepo repository.NewsRepository
	logger   *slog.Logger
}

// NewNewsService is the constructor for newsService.
func NewNewsService(newsRepo repository.NewsRepository, logger *slog.Logger) usecase.NewsUsecase {
	return &newsService{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

// ListPublished returns published posts, newest first.
func (srv *newsService) ListPublished(ctx context.Context) ([]*entity.NewsPost, error) {
	posts, err := srv.newsRepo.FindPublished(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return posts, nil
}

// GetPublished returns one published post by id. Unpublished posts are
// indistinguishable from missing ones on the public side.
func (srv *newsService) GetPublished(ctx context.Context, id uuid.UUID) (*entity.NewsPost, error) {
	post, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNewsNotFound, "news post not found")
		}

		return nil, errors.Wrap(err, "failed to find news post")
	}

	if !post.Published {
		return nil, errors.Wrap(domainerrors.ErrNewsNotFound, "news post not published")
	}

	return post, nil
}

// ListAll returns every post for the back office.
func (srv *newsService) ListAll(ctx context.Context) ([]*entity.NewsPost, error) {
	posts, err := srv.newsRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return posts, nil
}

// Create stores a new post. Publishing stamps PublishedAt.
func (srv *newsService) Create(ctx context.Context, post *entity.NewsPost) (*entity.NewsPost, error) {
	if strings.TrimSpace(post.Title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "news title is required")
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := srv.newsRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create news post")
	}

	srv.logger.Info("News post created", "newsID", post.ID, "published", post.Published)

	return post, nil
}

// Update rewrites a post. The first transition to published stamps
// PublishedAt; unpublishing keeps the original date for when it returns.
func (srv *newsService) Update(ctx context.Context, post *entity.NewsPost) (*entity.NewsPost, error) {
	if strings.TrimSpace(post.Title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "news title is required")
	}

	stored, err := srv.newsRepo.FindByID(ctx, post.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNewsNotFound, "news post not found")
		}

		return nil, errors.Wrap(err, "failed to find news post")
	}

	post.CreatedAt = stored.CreatedAt
	post.PublishedAt = stored.PublishedAt

	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := srv.newsRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to update news post")
	}

	return post, nil
}

// Delete removes a post.
func (srv *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.newsRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return errors.Wrap(domainerrors.ErrNewsNotFound, "news post not found")
		}

		return errors.Wrap(err, "failed to find news post")
	}

	if err := srv.newsRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete news post")
	}

	return nil
}
