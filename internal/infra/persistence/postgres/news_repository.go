package postgres

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsRepository implements the repository.NewsRepository interface using GORM.
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

// FindPublished retrieves published posts ordered by publication date, newest first.
func (repo *newsRepository) FindPublished(ctx context.Context) ([]*entity.NewsPost, error) {
	var records []model.NewsPostModel
	if err := repo.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published news posts")
	}

	return toNewsDomainList(records), nil
}

// FindAll retrieves every post, newest first.
func (repo *newsRepository) FindAll(ctx context.Context) ([]*entity.NewsPost, error) {
	var records []model.NewsPostModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list news posts")
	}

	return toNewsDomainList(records), nil
}

// FindByID retrieves a single post by its unique ID.
func (repo *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsPost, error) {
	var record model.NewsPostModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news post by ID")
	}

	return toNewsDomain(&record), nil
}

// Create persists a new post.
func (repo *newsRepository) Create(ctx context.Context, post *entity.NewsPost) error {
	record := fromNewsDomain(post)
	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create news post")
	}

	post.ID = record.ID
	post.CreatedAt = record.CreatedAt
	post.UpdatedAt = record.UpdatedAt

	return nil
}

// Update modifies an existing post.
func (repo *newsRepository) Update(ctx context.Context, post *entity.NewsPost) error {
	record := fromNewsDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.NewsPostModel{}).
		Where("id = ?", post.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(record)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update news post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

// Delete removes a post.
func (repo *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NewsPostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete news post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

func toNewsDomain(record *model.NewsPostModel) *entity.NewsPost {
	return &entity.NewsPost{
		ID:          record.ID,
		Title:       record.Title,
		Body:        record.Body,
		CoverURL:    record.CoverURL,
		Published:   record.Published,
		PublishedAt: record.PublishedAt,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func toNewsDomainList(records []model.NewsPostModel) []*entity.NewsPost {
	posts := make([]*entity.NewsPost, len(records))
	for i := range records {
		posts[i] = toNewsDomain(&records[i])
	}

	return posts
}

func fromNewsDomain(post *entity.NewsPost) *model.NewsPostModel {
	return &model.NewsPostModel{
		ID:          post.ID,
		Title:       post.Title,
		Body:        post.Body,
		CoverURL:    post.CoverURL,
		Published:   post.Published,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}
