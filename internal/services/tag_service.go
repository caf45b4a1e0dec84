package services

import (
	"context"
	"errors"
	"regexp"

	"gorm.io/gorm"

	"time-management.com/time-management/internal/cache"
	dto "time-management.com/time-management/internal/data_models"
	apperrors "time-management.com/time-management/internal/errors"
	model "time-management.com/time-management/internal/models"
	repository "time-management.com/time-management/internal/repositories"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TagService owns the tag catalogue. Reads go through the redis-backed
// catalogue cache; every write invalidates it.
type TagService struct {
	repo      *repository.TagRepository
	catalogue *cache.TagCatalogue
}

func NewTagService(repo *repository.TagRepository, catalogue *cache.TagCatalogue) *TagService {
	return &TagService{repo: repo, catalogue: catalogue}
}

func (s *TagService) ListTags(ctx context.Context) ([]dto.TagResponse, error) {
	tags, cached := s.catalogue.Get(ctx)
	if !cached {
		var err error
		tags, err = s.repo.List(ctx)
		if err != nil {
			return nil, apperrors.ErrDependencyUnavailable
		}
		s.catalogue.Set(ctx, tags)
	}

	responses := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, dto.TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	return responses, nil
}

func (s *TagService) GetTagByID(ctx context.Context, id uint) (*dto.TagResponse, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTagNotFound
	}
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}
	return &dto.TagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color}, nil
}

func (s *TagService) CreateTag(ctx context.Context, req dto.TagRequest) (*dto.TagResponse, error) {
	if err := validateTag(req); err != nil {
		return nil, err
	}

	tag := &model.Tag{Name: req.Name, Color: req.Color}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	s.catalogue.Invalidate(ctx)
	return &dto.TagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color}, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id uint, req dto.TagRequest) (*dto.TagResponse, error) {
	if err := validateTag(req); err != nil {
		return nil, err
	}

	tag, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTagNotFound
	}
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	tag.Name = req.Name
	tag.Color = req.Color
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	s.catalogue.Invalidate(ctx)
	return &dto.TagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color}, nil
}

// DeleteTag detaches the tag from all tasks; the tasks themselves are
// untouched.
func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagNotFound
		}
		return apperrors.ErrDependencyUnavailable
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.ErrDependencyUnavailable
	}

	s.catalogue.Invalidate(ctx)
	return nil
}

// ResolveMany fetches tag snapshots for the lifecycle engine; unknown
// ids are skipped.
func (s *TagService) ResolveMany(ctx context.Context, ids []uint) ([]model.Tag, error) {
	return s.repo.GetMany(ctx, ids)
}

func validateTag(req dto.TagRequest) error {
	if req.Name == "" {
		return apperrors.NewValidation("tag name is required")
	}
	if len(req.Name) > 50 {
		return apperrors.NewValidation("tag name must be at most 50 characters")
	}
	if !colorPattern.MatchString(req.Color) {
		return apperrors.NewValidation("tag color must be in format #RRGGBB")
	}
	return nil
}
