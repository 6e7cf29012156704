package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"courselibrary-backend/internal/domains/course"
)

type courseService struct {
	repo    course.Repository
	authors course.AuthorChecker
}

func NewCourseService(repo course.Repository, authors course.AuthorChecker) course.Service {
	return &courseService{repo: repo, authors: authors}
}

// requireAuthor maps a missing author to ErrAuthorNotFound before any
// course operation runs.
func (s *courseService) requireAuthor(ctx context.Context, authorID uuid.UUID) error {
	exists, err := s.authors.Exists(ctx, authorID)
	if err != nil {
		return fmt.Errorf("failed to check author existence: %w", err)
	}
	if !exists {
		return course.ErrAuthorNotFound
	}
	return nil
}

func (s *courseService) List(ctx context.Context, authorID uuid.UUID) ([]course.Course, error) {
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return nil, err
	}
	return s.repo.GetByAuthor(ctx, authorID)
}

func (s *courseService) Get(ctx context.Context, authorID, courseID uuid.UUID) (*course.Course, error) {
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, authorID, courseID)
}

func (s *courseService) Create(ctx context.Context, authorID uuid.UUID, req *course.CreateCourseRequest) (*course.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &course.Course{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    authorID,
	})
}

func (s *courseService) Upsert(ctx context.Context, authorID, courseID uuid.UUID, req *course.UpdateCourseRequest) (*course.Course, bool, error) {
	if err := req.Validate(); err != nil {
		return nil, false, err
	}
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByID(ctx, authorID, courseID)
	if err != nil {
		if !errors.Is(err, course.ErrCourseNotFound) {
			return nil, false, err
		}

		// Create-if-absent: keep the client-supplied id.
		created, err := s.repo.Create(ctx, &course.Course{
			ID:          courseID,
			Title:       req.Title,
			Description: req.Description,
			AuthorID:    authorID,
		})
		return created, true, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	updated, err := s.repo.Update(ctx, existing)
	return updated, false, err
}

func (s *courseService) Patch(ctx context.Context, authorID, courseID uuid.UUID, req *course.PatchCourseRequest) (*course.Course, bool, error) {
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByID(ctx, authorID, courseID)
	if err != nil {
		if !errors.Is(err, course.ErrCourseNotFound) {
			return nil, false, err
		}

		// Upsert: apply the patch to an empty course, then validate
		// the result the same way the update path does.
		merged := &course.Course{ID: courseID, AuthorID: authorID}
		req.ApplyTo(merged)
		if err := course.ValidateMerged(merged); err != nil {
			return nil, false, err
		}

		created, err := s.repo.Create(ctx, merged)
		return created, true, err
	}

	req.ApplyTo(existing)
	if err := course.ValidateMerged(existing); err != nil {
		return nil, false, err
	}

	updated, err := s.repo.Update(ctx, existing)
	return updated, false, err
}

func (s *courseService) Delete(ctx context.Context, authorID, courseID uuid.UUID) error {
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, authorID, courseID)
}
