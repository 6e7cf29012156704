package service

import (
	"context"

	"github.com/google/uuid"

	"courselibrary-backend/internal/domains/author"
	"courselibrary-backend/internal/shared/pagination"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) CreateMany(ctx context.Context, reqs []author.CreateAuthorRequest) ([]author.Author, error) {
	authors := make([]*author.Author, 0, len(reqs))
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return nil, err
		}
		authors = append(authors, reqs[i].ToEntity())
	}
	return s.repo.CreateMany(ctx, authors)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]author.Author, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *authorService) GetPage(ctx context.Context, filter author.AuthorFilter, page pagination.PageRequest) (*pagination.PagedList[author.Author], error) {
	return s.repo.GetPage(ctx, filter, page)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
