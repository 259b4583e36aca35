package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Content struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Content {
	return &Content{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Content) CreatePage(ctx context.Context, pageModify entities.PageContentModify) (*entities.PageContent, error) {
	if pageModify.Slug == nil ||
		pageModify.Title == nil ||
		pageModify.Body == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidSlug(*pageModify.Slug) {
		return nil, ErrInvalidSlug
	}

	id := uuid.NewString()
	pageModify.ID = &id

	page, err := s.repository.Create(ctx, pageModify)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return page, nil
}

func (s *Content) GetPages(ctx context.Context) ([]entities.PageContent, error) {
	pages, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pages: %w", err)
	}
	return pages, nil
}

func (s *Content) GetPage(ctx context.Context, id string) (*entities.PageContent, error) {
	if err := validatePageID(id); err != nil {
		return nil, err
	}

	page, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	return page, nil
}

func (s *Content) UpdatePage(ctx context.Context, pageModify entities.PageContentModify) (*entities.PageContent, error) {
	if pageModify.ID == nil {
		return nil, ErrInvalidPageID
	}
	if err := validatePageID(*pageModify.ID); err != nil {
		return nil, err
	}

	if pageModify.Slug == nil &&
		pageModify.Category == nil &&
		pageModify.Title == nil &&
		pageModify.Body == nil &&
		pageModify.Published == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if pageModify.Slug != nil && !isValidSlug(*pageModify.Slug) {
		return nil, ErrInvalidSlug
	}

	page, err := s.repository.Update(ctx, pageModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return page, nil
}

func (s *Content) DeletePage(ctx context.Context, id string) error {
	if err := validatePageID(id); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

func validatePageID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPageID, id)
	}
	return nil
}
