// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Service handles catalog reads and the search overlay filter
type Service struct {
	repo Repository
	log  logrus.FieldLogger
}

// NewService creates a new catalog service
func NewService(repo Repository, log logrus.FieldLogger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List returns all active products in display order
func (s *Service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns one active product by its id
func (s *Service) Get(ctx context.Context, slug string) (*Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Search returns the visibility of every card for the search term
func (s *Service) Search(ctx context.Context, term string) ([]Visibility, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	s.log.WithField("term", term).Debug("filtering product cards")
	return Filter(products, term), nil
}

// Find returns the products still visible for the search term
func (s *Service) Find(ctx context.Context, term string) ([]Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Visible(products, term), nil
}
