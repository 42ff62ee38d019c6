// internal/domain/delivery/service.go
package delivery

import (
	"context"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Repository reads the serviceable pincodes
type Repository interface {
	Codes(ctx context.Context) ([]string, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a pincode repository backed by gorm
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Codes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).Model(&Pincode{}).Order("code ASC").Pluck("code", &codes).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "delivery: load pincodes")
	}
	return codes, nil
}

// Service answers delivery lookups against a whitelist read from the repository.
// A successful read is kept for the process lifetime; a failed one falls back
// to the configured list for that lookup only and is retried on the next.
type Service struct {
	repo     Repository
	fallback Whitelist
	log      logrus.FieldLogger

	mu        sync.Mutex
	whitelist Whitelist
}

// NewService creates a delivery service. fallback is used when the
// repository is empty or unavailable; nil means the default area list.
func NewService(repo Repository, fallback []string, log logrus.FieldLogger) *Service {
	if len(fallback) == 0 {
		for _, p := range DefaultPincodes() {
			fallback = append(fallback, p.Code)
		}
	}
	return &Service{
		repo:     repo,
		fallback: NewWhitelist(fallback...),
		log:      log,
	}
}

// Load reads the whitelist now instead of on the first lookup
func (s *Service) Load(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

// Check answers a delivery lookup for raw user input
func (s *Service) Check(ctx context.Context, input string) Result {
	whitelist, err := s.load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("using fallback pincode list")
	}

	result := Check(whitelist, input)
	s.log.WithFields(logrus.Fields{
		"pincode": result.Pincode,
		"status":  result.Status,
	}).Debug("delivery lookup")
	return result
}

func (s *Service) load(ctx context.Context) (Whitelist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.whitelist != nil {
		return s.whitelist, nil
	}
	if s.repo == nil {
		s.whitelist = s.fallback
		return s.whitelist, nil
	}

	codes, err := s.repo.Codes(ctx)
	if err != nil {
		return s.fallback, err
	}

	if len(codes) == 0 {
		s.whitelist = s.fallback
	} else {
		s.whitelist = NewWhitelist(codes...)
	}
	return s.whitelist, nil
}
