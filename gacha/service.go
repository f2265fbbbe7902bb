package gacha

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/logger"

	"gacha-backend/models"
)

const (
	DefaultPullCount = 10
	DefaultMaxPull   = 100
)

// ServiceConfig wires a Service.
type ServiceConfig struct {
	Provider CatalogProvider
	Weights  WeightTable
	// MaxPull caps a single request; zero means DefaultMaxPull.
	MaxPull int
	// NewSource is called once per pull. Nil means DefaultSource.
	NewSource func() RandomSource
}

func (cfg *ServiceConfig) Validate() error {
	if cfg == nil {
		return errors.New("gacha: config cannot be nil")
	}
	if cfg.Provider == nil {
		return errors.New("gacha: catalog provider cannot be nil")
	}
	if cfg.MaxPull < 0 {
		return fmt.Errorf("gacha: max pull %d must not be negative", cfg.MaxPull)
	}
	return cfg.Weights.Validate()
}

// Service answers pull, weight and catalog queries. It keeps no state between
// calls; every call fetches a fresh catalog.
type Service struct {
	provider  CatalogProvider
	weights   WeightTable
	maxPull   int
	newSource func() RandomSource
}

func NewService(cfg *ServiceConfig) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxPull := cfg.MaxPull
	if maxPull == 0 {
		maxPull = DefaultMaxPull
	}
	newSource := cfg.NewSource
	if newSource == nil {
		newSource = DefaultSource
	}

	return &Service{
		provider:  cfg.Provider,
		weights:   cfg.Weights.Clone(),
		maxPull:   maxPull,
		newSource: newSource,
	}, nil
}

func (s *Service) MaxPull() int { return s.maxPull }

// Weights returns a copy of the active weight table.
func (s *Service) Weights() WeightTable { return s.weights.Clone() }

// Pull fetches the catalog once and performs count draws against it.
func (s *Service) Pull(ctx context.Context, count int) (DrawResult, error) {
	if count < 0 || count > s.maxPull {
		return DrawResult{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidCount, count, s.maxPull)
	}

	catalog, err := s.fetch(ctx)
	if err != nil {
		return DrawResult{}, err
	}

	result, err := Draw(s.weights, catalog, count, s.newSource())
	if err != nil {
		return DrawResult{}, err
	}

	if dropped := count - len(result.Results); dropped > 0 {
		logger.Infof("gacha pull: %d of %d draws landed on empty tiers", dropped, count)
	}
	return result, nil
}

// Catalog returns the draftable characters ordered as the provider returns them.
func (s *Service) Catalog(ctx context.Context) ([]models.Character, error) {
	return s.fetch(ctx)
}

// Rates returns the odds disclosure for the current catalog.
func (s *Service) Rates(ctx context.Context) ([]TierRate, error) {
	catalog, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Rates(s.weights, catalog), nil
}

func (s *Service) fetch(ctx context.Context) ([]models.Character, error) {
	catalog, err := s.provider.FetchDraftablePool(ctx)
	if err != nil {
		if errors.Is(err, ErrDataUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return catalog, nil
}
