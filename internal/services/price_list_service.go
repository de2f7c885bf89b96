package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"transfer-backend/internal/cache"
	"transfer-backend/internal/models"
	"transfer-backend/internal/repositories"
)

const priceListCacheKey = "prices:all"

type PriceListService struct {
	Repo PriceListStore
}

func NewPriceListService(repo PriceListStore) *PriceListService {
	return &PriceListService{Repo: repo}
}

func (s *PriceListService) CreatePriceList(ctx context.Context, p *models.PriceList) error {
	if err := validatePriceList(p); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create price list: %w", err)
	}
	cache.InvalidatePriceCaches(ctx)
	return nil
}

func (s *PriceListService) GetPriceList(ctx context.Context, id int) (*models.PriceList, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: price list %d", ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

// ListPriceLists returns the full rate card. The result is cached in
// Redis; writes through this service invalidate the cache.
func (s *PriceListService) ListPriceLists(ctx context.Context) ([]*models.PriceList, error) {
	if data, ok := cache.GetCached(ctx, priceListCacheKey); ok {
		var prices []*models.PriceList
		if err := json.Unmarshal(data, &prices); err == nil {
			return prices, nil
		}
	}

	prices, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(prices); err == nil {
		cache.SetCached(ctx, priceListCacheKey, data, 10*time.Minute)
	}
	return prices, nil
}

func (s *PriceListService) UpdatePriceList(ctx context.Context, p *models.PriceList) error {
	if err := validatePriceList(p); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return err
	}
	cache.InvalidatePriceCaches(ctx)
	return nil
}

func (s *PriceListService) DeletePriceList(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidatePriceCaches(ctx)
	return nil
}

func validatePriceList(p *models.PriceList) error {
	if !models.ValidServiceClass(p.ServiceClass) {
		return fmt.Errorf("%w: unknown service class %q", ErrValidation, p.ServiceClass)
	}
	if !models.ValidServiceType(p.ServiceType) {
		return fmt.Errorf("%w: unknown service type %q", ErrValidation, p.ServiceType)
	}
	return nil
}
