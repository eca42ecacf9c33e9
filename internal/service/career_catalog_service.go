package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/compass-edu/compass-api/internal/dto"
	"github.com/compass-edu/compass-api/internal/repository"
)

// CareerCatalogService serves catalog listings. The catalog changes rarely
// (admin edits happen out of band), so listings are cached per filter.
type CareerCatalogService interface {
	List(ctx context.Context, audience, industry string) (dto.CareerListResponse, error)
}

type careerCatalogService struct {
	careers  repository.CareerRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewCareerCatalogService builds the catalog service.
func NewCareerCatalogService(careers repository.CareerRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) CareerCatalogService {
	return &careerCatalogService{
		careers:  careers,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "career_catalog_service").Logger(),
	}
}

func (s *careerCatalogService) List(ctx context.Context, audience, industry string) (dto.CareerListResponse, error) {
	cacheKey := fmt.Sprintf("careers:catalog:%s:%s", audience, industry)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.CareerListResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				s.logger.Debug().Str("cache_key", cacheKey).Msg("catalog cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read catalog cache")
		}
	}

	careers, err := s.careers.List(ctx, repository.CareerFilter{Audience: audience, Industry: industry})
	if err != nil {
		return dto.CareerListResponse{}, err
	}

	items := make([]dto.CareerResponse, 0, len(careers))
	for _, career := range careers {
		items = append(items, dto.NewCareerResponse(career))
	}
	response := dto.CareerListResponse{Items: items}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store catalog cache")
			}
		}
	}

	return response, nil
}
