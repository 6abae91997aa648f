package weather

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
	"github.com/wandererhq/wanderer/internal/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

const weatherCacheTTL = 10 * time.Minute

// Service serves the banner's current conditions with short-lived caching so
// the upstream is hit at most once per TTL window.
type Service interface {
	Current(ctx context.Context) (*models.CurrentWeather, error)
}

type ServiceImpl struct {
	client Client
	city   string
	cache  *cache.Cache
	logger *zap.Logger
}

func NewServiceImpl(client Client, city string, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		client: client,
		city:   city,
		cache:  cache.New(weatherCacheTTL, 2*weatherCacheTTL),
		logger: logger,
	}
}

func (s *ServiceImpl) Current(ctx context.Context) (*models.CurrentWeather, error) {
	if cached, found := s.cache.Get(s.city); found {
		if current, ok := cached.(*models.CurrentWeather); ok {
			return current, nil
		}
	}

	current, err := s.client.CurrentByCity(ctx, s.city)
	if err != nil {
		return nil, err
	}

	s.cache.Set(s.city, current, cache.DefaultExpiration)
	s.logger.Debug("Weather refreshed", zap.String("city", s.city), zap.Float64("tempC", current.TempC))
	if m := metrics.Get(); m != nil {
		m.WeatherLookupsTotal.Add(ctx, 1)
	}
	return current, nil
}
