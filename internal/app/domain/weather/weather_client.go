package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
	"github.com/wandererhq/wanderer/internal/pkg/config"
)

var _ Client = (*OpenWeatherClient)(nil)

// Client fetches current conditions for one city.
type Client interface {
	CurrentByCity(ctx context.Context, city string) (*models.CurrentWeather, error)
}

// OpenWeatherClient talks to the OpenWeatherMap current-weather endpoint.
// The API key lives in server config and never reaches the browser.
type OpenWeatherClient struct {
	cfg        config.WeatherConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOpenWeatherClient(cfg config.WeatherConfig, logger *zap.Logger) *OpenWeatherClient {
	return &OpenWeatherClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// openWeatherResponse is the subset of the upstream payload the banner needs.
type openWeatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (c *OpenWeatherClient) CurrentByCity(ctx context.Context, city string) (*models.CurrentWeather, error) {
	ctx, span := otel.Tracer("WeatherClient").Start(ctx, "CurrentByCity", trace.WithAttributes(
		attribute.String("weather.city", city),
	))
	defer span.End()

	if c.cfg.APIKey == "" {
		err := fmt.Errorf("weather API key is not configured: %w", models.ErrUpstream)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Missing API key")
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		c.cfg.BaseURL, url.QueryEscape(city), url.QueryEscape(c.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Weather upstream request failed", zap.String("city", city), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Upstream request failed")
		return nil, fmt.Errorf("weather service unreachable: %w", models.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Weather upstream returned error",
			zap.String("city", city),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		span.SetStatus(codes.Error, "Upstream error status")
		return nil, fmt.Errorf("weather service returned status %d: %w", resp.StatusCode, models.ErrUpstream)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Upstream decode failed")
		return nil, fmt.Errorf("decoding weather response: %w", models.ErrUpstream)
	}

	current := &models.CurrentWeather{
		City:       payload.Name,
		TempC:      payload.Main.Temp,
		FeelsLikeC: payload.Main.FeelsLike,
		Humidity:   payload.Main.Humidity,
		WindSpeed:  payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		current.Condition = payload.Weather[0].Main
		current.Description = payload.Weather[0].Description
	}

	span.SetStatus(codes.Ok, "Weather fetched")
	return current, nil
}
