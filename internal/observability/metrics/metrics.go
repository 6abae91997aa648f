package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal       metric.Int64Counter
	HTTPRequestDuration     metric.Float64Histogram
	AuthRequestsTotal       metric.Int64Counter
	ItinerariesCreatedTotal metric.Int64Counter
	ReviewsCreatedTotal     metric.Int64Counter
	WeatherLookupsTotal     metric.Int64Counter
	DBQueryDurationSeconds  metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments only once,
// reading the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("wanderer")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.AuthRequestsTotal, err = meter.Int64Counter(
			"auth_requests_total",
			metric.WithDescription("Total number of authentication requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_requests_total: %v", err)
		}

		m.ItinerariesCreatedTotal, err = meter.Int64Counter(
			"itineraries_created_total",
			metric.WithDescription("Total number of itineraries saved"),
			metric.WithUnit("{itinerary}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itineraries_created_total: %v", err)
		}

		m.ReviewsCreatedTotal, err = meter.Int64Counter(
			"reviews_created_total",
			metric.WithDescription("Total number of reviews submitted"),
			metric.WithUnit("{review}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create reviews_created_total: %v", err)
		}

		m.WeatherLookupsTotal, err = meter.Int64Counter(
			"weather_lookups_total",
			metric.WithDescription("Total number of upstream weather lookups"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create weather_lookups_total: %v", err)
		}

		m.DBQueryDurationSeconds, err = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics instruments, or nil before InitAppMetrics.
func Get() *AppMetrics {
	return appMetrics
}
