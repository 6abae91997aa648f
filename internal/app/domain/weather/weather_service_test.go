package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

// countingClient records upstream calls so cache behavior is observable.
type countingClient struct {
	calls   int
	current *models.CurrentWeather
	err     error
}

func (c *countingClient) CurrentByCity(_ context.Context, _ string) (*models.CurrentWeather, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.current, nil
}

func TestCurrent_CachesWithinTTL(t *testing.T) {
	client := &countingClient{current: &models.CurrentWeather{City: "Legazpi City", TempC: 29.4, Condition: "Clouds"}}
	service := NewServiceImpl(client, "Legazpi,PH", zap.NewNop())

	first, err := service.Current(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Legazpi City", first.City)

	second, err := service.Current(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, client.calls)
}

func TestCurrent_UpstreamFailureNotCached(t *testing.T) {
	client := &countingClient{err: models.ErrUpstream}
	service := NewServiceImpl(client, "Legazpi,PH", zap.NewNop())

	_, err := service.Current(context.Background())
	assert.ErrorIs(t, err, models.ErrUpstream)

	_, err = service.Current(context.Background())
	assert.ErrorIs(t, err, models.ErrUpstream)

	// Failures fall through to the upstream each time.
	assert.Equal(t, 2, client.calls)
}
