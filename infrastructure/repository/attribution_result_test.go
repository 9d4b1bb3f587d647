package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
)

func sampleEntries(modelType domain.ModelType) []*domain.AttributionResultEntry {
	return []*domain.AttributionResultEntry{
		{
			ModelType: modelType,
			Channel:   "Email",
			Metrics: &domain.ChannelMetrics{
				Channel:               "Email",
				AttributionPercentage: 0.6,
				AttributedRevenue:     120.0,
				TotalCost:             0,
			},
		},
		{
			ModelType: modelType,
			Channel:   "Facebook Ad",
			Metrics: &domain.ChannelMetrics{
				Channel:               "Facebook Ad",
				AttributionPercentage: 0.4,
				AttributedRevenue:     80.0,
				TotalCost:             30.0,
				ROI:                   1.67,
			},
		},
	}
}

func TestAttributionResultRepository_ReplaceAndGet(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewAttributionResultRepository(conn)

	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelLinear, sampleEntries(domain.ModelLinear)))

	entries, err := repo.GetByModel(ctx, domain.ModelLinear)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Ordenado por canal
	assert.Equal(t, "Email", entries[0].Channel)
	assert.Equal(t, "Facebook Ad", entries[1].Channel)

	require.NotNil(t, entries[0].Metrics)
	assert.Equal(t, 0.6, entries[0].Metrics.AttributionPercentage)
	assert.Equal(t, 120.0, entries[0].Metrics.AttributedRevenue)
	assert.Equal(t, domain.ModelLinear, entries[0].ModelType)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestAttributionResultRepository_ReplaceRemovesStaleChannels(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewAttributionResultRepository(conn)

	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelLinear, sampleEntries(domain.ModelLinear)))

	// Novo snapshot sem o canal Facebook Ad
	replacement := sampleEntries(domain.ModelLinear)[:1]
	replacement[0].Metrics.AttributedRevenue = 200.0
	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelLinear, replacement))

	entries, err := repo.GetByModel(ctx, domain.ModelLinear)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Email", entries[0].Channel)
	assert.Equal(t, 200.0, entries[0].Metrics.AttributedRevenue)
}

func TestAttributionResultRepository_ModelsAreIsolated(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewAttributionResultRepository(conn)

	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelLinear, sampleEntries(domain.ModelLinear)))
	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelFirstTouch, sampleEntries(domain.ModelFirstTouch)[:1]))

	// Substituir um modelo não toca no outro
	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelLinear, nil))

	linear, err := repo.GetByModel(ctx, domain.ModelLinear)
	require.NoError(t, err)
	assert.Empty(t, linear)

	firstTouch, err := repo.GetByModel(ctx, domain.ModelFirstTouch)
	require.NoError(t, err)
	assert.Len(t, firstTouch, 1)
}

func TestAttributionResultRepository_ListModels(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewAttributionResultRepository(conn)

	models, err := repo.ListModels(ctx)
	require.NoError(t, err)
	assert.Empty(t, models)

	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelLinear, sampleEntries(domain.ModelLinear)))
	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelFirstTouch, sampleEntries(domain.ModelFirstTouch)))

	models, err = repo.ListModels(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.ModelType{domain.ModelFirstTouch, domain.ModelLinear}, models)
}

func TestAttributionResultRepository_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewAttributionResultRepository(conn)

	require.NoError(t, repo.ReplaceForModel(ctx, domain.ModelLinear, sampleEntries(domain.ModelLinear)))

	// Snapshots recém-gravados não são alcançados pela retenção
	removed, err := repo.DeleteOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.Zero(t, removed)

	entries, err := repo.GetByModel(ctx, domain.ModelLinear)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
