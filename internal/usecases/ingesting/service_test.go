package ingesting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const sampleCSV = `customer_id,touchpoint,timestamp,channel_cost,channel_type,is_conversion,purchase_value
CUST_0001,Facebook Ad,2026-01-10 08:00:00,2.50,paid,false,0
CUST_0001,Email,2026-01-11 09:30:00,0.10,organic,false,0
CUST_0001,Purchase,2026-01-12T10:00:00Z,0,conversion,true,149.90
`

func TestImportCSVAppendsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTouchpointRepository(ctrl)

	var captured []domain.Touchpoint
	repo.EXPECT().
		AppendBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tps []domain.Touchpoint) error {
			captured = tps
			return nil
		})

	service := NewService(repo)

	summary, err := service.ImportCSV(context.Background(), strings.NewReader(sampleCSV), false)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RowsImported)
	assert.Equal(t, 0, summary.RowsSkipped)
	assert.False(t, summary.Replaced)
	assert.NotEmpty(t, summary.BatchID)

	require.Len(t, captured, 3)
	assert.Equal(t, "CUST_0001", captured[0].CustomerID)
	assert.Equal(t, "Facebook Ad", captured[0].Channel)
	assert.Equal(t, "paid", captured[0].ChannelType)
	assert.Equal(t, 2.50, captured[0].ChannelCost)
	assert.False(t, captured[0].IsConversion)

	assert.True(t, captured[2].IsConversion)
	assert.Equal(t, 149.90, captured[2].PurchaseValue)
	assert.True(t, captured[2].Timestamp.Equal(time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)))
}

func TestImportCSVReplaceUsesReplaceAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTouchpointRepository(ctrl)
	repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	service := NewService(repo)

	summary, err := service.ImportCSV(context.Background(), strings.NewReader(sampleCSV), true)
	require.NoError(t, err)
	assert.True(t, summary.Replaced)
	assert.Equal(t, 3, summary.RowsImported)
}

func TestImportCSVSkipsMalformedRows(t *testing.T) {
	csv := `customer_id,touchpoint,timestamp,channel_cost,channel_type,is_conversion,purchase_value
CUST_0001,Email,2026-01-10 08:00:00,0.10,organic,false,0
,Email,2026-01-10 08:00:00,0.10,organic,false,0
CUST_0002,,2026-01-10 08:00:00,0.10,organic,false,0
CUST_0003,Email,nao-e-data,0.10,organic,false,0
CUST_0004,Email,2026-01-10 08:00:00,abc,organic,false,0
CUST_0005,Email,2026-01-10 08:00:00,0.10,organic,talvez,0
CUST_0006,Direct,2026-01-10,0,organic,false,0
`

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTouchpointRepository(ctrl)

	var captured []domain.Touchpoint
	repo.EXPECT().
		AppendBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tps []domain.Touchpoint) error {
			captured = tps
			return nil
		})

	service := NewService(repo)

	summary, err := service.ImportCSV(context.Background(), strings.NewReader(csv), false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RowsImported)
	assert.Equal(t, 5, summary.RowsSkipped)

	require.Len(t, captured, 2)
	assert.Equal(t, "CUST_0001", captured[0].CustomerID)
	assert.Equal(t, "CUST_0006", captured[1].CustomerID)
	assert.True(t, captured[1].Timestamp.Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))
}

func TestImportCSVMissingColumn(t *testing.T) {
	csv := `customer_id,touchpoint,timestamp
CUST_0001,Email,2026-01-10 08:00:00
`

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockTouchpointRepository(ctrl))

	_, err := service.ImportCSV(context.Background(), strings.NewReader(csv), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coluna obrigatória ausente")
}

func TestImportCSVNoValidRows(t *testing.T) {
	csv := `customer_id,touchpoint,timestamp,channel_cost,channel_type,is_conversion,purchase_value
,Email,2026-01-10 08:00:00,0.10,organic,false,0
`

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockTouchpointRepository(ctrl))

	_, err := service.ImportCSV(context.Background(), strings.NewReader(csv), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nenhum touchpoint válido")
}

func TestImportCSVRepositoryErrorIsSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTouchpointRepository(ctrl)
	repo.EXPECT().AppendBatch(gomock.Any(), gomock.Any()).Return(assert.AnError)

	service := NewService(repo)

	_, err := service.ImportCSV(context.Background(), strings.NewReader(sampleCSV), false)
	require.ErrorIs(t, err, assert.AnError)
}
