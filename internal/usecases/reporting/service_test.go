package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/attributing/mocks"
	"go.uber.org/mock/gomock"
)

func exportReport(model domain.ModelType) *domain.AttributionReport {
	return &domain.AttributionReport{
		ModelType:            model,
		TotalConversions:     4,
		TotalConversionValue: 400.0,
		Channels: []*domain.ChannelMetrics{
			{
				Channel:               "Email",
				AttributionPercentage: 75.0,
				AttributedConversions: 3.0,
				TotalAppearances:      6,
				SuccessRate:           0.5,
				TotalCost:             30.0,
				AttributedRevenue:     300.0,
				ROI:                   9.0,
				CPA:                   10.0,
			},
			{
				Channel:               "Direct",
				AttributionPercentage: 25.0,
				AttributedConversions: 1.0,
				TotalAppearances:      4,
				SuccessRate:           0.25,
				AttributedRevenue:     100.0,
			},
		},
	}
}

func TestExportModelCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attributor := mocks.NewMockAttributor(ctrl)
	attributor.EXPECT().
		CalculateChannelMetrics(gomock.Any(), domain.ModelLinear, gomock.Any()).
		Return(exportReport(domain.ModelLinear), nil)

	service := NewService(attributor)

	content, filename, err := service.ExportModelCSV(context.Background(), domain.ModelLinear, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "linear_results_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, reportHeader, records[0])
	assert.Equal(t, []string{"Email", "75", "3", "6", "0.5", "30", "300", "9", "10"}, records[1])
	assert.Equal(t, []string{"Direct", "25", "1", "4", "0.25", "0", "100", "0", "0"}, records[2])
}

func TestExportModelCSVAttributorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attributor := mocks.NewMockAttributor(ctrl)
	attributor.EXPECT().
		CalculateChannelMetrics(gomock.Any(), domain.ModelFirstTouch, gomock.Any()).
		Return(nil, assert.AnError)

	service := NewService(attributor)

	_, _, err := service.ExportModelCSV(context.Background(), domain.ModelFirstTouch, nil)
	require.ErrorIs(t, err, assert.AnError)
}

func TestExportComparisonWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	models := []domain.ModelType{domain.ModelFirstTouch, domain.ModelLinear}

	attributor := mocks.NewMockAttributor(ctrl)
	attributor.EXPECT().AvailableModels().Return(models).AnyTimes()
	for _, model := range models {
		attributor.EXPECT().
			CalculateChannelMetrics(gomock.Any(), model, gomock.Any()).
			Return(exportReport(model), nil)
	}

	service := NewService(attributor)

	content, filename, err := service.ExportComparisonWorkbook(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "attribution_comparison_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)

	sheets := file.GetSheetList()
	assert.Contains(t, sheets, "First Touch")
	assert.Contains(t, sheets, "Linear")
	assert.Contains(t, sheets, "Summary")
	assert.NotContains(t, sheets, "Sheet1")

	value, err := file.GetCellValue("Linear", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Email", value)

	value, err = file.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "channel", value)

	value, err = file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "First Touch Attribution %", value)
}

func TestExportComparisonWorkbookModelError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attributor := mocks.NewMockAttributor(ctrl)
	attributor.EXPECT().AvailableModels().
		Return([]domain.ModelType{domain.ModelFirstTouch}).AnyTimes()
	attributor.EXPECT().
		CalculateChannelMetrics(gomock.Any(), domain.ModelFirstTouch, gomock.Any()).
		Return(nil, assert.AnError)

	service := NewService(attributor)

	_, _, err := service.ExportComparisonWorkbook(context.Background(), nil)
	require.Error(t, err)
}
