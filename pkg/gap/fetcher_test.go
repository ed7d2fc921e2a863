package gap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"research-gap-be/internal/pkg/logger"
	"research-gap-be/pkg/llm"
	"research-gap-be/pkg/llm/llmtest"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestTemporalFetcher_SortedFullWindow(t *testing.T) {
	stub := &llmtest.Stub{Fallback: "2024: 5\n2004: 9\n2015: 30\n1990: 3"}
	f := NewTemporalFetcher(stub, logger.NewNopLogger(), fixedClock)

	result := f.Fetch(context.Background(), "Mental Health in Africa")

	assert.False(t, result.Failed)
	assert.Equal(t, DimensionTemporal, result.Dimension)
	assert.Equal(t, 3, result.Matched)
	require.Len(t, result.Points, 21)
	for i, p := range result.Points {
		assert.Equal(t, YearLabels(fixedClock())[i], p.Label)
	}
	assert.Equal(t, 9, result.Points[0].Value)
	assert.Equal(t, 30, result.Points[11].Value)
	assert.Equal(t, 5, result.Points[20].Value)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, llm.ModelSonar, calls[0].Model)
	assert.Contains(t, calls[0].Messages[0].Content, "from 2004 to 2024")
}

func TestRegionalFetcher_BackfillsEveryRegion(t *testing.T) {
	stub := &llmtest.Stub{Fallback: "Europe: 70\nAfrica: 2\nMars: 100"}
	f := NewRegionalFetcher(stub, logger.NewNopLogger())

	result := f.Fetch(context.Background(), "Topic")

	require.Len(t, result.Points, len(Regions))
	assert.Equal(t, DimensionPoint{Label: "Europe", Value: 70}, result.Points[0])
	assert.Equal(t, DimensionPoint{Label: "Africa", Value: 2}, result.Points[1])
	for _, p := range result.Points[2:] {
		assert.Zero(t, p.Value, p.Label)
	}
}

func TestDemographicFetcher_NothingMatchedStillFull(t *testing.T) {
	f := NewDemographicFetcher(&llmtest.Stub{Fallback: "I cannot estimate that."}, logger.NewNopLogger())

	result := f.Fetch(context.Background(), "Topic")

	assert.Equal(t, 0, result.Matched)
	require.Len(t, result.Points, len(Populations))
	for i, p := range result.Points {
		assert.Equal(t, Populations[i], p.Label)
	}
}

func TestThematicFetcher_NotBackfilled(t *testing.T) {
	f := NewThematicFetcher(&llmtest.Stub{Fallback: "Access: 60%\nStigma: 15%"}, logger.NewNopLogger())

	result := f.Fetch(context.Background(), "Topic")

	assert.Equal(t, []DimensionPoint{{"Access", 60}, {"Stigma", 15}}, result.Points)
}

func TestFetcher_FailureIsAbsorbed(t *testing.T) {
	stub := &llmtest.Stub{FallbackErr: &llm.TransportError{Op: "send", Err: errors.New("refused")}}

	for _, f := range []DimensionFetcher{
		NewTemporalFetcher(stub, logger.NewNopLogger(), fixedClock),
		NewRegionalFetcher(stub, logger.NewNopLogger()),
		NewDemographicFetcher(stub, logger.NewNopLogger()),
		NewThematicFetcher(stub, logger.NewNopLogger()),
	} {
		result := f.Fetch(context.Background(), "Topic")
		assert.True(t, result.Failed, f.Dimension())
		assert.NotNil(t, result.Points)
		assert.Empty(t, result.Points)
	}
}
