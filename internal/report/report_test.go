package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kina524/sql-data-analyzy-app/internal/models"
	"github.com/kina524/sql-data-analyzy-app/internal/report"
)

func TestSummarizeEmpty(t *testing.T) {
	_, ok := report.Summarize(nil)
	assert.False(t, ok)

	_, ok = report.Summarize([]models.User{})
	assert.False(t, ok)
}

func TestSummarizeSingleRecord(t *testing.T) {
	s, ok := report.Summarize([]models.User{
		{ID: 1, Name: "Ann_Lee", Age: 30, IQ: 100, BenchPress: 50},
	})
	require.True(t, ok)

	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 30.0, s.MeanAge, 1e-9)
	assert.InDelta(t, 100.0, s.MeanIQ, 1e-9)
	assert.InDelta(t, 50.0, s.MeanBench, 1e-9)
	assert.Equal(t, 50, s.MaxBench)
	assert.Equal(t, 50, s.MinBench)
}

func TestSummarizeMultipleRecords(t *testing.T) {
	s, ok := report.Summarize([]models.User{
		{Age: 20, IQ: 90, BenchPress: 40},
		{Age: 30, IQ: 110, BenchPress: 60},
		{Age: 40, IQ: 130, BenchPress: 110},
	})
	require.True(t, ok)

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 30.0, s.MeanAge, 1e-9)
	assert.InDelta(t, 110.0, s.MeanIQ, 1e-9)
	assert.InDelta(t, 70.0, s.MeanBench, 1e-9)
	assert.Equal(t, 110, s.MaxBench)
	assert.Equal(t, 40, s.MinBench)
}

func TestFormatRendersOneDecimalPlace(t *testing.T) {
	s, ok := report.Summarize([]models.User{
		{Age: 30, IQ: 100, BenchPress: 50},
		{Age: 31, IQ: 101, BenchPress: 55},
	})
	require.True(t, ok)

	var out bytes.Buffer
	s.Format(&out)

	text := out.String()
	assert.Contains(t, text, "Total users: 2")
	assert.Contains(t, text, "Average age: 30.5")
	assert.Contains(t, text, "Average IQ: 100.5")
	assert.Contains(t, text, "Average bench press: 52.5 kg")
	assert.Contains(t, text, "Max bench press: 55 kg")
	assert.Contains(t, text, "Min bench press: 50 kg")
}
