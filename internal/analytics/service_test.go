package analytics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisrmz-dev/vendoria-backend/pkg/metrics"
)

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)

	svc, err := NewService(&stubRepo{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestServiceRecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	reportMetrics := metrics.NewReportMetrics(registry)
	svc, err := NewService(&stubRepo{}, reportMetrics)
	require.NoError(t, err)

	_, err = svc.StockValue(context.Background())
	require.NoError(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["report_success"])
	assert.True(t, names["report_duration_seconds"])
}

func TestServiceRecordsFailureMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	reportMetrics := metrics.NewReportMetrics(registry)
	svc, err := NewService(&stubRepo{err: assert.AnError}, reportMetrics)
	require.NoError(t, err)

	_, err = svc.StockValue(context.Background())
	require.Error(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["report_failure"])
}
