package wellbeing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/domain/wellbeing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.Catalog.Insights, 4)
	assert.Len(t, c.Catalog.Correlations, 4)
	assert.Len(t, c.Catalog.StressFactors, 4)
	assert.Len(t, c.Catalog.Recommendations, 4)

	assert.Len(t, c.Fallback.Insights, 2)
	assert.Len(t, c.Fallback.Correlations, 2)
	assert.Len(t, c.Fallback.StressFactors, 2)
	assert.Len(t, c.Fallback.Recommendations, 2)

	assert.Equal(t, wellbeing.InsightAnomaly, c.Catalog.Insights[3].Type)
	assert.Equal(t, 0.9, c.Catalog.Insights[3].Confidence)
	assert.Equal(t, -0.58, c.Catalog.Correlations[1].CorrelationStrength)
	assert.Equal(t, wellbeing.CategoryLocation, c.Catalog.Recommendations[3].Category)
}

func TestProcessWithRecords(t *testing.T) {
	p := NewProcessor(nil, nil)
	recs := recordsWithStress(3, 1, 2)

	out := p.Process("u00", recs)
	assert.Equal(t, "u00", out.UserID)
	assert.Equal(t, recs, out.Records)
	assert.Len(t, out.Insights, 4)
	assert.Len(t, out.Recommendations, 4)
	assert.Equal(t, "Your stress levels are typically higher on days with less physical activity", out.Insights[0].Description)
}

func TestProcessIgnoresContent(t *testing.T) {
	p := NewProcessor(nil, nil)
	a := p.Process("u00", recordsWithStress(1))
	b := p.Process("u00", recordsWithStress(5, 5, 5, 5))
	assert.Equal(t, a.Insights, b.Insights)
	assert.Equal(t, a.Correlations, b.Correlations)
	assert.Equal(t, a.StressFactors, b.StressFactors)
	assert.Equal(t, a.Recommendations, b.Recommendations)
}

func TestProcessFallback(t *testing.T) {
	p := NewProcessor(nil, nil)
	out := p.Process("nobody", nil)
	assert.NotNil(t, out.Records)
	assert.Empty(t, out.Records)
	assert.Len(t, out.Insights, 2)
	assert.Len(t, out.Correlations, 2)
	assert.Len(t, out.StressFactors, 2)
	assert.Len(t, out.Recommendations, 2)
	assert.Equal(t, 0.82, out.Insights[0].Confidence)
}

func TestProcessReturnsFreshSlices(t *testing.T) {
	p := NewProcessor(nil, nil)
	first := p.Process("u00", recordsWithStress(1))
	first.Insights[0].Description = "changed"
	first.Insights[0].RelatedMetrics[0] = "changed"
	_ = append(first.Recommendations[:1], types.Recommendation{Description: "extra"})

	second := p.Process("u00", recordsWithStress(1))
	assert.NotEqual(t, "changed", second.Insights[0].Description)
	assert.Equal(t, "on_foot", second.Insights[0].RelatedMetrics[0])
	assert.NotEqual(t, "extra", second.Recommendations[1].Description)
}

func TestLoadCatalogOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	body := `
catalog:
  insights: [{type: observation, description: a, confidence: 0.1, relatedMetrics: [hour]}]
  correlations: [{factor1: hour, factor2: stress_level, correlationStrength: 0.2, description: b}]
  stressFactors: [{factor: hour, impact: 0.3, description: c}]
  recommendations: [{category: sleep, description: d, expectedImpact: 0.4, confidence: 0.5}]
fallback:
  insights: [{type: anomaly, description: e, confidence: 0.1, relatedMetrics: []}]
  correlations: [{factor1: hour, factor2: stress_level, correlationStrength: 0.2, description: f}]
  stressFactors: [{factor: hour, impact: 0.3, description: g}]
  recommendations: [{category: social, description: h, expectedImpact: 0.4, confidence: 0.5}]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	out := NewProcessor(c, nil).Process("u00", recordsWithStress(1))
	require.Len(t, out.Insights, 1)
	assert.Equal(t, "a", out.Insights[0].Description)
}

func TestParseCatalogRejectsUnknownCategory(t *testing.T) {
	body := `
catalog:
  insights: [{type: observation, description: a}]
  correlations: [{factor1: x, factor2: y}]
  stressFactors: [{factor: x}]
  recommendations: [{category: diet, description: d}]
fallback:
  insights: [{type: observation, description: a}]
  correlations: [{factor1: x, factor2: y}]
  stressFactors: [{factor: x}]
  recommendations: [{category: sleep, description: d}]
`
	_, err := ParseCatalog([]byte(body))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("catalog: {}"))
	assert.Error(t, err)
}
