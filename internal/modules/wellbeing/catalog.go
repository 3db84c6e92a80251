package wellbeing

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/domain/wellbeing"
)

const CatalogPathEnv = "INSIGHT_CATALOG_YAML"

//go:embed catalog.yaml
var catalogFS embed.FS

// InsightSet is one full set of generator output.
type InsightSet struct {
	Insights        []types.UserInsight    `yaml:"insights"`
	Correlations    []types.Correlation    `yaml:"correlations"`
	StressFactors   []types.StressFactor   `yaml:"stressFactors"`
	Recommendations []types.Recommendation `yaml:"recommendations"`
}

type Catalog struct {
	Version  int        `yaml:"version"`
	Catalog  InsightSet `yaml:"catalog"`
	Fallback InsightSet `yaml:"fallback"`
}

// DefaultCatalog parses the embedded catalog. It panics if the embedded file is broken, which
// only a bad build can cause.
func DefaultCatalog() *Catalog {
	data, err := catalogFS.ReadFile("catalog.yaml")
	if err != nil {
		panic(fmt.Sprintf("wellbeing: read embedded catalog: %v", err))
	}
	c, err := ParseCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("wellbeing: embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads the catalog at path, or the embedded one when path is blank.
func LoadCatalog(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if c == nil {
		return errors.New("missing catalog")
	}
	for name, set := range map[string]InsightSet{"catalog": c.Catalog, "fallback": c.Fallback} {
		if len(set.Insights) == 0 || len(set.Correlations) == 0 ||
			len(set.StressFactors) == 0 || len(set.Recommendations) == 0 {
			return fmt.Errorf("%s: every section needs at least one entry", name)
		}
		for i, in := range set.Insights {
			switch in.Type {
			case wellbeing.InsightObservation, wellbeing.InsightPattern, wellbeing.InsightAnomaly:
			default:
				return fmt.Errorf("%s: insight %d: unknown type %q", name, i, in.Type)
			}
		}
		for i, rec := range set.Recommendations {
			switch rec.Category {
			case wellbeing.CategoryActivity, wellbeing.CategorySleep, wellbeing.CategoryScreen,
				wellbeing.CategorySocial, wellbeing.CategoryLocation:
			default:
				return fmt.Errorf("%s: recommendation %d: unknown category %q", name, i, rec.Category)
			}
		}
	}
	return nil
}

// clone returns a deep copy so callers can append or edit without touching the catalog.
func (s InsightSet) clone() InsightSet {
	out := InsightSet{
		Insights:        make([]types.UserInsight, len(s.Insights)),
		Correlations:    append([]types.Correlation(nil), s.Correlations...),
		StressFactors:   append([]types.StressFactor(nil), s.StressFactors...),
		Recommendations: append([]types.Recommendation(nil), s.Recommendations...),
	}
	for i, in := range s.Insights {
		in.RelatedMetrics = append([]string(nil), in.RelatedMetrics...)
		out.Insights[i] = in
	}
	return out
}
