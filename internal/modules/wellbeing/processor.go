package wellbeing

import (
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// Processor turns a user's records into insights, correlations, stress factors and
// recommendations. The output depends only on whether records is empty.
type Processor struct {
	log     *logger.Logger
	catalog *Catalog
}

func NewProcessor(catalog *Catalog, baseLog *logger.Logger) *Processor {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if baseLog == nil {
		baseLog = logger.NewNop()
	}
	return &Processor{log: baseLog.With("module", "wellbeing"), catalog: catalog}
}

func (p *Processor) Process(userID string, records []types.DailyRecord) types.ProcessedUserData {
	set := p.catalog.Catalog
	out := []types.DailyRecord{}
	if len(records) == 0 {
		p.log.Debug("no records for user; serving fallback insights", "user_id", userID)
		set = p.catalog.Fallback
	} else {
		out = append(out, records...)
	}
	set = set.clone()
	return types.ProcessedUserData{
		UserID:          userID,
		Records:         out,
		Insights:        set.Insights,
		Correlations:    set.Correlations,
		StressFactors:   set.StressFactors,
		Recommendations: set.Recommendations,
	}
}
