package application

import (
	"math"

	"github.com/oksasatya/procrm-api/internal/domain/entity"
)

// Analytics is the aggregate view over the whole lead collection.
// pipelineValue covers open (non-closed) leads only; the closed sum is
// reported separately as closedValue.
type Analytics struct {
	TotalLeads     int            `json:"totalLeads"`
	ClosedDeals    int            `json:"closedDeals"`
	ClosedValue    float64        `json:"closedValue"`
	PipelineValue  float64        `json:"pipelineValue"`
	AvgDealValue   float64        `json:"avgDealValue"`
	ConversionRate float64        `json:"conversionRate"`
	StageBreakdown StageBreakdown `json:"stageBreakdown"`
}

// StageBreakdown holds per-stage lead counts. Struct fields keep the JSON
// output in canonical funnel order.
type StageBreakdown struct {
	Prospect    int `json:"prospect"`
	Qualified   int `json:"qualified"`
	Negotiation int `json:"negotiation"`
	Closed      int `json:"closed"`
}

// Count returns the breakdown entry for a stage.
func (b StageBreakdown) Count(stage string) int {
	switch stage {
	case entity.StageProspect:
		return b.Prospect
	case entity.StageQualified:
		return b.Qualified
	case entity.StageNegotiation:
		return b.Negotiation
	case entity.StageClosed:
		return b.Closed
	}
	return 0
}

// FunnelStage is one row of the funnel view: how many leads sit in the stage
// and what share of all leads that is.
type FunnelStage struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Funnel is the per-stage distribution, in canonical funnel order.
type Funnel struct {
	Prospect    FunnelStage `json:"prospect"`
	Qualified   FunnelStage `json:"qualified"`
	Negotiation FunnelStage `json:"negotiation"`
	Closed      FunnelStage `json:"closed"`
}

// ComputeAnalytics derives the aggregate metrics from a lead sequence.
// Rates are 0 when the collection is empty. Rounding is half-away-from-zero
// (math.Round): two decimals for money/rate metrics.
func ComputeAnalytics(leads []entity.Lead) Analytics {
	a := Analytics{TotalLeads: len(leads)}

	for i := range leads {
		l := &leads[i]
		switch l.Stage {
		case entity.StageProspect:
			a.StageBreakdown.Prospect++
		case entity.StageQualified:
			a.StageBreakdown.Qualified++
		case entity.StageNegotiation:
			a.StageBreakdown.Negotiation++
		case entity.StageClosed:
			a.StageBreakdown.Closed++
		}
		if l.Open() {
			a.PipelineValue += l.DealValue
		} else {
			a.ClosedDeals++
			a.ClosedValue += l.DealValue
		}
	}

	if a.TotalLeads > 0 {
		a.AvgDealValue = round2(a.PipelineValue / float64(a.TotalLeads))
		a.ConversionRate = round2(float64(a.ClosedDeals) / float64(a.TotalLeads) * 100)
	}
	return a
}

// ComputeFunnel derives the per-stage count/percentage distribution.
// Percentages are rounded to one decimal and 0 for an empty collection.
func ComputeFunnel(leads []entity.Lead) Funnel {
	total := len(leads)
	counts := map[string]int{}
	for i := range leads {
		counts[leads[i].Stage]++
	}

	stage := func(name string) FunnelStage {
		n := counts[name]
		fs := FunnelStage{Count: n}
		if total > 0 {
			fs.Percentage = round1(float64(n) / float64(total) * 100)
		}
		return fs
	}

	return Funnel{
		Prospect:    stage(entity.StageProspect),
		Qualified:   stage(entity.StageQualified),
		Negotiation: stage(entity.StageNegotiation),
		Closed:      stage(entity.StageClosed),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
