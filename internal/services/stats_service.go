package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/internal/tuition"
)

// StatsService aggregates tuition collection over filtered payment records
type StatsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Aggregate builds the report for the records matching filters, along with
// the unfiltered global counts.
func (s *StatsService) Aggregate(ctx context.Context, filters models.StatsFilters) (*models.StatsReport, error) {
	globalEnrolled, globalRecords, err := s.repo.GlobalCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("global counts: %w", err)
	}

	enrolled, err := s.repo.CountEnrollments(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}

	rows, err := s.repo.Rows(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("load payment rows: %w", err)
	}

	report := Fold(rows)
	report.TotalEnrolled = enrolled
	report.GlobalEnrolled = globalEnrolled
	report.GlobalRecords = globalRecords
	return report, nil
}

type classTotals struct {
	paid decimal.Decimal
	fees decimal.Decimal
}

// Fold reduces payment rows to the amounts, percentages and breakdowns of a
// report. Counts of enrollments are left to the caller.
func Fold(rows []models.StatsRow) *models.StatsReport {
	totalFees := decimal.Zero
	totalPaid := decimal.Zero
	byClass := make(map[string]*classTotals)
	byLevel := make(map[string]int64)
	byTrack := make(map[string]int64)

	for _, row := range rows {
		fee := decimal.Zero
		if row.DiscountedFee != nil {
			fee = *row.DiscountedFee
		}
		totalFees = totalFees.Add(fee)
		totalPaid = totalPaid.Add(row.TotalPaid)

		name := groupName(row.ClassLabel)
		ct, ok := byClass[name]
		if !ok {
			ct = &classTotals{}
			byClass[name] = ct
		}
		ct.paid = ct.paid.Add(row.TotalPaid)
		ct.fees = ct.fees.Add(fee)

		if row.TotalPaid.IsPositive() {
			byLevel[models.LevelLabel(row.Level)]++
			byTrack[models.TrackLabel(row.Track)]++
		}
	}

	outstanding := tuition.Outstanding(totalFees, totalPaid)

	report := &models.StatsReport{
		TotalRecords:       int64(len(rows)),
		TotalFees:          toInt(totalFees),
		TotalPaid:          toInt(totalPaid),
		TotalOutstanding:   toInt(outstanding),
		PaidPercentage:     percent(totalPaid, totalFees),
		OutstandingPercent: percent(outstanding, totalFees),
		ByClass:            make([]models.ClassBreakdown, 0, len(byClass)),
		ByLevel:            counts(byLevel),
		ByTrack:            counts(byTrack),
	}

	for name, ct := range byClass {
		report.ByClass = append(report.ByClass, models.ClassBreakdown{
			Name:        name,
			Paid:        toInt(ct.paid),
			Outstanding: toInt(tuition.Outstanding(ct.fees, ct.paid)),
			Total:       toInt(ct.fees),
		})
	}
	sort.Slice(report.ByClass, func(i, j int) bool {
		return report.ByClass[i].Name < report.ByClass[j].Name
	})

	return report
}

func groupName(label *string) string {
	if label == nil || *label == "" {
		return models.NotApplicable
	}
	return *label
}

func counts(m map[string]int64) []models.GroupCount {
	out := make([]models.GroupCount, 0, len(m))
	for name, total := range m {
		out = append(out, models.GroupCount{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// percent returns 100*part/whole rounded to one decimal, 0 when whole is not positive
func percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Mul(decimal.NewFromInt(100)).Div(whole).Round(1).InexactFloat64()
}

// toInt truncates an amount to whole units
func toInt(d decimal.Decimal) int64 {
	return d.IntPart()
}
