package service

import (
	"math"

	"github.com/alexanderramin/drillrota/internal/contract"
	"github.com/alexanderramin/drillrota/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the statistics panel figures for a result.
func Summarize(res domain.ScheduleResult) contract.ScheduleSummary {
	sum := contract.ScheduleSummary{
		TotalDays:          res.TotalDays,
		ViolationCount:     len(res.Violations),
		S3FirstActiveDay:   -1,
		S3FirstDrillingDay: -1,
	}

	counts := make([]float64, len(res.DrillingCount))
	for i, c := range res.DrillingCount {
		sum.DrillingPersonDays += c
		if c == 2 {
			sum.ValidDays++
		}
		counts[i] = float64(c)
	}

	if len(counts) > 0 {
		mean, std := stat.MeanStdDev(counts, nil)
		sum.MeanDrillers = mean
		if !math.IsNaN(std) {
			sum.StdDevDrillers = std
		}
	}

	if len(res.Supervisors) >= 3 {
		s3 := res.Supervisors[2]
		sum.S3FirstActiveDay = s3.FirstActiveDay()
		sum.S3FirstDrillingDay = s3.FirstDayWith(domain.StatusDrilling)
	}
	return sum
}

// GroupViolations splits violations by kind. Every kind gets a group, in
// rendering order, even when it is empty.
func GroupViolations(violations []domain.Violation) []contract.ViolationGroup {
	groups := make([]contract.ViolationGroup, len(domain.ViolationKinds))
	index := make(map[domain.ViolationKind]int, len(domain.ViolationKinds))
	for i, k := range domain.ViolationKinds {
		groups[i] = contract.ViolationGroup{Kind: k, Violations: []domain.Violation{}}
		index[k] = i
	}
	for _, v := range violations {
		i, ok := index[v.Kind]
		if !ok {
			continue
		}
		groups[i].Violations = append(groups[i].Violations, v)
	}
	return groups
}
