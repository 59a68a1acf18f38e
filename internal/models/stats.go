package models

import "github.com/shopspring/decimal"

// StatsFilters narrows the rows considered by the aggregation.
// A nil field imposes no constraint.
type StatsFilters struct {
	Year  *Ref
	Class *Ref
	Level *Ref
	Track *Ref
}

// StatsRow is one payment record joined with its enrollment and class
type StatsRow struct {
	PaymentRecordID uint
	ClassLabel      *string
	Level           *string
	Track           *string
	DiscountedFee   *decimal.Decimal
	TotalPaid       decimal.Decimal
}

// ClassBreakdown is the per-class amounts of a StatsReport
type ClassBreakdown struct {
	Name        string `json:"name"`
	Paid        int64  `json:"paid"`
	Outstanding int64  `json:"outstanding"`
	Total       int64  `json:"total"`
}

// GroupCount counts paying records under a group key
type GroupCount struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// StatsReport aggregates tuition collection over a filtered set of records
type StatsReport struct {
	TotalEnrolled      int64            `json:"total_inscrits"`
	TotalRecords       int64            `json:"total_recouvrements"`
	GlobalEnrolled     int64            `json:"global_inscrits"`
	GlobalRecords      int64            `json:"global_recouvrements"`
	TotalFees          int64            `json:"total_frais"`
	TotalPaid          int64            `json:"total_paye"`
	TotalOutstanding   int64            `json:"total_reste"`
	PaidPercentage     float64          `json:"pourcentage_paye"`
	OutstandingPercent float64          `json:"pourcentage_reste"`
	ByClass            []ClassBreakdown `json:"par_classe"`
	ByLevel            []GroupCount     `json:"par_niveau"`
	ByTrack            []GroupCount     `json:"par_option"`
}
