package dto

import "github.com/spec-kit/boutique-service/internal/domain"

// WorkTypeCountResponse is one work type's distinct-order count and target.
type WorkTypeCountResponse struct {
	WorkType domain.WorkType `json:"work_type"`
	Count    int             `json:"count"`
	Target   int             `json:"target,omitempty"`
}

// DailyPerformanceResponse is one staff member's daily rollup.
type DailyPerformanceResponse struct {
	StaffName string                  `json:"staff_name"`
	ReportsTo string                  `json:"reports_to,omitempty"`
	Counts    []WorkTypeCountResponse `json:"counts"`
}

// RangePerformanceResponse is one staff member's ranged rollup.
type RangePerformanceResponse struct {
	StaffName   string                  `json:"staff_name"`
	ReportsTo   string                  `json:"reports_to,omitempty"`
	Counts      []WorkTypeCountResponse `json:"counts"`
	Days        int                     `json:"days"`
	TotalOrders int                     `json:"total_orders"`
	PerDayRate  float64                 `json:"per_day_rate"`
}
