package dto

import "github.com/spec-kit/boutique-service/internal/domain"

// LogWorkRequest payload for appending a work entry.
type LogWorkRequest struct {
	WorkDate  string           `json:"work_date"`
	OrderID   int64            `json:"order_id"`
	StaffName string           `json:"staff_name"`
	Role      domain.StaffRole `json:"role"`
	WorkType  domain.WorkType  `json:"work_type"`
	Notes     string           `json:"notes"`
}

// WorkEventResponse payload.
type WorkEventResponse struct {
	ID        int64            `json:"id"`
	WorkDate  string           `json:"work_date"`
	OrderID   int64            `json:"order_id"`
	StaffName string           `json:"staff_name"`
	Role      domain.StaffRole `json:"role"`
	WorkType  domain.WorkType  `json:"work_type"`
	Notes     string           `json:"notes,omitempty"`
}
