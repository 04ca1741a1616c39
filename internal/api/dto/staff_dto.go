package dto

import "github.com/spec-kit/boutique-service/internal/domain"

// StaffResponse payload.
type StaffResponse struct {
	Name      string           `json:"name"`
	Role      domain.StaffRole `json:"role"`
	ReportsTo string           `json:"reports_to,omitempty"`
	Active    bool             `json:"active"`
}
