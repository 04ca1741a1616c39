package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/repository"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// Urgency classifies how pressing an order is relative to a reference date.
type Urgency string

const (
	UrgencyDelivered Urgency = "Delivered"
	UrgencyNoDueDate Urgency = "No due date"
	UrgencyOverdue   Urgency = "Overdue"
	UrgencyWithin7   Urgency = "Within 7 days"
	UrgencyWithin14  Urgency = "Within 14 days"
	UrgencyBeyond14  Urgency = "Beyond 14 days"
)

// OrderUrgency pairs an order with its urgency classification.
type OrderUrgency struct {
	OrderID     int64        `json:"order_id"`
	OrderNumber string       `json:"order_number"`
	ClientName  string       `json:"client_name"`
	DueDate     string       `json:"due_date"`
	Stage       domain.Stage `json:"stage"`
	Urgency     Urgency      `json:"urgency"`
}

// DashboardSummary is the derived dashboard view over the full order set.
// Delivered orders never appear in the overdue or due buckets. The stage
// distribution only carries stages holding at least one order.
type DashboardSummary struct {
	Today             string               `json:"today"`
	TotalOrders       int                  `json:"total_orders"`
	Overdue           int                  `json:"overdue"`
	DueToday          int                  `json:"due_today"`
	DueWithin7        int                  `json:"due_within_7"`
	OverdueOrders     []domain.Order       `json:"overdue_orders"`
	DueTodayOrders    []domain.Order       `json:"due_today_orders"`
	Urgency           []OrderUrgency       `json:"urgency"`
	StageDistribution map[domain.Stage]int `json:"stage_distribution"`
}

// DashboardService computes dashboard rollups on demand. A short-TTL redis
// cache keyed by the reference date is optional; the service runs without it.
type DashboardService struct {
	orders   repository.OrderRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewDashboardService constructs the service. cache may be nil and ttl zero
// to disable caching.
func NewDashboardService(orders repository.OrderRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	return &DashboardService{orders: orders, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Summary builds the dashboard for an explicit reference date. The date is
// always caller-supplied; this service never reads the wall clock.
func (s *DashboardService) Summary(ctx context.Context, today string) (*DashboardSummary, error) {
	todayDate, err := parseDate("today", today)
	if err != nil {
		return nil, err
	}

	if cached := s.readCache(ctx, today); cached != nil {
		return cached, nil
	}

	orders, err := s.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	summary := BuildDashboardSummary(orders, todayDate, today)
	s.writeCache(ctx, today, summary)
	return summary, nil
}

// BuildDashboardSummary is the pure rollup over an order set.
func BuildDashboardSummary(orders []domain.Order, today time.Time, todayStr string) *DashboardSummary {
	summary := &DashboardSummary{
		Today:             todayStr,
		TotalOrders:       len(orders),
		OverdueOrders:     []domain.Order{},
		DueTodayOrders:    []domain.Order{},
		Urgency:           make([]OrderUrgency, 0, len(orders)),
		StageDistribution: make(map[domain.Stage]int),
	}

	for _, order := range orders {
		summary.StageDistribution[order.CurrentStage]++
		summary.Urgency = append(summary.Urgency, OrderUrgency{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			ClientName:  order.ClientName,
			DueDate:     order.DueDate,
			Stage:       order.CurrentStage,
			Urgency:     ClassifyUrgency(order, today),
		})

		if order.CurrentStage == domain.StageDelivered {
			continue
		}
		due, err := time.Parse(dateLayout, order.DueDate)
		if err != nil {
			continue
		}
		days := daysUntil(today, due)
		switch {
		case days < 0:
			summary.Overdue++
			summary.OverdueOrders = append(summary.OverdueOrders, order)
		case days == 0:
			summary.DueToday++
			summary.DueTodayOrders = append(summary.DueTodayOrders, order)
		}
		if days >= 0 && days <= 7 {
			summary.DueWithin7++
		}
	}
	return summary
}

// ClassifyUrgency evaluates the urgency rules in priority order: delivered
// beats everything, then missing due date, then the time buckets.
func ClassifyUrgency(order domain.Order, today time.Time) Urgency {
	if order.CurrentStage == domain.StageDelivered {
		return UrgencyDelivered
	}
	due, err := time.Parse(dateLayout, order.DueDate)
	if err != nil {
		return UrgencyNoDueDate
	}
	days := daysUntil(today, due)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= 7:
		return UrgencyWithin7
	case days <= 14:
		return UrgencyWithin14
	default:
		return UrgencyBeyond14
	}
}

// daysUntil counts whole calendar days from today to due; negative when
// due is in the past.
func daysUntil(today, due time.Time) int {
	return int(due.Sub(today).Hours() / 24)
}

const dashboardCachePrefix = "dashboard:summary:"

func (s *DashboardService) readCache(ctx context.Context, today string) *DashboardSummary {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.Get(ctx, dashboardCachePrefix+today).Bytes()
	if err != nil {
		return nil
	}
	var summary DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *DashboardService) writeCache(ctx context.Context, today string, summary *DashboardSummary) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCachePrefix+today, raw, s.cacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}
