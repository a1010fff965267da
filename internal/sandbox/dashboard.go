package sandbox

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chrisdamba/foodadmin/internal/models"
)

var ongoing = map[string]bool{
	models.OrderStatusAssigned:  true,
	models.OrderStatusPickedUp:  true,
	models.OrderStatusInTransit: true,
}

func (s *Server) dashboardStats(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var stats models.DashboardStats
	var thisWeek, lastWeek int
	for _, d := range s.store.drivers {
		if d.Status == models.DriverStatusActive || d.Status == models.DriverStatusBusy {
			stats.ActiveDrivers++
		}
	}
	for _, o := range s.store.orders {
		switch {
		case o.Status == models.OrderStatusDelivered:
			stats.TotalDeliveries++
		case ongoing[o.Status]:
			stats.OngoingDeliveries++
			stats.ActiveOrders++
		case o.Status != models.OrderStatusCancelled:
			stats.ActiveOrders++
		}
		switch {
		case o.CreatedAt.After(weekAgo):
			thisWeek++
		case o.CreatedAt.After(twoWeeksAgo):
			lastWeek++
		}
	}
	change := percentChange(thisWeek, lastWeek)
	stats.ActiveOrdersChange = change
	stats.TotalDeliveriesChange = change
	stats.OngoingDeliveriesChange = change
	ok(c, http.StatusOK, stats, "")
}

func percentChange(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round(float64(current-previous)/float64(previous)*1000) / 10
}

func (s *Server) chartData(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	today := startOfDay(s.now())
	points := make([]models.ChartPoint, 7)
	for i := range points {
		day := today.AddDate(0, 0, i-6)
		points[i].Date = day.Format(time.DateOnly)
	}
	for _, o := range s.store.orders {
		if o.Status != models.OrderStatusDelivered {
			continue
		}
		days := int(today.Sub(startOfDay(o.CreatedAt)).Hours() / 24)
		if days >= 0 && days < 7 {
			points[6-days].Value += o.Totals().Total
		}
	}
	ok(c, http.StatusOK, points, "")
}

func (s *Server) suggestions(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var pendingDocs, pendingOrders, inactiveDrivers int
	for _, d := range s.store.documents {
		if d.Status == models.DocumentStatusPending {
			pendingDocs++
		}
	}
	for _, o := range s.store.orders {
		if o.Status == models.OrderStatusPending {
			pendingOrders++
		}
	}
	for _, d := range s.store.drivers {
		if d.Status == models.DriverStatusInactive {
			inactiveDrivers++
		}
	}

	out := []models.Suggestion{}
	if pendingOrders > 0 {
		out = append(out, models.Suggestion{
			ID:          "pending-orders",
			Title:       "Confirm waiting orders",
			Description: fmt.Sprintf("%d order(s) are still pending confirmation.", pendingOrders),
			Priority:    "high",
		})
	}
	if pendingDocs > 0 {
		out = append(out, models.Suggestion{
			ID:          "pending-documents",
			Title:       "Review driver documents",
			Description: fmt.Sprintf("%d document(s) are waiting for review.", pendingDocs),
			Priority:    "medium",
		})
	}
	if inactiveDrivers > 0 {
		out = append(out, models.Suggestion{
			ID:          "inactive-drivers",
			Title:       "Clean up inactive drivers",
			Description: fmt.Sprintf("%d driver(s) are inactive.", inactiveDrivers),
			Priority:    "low",
		})
	}
	ok(c, http.StatusOK, out, "")
}
