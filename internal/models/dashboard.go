package models

type DashboardStats struct {
	ActiveDrivers           int     `json:"activeDrivers"`
	ActiveDriversChange     float64 `json:"activeDriversChange"`
	ActiveOrders            int     `json:"activeOrders"`
	ActiveOrdersChange      float64 `json:"activeOrdersChange"`
	TotalDeliveries         int     `json:"totalDeliveries"`
	TotalDeliveriesChange   float64 `json:"totalDeliveriesChange"`
	OngoingDeliveries       int     `json:"ongoingDeliveries"`
	OngoingDeliveriesChange float64 `json:"ongoingDeliveriesChange"`
}

type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Suggestion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}
