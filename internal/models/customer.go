package models

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/relation"
)

type Customer struct {
	ID           string                     `json:"_id"`
	Name         string                     `json:"name"`
	Email        string                     `json:"email"`
	Phone        string                     `json:"phone"`
	Status       string                     `json:"status"`
	TotalOrders  int                        `json:"totalOrders"`
	TotalSpent   float64                    `json:"totalSpent"`
	Location     relation.Relation[Address] `json:"location"`
	RecentOrders []Order                    `json:"recentOrders,omitempty"`
	CreatedAt    time.Time                  `json:"createdAt"`
}
