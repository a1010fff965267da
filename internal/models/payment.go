package models

import "time"

type Payment struct {
	ID            string    `json:"_id"`
	TransactionID string    `json:"transactionId"`
	OrderID       string    `json:"orderId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentStats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingAmount      float64 `json:"pendingAmount"`
	CompletedToday     int     `json:"completedToday"`
	FailedTransactions int     `json:"failedTransactions"`
}
