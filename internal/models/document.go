package models

import "time"

type Document struct {
	ID              string     `json:"_id"`
	DriverID        string     `json:"driverId,omitempty"`
	DriverName      string     `json:"driverName"`
	DriverEmail     string     `json:"driverEmail"`
	DocumentType    string     `json:"documentType"`
	DocumentNumber  string     `json:"documentNumber"`
	DocumentURL     string     `json:"documentUrl,omitempty"`
	Status          string     `json:"status"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`
	UploadedAt      time.Time  `json:"uploadedAt"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

type DocumentStats struct {
	PendingDocuments  int `json:"pendingDocuments"`
	ApprovedDocuments int `json:"approvedDocuments"`
	RejectedDocuments int `json:"rejectedDocuments"`
	ExpiringSoon      int `json:"expiringSoon"`
}
