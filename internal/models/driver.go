package models

import "time"

type Driver struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	VehicleType     string    `json:"vehicleType"`
	VehicleNumber   string    `json:"vehicleNumber"`
	LicenseNumber   string    `json:"licenseNumber"`
	Rating          float64   `json:"rating"`
	TotalDeliveries int       `json:"totalDeliveries"`
	Country         string    `json:"country,omitempty"`
	City            string    `json:"city,omitempty"`
	Region          string    `json:"region,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewDriver is the payload for registering a driver. The password
// confirmation is checked locally and never sent.
type NewDriver struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=10"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
	VehicleType     string `json:"vehicleType"`
	VehicleNumber   string `json:"vehicleNumber"`
	LicenseNumber   string `json:"licenseNumber"`
	Country         string `json:"country"`
	City            string `json:"city"`
	Region          string `json:"region"`
}

// DriverUpdate carries the editable driver fields; empty fields are left out.
type DriverUpdate struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=active inactive busy"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=NewPassword"`
}
