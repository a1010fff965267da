package models

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusAssigned  = "assigned"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusInTransit = "in_transit"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	DriverStatusActive   = "active"
	DriverStatusInactive = "inactive"
	DriverStatusBusy     = "busy"

	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"

	DocumentStatusPending  = "pending"
	DocumentStatusApproved = "approved"
	DocumentStatusRejected = "rejected"
	DocumentStatusExpired  = "expired"

	DocumentTypeLicense          = "license"
	DocumentTypeID               = "id"
	DocumentTypeProofOfResidence = "proof_of_residence"

	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"

	PaymentMethodCard         = "card"
	PaymentMethodCash         = "cash"
	PaymentMethodWallet       = "wallet"
	PaymentMethodBankTransfer = "bank_transfer"

	RestaurantStatusOpen   = "open"
	RestaurantStatusClosed = "closed"
	RestaurantStatusBusy   = "busy"
)

var (
	OrderStatuses = []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusAssigned, OrderStatusPickedUp,
		OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled,
	}
	DriverStatuses     = []string{DriverStatusActive, DriverStatusInactive, DriverStatusBusy}
	CustomerStatuses   = []string{CustomerStatusActive, CustomerStatusInactive}
	DocumentStatuses   = []string{DocumentStatusPending, DocumentStatusApproved, DocumentStatusRejected, DocumentStatusExpired}
	DocumentTypes      = []string{DocumentTypeLicense, DocumentTypeID, DocumentTypeProofOfResidence}
	PaymentStatuses    = []string{PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed, PaymentStatusRefunded}
	PaymentMethods     = []string{PaymentMethodCard, PaymentMethodCash, PaymentMethodWallet, PaymentMethodBankTransfer}
	RestaurantStatuses = []string{RestaurantStatusOpen, RestaurantStatusClosed, RestaurantStatusBusy}

	MenuCategories = []string{
		"Appetizers", "Main Course", "Desserts", "Beverages",
		"Sides", "Salads", "Soups", "Pizza", "Burgers",
		"Sandwiches", "Pasta", "Seafood", "Vegetarian", "Specials",
	}
	SpiceLevels = []string{"None", "Mild", "Medium", "Hot", "Extra Hot"}
)

// Default restaurant coordinates (Johannesburg) used when none are given.
const (
	DefaultLatitude  = -26.2041
	DefaultLongitude = 28.0473
)

// DefaultVendorPassword is assigned to vendor accounts created alongside a restaurant.
const DefaultVendorPassword = "vendor123"
