package sandbox

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type driverRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,min=10"`
	Password      string `json:"password" binding:"required,min=6"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	LicenseNumber string `json:"licenseNumber"`
	Country       string `json:"country"`
	City          string `json:"city"`
	Region        string `json:"region"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (s *Server) listOrders(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	ok(c, http.StatusOK, s.store.orders, "")
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !slices.Contains(models.OrderStatuses, req.Status) {
		fail(c, http.StatusBadRequest, "Invalid order status")
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.orders, c.Param("id"), orderID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}
	s.store.orders[i].Status = req.Status
	s.store.orders[i].DeliveryStatus = ""
	ok(c, http.StatusOK, s.store.orders[i], "Order status updated")
}

func (s *Server) listDrivers(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	ok(c, http.StatusOK, s.store.drivers, "")
}

func (s *Server) createDriver(c *gin.Context) {
	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide valid driver details")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if slices.ContainsFunc(s.store.drivers, func(d models.Driver) bool { return strings.EqualFold(d.Email, req.Email) }) {
		fail(c, http.StatusConflict, "Driver with this email already exists")
		return
	}
	d := models.Driver{
		ID:            newID(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        models.DriverStatusActive,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		LicenseNumber: req.LicenseNumber,
		Country:       req.Country,
		City:          req.City,
		Region:        req.Region,
		CreatedAt:     s.now(),
	}
	s.store.drivers = append(s.store.drivers, d)
	s.store.passwords[d.ID] = hash
	ok(c, http.StatusCreated, d, "Driver registered successfully")
}

func (s *Server) updateDriver(c *gin.Context) {
	var req models.DriverUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid driver details")
		return
	}
	if req.Status != "" && !slices.Contains(models.DriverStatuses, req.Status) {
		fail(c, http.StatusBadRequest, "Invalid driver status")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.drivers, c.Param("id"), driverID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Driver not found")
		return
	}
	d := &s.store.drivers[i]
	setIf(&d.Name, req.Name)
	setIf(&d.Email, req.Email)
	setIf(&d.Phone, req.Phone)
	setIf(&d.VehicleType, req.VehicleType)
	setIf(&d.VehicleNumber, req.VehicleNumber)
	setIf(&d.LicenseNumber, req.LicenseNumber)
	setIf(&d.Status, req.Status)
	ok(c, http.StatusOK, *d, "Driver updated successfully")
}

func (s *Server) changeDriverPassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	id := c.Param("id")
	if indexOf(s.store.drivers, id, driverID) < 0 {
		fail(c, http.StatusNotFound, "Driver not found")
		return
	}
	if current, set := s.store.passwords[id]; set && req.CurrentPassword != "" {
		if bcrypt.CompareHashAndPassword(current, []byte(req.CurrentPassword)) != nil {
			fail(c, http.StatusBadRequest, "Current password is incorrect")
			return
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	s.store.passwords[id] = hash
	ok(c, http.StatusOK, nil, "Password updated successfully")
}

func (s *Server) deleteDriver(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.drivers, c.Param("id"), driverID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Driver not found")
		return
	}
	s.store.drivers = slices.Delete(s.store.drivers, i, i+1)
	ok(c, http.StatusOK, nil, "Driver deleted successfully")
}

func (s *Server) listCustomers(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	ok(c, http.StatusOK, s.store.customers, "")
}

func (s *Server) getCustomer(c *gin.Context) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	i := indexOf(s.store.customers, c.Param("id"), customerID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Customer not found")
		return
	}
	cust := s.store.customers[i]
	cust.RecentOrders = nil
	for j := len(s.store.orders) - 1; j >= 0 && len(cust.RecentOrders) < 5; j-- {
		if s.store.orders[j].Buyer().ID() == cust.ID {
			cust.RecentOrders = append(cust.RecentOrders, s.store.orders[j])
		}
	}
	ok(c, http.StatusOK, cust, "")
}

func (s *Server) updateCustomer(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !slices.Contains(models.CustomerStatuses, req.Status) {
		fail(c, http.StatusBadRequest, "Invalid customer status")
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.customers, c.Param("id"), customerID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Customer not found")
		return
	}
	s.store.customers[i].Status = req.Status
	ok(c, http.StatusOK, s.store.customers[i], "Customer updated successfully")
}

func (s *Server) deleteCustomer(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.customers, c.Param("id"), customerID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Customer not found")
		return
	}
	s.store.customers = slices.Delete(s.store.customers, i, i+1)
	ok(c, http.StatusOK, nil, "Customer deleted successfully")
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
