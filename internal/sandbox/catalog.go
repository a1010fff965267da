package sandbox

import (
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chrisdamba/foodadmin/internal/factories"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/relation"
)

type restaurantRequest struct {
	VendorEmail    string  `json:"vendorEmail" binding:"required,email"`
	VendorName     string  `json:"vendorName" binding:"required"`
	VendorPhone    string  `json:"vendorPhone"`
	VendorPassword string  `json:"vendorPassword"`
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Cuisine        string  `json:"cuisine"`
	DeliveryFee    float64 `json:"deliveryFee"`
	MinimumOrder   float64 `json:"minimumOrder"`
	ContactPhone   string  `json:"contactPhone"`
	ContactEmail   string  `json:"contactEmail"`
	Street         string  `json:"street"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	ZipCode        string  `json:"zipCode"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

type menuItemRequest struct {
	RestaurantID    string  `json:"restaurantId" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Price           float64 `json:"price" binding:"gt=0"`
	PreparationTime int     `json:"preparationTime"`
	Calories        int     `json:"calories"`
	IsVegetarian    bool    `json:"isVegetarian"`
	IsVegan         bool    `json:"isVegan"`
	IsGlutenFree    bool    `json:"isGlutenFree"`
	SpiceLevel      string  `json:"spiceLevel"`
}

func (s *Server) listRestaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = max(page, 1), max(limit, 1)
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	status := c.Query("status")
	active := c.Query("isActive")

	s.store.mu.RLock()
	var matched []models.Restaurant
	for _, r := range s.store.restaurants {
		if status != "" && r.Status != status {
			continue
		}
		if active != "" && strconv.FormatBool(r.IsActive) != active {
			continue
		}
		if search != "" && !containsFold(search, r.Name, r.Cuisine, r.ContactEmail) && !strings.Contains(r.ContactPhone, search) {
			continue
		}
		matched = append(matched, r)
	}
	s.store.mu.RUnlock()

	total := len(matched)
	totalPages := max(int(math.Ceil(float64(total)/float64(limit))), 1)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    matched[start:end],
		"pagination": gin.H{
			"currentPage": page,
			"totalPages":  totalPages,
			"total":       total,
		},
	})
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (s *Server) createRestaurant(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Vendor email, vendor name, and restaurant name are required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, r := range s.store.restaurants {
		if strings.EqualFold(relation.Email(r.Vendor), req.VendorEmail) {
			fail(c, http.StatusConflict, "A vendor with this email already exists")
			return
		}
	}
	r := models.Restaurant{
		ID:           newID(),
		Name:         req.Name,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Status:       models.RestaurantStatusOpen,
		IsActive:     true,
		DeliveryFee:  req.DeliveryFee,
		MinimumOrder: req.MinimumOrder,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Vendor: relation.Resolve(models.Person{
			ID: newID(), Name: req.VendorName, Email: req.VendorEmail, Phone: req.VendorPhone,
		}),
		Address: relation.Resolve(models.Address{
			Street: req.Street, City: req.City, State: req.State, ZipCode: req.ZipCode,
			Coordinates: &models.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude},
		}),
		CreatedAt: s.now(),
	}
	s.store.restaurants = append(s.store.restaurants, r)
	ok(c, http.StatusCreated, r, "Restaurant created successfully")
}

func (s *Server) updateRestaurant(c *gin.Context) {
	var req models.RestaurantUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid restaurant details")
		return
	}
	if req.Status != "" && !slices.Contains(models.RestaurantStatuses, req.Status) {
		fail(c, http.StatusBadRequest, "Invalid restaurant status")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.restaurants, c.Param("id"), restaurantID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	r := &s.store.restaurants[i]
	setIf(&r.Name, req.Name)
	setIf(&r.Description, req.Description)
	setIf(&r.Cuisine, req.Cuisine)
	setIf(&r.Status, req.Status)
	setIf(&r.ContactPhone, req.ContactPhone)
	setIf(&r.ContactEmail, req.ContactEmail)
	if req.DeliveryFee != nil {
		r.DeliveryFee = *req.DeliveryFee
	}
	if req.MinimumOrder != nil {
		r.MinimumOrder = *req.MinimumOrder
	}
	ok(c, http.StatusOK, *r, "Restaurant updated successfully")
}

func (s *Server) deleteRestaurant(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	id := c.Param("id")
	i := indexOf(s.store.restaurants, id, restaurantID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	s.store.restaurants = slices.Delete(s.store.restaurants, i, i+1)
	s.store.menu = slices.DeleteFunc(s.store.menu, func(m models.MenuItem) bool { return m.Restaurant.ID() == id })
	ok(c, http.StatusOK, nil, "Restaurant deleted successfully")
}

func (s *Server) toggleRestaurant(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.restaurants, c.Param("id"), restaurantID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	r := &s.store.restaurants[i]
	r.IsActive = !r.IsActive
	msg := "Restaurant deactivated successfully"
	if r.IsActive {
		msg = "Restaurant activated successfully"
	}
	ok(c, http.StatusOK, *r, msg)
}

func (s *Server) listMenu(c *gin.Context) {
	category := c.Query("category")
	available := c.Query("available")

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	id := c.Param("id")
	if indexOf(s.store.restaurants, id, restaurantID) < 0 {
		fail(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	items := []models.MenuItem{}
	for _, m := range s.store.menu {
		if m.Restaurant.ID() != id {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		if available != "" && strconv.FormatBool(m.IsAvailable) != available {
			continue
		}
		items = append(items, m)
	}
	ok(c, http.StatusOK, items, "")
}

func (s *Server) createMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Name, description, category, and price are required")
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	ri := indexOf(s.store.restaurants, req.RestaurantID, restaurantID)
	if ri < 0 {
		fail(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	item := applyMenuItem(models.MenuItem{ID: newID(), IsAvailable: true}, req, s.store.restaurants[ri])
	s.store.menu = append(s.store.menu, item)
	ok(c, http.StatusCreated, item, "Menu item created successfully")
}

func (s *Server) updateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Name, description, category, and price are required")
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.menu, c.Param("id"), menuItemID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	ri := indexOf(s.store.restaurants, req.RestaurantID, restaurantID)
	if ri < 0 {
		fail(c, http.StatusNotFound, "Restaurant not found")
		return
	}
	s.store.menu[i] = applyMenuItem(s.store.menu[i], req, s.store.restaurants[ri])
	ok(c, http.StatusOK, s.store.menu[i], "Menu item updated successfully")
}

func applyMenuItem(item models.MenuItem, req menuItemRequest, r models.Restaurant) models.MenuItem {
	item.Restaurant = relation.Resolve(factories.RestaurantRef(r))
	item.Name = req.Name
	item.Description = req.Description
	item.Category = req.Category
	item.Price = req.Price
	item.PreparationTime = req.PreparationTime
	item.Calories = req.Calories
	item.IsVegetarian = req.IsVegetarian
	item.IsVegan = req.IsVegan
	item.IsGlutenFree = req.IsGlutenFree
	item.SpiceLevel = req.SpiceLevel
	return item
}

func (s *Server) deleteMenuItem(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.menu, c.Param("id"), menuItemID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	s.store.menu = slices.Delete(s.store.menu, i, i+1)
	ok(c, http.StatusOK, nil, "Menu item deleted successfully")
}

func (s *Server) toggleMenuItem(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	i := indexOf(s.store.menu, c.Param("id"), menuItemID)
	if i < 0 {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	m := &s.store.menu[i]
	m.IsAvailable = !m.IsAvailable
	msg := "Menu item is now unavailable"
	if m.IsAvailable {
		msg = "Menu item is now available"
	}
	ok(c, http.StatusOK, *m, msg)
}
