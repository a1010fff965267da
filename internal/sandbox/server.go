// Package sandbox serves a fake copy of the platform API from memory. It
// backs `foodadmin sandbox` and the integration tests.
package sandbox

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/chrisdamba/foodadmin/internal/models"
)

const tokenTTL = 24 * time.Hour

type Config struct {
	JWTSecret  string
	AdminEmail string
	AdminPass  string
	Logger     *slog.Logger
	Now        func() time.Time
}

type injected struct {
	status  int
	message string
}

type Server struct {
	store  *Store
	secret []byte
	logger *slog.Logger
	now    func() time.Time
	engine *gin.Engine

	mu       sync.Mutex
	failures map[string]injected
	requests map[string]int
}

func New(store *Store, cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Server{
		store:    store,
		secret:   []byte(cfg.JWTSecret),
		logger:   cfg.Logger,
		now:      cfg.Now,
		failures: make(map[string]injected),
		requests: make(map[string]int),
	}
	if cfg.AdminEmail != "" {
		if err := s.AddAdmin(models.Admin{Name: "Sandbox", Surname: "Admin", Email: cfg.AdminEmail, Role: "admin"}, cfg.AdminPass); err != nil {
			return nil, err
		}
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

// AddAdmin registers an account that can log in.
func (s *Server) AddAdmin(a models.Admin, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if a.ID == "" {
		a.ID = "admin-" + strings.ToLower(strings.ReplaceAll(a.Email, "@", "-at-"))
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.admins[strings.ToLower(a.Email)] = account{admin: a, hash: hash}
	return nil
}

// IssueToken signs a token for email without a password round trip.
func (s *Server) IssueToken(email string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Fail makes every request for method and path answer with status and
// message until Clear is called.
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = injected{status: status, message: message}
}

func (s *Server) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.failures)
}

// Requests counts the requests seen for method and path.
func (s *Server) Requests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method+" "+path]
}

func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.injectFailures())

	api := r.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/register", s.register)
	auth.GET("/verify", s.authRequired(), s.verify)

	protected := api.Group("", s.authRequired())

	protected.GET("/orders", s.listOrders)
	protected.PUT("/orders/:id/status", s.updateOrderStatus)

	protected.GET("/drivers", s.listDrivers)
	protected.POST("/drivers", s.createDriver)
	protected.PUT("/drivers/:id", s.updateDriver)
	protected.PUT("/drivers/:id/password", s.changeDriverPassword)
	protected.DELETE("/drivers/:id", s.deleteDriver)

	protected.GET("/customers", s.listCustomers)
	protected.GET("/customers/:id", s.getCustomer)
	protected.PUT("/customers/:id", s.updateCustomer)
	protected.DELETE("/customers/:id", s.deleteCustomer)

	protected.GET("/documents", s.listDocuments)
	protected.GET("/documents/stats", s.documentStats)
	protected.PUT("/documents/:id/approve", s.approveDocument)
	protected.PUT("/documents/:id/reject", s.rejectDocument)

	protected.GET("/payments", s.listPayments)
	protected.GET("/payments/stats", s.paymentStats)
	protected.POST("/payments/:id/refund", s.refundPayment)

	protected.GET("/restaurants", s.listRestaurants)
	protected.POST("/restaurants", s.createRestaurant)
	protected.PUT("/restaurants/:id", s.updateRestaurant)
	protected.DELETE("/restaurants/:id", s.deleteRestaurant)
	protected.PATCH("/restaurants/:id/toggle-status", s.toggleRestaurant)

	protected.GET("/menu/restaurant/:id", s.listMenu)
	protected.POST("/menu", s.createMenuItem)
	protected.PUT("/menu/:id", s.updateMenuItem)
	protected.DELETE("/menu/:id", s.deleteMenuItem)
	protected.PATCH("/menu/:id/toggle-availability", s.toggleMenuItem)

	protected.GET("/dashboard/stats", s.dashboardStats)
	protected.GET("/dashboard/chart-data", s.chartData)
	protected.GET("/dashboard/ai-suggestions", s.suggestions)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("sandbox request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetHeader("X-Request-ID"),
			"duration", time.Since(start))
	}
}

func (s *Server) injectFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.Method + " " + c.Request.URL.Path
		s.mu.Lock()
		s.requests[key]++
		f, ok := s.failures[key]
		s.mu.Unlock()
		if ok {
			fail(c, f.status, f.message)
			return
		}
		c.Next()
	}
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			fail(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		cl := &claims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), cl,
			func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(s.now),
		)
		if err != nil || !token.Valid {
			fail(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		c.Set("email", cl.Email)
		c.Next()
	}
}

func ok(c *gin.Context, status int, data any, message string) {
	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
