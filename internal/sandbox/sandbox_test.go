package sandbox

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/factories"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/session"
)

func start(t *testing.T, store *Store) (*Server, *api.Client, *session.Manager) {
	t.Helper()
	srv, err := New(store, Config{JWTSecret: "s3cret", AdminEmail: "admin@delivernow.com", AdminPass: "admin123"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	sessions := session.NewManager(&session.MemoryStore{})
	client, err := api.NewClient(ts.URL, sessions, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return srv, client, sessions
}

func TestLoginFlow(t *testing.T) {
	_, client, sessions := start(t, NewStore())
	ctx := context.Background()

	if _, err := client.Login(ctx, models.Credentials{Email: "admin@delivernow.com", Password: "wrong"}); api.Message(err, "") != "Invalid credentials" {
		t.Fatalf("bad password error = %v", err)
	}

	res, err := client.Login(ctx, models.Credentials{Email: "admin@delivernow.com", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Admin.Email != "admin@delivernow.com" || res.Token == "" {
		t.Fatalf("Login result = %+v", res)
	}
	if err := sessions.Begin(session.Session{Token: res.Token, Admin: res.Admin}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	admin, err := client.Verify(ctx)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if admin.Email != "admin@delivernow.com" {
		t.Errorf("verified admin = %+v", admin)
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	_, client, _ := start(t, NewStore())
	reg := models.Registration{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Password: "secret1"}

	res, err := client.Register(context.Background(), reg)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Admin.Name != "Ada" {
		t.Errorf("admin = %+v", res.Admin)
	}
	_, err = client.Register(context.Background(), reg)
	if got := api.Message(err, ""); got != "Admin with this email already exists" {
		t.Errorf("duplicate register message = %q", got)
	}
}

func TestRejectsForgedToken(t *testing.T) {
	store := NewStore()
	_, client, sessions := start(t, store)

	other, err := New(NewStore(), Config{JWTSecret: "another-secret"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	forged, _ := other.IssueToken("admin@delivernow.com", time.Hour)
	_ = sessions.Begin(session.Session{Token: forged})

	_, err = client.ListDrivers(context.Background())
	if !api.IsUnauthorized(err) {
		t.Fatalf("error = %v, want 401", err)
	}
}

func authed(t *testing.T, store *Store) (*Server, *api.Client) {
	t.Helper()
	srv, client, sessions := start(t, store)
	token, err := srv.IssueToken("admin@delivernow.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if err := sessions.Begin(session.Session{Token: token}); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return srv, client
}

func TestSeededEndpoints(t *testing.T) {
	store := NewStore()
	store.Seed(factories.New(7, time.Now()), Sizes{Drivers: 6, Customers: 8, Restaurants: 4, Orders: 20}, nil)
	_, client := authed(t, store)
	ctx := context.Background()

	orders, err := client.ListOrders(ctx)
	if err != nil || len(orders) != 20 {
		t.Fatalf("ListOrders = %d, %v", len(orders), err)
	}
	drivers, err := client.ListDrivers(ctx)
	if err != nil || len(drivers) != 6 {
		t.Fatalf("ListDrivers = %d, %v", len(drivers), err)
	}
	docs, err := client.ListDocuments(ctx)
	if err != nil || len(docs) != 6*len(models.DocumentTypes) {
		t.Fatalf("ListDocuments = %d, %v", len(docs), err)
	}
	if _, err := client.DocumentStats(ctx); err != nil {
		t.Fatalf("DocumentStats: %v", err)
	}
	if _, err := client.PaymentStats(ctx); err != nil {
		t.Fatalf("PaymentStats: %v", err)
	}
	points, err := client.ChartData(ctx)
	if err != nil || len(points) != 7 {
		t.Fatalf("ChartData = %d, %v", len(points), err)
	}
	if _, err := client.DashboardStats(ctx); err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if _, err := client.Suggestions(ctx); err != nil {
		t.Fatalf("Suggestions: %v", err)
	}

	restaurants, pages, err := client.ListRestaurants(ctx, models.RestaurantQuery{Page: 1, Limit: 3})
	if err != nil || len(restaurants) != 3 || pages != 2 {
		t.Fatalf("ListRestaurants = %d restaurants, %d pages, %v", len(restaurants), pages, err)
	}
	menu, err := client.ListMenu(ctx, restaurants[0].ID, models.MenuQuery{})
	if err != nil || len(menu) != 6 {
		t.Fatalf("ListMenu = %d, %v", len(menu), err)
	}

	customers, err := client.ListCustomers(ctx)
	if err != nil || len(customers) != 8 {
		t.Fatalf("ListCustomers = %d, %v", len(customers), err)
	}
	if _, err := client.GetCustomer(ctx, customers[0].ID); err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
}

func TestRefundOnlyCompleted(t *testing.T) {
	store := NewStore()
	store.PutPayments(
		models.Payment{ID: "p1", Status: models.PaymentStatusCompleted, Amount: 100},
		models.Payment{ID: "p2", Status: models.PaymentStatusFailed, Amount: 50},
	)
	_, client := authed(t, store)
	ctx := context.Background()

	if _, err := client.RefundPayment(ctx, "p1"); err != nil {
		t.Fatalf("RefundPayment(p1): %v", err)
	}
	_, err := client.RefundPayment(ctx, "p2")
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Only completed payments can be refunded" {
		t.Fatalf("RefundPayment(p2) error = %v", err)
	}

	stats, err := client.PaymentStats(ctx)
	if err != nil {
		t.Fatalf("PaymentStats: %v", err)
	}
	if stats.TotalRevenue != 0 || stats.FailedTransactions != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDriverLifecycle(t *testing.T) {
	_, client := authed(t, NewStore())
	ctx := context.Background()

	nd := models.NewDriver{Name: "Sipho", Email: "sipho@example.com", Phone: "0821234567", Password: "secret1", ConfirmPassword: "secret1"}
	if _, err := client.CreateDriver(ctx, nd); err != nil {
		t.Fatalf("CreateDriver: %v", err)
	}
	_, err := client.CreateDriver(ctx, nd)
	if got := api.Message(err, ""); got != "Driver with this email already exists" {
		t.Fatalf("duplicate driver message = %q", got)
	}

	list, _ := client.ListDrivers(ctx)
	id := list[0].ID
	if _, err := client.UpdateDriver(ctx, id, models.DriverUpdate{Status: models.DriverStatusBusy}); err != nil {
		t.Fatalf("UpdateDriver: %v", err)
	}
	if _, err := client.ChangeDriverPassword(ctx, id, models.PasswordChange{CurrentPassword: "nope", NewPassword: "secret2"}); err == nil {
		t.Fatal("expected wrong current password to fail")
	}
	if _, err := client.ChangeDriverPassword(ctx, id, models.PasswordChange{CurrentPassword: "secret1", NewPassword: "secret2"}); err != nil {
		t.Fatalf("ChangeDriverPassword: %v", err)
	}

	list, _ = client.ListDrivers(ctx)
	if list[0].Status != models.DriverStatusBusy {
		t.Errorf("status = %q", list[0].Status)
	}
}

func TestMenuFilters(t *testing.T) {
	store := NewStore()
	store.PutRestaurants(models.Restaurant{ID: "r1", Name: "Grill"})
	_, client := authed(t, store)
	ctx := context.Background()

	for _, name := range []string{"Chips", "Salad"} {
		form := models.MenuItemForm{RestaurantID: "r1", Name: name, Description: "x", Category: "Sides", Price: 25}
		if _, err := client.CreateMenuItem(ctx, form); err != nil {
			t.Fatalf("CreateMenuItem: %v", err)
		}
	}
	items, _ := client.ListMenu(ctx, "r1", models.MenuQuery{})
	env, err := client.ToggleMenuItemAvailability(ctx, items[0].ID)
	if err != nil || env.Message != "Menu item is now unavailable" {
		t.Fatalf("toggle = %+v, %v", env, err)
	}

	available, err := client.ListMenu(ctx, "r1", models.MenuQuery{Available: "true"})
	if err != nil || len(available) != 1 || available[0].Name != "Salad" {
		t.Fatalf("available items = %+v, %v", available, err)
	}
}
