package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/relation"
	"github.com/chrisdamba/foodadmin/internal/sandbox"
	"github.com/chrisdamba/foodadmin/internal/session"
)

const (
	adminEmail = "admin@delivernow.com"
	adminPass  = "admin123"
)

type harness struct {
	t       *testing.T
	store   *sandbox.Store
	srv     *sandbox.Server
	dir     string
	config  string
	session string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := sandbox.NewStore()
	store.PutDrivers(
		models.Driver{ID: "d1", Name: "Thabo Mokoena", Email: "thabo@example.com", Phone: "0821110001", Status: models.DriverStatusActive},
		models.Driver{ID: "d2", Name: "Lerato Dlamini", Email: "lerato@example.com", Phone: "0821110002", Status: models.DriverStatusInactive},
		models.Driver{ID: "d3", Name: "Sipho Nkosi", Email: "sipho@example.com", Phone: "0821110003", Status: models.DriverStatusBusy},
	)
	store.PutOrders(models.Order{
		ID:          "o1",
		OrderNumber: "ORD-100001",
		Status:      models.OrderStatusPending,
		User:        relation.Resolve(models.Person{ID: "u1", Name: "Mary Jones", Email: "mary@example.com"}),
		Items:       []models.OrderItem{{Name: "Burger", Price: 80, Quantity: 1}},
	})
	store.PutDocuments(models.Document{ID: "doc1", DriverName: "Thabo Mokoena", DocumentType: models.DocumentTypeLicense, Status: models.DocumentStatusPending})

	srv, err := sandbox.New(store, sandbox.Config{JWTSecret: "cmd-test", AdminEmail: adminEmail, AdminPass: adminPass})
	if err != nil {
		t.Fatalf("sandbox.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	h := &harness{
		t:       t,
		store:   store,
		srv:     srv,
		dir:     dir,
		config:  filepath.Join(dir, "foodadmin.yaml"),
		session: filepath.Join(dir, "session.json"),
	}
	cfg := fmt.Sprintf("api_base_url: %s\nsession_file: %s\nlog_level: error\nexport:\n  folder: %s\n", ts.URL, h.session, dir)
	if err := os.WriteFile(h.config, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	return h
}

type result struct {
	code   int
	stdout string
	stderr string
}

func (h *harness) run(stdin string, args ...string) result {
	h.t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), append([]string{"--config", h.config}, args...), strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func (h *harness) login() {
	h.t.Helper()
	res := h.run("", "login", "--email", adminEmail, "--password", adminPass)
	if res.code != 0 {
		h.t.Fatalf("login failed: %+v", res)
	}
}

func TestListRequiresLogin(t *testing.T) {
	h := newHarness(t)
	res := h.run("", "drivers", "list")
	if res.code != 1 || !strings.Contains(res.stderr, "Not logged in") {
		t.Fatalf("result = %+v", res)
	}
	if n := h.srv.Requests(http.MethodGet, "/api/drivers"); n != 0 {
		t.Errorf("%d requests sent without a session", n)
	}
}

func TestLogin(t *testing.T) {
	h := newHarness(t)

	res := h.run("", "login", "--email", adminEmail, "--password", "wrong")
	if res.code != 1 || !strings.Contains(res.stderr, "Invalid credentials") {
		t.Fatalf("bad login = %+v", res)
	}

	res = h.run(adminPass+"\n", "login", "--email", adminEmail)
	if res.code != 0 {
		t.Fatalf("login = %+v", res)
	}
	if want := "Logged in as Sandbox Admin <admin@delivernow.com>\n"; res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}
	if _, err := os.Stat(h.session); err != nil {
		t.Errorf("session file: %v", err)
	}

	res = h.run("", "whoami")
	if res.code != 0 || !strings.Contains(res.stdout, adminEmail) {
		t.Errorf("whoami = %+v", res)
	}

	res = h.run("", "logout")
	if res.code != 0 || res.stdout != "Logged out\n" {
		t.Errorf("logout = %+v", res)
	}
	if res = h.run("", "drivers", "list"); res.code != 1 {
		t.Errorf("list after logout = %+v", res)
	}
}

func TestLoginValidation(t *testing.T) {
	h := newHarness(t)
	res := h.run("\n", "login", "--email", adminEmail)
	if res.code != 1 || !strings.Contains(res.stderr, "Please fill in all fields") {
		t.Fatalf("result = %+v", res)
	}
	if n := h.srv.Requests(http.MethodPost, "/api/auth/login"); n != 0 {
		t.Errorf("login sent %d times", n)
	}
}

func TestWhoamiEndsRejectedSession(t *testing.T) {
	h := newHarness(t)
	other, err := sandbox.New(sandbox.NewStore(), sandbox.Config{JWTSecret: "someone-else"})
	if err != nil {
		t.Fatal(err)
	}
	forged, err := other.IssueToken(adminEmail, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if err := session.NewFileStore(h.session).Save(&session.Session{Token: forged}); err != nil {
		t.Fatal(err)
	}

	res := h.run("", "whoami")
	if res.code != 1 || !strings.Contains(res.stderr, "log in again") {
		t.Fatalf("whoami = %+v", res)
	}
	if _, err := os.Stat(h.session); !os.IsNotExist(err) {
		t.Errorf("session file still present: %v", err)
	}
}

func TestDriversList(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("", "drivers", "list", "--status", "inactive")
	if res.code != 0 {
		t.Fatalf("list = %+v", res)
	}
	if !strings.Contains(res.stdout, "All (3)  Active (1)  [Inactive (1)]  Busy (1)") {
		t.Errorf("buttons missing from:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "Lerato Dlamini") || strings.Contains(res.stdout, "Thabo Mokoena") {
		t.Errorf("wrong rows:\n%s", res.stdout)
	}

	res = h.run("", "drivers", "list", "--status", "retired")
	if res.code != 1 || !strings.Contains(res.stderr, "unknown driver status") {
		t.Errorf("bad status = %+v", res)
	}
}

func TestDriversListJSON(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("", "-o", "json", "drivers", "list", "--search", "0821110003")
	if res.code != 0 {
		t.Fatalf("list = %+v", res)
	}
	var drivers []models.Driver
	if err := json.Unmarshal([]byte(res.stdout), &drivers); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	if len(drivers) != 1 || drivers[0].ID != "d3" {
		t.Errorf("drivers = %+v", drivers)
	}
}

func TestListFetchFailureShowsEmptyList(t *testing.T) {
	h := newHarness(t)
	h.login()
	h.srv.Fail(http.MethodGet, "/api/drivers", http.StatusInternalServerError, "Database unavailable")

	res := h.run("", "drivers", "list")
	if res.code != 1 {
		t.Fatalf("code = %d", res.code)
	}
	if !strings.Contains(res.stderr, "Error: Database unavailable") {
		t.Errorf("stderr = %q", res.stderr)
	}
	if !strings.Contains(res.stdout, "All (0)") || !strings.Contains(res.stdout, "No drivers found") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestDeleteDeclined(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("n\n", "drivers", "delete", "d2")
	if res.code != 0 || !strings.Contains(res.stderr, "Cancelled.") {
		t.Fatalf("delete = %+v", res)
	}
	if !strings.Contains(res.stderr, "Are you sure you want to delete Lerato Dlamini?") {
		t.Errorf("prompt = %q", res.stderr)
	}
	if n := h.srv.Requests(http.MethodDelete, "/api/drivers/d2"); n != 0 {
		t.Errorf("DELETE sent %d times", n)
	}
	if got := len(h.store.Drivers()); got != 3 {
		t.Errorf("drivers = %d, want 3", got)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("", "--yes", "drivers", "delete", "d2")
	if res.code != 0 {
		t.Fatalf("delete = %+v", res)
	}
	want := "Driver deleted successfully!\n[All (2)]  Active (1)  Inactive (0)  Busy (1)\n"
	if res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}

	if res = h.run("", "--yes", "drivers", "delete", "nobody"); res.code != 1 || !strings.Contains(res.stderr, "driver nobody not found") {
		t.Errorf("unknown driver = %+v", res)
	}
}

func TestBulkDelete(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("y\n", "drivers", "bulk-delete")
	if res.code != 0 {
		t.Fatalf("bulk-delete = %+v", res)
	}
	if !strings.Contains(res.stdout, "Successfully deleted 1 of 1 driver(s)") {
		t.Errorf("stdout = %q", res.stdout)
	}

	res = h.run("", "drivers", "bulk-delete")
	if !strings.Contains(res.stdout, "No inactive drivers to delete") {
		t.Errorf("second run = %+v", res)
	}
}

func TestOrderStatusFailureKeepsStatus(t *testing.T) {
	h := newHarness(t)
	h.login()
	h.srv.Fail(http.MethodPut, "/api/orders/o1/status", http.StatusInternalServerError, "Database unavailable")

	res := h.run("", "orders", "set-status", "o1", "delivered")
	if res.code != 1 || !strings.Contains(res.stderr, "Error: Database unavailable") {
		t.Fatalf("set-status = %+v", res)
	}
	if got := h.store.Orders()[0].Status; got != models.OrderStatusPending {
		t.Errorf("status = %q, want pending", got)
	}

	h.srv.Clear()
	res = h.run("", "orders", "set-status", "o1", "delivered")
	if res.code != 0 || !strings.Contains(res.stdout, "Order status updated successfully!") {
		t.Fatalf("set-status = %+v", res)
	}
	if got := h.store.Orders()[0].Status; got != models.OrderStatusDelivered {
		t.Errorf("status = %q, want delivered", got)
	}
}

func TestRejectDocument(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("\n", "documents", "reject", "doc1")
	if res.code != 0 || !strings.Contains(res.stderr, "Cancelled.") {
		t.Fatalf("empty reason = %+v", res)
	}
	if n := h.srv.Requests(http.MethodPut, "/api/documents/doc1/reject"); n != 0 {
		t.Fatalf("reject sent %d times", n)
	}

	res = h.run("", "documents", "reject", "doc1", "--reason", "Blurry scan")
	if res.code != 0 || !strings.Contains(res.stdout, "Document rejected successfully!") {
		t.Fatalf("reject = %+v", res)
	}
	res = h.run("", "documents", "list", "--status", "rejected")
	if !strings.Contains(res.stdout, "[Rejected (1)]") {
		t.Errorf("list = %q", res.stdout)
	}
}

func TestAddDriverValidation(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("", "drivers", "add", "--name", "Zola", "--email", "zola@example.com", "--phone", "12345",
		"--password", "secret1", "--confirm-password", "secret1")
	if res.code != 1 || !strings.Contains(res.stderr, "Please enter a valid phone number") {
		t.Fatalf("add = %+v", res)
	}
	if n := h.srv.Requests(http.MethodPost, "/api/drivers"); n != 0 {
		t.Errorf("POST sent %d times", n)
	}

	res = h.run("", "drivers", "add", "--name", "Zola", "--email", "zola@example.com", "--phone", "0821110009",
		"--password", "secret1", "--confirm-password", "secret1")
	if res.code != 0 || !strings.Contains(res.stdout, "Driver registered successfully!") {
		t.Fatalf("add = %+v", res)
	}
	if got := len(h.store.Drivers()); got != 4 {
		t.Errorf("drivers = %d, want 4", got)
	}
}

func TestExportVisibleRows(t *testing.T) {
	h := newHarness(t)
	h.login()

	name := filepath.Join(h.dir, "busy.csv")
	res := h.run("", "drivers", "list", "--status", "busy", "--export="+name)
	if res.code != 0 {
		t.Fatalf("list = %+v", res)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Sipho Nkosi") {
		t.Errorf("csv = %q", b)
	}
}

func TestRestaurantFiltersShowNoCounts(t *testing.T) {
	h := newHarness(t)
	h.store.PutRestaurants(
		models.Restaurant{ID: "r1", Name: "Nando's", Status: models.RestaurantStatusOpen, IsActive: true},
		models.Restaurant{ID: "r2", Name: "Spur", Status: models.RestaurantStatusOpen, IsActive: true},
		models.Restaurant{ID: "r3", Name: "Debonairs", Status: models.RestaurantStatusClosed, IsActive: true},
		models.Restaurant{ID: "r4", Name: "Steers", Status: models.RestaurantStatusBusy, IsActive: true},
	)
	h.login()

	res := h.run("", "restaurants", "list", "--status", "closed")
	if res.code != 0 {
		t.Fatalf("list = %+v", res)
	}
	if first := strings.SplitN(res.stdout, "\n", 2)[0]; first != "All  Open  [Closed]  Busy" {
		t.Errorf("buttons = %q", first)
	}
	if !strings.Contains(res.stdout, "Debonairs") || strings.Contains(res.stdout, "Spur") {
		t.Errorf("wrong rows:\n%s", res.stdout)
	}
}

func TestMutationWithoutLogin(t *testing.T) {
	h := newHarness(t)
	res := h.run("", "documents", "reject", "doc1", "--reason", "Blurry scan")
	if res.code != 1 {
		t.Fatalf("code = %d", res.code)
	}
	if want := "Not logged in. Run `foodadmin login` first.\n"; res.stderr != want {
		t.Errorf("stderr = %q, want %q", res.stderr, want)
	}
}

func TestOrderShowFallbacks(t *testing.T) {
	h := newHarness(t)
	h.login()

	res := h.run("", "orders", "show", "o1")
	if res.code != 0 {
		t.Fatalf("show = %+v", res)
	}
	want := map[string]string{
		"Placed":   "N/A",
		"Customer": "Mary Jones (mary@example.com)",
		"Driver":   "Not Assigned",
	}
	for _, line := range strings.Split(res.stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if v, ok := want[fields[0]]; ok {
			if got := strings.TrimSpace(strings.TrimPrefix(line, fields[0])); got != v {
				t.Errorf("%s = %q, want %q", fields[0], got, v)
			}
			delete(want, fields[0])
		}
	}
	if len(want) != 0 {
		t.Errorf("missing lines %v in:\n%s", want, res.stdout)
	}
}
