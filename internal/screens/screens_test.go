package screens

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
)

func TestDriverCounts(t *testing.T) {
	drivers := []models.Driver{
		{ID: "d1", Name: "A", Status: models.DriverStatusActive},
		{ID: "d2", Name: "B", Status: models.DriverStatusActive},
		{ID: "d3", Name: "C", Status: models.DriverStatusInactive},
	}

	var labels []string
	for _, b := range Drivers.Buttons(drivers, listing.All) {
		labels = append(labels, b.Label)
	}
	want := []string{"All (3)", "Active (2)", "Inactive (1)", "Busy (0)"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("button labels mismatch (-want +got):\n%s", diff)
	}

	// counts do not move with the search term
	visible := Drivers.Apply(drivers, listing.Query{Status: models.DriverStatusActive, Search: "a"})
	if len(visible) != 1 {
		t.Errorf("visible = %d, want 1", len(visible))
	}
	if got := Drivers.Count(drivers).Of(models.DriverStatusActive); got != 2 {
		t.Errorf("active count = %d, want 2", got)
	}
}

const ordersJSON = `[
  {"_id":"o1","orderNumber":"ORD-1","status":"pending",
   "user":{"_id":"u1","name":"John Smith","email":"john@x.com"},
   "restaurant":{"_id":"r1","name":"Pizza Palace"},
   "items":[{"name":"Margherita","price":80,"quantity":1}]},
  {"_id":"o2","orderNumber":"ORD-2","status":"delivered",
   "user":"64f1a2b3c4d5e6f7a8b9c0d1",
   "driver":{"_id":"d1","name":"Johnny Rider"},
   "restaurant":"r2",
   "items":[{"name":"Burger","price":60,"quantity":2}]},
  {"_id":"o3","orderNumber":"ORD-3","status":"cancelled",
   "customer":{"_id":"c9","name":"Mary Jones","email":"mary@x.com"},
   "restaurant":{"_id":"r3","name":"Sushi Spot"},
   "items":[{"name":"Salmon Roll","price":95,"quantity":1}]}
]`

func loadOrders(t *testing.T) []models.Order {
	t.Helper()
	var orders []models.Order
	if err := json.Unmarshal([]byte(ordersJSON), &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	return orders
}

func TestOrderSearchAcrossRelationShapes(t *testing.T) {
	orders := loadOrders(t)

	tests := []struct {
		search string
		want   []string
	}{
		{"john", []string{"o1", "o2"}},
		{"JOHN", []string{"o1", "o2"}},
		{"mary", []string{"o3"}},
		{"user id: 64f1", []string{"o2"}},
		{"salmon", []string{"o3"}},
		{"pizza", []string{"o1"}},
		{"ord-2", []string{"o2"}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			var got []string
			for _, o := range Orders.Apply(orders, listing.Query{Search: tt.search}) {
				got = append(got, o.ID)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("search %q mismatch (-want +got):\n%s", tt.search, diff)
			}
		})
	}
}

func TestOrderColumnsNormalizeRelations(t *testing.T) {
	orders := loadOrders(t)
	row := func(o models.Order) map[string]string {
		out := map[string]string{}
		for _, c := range Orders.Columns {
			out[c.Header] = c.Value(o)
		}
		return out
	}

	second := row(orders[1])
	if second["CUSTOMER"] != "User ID: 64f1a2b3..." {
		t.Errorf("customer = %q", second["CUSTOMER"])
	}
	if second["RESTAURANT"] != "Restaurant ID: r2..." {
		t.Errorf("restaurant = %q", second["RESTAURANT"])
	}
	if second["TOTAL"] != "R120.00" {
		t.Errorf("total = %q", second["TOTAL"])
	}
	if row(orders[0])["DRIVER"] != "No Driver Assigned" {
		t.Errorf("driver = %q", row(orders[0])["DRIVER"])
	}
	if row(orders[2])["CUSTOMER"] != "Mary Jones" {
		t.Errorf("customer = %q", row(orders[2])["CUSTOMER"])
	}
}

func TestPhoneSearchIsVerbatim(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Name: "A", Phone: "+27 82 555 0101"},
		{ID: "c2", Name: "B", Phone: "082-555-0202"},
	}
	got := Customers.Apply(customers, listing.Query{Search: " 555 0101 "})
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("Apply() = %+v", got)
	}
}

func TestDocumentTypeFacet(t *testing.T) {
	docs := []models.Document{
		{ID: "1", DocumentType: models.DocumentTypeLicense, Status: models.DocumentStatusPending},
		{ID: "2", DocumentType: models.DocumentTypeID, Status: models.DocumentStatusPending},
		{ID: "3", DocumentType: models.DocumentTypeLicense, Status: models.DocumentStatusApproved},
	}
	q := listing.Query{Status: models.DocumentStatusPending, Facets: map[string]string{"type": models.DocumentTypeLicense}}
	if err := Documents.Validate(q); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got := Documents.Apply(docs, q)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Apply() = %+v", got)
	}
}
