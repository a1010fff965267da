package relation

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type person struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (p person) Identity() string   { return p.ID }
func (p person) PartyName() string  { return p.Name }
func (p person) PartyPhone() string { return p.Phone }
func (p person) PartyEmail() string { return p.Email }

func TestUnmarshalShapes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		state   State
		id      string
		display string
	}{
		{"object", `{"_id":"u1","name":"Jane Doe","email":"jane@x.com"}`, Resolved, "u1", "Jane Doe"},
		{"bare id", `"64f1a2b3c4d5e6f7a8b9c0d1"`, Reference, "64f1a2b3c4d5e6f7a8b9c0d1", "User ID: 64f1a2b3..."},
		{"null", `null`, Absent, "", "N/A"},
		{"empty string", `""`, Absent, "", "N/A"},
		{"number", `42`, Absent, "", "N/A"},
		{"array", `["u1"]`, Absent, "", "N/A"},
		{"object without name", `{"_id":"u2"}`, Resolved, "u2", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Relation[person]
			if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if r.State() != tt.state {
				t.Errorf("State() = %v, want %v", r.State(), tt.state)
			}
			if r.ID() != tt.id {
				t.Errorf("ID() = %q, want %q", r.ID(), tt.id)
			}
			if got := Name(User, r); got != tt.display {
				t.Errorf("Name() = %q, want %q", got, tt.display)
			}
		})
	}
}

func TestMissingFieldIsAbsent(t *testing.T) {
	var order struct {
		Driver Relation[person] `json:"driver"`
	}
	if err := json.Unmarshal([]byte(`{}`), &order); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := Normalize(Driver, order.Driver); got.DisplayName != "No Driver Assigned" {
		t.Errorf("DisplayName = %q", got.DisplayName)
	}
	if got := Normalize(AssignedDriver, order.Driver); got.DisplayName != "Not Assigned" {
		t.Errorf("DisplayName = %q", got.DisplayName)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		rel  Relation[person]
		want Display
	}{
		{
			name: "resolved prefers phone",
			kind: User,
			rel:  Resolve(person{Name: "Jane Doe", Email: "jane@x.com", Phone: "0821234567"}),
			want: Display{DisplayName: "Jane Doe", ContactLine: "0821234567"},
		},
		{
			name: "resolved falls back to email",
			kind: User,
			rel:  Resolve(person{Name: "Jane Doe", Email: "jane@x.com"}),
			want: Display{DisplayName: "Jane Doe", ContactLine: "jane@x.com"},
		},
		{
			name: "driver reference",
			kind: Driver,
			rel:  Ref[person]("abcdef1234567890"),
			want: Display{DisplayName: "Driver ID: abcdef12..."},
		},
		{
			name: "restaurant reference shorter than eight",
			kind: Restaurant,
			rel:  Ref[person]("r42"),
			want: Display{DisplayName: "Restaurant ID: r42..."},
		},
		{
			name: "absent restaurant",
			kind: Restaurant,
			rel:  Relation[person]{},
			want: Display{DisplayName: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Normalize(tt.kind, tt.rel)); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalKeepsShape(t *testing.T) {
	var got struct {
		A Relation[person] `json:"a"`
		B Relation[person] `json:"b"`
		C Relation[person] `json:"c"`
	}
	got.A = Resolve(person{ID: "u1", Name: "Jane"})
	got.B = Ref[person]("u2")

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"a":{"_id":"u1","name":"Jane","email":"","phone":""},"b":"u2","c":null}`
	if string(raw) != want {
		t.Errorf("Marshal() = %s, want %s", raw, want)
	}
}

func TestShortIDIsRuneSafe(t *testing.T) {
	if got := ShortID("ñandú-ñandú-ñandú"); got != "ñandú-ña" {
		t.Errorf("ShortID() = %q", got)
	}
}
