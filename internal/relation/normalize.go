package relation

// Party is anything with a name and contact details that can be embedded in a
// relational field.
type Party interface {
	PartyName() string
	PartyPhone() string
	PartyEmail() string
}

// Kind labels a relation for display and carries the text shown when the
// relation is missing.
type Kind struct {
	Label    string
	Fallback string
}

var (
	User           = Kind{Label: "User", Fallback: "N/A"}
	Driver         = Kind{Label: "Driver", Fallback: "No Driver Assigned"}
	AssignedDriver = Kind{Label: "Driver", Fallback: "Not Assigned"}
	Restaurant     = Kind{Label: "Restaurant", Fallback: "N/A"}
)

const shortIDLen = 8

// Display is the uniform, display-ready view of a relation.
type Display struct {
	DisplayName string
	ContactLine string
}

// Normalize resolves a relation of any shape into display text. It is total:
// every input yields a non-empty DisplayName.
func Normalize[T Party](kind Kind, r Relation[T]) Display {
	switch r.state {
	case Resolved:
		d := Display{DisplayName: r.value.PartyName(), ContactLine: contactOf(r.value)}
		if d.DisplayName == "" {
			d.DisplayName = kind.Fallback
		}
		return d
	case Reference:
		return Display{DisplayName: kind.Label + " ID: " + ShortID(r.id) + "..."}
	default:
		return Display{DisplayName: kind.Fallback}
	}
}

// Name is shorthand for Normalize(kind, r).DisplayName.
func Name[T Party](kind Kind, r Relation[T]) string {
	return Normalize(kind, r).DisplayName
}

// Email returns the email of a resolved relation, or "".
func Email[T Party](r Relation[T]) string {
	if v, ok := r.Value(); ok {
		return v.PartyEmail()
	}
	return ""
}

// ShortID returns at most the first eight characters of id.
func ShortID(id string) string {
	runes := []rune(id)
	if len(runes) <= shortIDLen {
		return id
	}
	return string(runes[:shortIDLen])
}

func contactOf(p Party) string {
	if phone := p.PartyPhone(); phone != "" {
		return phone
	}
	return p.PartyEmail()
}
