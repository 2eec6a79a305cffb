package models

import (
	"errors"
	"testing"
)

func TestSetFieldDispatch(t *testing.T) {
	p := &Profile{UserID: "u1", Name: "John Doe"}

	if err := p.SetField(FieldName, "Jane"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := p.SetField(FieldEmail, "jane@example.com"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if err := p.SetField(FieldPhone, "+32 470 12 34 56"); err != nil {
		t.Fatalf("set phone: %v", err)
	}
	if err := p.SetField(FieldAddress, "12 rue des Lilas, Bruxelles"); err != nil {
		t.Fatalf("set address: %v", err)
	}

	if p.Name != "Jane" || p.Email != "jane@example.com" || p.Phone != "+32 470 12 34 56" {
		t.Fatalf("fields not applied: %+v", p)
	}
}

func TestSetFieldAllowsBlankValues(t *testing.T) {
	// l'écran profil autorise l'effacement d'un champ
	p := &Profile{UserID: "u1", Name: "Jane"}
	if err := p.SetField(FieldName, ""); err != nil {
		t.Fatalf("blank value must be accepted: %v", err)
	}
	if p.Name != "" {
		t.Fatalf("expected blank name, got %q", p.Name)
	}
}

func TestParseProfileFieldRejectsUnknown(t *testing.T) {
	if _, err := ParseProfileField("shoe_size"); !errors.Is(err, ErrUnknownProfileField) {
		t.Fatalf("expected ErrUnknownProfileField, got %v", err)
	}
}

func TestAddressValidate(t *testing.T) {
	addr := Address{FullName: "Jean", Street: "rue X", City: "Liège", PostalCode: "4000", Country: "Belgique"}
	if err := addr.Validate(); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}

	addr.PostalCode = ""
	if err := addr.Validate(); !errors.Is(err, ErrIncompleteAddress) {
		t.Fatalf("expected ErrIncompleteAddress, got %v", err)
	}
}

func TestParseDeliveryOption(t *testing.T) {
	for _, s := range []string{"pickup", "courier", "drone"} {
		if _, err := ParseDeliveryOption(s); err != nil {
			t.Fatalf("ParseDeliveryOption(%q): %v", s, err)
		}
	}
	if _, err := ParseDeliveryOption("submarine"); !errors.Is(err, ErrInvalidDeliveryOption) {
		t.Fatalf("expected ErrInvalidDeliveryOption, got %v", err)
	}
}
