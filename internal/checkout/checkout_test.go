package checkout

import (
	"errors"
	"strings"
	"testing"

	"grocerly_back_end/internal/cart"
	"grocerly_back_end/internal/models"
)

func validAddress() models.Address {
	return models.Address{
		FullName:   "Jean Dupont",
		Street:     "12 rue des Lilas",
		City:       "Bruxelles",
		PostalCode: "1000",
		Country:    "Belgique",
	}
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New(nil)
	c.Add(models.CartLine{ProductID: "a", Name: "Pommes", UnitPrice: 200, Quantity: 2})
	c.Add(models.CartLine{ProductID: "b", Name: "Lait", UnitPrice: 350, Quantity: 1})
	return c
}

func TestPlaceOrderSuccess(t *testing.T) {
	p := &models.Profile{UserID: "u1"}
	c := filledCart(t)

	order, err := PlaceOrder(p, c, "Visa •••• 4242", validAddress(), models.DeliveryDrone, true)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if len(p.Orders) != 1 {
		t.Fatalf("expected 1 order in history, got %d", len(p.Orders))
	}
	if !c.IsEmpty() {
		t.Fatalf("expected cart cleared after order")
	}
	// 7.50 + 2.50 de livraison
	if order.TotalAmount != 1000 {
		t.Fatalf("total: expected 1000, got %d", order.TotalAmount)
	}
	if len(order.Items) != 2 || order.Items[0].ProductID != "a" || order.Items[1].ProductID != "b" {
		t.Fatalf("items snapshot wrong: %+v", order.Items)
	}
	if !order.NonContact {
		t.Fatalf("expected non-contact flag carried")
	}
	if order.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}
}

func TestPlaceOrderAddressFormatting(t *testing.T) {
	p := &models.Profile{UserID: "u1"}
	order, err := PlaceOrder(p, filledCart(t), "Cash", validAddress(), models.DeliveryCourier, false)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	lines := strings.Split(order.DeliveryAddress, "\n")
	want := []string{"Jean Dupont", "12 rue des Lilas", "Bruxelles", "1000", "Belgique"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d address lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestPlaceOrderRejectsMissingPayment(t *testing.T) {
	p := &models.Profile{UserID: "u1"}
	c := filledCart(t)

	_, err := PlaceOrder(p, c, "", validAddress(), models.DeliveryPickup, false)
	if !errors.Is(err, ErrNoPaymentMethod) {
		t.Fatalf("expected ErrNoPaymentMethod, got %v", err)
	}
	if len(p.Orders) != 0 || c.IsEmpty() {
		t.Fatalf("rejected order must not mutate profile or cart")
	}
}

func TestPlaceOrderRejectsIncompleteAddress(t *testing.T) {
	p := &models.Profile{UserID: "u1"}
	c := filledCart(t)

	addr := validAddress()
	addr.City = "  "
	_, err := PlaceOrder(p, c, "Cash", addr, models.DeliveryPickup, false)
	if !errors.Is(err, models.ErrIncompleteAddress) {
		t.Fatalf("expected ErrIncompleteAddress, got %v", err)
	}
	if len(p.Orders) != 0 || c.IsEmpty() {
		t.Fatalf("rejected order must not mutate profile or cart")
	}
}

func TestPlaceOrderRejectsInvalidDeliveryOption(t *testing.T) {
	p := &models.Profile{UserID: "u1"}
	c := filledCart(t)

	_, err := PlaceOrder(p, c, "Cash", validAddress(), models.DeliveryOption("teleport"), false)
	if !errors.Is(err, models.ErrInvalidDeliveryOption) {
		t.Fatalf("expected ErrInvalidDeliveryOption, got %v", err)
	}
	if len(p.Orders) != 0 || c.IsEmpty() {
		t.Fatalf("rejected order must not mutate profile or cart")
	}
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	p := &models.Profile{UserID: "u1"}
	c := cart.New(nil)

	_, err := PlaceOrder(p, c, "Cash", validAddress(), models.DeliveryPickup, false)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(p.Orders) != 0 {
		t.Fatalf("rejected order must not append to history")
	}
}

func TestOrderSnapshotIsolatedFromCart(t *testing.T) {
	p := &models.Profile{UserID: "u1"}
	c := filledCart(t)

	order, err := PlaceOrder(p, c, "Cash", validAddress(), models.DeliveryPickup, false)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	// le panier repart de zéro, la commande ne bouge pas
	c.Add(models.CartLine{ProductID: "a", Name: "Pommes", UnitPrice: 200, Quantity: 9})
	if order.Items[0].Quantity != 2 {
		t.Fatalf("order snapshot mutated by later cart edits: %+v", order.Items[0])
	}
}

func TestOrderIDsDistinctWithinHistory(t *testing.T) {
	p := &models.Profile{UserID: "u1"}

	for i := 0; i < 5; i++ {
		c := filledCart(t)
		if _, err := PlaceOrder(p, c, "Cash", validAddress(), models.DeliveryPickup, false); err != nil {
			t.Fatalf("place order %d: %v", i, err)
		}
	}

	seen := map[string]bool{}
	for _, o := range p.Orders {
		id := o.ID.String()
		if seen[id] {
			t.Fatalf("duplicate order id %s", id)
		}
		seen[id] = true
	}
	if len(p.Orders) != 5 {
		t.Fatalf("expected 5 orders, got %d", len(p.Orders))
	}
}
