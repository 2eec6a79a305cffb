package cart

import (
	"testing"

	"grocerly_back_end/internal/models"
)

func line(id string, price models.Cents, qty int) models.CartLine {
	return models.CartLine{ProductID: id, Name: "p-" + id, UnitPrice: price, Quantity: qty}
}

func TestAddMergesSameProduct(t *testing.T) {
	c := New(nil)
	c.Add(line("a", 200, 1))
	c.Add(line("a", 200, 1))

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Lines[0].Quantity)
	}
}

func TestAddSumsQuantitiesAcrossCalls(t *testing.T) {
	c := New(nil)
	c.Add(line("a", 100, 2))
	c.Add(line("b", 300, 1))
	c.Add(line("a", 100, 3))

	if len(c.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Lines))
	}
	if c.Lines[0].ProductID != "a" || c.Lines[0].Quantity != 5 {
		t.Fatalf("line a: expected qty 5, got %+v", c.Lines[0])
	}
	// ordre d'insertion préservé
	if c.Lines[1].ProductID != "b" {
		t.Fatalf("expected b at position 1, got %s", c.Lines[1].ProductID)
	}
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	c := New(nil)
	c.Add(line("a", 100, 0))
	c.Add(line("a", 100, -3))
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines))
	}
}

func TestRemoveDeletesWholeLine(t *testing.T) {
	c := New(nil)
	c.Add(line("a", 100, 4))
	c.Remove("a")
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart")
	}
	// produit absent = no-op
	c.Remove("a")
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart after no-op remove")
	}
}

func TestDecreaseRemovesAtZeroThenNoop(t *testing.T) {
	c := New(nil)
	c.Add(line("a", 100, 2))

	c.Decrease("a")
	if c.Lines[0].Quantity != 1 {
		t.Fatalf("expected qty 1, got %d", c.Lines[0].Quantity)
	}

	c.Decrease("a")
	if !c.IsEmpty() {
		t.Fatalf("expected line removed at qty 0")
	}

	c.Decrease("a")
	if !c.IsEmpty() {
		t.Fatalf("expected no-op on absent product")
	}
}

func TestIncreaseAbsentProductIsNoop(t *testing.T) {
	c := New(nil)
	c.Increase("ghost")
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart")
	}
}

func TestTotals(t *testing.T) {
	// Panier = [{a, 2.00€, x2}, {b, 3.50€, x1}] → sous-total 7.50,
	// livraison 2.50, total 10.00
	c := New(nil)
	c.Add(line("a", 200, 2))
	c.Add(line("b", 350, 1))

	if got := c.Subtotal(); got != 750 {
		t.Fatalf("subtotal: expected 750, got %d", got)
	}
	if got := c.DeliveryFeeAmount(); got != 250 {
		t.Fatalf("delivery fee: expected 250, got %d", got)
	}
	if got := c.Total(); got != 1000 {
		t.Fatalf("total: expected 1000, got %d", got)
	}
	if got := c.Count(); got != 3 {
		t.Fatalf("count: expected 3, got %d", got)
	}
}

func TestEmptyCartHasNoDeliveryFee(t *testing.T) {
	c := New(nil)
	if c.Subtotal() != 0 || c.DeliveryFeeAmount() != 0 || c.Total() != 0 {
		t.Fatalf("empty cart: expected all totals 0, got %d/%d/%d",
			c.Subtotal(), c.DeliveryFeeAmount(), c.Total())
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	c := New(nil)
	c.Add(line("a", 200, 2))

	snap := c.Snapshot()
	c.Increase("a")
	c.Clear()

	if len(snap) != 1 || snap[0].Quantity != 2 {
		t.Fatalf("snapshot mutated: %+v", snap)
	}
}
