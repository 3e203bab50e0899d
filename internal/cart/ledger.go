package cart

import "slices"

// Item is one ledger line.
type Item struct {
	ProductID string
	Quantity  int
}

// Ledger maps product ids to positive quantities. It is a value: every mutation
// returns a new Ledger and leaves the receiver as it was. The zero value is empty.
type Ledger struct {
	order []string
	qty   map[string]int
}

func NewLedger() Ledger {
	return Ledger{}
}

func (l Ledger) clone() Ledger {
	out := Ledger{
		order: slices.Clone(l.order),
		qty:   make(map[string]int, len(l.qty)+1),
	}
	for id, n := range l.qty {
		out.qty[id] = n
	}
	return out
}

// Add increments the quantity of id, inserting it at 1 when absent.
func (l Ledger) Add(id string) Ledger {
	out := l.clone()
	if _, ok := out.qty[id]; !ok {
		out.order = append(out.order, id)
	}
	out.qty[id]++
	return out
}

// SetQuantity sets the quantity of id; n <= 0 removes the line.
func (l Ledger) SetQuantity(id string, n int) Ledger {
	if n <= 0 {
		return l.Remove(id)
	}
	out := l.clone()
	if _, ok := out.qty[id]; !ok {
		out.order = append(out.order, id)
	}
	out.qty[id] = n
	return out
}

// Remove deletes the line for id. Absent ids are a no-op.
func (l Ledger) Remove(id string) Ledger {
	out := l.clone()
	if _, ok := out.qty[id]; !ok {
		return out
	}
	delete(out.qty, id)
	out.order = slices.DeleteFunc(out.order, func(s string) bool { return s == id })
	return out
}

// Subtract lowers the quantity of id by n, dropping the line once it reaches zero.
// Absent ids are a no-op.
func (l Ledger) Subtract(id string, n int) Ledger {
	cur, ok := l.qty[id]
	if !ok {
		return l.clone()
	}
	return l.SetQuantity(id, cur-n)
}

func (l Ledger) Quantity(id string) int {
	return l.qty[id]
}

func (l Ledger) Len() int {
	return len(l.order)
}

func (l Ledger) IsEmpty() bool {
	return len(l.order) == 0
}

// TotalUnits is the sum of all quantities, the number shown on the cart badge.
func (l Ledger) TotalUnits() int {
	total := 0
	for _, n := range l.qty {
		total += n
	}
	return total
}

// Items returns the lines in the order they were first added.
func (l Ledger) Items() []Item {
	items := make([]Item, 0, len(l.order))
	for _, id := range l.order {
		items = append(items, Item{ProductID: id, Quantity: l.qty[id]})
	}
	return items
}
