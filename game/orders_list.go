package game

import "warzone/utils"

// OrdersList is a player's queue of issued orders, kept in insertion order.
type OrdersList struct {
	orders []Order
}

func NewOrdersList() *OrdersList {
	return &OrdersList{}
}

// Add appends an order.
func (l *OrdersList) Add(o Order) {
	l.orders = append(l.orders, o)
}

func (l *OrdersList) Len() int {
	return len(l.orders)
}

// Orders returns a copy of the queued orders in insertion order.
func (l *OrdersList) Orders() []Order {
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Contains reports whether an order of the given kind is queued.
func (l *OrdersList) Contains(kind OrderKind) bool {
	for _, o := range l.orders {
		if o.Kind == kind {
			return true
		}
	}
	return false
}

// PopTopOrder removes and returns the order with the lowest priority value. Among orders of
// equal priority the earliest inserted wins. An empty list returns false and is left untouched.
func (l *OrdersList) PopTopOrder() (Order, bool) {
	if len(l.orders) == 0 {
		return Order{}, false
	}
	top := 0
	for i := 1; i < len(l.orders); i++ {
		// Strict comparison keeps the earliest of equal priorities
		if l.orders[i].Priority() < l.orders[top].Priority() {
			top = i
		}
	}
	o := l.orders[top]
	l.orders = utils.RemoveAt(l.orders, top)
	return o, true
}

// Remove deletes the order at index.
func (l *OrdersList) Remove(index int) error {
	if index < 0 || index >= len(l.orders) {
		return ErrIndexOutOfRange
	}
	l.orders = utils.RemoveAt(l.orders, index)
	return nil
}

// Move relocates the order at source so that it ends up at index destination.
func (l *OrdersList) Move(source, destination int) error {
	if source < 0 || source >= len(l.orders) || destination < 0 || destination >= len(l.orders) {
		return ErrIndexOutOfRange
	}
	o := l.orders[source]
	l.orders = utils.RemoveAt(l.orders, source)
	l.orders = append(l.orders[:destination], append([]Order{o}, l.orders[destination:]...)...)
	return nil
}

// Clear drops every queued order.
func (l *OrdersList) Clear() {
	l.orders = nil
}
