package models

// Stock maps an item name to its on-hand quantity. A quantity may pass
// through negative values while an operation is in flight, but entries are
// deleted rather than kept once they reach zero or below.
type Stock map[string]int

// Clone returns an independent copy of the stock map.
func (s Stock) Clone() Stock {
	out := make(Stock, len(s))
	for name, qty := range s {
		out[name] = qty
	}
	return out
}
