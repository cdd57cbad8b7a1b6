package dispersion

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a
// specific date. Dates are unique and the series is always sorted.
type History[T float32 | float64] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Days returns the sorted dates of the history. The returned slice is shared.
func (h *History[T]) Days() []Date { return h.days }

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// search returns the index of day and whether it is present.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append adds a point to the history. An existing value at that date is
// overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = q
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// AppendAdd adds a point to the history. An existing value at that date
// is added to.
func (h *History[T]) AppendAdd(on Date, q T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] += q
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// Get returns the value at 'day' and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Slice returns a new history restricted to the dates within r, inclusive.
func (h *History[T]) Slice(r Range) *History[T] {
	s := &History[T]{}
	for i, on := range h.days {
		if r.Contains(on) {
			s.days = append(s.days, on)
			s.values = append(s.values, h.values[i])
		}
	}
	return s
}

// MoneyHistory is a chronological series of Money values. It is a
// distinct type because Money's decimal arithmetic cannot satisfy the
// numeric constraint of History.
type MoneyHistory struct {
	days   []Date
	values []Money
}

// Len returns the number of items in the history.
func (h *MoneyHistory) Len() int { return len(h.days) }

// Days returns the sorted dates of the history. The returned slice is shared.
func (h *MoneyHistory) Days() []Date { return h.days }

// First returns the earliest date and value in the history.
func (h *MoneyHistory) First() (Date, Money) {
	if len(h.days) == 0 {
		return Date{}, Money{}
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value in the history.
func (h *MoneyHistory) Latest() (Date, Money) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, Money{}
	}
	return h.days[last], h.values[last]
}

func (h *MoneyHistory) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append adds a point to the history. An existing value at that date is
// overwritten.
func (h *MoneyHistory) Append(on Date, m Money) *MoneyHistory {
	i, found := h.search(on)
	if found {
		h.values[i] = m
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, m)
	return h
}

// AppendAdd adds a point to the history. An existing value at that date
// is added to.
func (h *MoneyHistory) AppendAdd(on Date, m Money) *MoneyHistory {
	i, found := h.search(on)
	if found {
		h.values[i] = h.values[i].Add(m)
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, m)
	return h
}

// Get returns the value at 'day' and true, or a zero Money and false.
func (h *MoneyHistory) Get(day Date) (Money, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return Money{}, false
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (h *MoneyHistory) Values() iter.Seq2[Date, Money] {
	return func(yield func(Date, Money) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Slice returns a new history restricted to the dates within r, inclusive.
func (h *MoneyHistory) Slice(r Range) *MoneyHistory {
	s := &MoneyHistory{}
	for i, on := range h.days {
		if r.Contains(on) {
			s.days = append(s.days, on)
			s.values = append(s.values, h.values[i])
		}
	}
	return s
}

// Cumulative returns the running cumulative sum of the history, starting
// from base.
func (h *MoneyHistory) Cumulative(base Money) *MoneyHistory {
	c := &MoneyHistory{
		days:   slices.Clone(h.days),
		values: make([]Money, len(h.values)),
	}
	running := base
	for i := range h.values {
		running = running.Add(h.values[i])
		c.values[i] = running
	}
	return c
}
