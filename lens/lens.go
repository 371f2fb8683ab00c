// Package lens provides copy-on-write update helpers.
//
// A setter built here returns its input untouched when the new value equals
// the current one, so callers can compare results with == (or by map
// identity) to learn whether anything changed.
package lens

import "maps"

// Getter reads a field out of an outer value.
type Getter[O, V any] func(outer O) V

// Setter returns outer with a field replaced.
type Setter[O, V any] func(outer O, value V) O

// Update combines the current field value with an argument.
type Update[V any] func(current, arg V) V

func Identity[T any](x T) T { return x }

// Swap is the default cursor update: the argument replaces the field.
func Swap[V any](_ V, v V) V { return v }

// NewSetter wraps set so that it only runs when get reports a different value.
func NewSetter[O any, V comparable](get Getter[O, V], set Setter[O, V]) Setter[O, V] {
	return func(outer O, value V) O {
		if get(outer) == value {
			return outer
		}
		return set(outer, value)
	}
}

// Cursor reads a field, combines it with the argument and writes it back.
func Cursor[O, V any](get Getter[O, V], set Setter[O, V], update Update[V]) Setter[O, V] {
	if update == nil {
		update = Swap[V]
	}
	return func(outer O, arg V) O {
		return set(outer, update(get(outer), arg))
	}
}

// Lens pairs a getter with a setter.
type Lens[O, V any] struct {
	Get Getter[O, V]
	Set Setter[O, V]
}

// New builds a lens whose setter is copy-on-write.
func New[O any, V comparable](get Getter[O, V], set Setter[O, V]) Lens[O, V] {
	return Lens[O, V]{Get: get, Set: NewSetter(get, set)}
}

// Over returns a cursor applying update through the lens.
func (l Lens[O, V]) Over(update Update[V]) Setter[O, V] {
	return Cursor(l.Get, l.Set, update)
}

// Put is Set in method form.
func (l Lens[O, V]) Put(outer O, v V) O { return l.Set(outer, v) }

// SetKey sets m[k] = v on a copy of m. m itself is returned when it already
// holds v under k.
func SetKey[M ~map[K]V, K, V comparable](m M, k K, v V) M {
	if cur, ok := m[k]; ok && cur == v {
		return m
	}
	c := make(M, len(m)+1)
	maps.Copy(c, m)
	c[k] = v
	return c
}

// Merge returns a new map holding a's entries overwritten by b's. If b would
// change nothing, a is returned as is.
func Merge[M ~map[K]V, K, V comparable](a, b M) M {
	for k, v := range b {
		if cur, ok := a[k]; !ok || cur != v {
			c := make(M, len(a)+len(b))
			maps.Copy(c, a)
			maps.Copy(c, b)
			return c
		}
	}
	return a
}
