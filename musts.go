package bigint

import "fmt"

// MustQuo is like [Int.Quo] but panics if e is 0.
func (d Int) MustQuo(e Int) Int {
	q, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if e is 0.
func (d Int) MustRem(e Int) Int {
	r, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return r
}

// MustQuo is like [Rat.Quo] but panics if s is 0.
func (r Rat) MustQuo(s Rat) Rat {
	q, err := r.Quo(s)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", s, err))
	}
	return q
}

// MustInv is like [Rat.Inv] but panics if r is 0.
func (r Rat) MustInv() Rat {
	q, err := r.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv(%v) failed: %v", r, err))
	}
	return q
}
