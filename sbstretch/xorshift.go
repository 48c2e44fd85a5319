package sbstretch

// Xorshift64 is Marsaglia's 64-bit xorshift generator
// with shift triple (13, 7, 17).
//
// A zero State is a fixed point and yields zero forever.
type Xorshift64 struct {
	State uint64
}

// Next advances the generator and returns the new state.
func (x *Xorshift64) Next() uint64 {
	s := x.State
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.State = s
	return s
}
