package oneof

// Capability helpers only instantiate when every member of the set supports
// the capability, so support is visible at the call site before use. A set
// with one member lacking the capability simply has no matching helper.

// EqualN reports whether two containers hold the same member with the same
// value. Differing tags never compare equal. Containers over comparable
// members also support == directly; the inactive fields of a container
// always hold their zero values, so == agrees with EqualN.

func Equal1[A comparable](x, y OneOf1[A]) bool {
	return x == y
}

func Equal2[A, B comparable](x, y OneOf2[A, B]) bool {
	return x == y
}

func Equal3[A, B, C comparable](x, y OneOf3[A, B, C]) bool {
	return x == y
}

func Equal4[A, B, C, D comparable](x, y OneOf4[A, B, C, D]) bool {
	return x == y
}

func Equal5[A, B, C, D, E comparable](x, y OneOf5[A, B, C, D, E]) bool {
	return x == y
}

// CloneN deep-copies a container by dispatching to the active member's Copy.

func Clone1[A Copyable[A]](o OneOf1[A]) OneOf1[A] {
	return First1(o.a.Copy())
}

func Clone2[A Copyable[A], B Copyable[B]](o OneOf2[A, B]) OneOf2[A, B] {
	switch o.tag {
	case 1:
		return Second2[A, B](o.b.Copy())
	default:
		return First2[A, B](o.a.Copy())
	}
}

func Clone3[A Copyable[A], B Copyable[B], C Copyable[C]](o OneOf3[A, B, C]) OneOf3[A, B, C] {
	switch o.tag {
	case 1:
		return Second3[A, B, C](o.b.Copy())
	case 2:
		return Third3[A, B, C](o.c.Copy())
	default:
		return First3[A, B, C](o.a.Copy())
	}
}

func Clone4[A Copyable[A], B Copyable[B], C Copyable[C], D Copyable[D]](o OneOf4[A, B, C, D]) OneOf4[A, B, C, D] {
	switch o.tag {
	case 1:
		return Second4[A, B, C, D](o.b.Copy())
	case 2:
		return Third4[A, B, C, D](o.c.Copy())
	case 3:
		return Fourth4[A, B, C, D](o.d.Copy())
	default:
		return First4[A, B, C, D](o.a.Copy())
	}
}

func Clone5[A Copyable[A], B Copyable[B], C Copyable[C], D Copyable[D], E Copyable[E]](o OneOf5[A, B, C, D, E]) OneOf5[A, B, C, D, E] {
	switch o.tag {
	case 1:
		return Second5[A, B, C, D, E](o.b.Copy())
	case 2:
		return Third5[A, B, C, D, E](o.c.Copy())
	case 3:
		return Fourth5[A, B, C, D, E](o.d.Copy())
	case 4:
		return Fifth5[A, B, C, D, E](o.e.Copy())
	default:
		return First5[A, B, C, D, E](o.a.Copy())
	}
}

// ErrN returns the active member as an error, for sets whose every member
// implements error.

func Err1[A error](o OneOf1[A]) error {
	return o.a
}

func Err2[A, B error](o OneOf2[A, B]) error {
	switch o.tag {
	case 1:
		return o.b
	default:
		return o.a
	}
}

func Err3[A, B, C error](o OneOf3[A, B, C]) error {
	switch o.tag {
	case 1:
		return o.b
	case 2:
		return o.c
	default:
		return o.a
	}
}

func Err4[A, B, C, D error](o OneOf4[A, B, C, D]) error {
	switch o.tag {
	case 1:
		return o.b
	case 2:
		return o.c
	case 3:
		return o.d
	default:
		return o.a
	}
}

func Err5[A, B, C, D, E error](o OneOf5[A, B, C, D, E]) error {
	switch o.tag {
	case 1:
		return o.b
	case 2:
		return o.c
	case 3:
		return o.d
	case 4:
		return o.e
	default:
		return o.a
	}
}
