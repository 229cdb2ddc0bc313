package oneof

// MatchN reduces a container to a single value with one handler per member.
// Exhaustiveness is structural: the signature demands every handler.

func Match1[A, R any](o OneOf1[A], onFirst func(A) R) R {
	return onFirst(o.a)
}

func Match2[A, B, R any](o OneOf2[A, B], onFirst func(A) R, onSecond func(B) R) R {
	switch o.tag {
	case 1:
		return onSecond(o.b)
	default:
		return onFirst(o.a)
	}
}

func Match3[A, B, C, R any](o OneOf3[A, B, C], onFirst func(A) R, onSecond func(B) R, onThird func(C) R) R {
	switch o.tag {
	case 1:
		return onSecond(o.b)
	case 2:
		return onThird(o.c)
	default:
		return onFirst(o.a)
	}
}

func Match4[A, B, C, D, R any](o OneOf4[A, B, C, D], onFirst func(A) R, onSecond func(B) R, onThird func(C) R, onFourth func(D) R) R {
	switch o.tag {
	case 1:
		return onSecond(o.b)
	case 2:
		return onThird(o.c)
	case 3:
		return onFourth(o.d)
	default:
		return onFirst(o.a)
	}
}

func Match5[A, B, C, D, E, R any](o OneOf5[A, B, C, D, E], onFirst func(A) R, onSecond func(B) R, onThird func(C) R, onFourth func(D) R, onFifth func(E) R) R {
	switch o.tag {
	case 1:
		return onSecond(o.b)
	case 2:
		return onThird(o.c)
	case 3:
		return onFourth(o.d)
	case 4:
		return onFifth(o.e)
	default:
		return onFirst(o.a)
	}
}
