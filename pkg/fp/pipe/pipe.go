// Package pipe threads a value through plain functions, left to right.
// It is the glue between the option and either combinators: each step
// receives the previous step's output, so a call reads in the order it
// runs instead of inside out.
package pipe

// Pipe2 applies f then g to v.
func Pipe2[A, B, C any](v A, f func(A) B, g func(B) C) C {
	return g(f(v))
}

// Pipe3 applies f, g then h to v.
func Pipe3[A, B, C, D any](v A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(v)))
}

// Pipe4 applies f, g, h then i to v.
func Pipe4[A, B, C, D, E any](v A, f func(A) B, g func(B) C, h func(C) D, i func(D) E) E {
	return i(h(g(f(v))))
}

// Pipe5 applies f, g, h, i then j to v.
func Pipe5[A, B, C, D, E, F any](v A, f func(A) B, g func(B) C, h func(C) D, i func(D) E,
	j func(E) F) F {
	return j(i(h(g(f(v)))))
}

// Comp fuses f and g into a single step, f first.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(v A) C {
		return g(f(v))
	}
}

// Iden returns its argument unchanged.
func Iden[T any](v T) T {
	return v
}

// Const ignores its argument and always yields v.
func Const[A, B any](v B) func(A) B {
	return func(A) B {
		return v
	}
}

// Tap runs f for its side effect and passes the value through.
func Tap[T any](f func(T)) func(T) T {
	return func(v T) T {
		f(v)
		return v
	}
}
