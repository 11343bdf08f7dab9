package signals

// Signals are plain structs identified by their concrete type. A signal
// becomes fire-and-forget by embedding Void, or a request expecting
// responses of type R by embedding Returns[R]:
//
//	type Damaged struct {
//		signals.Void
//		Amount int
//	}
//
//	type QueryArmor struct {
//		signals.Returns[int]
//	}
//
// Embedding both markers leaves the marker method ambiguous, so such a type
// is neither a Signal nor a Request and cannot be registered or raised.

type void struct{}

// Signal is a fire-and-forget event. Handlers return nothing.
type Signal interface {
	response() void
}

// Request is a signal whose handlers answer with zero or more values of R.
type Request[R any] interface {
	response() R
}

// Void marks a struct as a fire-and-forget Signal.
type Void struct{}

func (Void) response() void { return void{} }

// Returns marks a struct as a Request answered with values of R.
type Returns[R any] struct{}

func (Returns[R]) response() R {
	var zero R
	return zero
}
