package routegate

// Navigator performs navigation on the gate's behalf. Fire-and-forget: the
// gate never consumes a result.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) {
	f(path)
}
