package fallible

// Observer is told about a failure that a combinator is about to discard or
// replace. It must not influence the combinator's outcome.
type Observer func(err error)

// Observers fans one failure out to several observers, in order.
func Observers(observers ...Observer) Observer {
	return func(err error) {
		notify(err, observers)
	}
}

func notify[X error](x X, observers []Observer) {
	for _, o := range observers {
		if o != nil {
			o(x)
		}
	}
}
