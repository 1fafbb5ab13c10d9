package chain

import (
	"github.com/ib-77/fallible/pkg/fallible"
)

type Chain[T any, X error] struct {
	res fallible.Result[T, X]
}

func Start[T any, X error](r fallible.Result[T, X]) Chain[T, X] {
	return Chain[T, X]{res: r}
}

func FromValue[X error, T any](v T) Chain[T, X] {
	return Start(fallible.Success[T, X](v))
}

// Attempt starts a chain from the outcome of s.
func Attempt[T any, X error](s fallible.Supplier[T, X]) Chain[T, X] {
	return Start(fallible.Attempt(s))
}

func (c Chain[T, X]) Result() fallible.Result[T, X] {
	return c.res
}

// Get returns the current value and failure.
func (c Chain[T, X]) Get() (T, X) {
	return c.res.Get()
}

// Then applies a fail-prone step to the current value.
func (c Chain[T, X]) Then(step fallible.UnaryOperator[T, X]) Chain[T, X] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, X]{res: fallible.ThenResult(c.res, step)}
}

// Map transforms the successful value.
func (c Chain[T, X]) Map(onSuccess func(T) T) Chain[T, X] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, X]{res: fallible.MapResult(c.res, onSuccess)}
}

// Validate fails the chain with invalid(v) when p rejects the value. A
// failure of p itself fails the chain too.
func (c Chain[T, X]) Validate(p fallible.Predicate[T, X], invalid func(T) X) Chain[T, X] {
	if c.res.IsFailure() {
		return c
	}
	v := c.res.Value()
	ok, x := p(v)
	if fallible.Failed(x) {
		return Chain[T, X]{res: fallible.Failure[T](x)}
	}
	if !ok {
		return Chain[T, X]{res: fallible.Failure[T](invalid(v))}
	}
	return c
}

// RepeatUntil applies step at least once and again while until keeps
// returning true.
func (c Chain[T, X]) RepeatUntil(step fallible.UnaryOperator[T, X], until func(T) bool) Chain[T, X] {
	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(step)

		if c.res.IsFailure() || !until(c.res.Value()) {
			return c
		}
	}
}

// While applies step as long as while holds for the current value.
func (c Chain[T, X]) While(step fallible.UnaryOperator[T, X], while func(T) bool) Chain[T, X] {
	for !c.res.IsFailure() && while(c.res.Value()) {
		c = c.Then(step)
	}
	return c
}

// Or returns the first successful chain. When all of them failed, the first
// failure is kept and the rest are reported to the observers.
func (c Chain[T, X]) Or(alternative Chain[T, X], observers ...fallible.Observer) Chain[T, X] {
	return c.or([]Chain[T, X]{alternative}, observers)
}

func (c Chain[T, X]) or(chains []Chain[T, X], observers []fallible.Observer) Chain[T, X] {
	candidates := make([]Chain[T, X], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var failed []Chain[T, X]
	for _, ch := range candidates {
		if ch.res.IsSuccess() {
			return ch
		}
		failed = append(failed, ch)
	}

	report := fallible.Observers(observers...)
	for _, ch := range failed[1:] {
		report(ch.res.Failure())
	}
	return failed[0]
}

// And returns the first failed chain, or required when every chain succeeded.
func (c Chain[T, X]) And(required Chain[T, X]) Chain[T, X] {
	return c.and(required)
}

func (c Chain[T, X]) and(chains ...Chain[T, X]) Chain[T, X] {
	candidates := make([]Chain[T, X], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	for _, ch := range candidates {
		if ch.res.IsFailure() {
			return ch
		}
	}
	return candidates[len(candidates)-1]
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, X]) Ensure(onSuccess func(T), onFailure func(X)) Chain[T, X] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Failure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T, X]) Finally(onSuccess func(T) T, onFailure func(X) T) T {
	return fallible.Fold[T, T, X](c.res, onSuccess, onFailure)
}
