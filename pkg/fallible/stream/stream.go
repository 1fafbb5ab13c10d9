package stream

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/ib-77/fallible/pkg/fallible"
)

// ErrConsumed is wrapped by the panic raised when a consumed stream is used again.
var ErrConsumed = errors.New("stream has already been operated upon or closed")

// pusher drives a traversal: it hands every element to emit until emit asks to
// stop or something fails, and returns that failure.
type pusher[T any, X error] func(emit func(T) (more bool, x X)) X

type state struct {
	consumed bool
	closed   bool
	closers  []func()
}

// Stream is a lazily evaluated sequence of T whose stages may fail with X.
type Stream[T any, X error] struct {
	push  pusher[T, X]
	state *state
}

// Of wraps a non-failing sequence. The result never fails until a fail-prone
// stage is attached, but statically carries X for the stages that follow.
func Of[X error, T any](seq iter.Seq[T]) *Stream[T, X] {
	return &Stream[T, X]{
		state: &state{},
		push: func(emit func(T) (bool, X)) X {
			var none X
			for v := range seq {
				more, x := emit(v)
				if fallible.Failed(x) {
					return x
				}
				if !more {
					break
				}
			}
			return none
		},
	}
}

func Values[X error, T any](values ...T) *Stream[T, X] {
	return Of[X](slices.Values(values))
}

func Empty[X error, T any]() *Stream[T, X] {
	return Values[X, T]()
}

// Concat traverses a, then b. Both inputs are consumed by this call and are
// closed when the result is closed.
func Concat[T any, X error](a, b *Stream[T, X]) *Stream[T, X] {
	a.consume("concat")
	b.consume("concat")

	return &Stream[T, X]{
		state: &state{closers: []func(){a.Close, b.Close}},
		push: func(emit func(T) (bool, X)) X {
			stopped := false
			relay := func(t T) (bool, X) {
				more, x := emit(t)
				stopped = !more
				return more, x
			}
			if x := a.push(relay); fallible.Failed(x) || stopped {
				return x
			}
			return b.push(relay)
		},
	}
}

// Unfailing hands a stream that cannot fail back to the iter ecosystem.
// The stream is consumed by this call.
func Unfailing[T any](s *Stream[T, fallible.Nothing]) iter.Seq[T] {
	s.consume("unfailing")
	ran := false
	return func(yield func(T) bool) {
		if ran {
			panic(fmt.Errorf("stream: unfailing: %w", ErrConsumed))
		}
		ran = true
		s.push(func(t T) (bool, fallible.Nothing) {
			return yield(t), fallible.Nothing{}
		})
	}
}

// OnClose registers a handler run by Close, in registration order.
func (s *Stream[T, X]) OnClose(handler func()) *Stream[T, X] {
	s.check("onClose")
	s.state.closers = append(s.state.closers, handler)
	return &Stream[T, X]{push: s.push, state: s.state}
}

// Close runs the close handlers once and makes the stream unusable.
func (s *Stream[T, X]) Close() {
	st := s.state
	st.consumed = true
	if st.closed {
		return
	}
	st.closed = true
	for _, handler := range st.closers {
		handler()
	}
}

func (s *Stream[T, X]) check(op string) {
	if s.state.consumed {
		panic(fmt.Errorf("stream: %s: %w", op, ErrConsumed))
	}
}

func (s *Stream[T, X]) consume(op string) {
	s.check(op)
	s.state.consumed = true
}

func (s *Stream[T, X]) stage(op string, push pusher[T, X]) *Stream[T, X] {
	return derive(s, op, push)
}

func derive[T, R any, X, Y error](s *Stream[T, X], op string, push pusher[R, Y]) *Stream[R, Y] {
	s.check(op)
	return &Stream[R, Y]{push: push, state: s.state}
}
