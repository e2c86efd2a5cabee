// Package fallible wraps reads that are allowed to fail. A failed read yields a
// caller-supplied default and is reported, never returned.
package fallible

import "fmt"

// Reporter is told about every read that fell back to its default.
type Reporter interface {
	ReadFailed(source string, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(source string, err error)

// ReadFailed calls f.
func (f ReporterFunc) ReadFailed(source string, err error) { f(source, err) }

// Discard ignores all failures.
var Discard Reporter = ReporterFunc(func(string, error) {})

// Multi fans a failure out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(source string, err error) {
		for _, r := range reporters {
			if r != nil {
				r.ReadFailed(source, err)
			}
		}
	})
}

// PanicError carries the value recovered from a read that panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic during read: %v", e.Value) }

// Read runs read and returns its value. If read returns an error or panics,
// def is returned instead and the failure goes to r under source.
func Read[T any](r Reporter, source string, def T, read func() (T, error)) (v T) {
	defer func() {
		if p := recover(); p != nil {
			report(r, source, &PanicError{Value: p})
			v = def
		}
	}()
	got, err := read()
	if err != nil {
		report(r, source, err)
		return def
	}
	return got
}

// Value is Read for reads that cannot return an error but may still panic.
func Value[T any](r Reporter, source string, def T, read func() T) T {
	return Read(r, source, def, func() (T, error) { return read(), nil })
}

// Try is Read for callers that must tell a failed read from a zero value.
// ok is false when read failed or panicked.
func Try[T any](r Reporter, source string, read func() (T, error)) (v T, ok bool) {
	type result struct {
		v  T
		ok bool
	}
	res := Read(r, source, result{}, func() (result, error) {
		got, err := read()
		return result{v: got, ok: err == nil}, err
	})
	return res.v, res.ok
}

func report(r Reporter, source string, err error) {
	if r == nil {
		return
	}
	r.ReadFailed(source, err)
}
