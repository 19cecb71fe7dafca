package itertools

import (
	"context"
	"math"
	"reflect"

	"github.com/kbukum/iterkit/errors"
	"github.com/kbukum/iterkit/logger"
)

// Kind identifies the constructor that rebuilds a snapshot.
type Kind string

// Snapshot kinds.
const (
	KindRepeat                      Kind = "repeat"
	KindCount                       Kind = "count"
	KindChain                       Kind = "chain"
	KindStarmap                     Kind = "starmap"
	KindFilterFalse                 Kind = "filterfalse"
	KindCompress                    Kind = "compress"
	KindZipLongest                  Kind = "zip_longest"
	KindCycle                       Kind = "cycle"
	KindIslice                      Kind = "islice"
	KindAccumulate                  Kind = "accumulate"
	KindPermutations                Kind = "permutations"
	KindCombinations                Kind = "combinations"
	KindCombinationsWithReplacement Kind = "combinations_with_replacement"
	KindProduct                     Kind = "product"
	KindTee                         Kind = "tee"
)

// Snapshot describes how to rebuild an iterator at its current position.
//
// Args are the constructor arguments in order, with live sources captured
// by reference. State is passed to Restore on the rebuilt iterator; it is
// nil when the constructor alone reproduces the iterator.
type Snapshot struct {
	Kind  Kind
	Args  []any
	State any
}

// Snapshotter is implemented by iterators supporting snapshot/resume.
type Snapshotter interface {
	// Snapshot captures the current position.
	Snapshot() *Snapshot
	// Restore resumes from a State produced by Snapshot. Nothing is
	// changed when an error is returned.
	Restore(state any) error
}

// reject records a refused restore and returns err.
func reject(kind Kind, err *errors.AppError) error {
	iteratorMetrics().RecordRestoreRejected(context.Background(), string(kind), string(err.Code))
	log().Debug("restore rejected", logger.Fields(
		logger.FieldKind, string(kind),
		logger.FieldError, err.Message,
	))
	return err
}

// restoreNil accepts only a nil state, for kinds whose constructor
// carries the whole position.
func restoreNil(kind Kind, state any) error {
	if state != nil {
		return reject(kind, errors.TypeMismatch(string(kind), "nil", state))
	}
	return nil
}

// asState asserts state to S, accepting either S or *S.
func asState[S any](kind Kind, state any) (S, error) {
	switch s := state.(type) {
	case S:
		return s, nil
	case *S:
		if s != nil {
			return *s, nil
		}
	}
	var zero S
	return zero, reject(kind, errors.TypeMismatch(string(kind), reflect.TypeFor[S]().String(), state))
}

// asCount converts a restored counter to int. Any integer kind and
// integral float64 values (as produced by generic decoders) are accepted.
func asCount(kind Kind, state any) (int, error) {
	var n int64
	rv := reflect.ValueOf(state)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, reject(kind, errors.InvalidState(string(kind), "count overflows int"))
		}
		n = int64(u)
	case reflect.Float64, reflect.Float32:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, reject(kind, errors.TypeMismatch(string(kind), "integer", state))
		}
		n = int64(f)
	default:
		return 0, reject(kind, errors.TypeMismatch(string(kind), "integer", state))
	}
	if n < 0 {
		return 0, reject(kind, errors.InvalidState(string(kind), "count must be non-negative"))
	}
	if n > math.MaxInt {
		return 0, reject(kind, errors.InvalidState(string(kind), "count overflows int"))
	}
	return int(n), nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func errInvalidState(kind Kind, reason string) *errors.AppError {
	return errors.InvalidState(string(kind), reason)
}
