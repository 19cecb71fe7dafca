// Package errors provides the structured error type shared by iterkit
// packages. Every failure raised by the library itself (as opposed to an
// error returned by a caller-supplied function or an upstream source) is an
// *AppError carrying a machine-readable ErrorCode.
//
// Exhaustion of an iterator is never an error; see the itertools package.
package errors
