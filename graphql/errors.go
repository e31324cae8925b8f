/**
 * Copyright (c) 2026, The Patchwork Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

// Errors wraps a list of *Error. It is intentionally a struct rather than a bare []*Error slice
// so that callers use HaveOccurred() instead of a nil check: a zero-length Errors is not an error,
// but the zero value of a slice and an empty slice are easy to conflate.
type Errors struct {
	Errors []*Error
}

// NoErrors returns an empty Errors.
func NoErrors() Errors {
	return Errors{}
}

// Emplace constructs an Error from message and args (see NewError) and appends it.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends each given Error to errs in place.
func (errs *Errors) Append(e ...*Error) {
	errs.Errors = append(errs.Errors, e...)
}

// AppendErrors flattens each given Errors into errs in place.
func (errs *Errors) AppendErrors(others ...Errors) {
	for _, other := range others {
		errs.Errors = append(errs.Errors, other.Errors...)
	}
}

// HaveOccurred reports whether errs contains at least one Error.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}
