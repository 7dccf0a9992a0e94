// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package notices

// Raised when a page cannot be rendered at all. The handler shows Msg
// on the page found at URL instead.
type RedirectError struct {
	Msg string
	URL string
	Err error
}

func (e *RedirectError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *RedirectError) Unwrap() error {
	return e.Err
}
