// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session cookie. Callers can match against them with [errors.Is].
var (
	// ErrMissingToken is returned by the auth middleware when the incoming
	// request carries no session cookie at all.
	ErrMissingToken = errors.New("missing session token")

	// ErrEmptyToken is returned when the session cookie is present but its
	// value is an empty string.
	ErrEmptyToken = errors.New("empty session token")
)
