/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package apperr holds the error kinds the services report to the HTTP
// boundary. Handlers match them with errors.Is and translate each kind to
// its response: 404, redirect to login, redirect to a safe page, or a form
// validation message.
package apperr

import "errors"

var (
	// ErrNotFound marks a lookup miss on a group slug, username or post id.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an authorization violation, such as editing someone else's post.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthenticated marks a write attempted without a logged-in identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrDuplicateSlug marks a group creation colliding with an existing slug.
	ErrDuplicateSlug = errors.New("duplicate slug")
)
