/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

// A named topic bucket posts may optionally be filed under.
// Deleting a group clears the reference on its posts; it never deletes them.
type Group struct {
	UUID        string `gorm:"primaryKey" json:"uuid"`            // Unique identifier
	Title       string `gorm:"size:200;not null" json:"title"`    // Display name, at most 200 characters
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`  // URL key, unique across groups
	Description string `json:"description"`                       // Free-form text shown on the group page
}
