/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// Authored text content, optionally filed under a group and illustrated
// with one image. Only the author may change text, group or image; the
// creation time is set once and never updated.
type Post struct {
	UUID      string    `gorm:"primaryKey" json:"uuid"`           // Unique identifier
	Text      string    `gorm:"not null" json:"text"`             // Body of the post, required
	CreatedAt time.Time `gorm:"not null;index" json:"created-at"` // Time of creation, immutable
	ImagePath string    `json:"image-path"`                       // Reference into the media store, empty when the post carries no image

	AuthorUUID string `gorm:"not null;index" json:"author"` // UUID of the owning user
	Author     User   `gorm:"foreignKey:AuthorUUID;constraint:OnDelete:CASCADE" json:"-"`

	GroupUUID *string `gorm:"index" json:"group"` // Nil when the post is not filed under a group
	Group     *Group  `gorm:"foreignKey:GroupUUID;constraint:OnDelete:SET NULL" json:"-"`
}
