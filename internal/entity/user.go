/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A registered author. Posts, comments and follow edges all reference users
// by UUID; the username is the public handle and never changes once set.
type User struct {
	UUID      string    `gorm:"primaryKey" json:"uuid"`               // Unique identifier
	Username  string    `gorm:"uniqueIndex;not null" json:"username"` // Public handle, unique and immutable
	FullName  string    `json:"full-name"`                            // Display name shown on profile pages
	CreatedAt time.Time `gorm:"not null" json:"created-at"`           // Time of registration

	Secret UserSecret `gorm:"foreignKey:UserUUID;constraint:OnDelete:CASCADE" json:"-"` // Password hash, kept in its own table
}

// DisplayName is what the templates print next to a post or comment.
// It falls back to the username when the user never set a full name.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
