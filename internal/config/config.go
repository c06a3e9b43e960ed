/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contains the minimum required information for the server to run.
// It is read once at startup from the environment, with a .env file as an
// optional source for development setups.
type Config struct {
	Addr string // Address the HTTP server binds to

	// SQLite is the default store. When DBHost is set the server connects
	// to postgres instead, using the DB* fields below.
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	PageSize   int    // Number of posts per page, shared by every listing
	MediaDir   string // Directory the media store writes image blobs into
	SessionKey string // Secret the session cookies are signed with
	LogFile    string // Log destination; empty means stdout
}

// Load reads the configuration from the environment. A missing .env file is
// not an error, package defaults apply to every unset variable.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Addr:       envOr("BLOG_ADDR", ":8080"),
		DBPath:     envOr("BLOG_DB_PATH", "blog.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		MediaDir:   envOr("BLOG_MEDIA_DIR", "media"),
		SessionKey: envOr("BLOG_SESSION_KEY", "development-key"),
		LogFile:    os.Getenv("BLOG_LOG_FILE"),
	}

	pageSize, err := strconv.Atoi(envOr("BLOG_PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("BLOG_PAGE_SIZE is not a number: %w", err)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("BLOG_PAGE_SIZE must be positive, got %d", pageSize)
	}
	cfg.PageSize = pageSize

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
