package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Request parsing limits matching database schema constraints.
const (
	MaxTitleLen   = 200 // questions.title VARCHAR(200)
	MaxTagNameLen = 50  // tags.name VARCHAR(50)
	MaxNameLen    = 100 // users.name VARCHAR(100)

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ParseID parses a positive int64 id from a path or query value. Returns
// an error message suitable for the response when malformed.
func ParseID(raw string) (int64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "id is required"
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, "id must be a positive integer"
	}
	return id, ""
}

// ParsePage reads page/pageSize query parameters with sane defaults and a
// hard cap on page size.
func ParsePage(c fiber.Ctx) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.Query("pageSize", strconv.Itoa(DefaultPageSize)))
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// ValidateTitle trims and bounds a question title.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "title must be at most 200 characters"
	}
	return title, ""
}

// ValidateName trims and bounds a user display name.
func ValidateName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "name is required"
	}
	if len(name) > MaxNameLen {
		return "", "name must be at most 100 characters"
	}
	return name, ""
}

// ValidateTagNames trims tag names and rejects empty or oversized ones.
func ValidateTagNames(tags []string) ([]string, string) {
	if len(tags) == 0 {
		return nil, "at least one tag is required"
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if len(t) > MaxTagNameLen {
			return nil, "tag names must be at most 50 characters"
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, "at least one tag is required"
	}
	return out, ""
}
