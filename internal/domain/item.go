// File: internal/domain/item.go
package domain

import (
	"net/mail"
	"strings"
	"time"
)

// ItemCategory is the fixed set of categories an item can be filed under.
type ItemCategory string

const (
	CategoryElectronics ItemCategory = "Electronics"
	CategoryBooks       ItemCategory = "Books"
	CategoryClothing    ItemCategory = "Clothing"
	CategoryIDCards     ItemCategory = "ID Cards"
	CategoryOther       ItemCategory = "Other"
)

// Categories lists every valid category, in display order.
func Categories() []ItemCategory {
	return []ItemCategory{
		CategoryElectronics,
		CategoryBooks,
		CategoryClothing,
		CategoryIDCards,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the known categories.
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryBooks, CategoryClothing, CategoryIDCards, CategoryOther:
		return true
	}
	return false
}

// ItemStatus is the lifecycle state of a report.
type ItemStatus string

const (
	StatusLost  ItemStatus = "Lost"
	StatusFound ItemStatus = "Found"
)

// IsValid reports whether s is a known status.
func (s ItemStatus) IsValid() bool {
	return s == StatusLost || s == StatusFound
}

// Item represents a single lost or found report on the board.
// ID, ChatID, ReportedAt and ImageURL are assigned by the store at
// creation time and never change afterwards.
type Item struct {
	ID          string       `json:"id"`
	ChatID      string       `json:"chatId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    ItemCategory `json:"category"`
	Status      ItemStatus   `json:"status"`
	Location    string       `json:"location"`
	Contact     string       `json:"contact"`
	ImageURL    string       `json:"imageUrl"`
	ReportedAt  time.Time    `json:"reportedAt"`
}

// ReportItemInput carries the user-supplied fields of a new report.
// The identity fields of Item are intentionally absent here.
type ReportItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
}

// Validate checks the report form against the field schema. All fields
// are attacker-supplied, so every failure is collected rather than
// short-circuiting on the first one.
func (in ReportItemInput) Validate() *ValidationError {
	ve := NewValidationError("Failed to report item. Please check the fields.")

	if len(strings.TrimSpace(in.Name)) < 3 {
		ve.Add("name", "Item name must be at least 3 characters.")
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		ve.Add("description", "Description must be at least 10 characters.")
	}
	if !ItemCategory(in.Category).IsValid() {
		ve.Add("category", "Please select a valid category.")
	}
	if !ItemStatus(in.Status).IsValid() {
		ve.Add("status", "Status must be either Lost or Found.")
	}
	if len(strings.TrimSpace(in.Location)) < 3 {
		ve.Add("location", "Location must be at least 3 characters.")
	}
	if !isEmail(in.Contact) {
		ve.Add("contact", "Please enter a valid email address.")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	// mail.ParseAddress accepts display names; the form field must be a
	// bare address.
	return err == nil && addr.Address == s
}
