package repository

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// RejectedLine is an order line that did not become an OrderItem.
type RejectedLine struct {
	Index      int    `json:"index"`
	MenuItemID int64  `json:"menu_item_id"`
	Reason     string `json:"reason"`
}

const (
	ReasonMissing     = "menu item not found"
	ReasonUnavailable = "menu item unavailable"
)

// LineRejectionError is returned by CreateOrder in strict mode when at least
// one line could not be accepted. Nothing has been written.
type LineRejectionError struct {
	Lines []RejectedLine
}

func (e *LineRejectionError) Error() string {
	parts := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		parts = append(parts, fmt.Sprintf("items[%d] (menu_item_id %d): %s", l.Index, l.MenuItemID, l.Reason))
	}
	return "order rejected: " + strings.Join(parts, "; ")
}
