// Package order records finalized checkouts. Orders are immutable snapshots:
// created once, never mutated, never deleted.
package order

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	"codedrip/internal/cart"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
)

// Status is fixed at confirmed on creation; no further transitions are
// implemented.
type Status string

const StatusConfirmed Status = "confirmed"

// CustomerInfo is the contact and shipping block captured at checkout.
type CustomerInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Validate checks the required-field schema and returns every failure as a
// field-level issue.
func (c CustomerInfo) Validate() []dErrors.Issue {
	var issues []dErrors.Issue
	if !govalidator.IsEmail(c.Email) {
		issues = append(issues, dErrors.Issue{Field: "email", Message: "please enter a valid email"})
	}
	if strings.TrimSpace(c.FirstName) == "" {
		issues = append(issues, dErrors.Issue{Field: "firstName", Message: "first name is required"})
	}
	if strings.TrimSpace(c.LastName) == "" {
		issues = append(issues, dErrors.Issue{Field: "lastName", Message: "last name is required"})
	}
	if strings.TrimSpace(c.Address) == "" {
		issues = append(issues, dErrors.Issue{Field: "address", Message: "address is required"})
	}
	if strings.TrimSpace(c.City) == "" {
		issues = append(issues, dErrors.Issue{Field: "city", Message: "city is required"})
	}
	if strings.TrimSpace(c.State) == "" {
		issues = append(issues, dErrors.Issue{Field: "state", Message: "state is required"})
	}
	if !govalidator.StringLength(c.ZipCode, "5", "20") {
		issues = append(issues, dErrors.Issue{Field: "zipCode", Message: "valid zip code required"})
	}
	if strings.TrimSpace(c.Country) == "" {
		issues = append(issues, dErrors.Issue{Field: "country", Message: "country is required"})
	}
	if !govalidator.StringLength(c.Phone, "10", "32") {
		issues = append(issues, dErrors.Issue{Field: "phone", Message: "valid phone number required"})
	}
	return issues
}

// Order is the persisted checkout record.
type Order struct {
	ID           id.OrderID      `json:"id"`
	Items        []cart.LineItem `json:"items"`
	CustomerInfo CustomerInfo    `json:"customerInfo"`
	Subtotal     float64         `json:"subtotal"`
	Shipping     float64         `json:"shipping"`
	Tax          float64         `json:"tax"`
	Total        float64         `json:"total"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
