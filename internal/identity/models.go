// Package identity resolves the current user. OAuth handshakes happen
// upstream; this service only needs an opaque "who is this request" lookup,
// answered from a signed session token.
package identity

import (
	id "codedrip/pkg/domain"
)

// Identity describes an authenticated user. A nil *Identity means the
// request is anonymous.
type Identity struct {
	ID          id.UserID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Avatar      string    `json:"avatar,omitempty"`
}
