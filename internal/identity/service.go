package identity

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
)

// Service resolves the current user and issues sessions. Login finds or
// creates the user for an email; the external provider handshake is out of
// scope, so a verified email is the trust boundary here.
type Service struct {
	users  UserStore
	tokens *TokenService
	logger *slog.Logger
}

func NewService(users UserStore, tokens *TokenService, logger *slog.Logger) *Service {
	return &Service{users: users, tokens: tokens, logger: logger}
}

// Resolve answers "who is this request". Unknown or invalid tokens resolve
// to anonymous (nil), never to an error: the cart must keep working.
func (s *Service) Resolve(ctx context.Context, token string) *Identity {
	if token == "" {
		return nil
	}
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil
	}
	return &user
}

// ResolveUserID is the middleware-facing variant of Resolve: it skips the
// user lookup and only verifies the token.
func (s *Service) ResolveUserID(_ context.Context, token string) (id.UserID, bool) {
	if token == "" {
		return "", false
	}
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return "", false
	}
	return userID, true
}

// Login finds or creates the user for the email and returns a signed
// session token alongside the identity.
func (s *Service) Login(ctx context.Context, email string) (Identity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !govalidator.IsEmail(email) {
		return Identity{}, "", dErrors.New(dErrors.CodeBadRequest, "invalid email")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			return Identity{}, "", dErrors.Wrap(err, dErrors.CodeInternal, "user lookup failed")
		}
		user = Identity{
			ID:          id.UserID(uuid.NewString()),
			Email:       email,
			DisplayName: displayNameFromEmail(email),
		}
		if err := s.users.Save(ctx, user); err != nil {
			return Identity{}, "", dErrors.Wrap(err, dErrors.CodeInternal, "user save failed")
		}
		s.logger.Info("user created", "user_id", user.ID)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return Identity{}, "", dErrors.Wrap(err, dErrors.CodeInternal, "session token generation failed")
	}
	return user, token, nil
}

// displayNameFromEmail derives a readable name from the local part of an
// email, e.g. "ada.lovelace@example.com" becomes "Ada Lovelace".
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return "Shopper"
	}

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
