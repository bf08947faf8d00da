package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/msg"
)

const sessionContextKey = "session"

var errMissingToken = errors.New("missing bearer token")

// accessClaims are the claims the auth provider puts in its access tokens.
type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionAuth turns the provider's bearer token into an *entity.Session on the echo context.
type SessionAuth struct {
	secret []byte
}

func NewSessionAuth(jwtSecret string) *SessionAuth {
	return &SessionAuth{secret: []byte(jwtSecret)}
}

// Optional lets anonymous requests through. A token that is present but invalid is still rejected.
func (auth *SessionAuth) Optional() echo.MiddlewareFunc {
	return auth.middleware(false)
}

// Required rejects requests without a valid token.
func (auth *SessionAuth) Required() echo.MiddlewareFunc {
	return auth.middleware(true)
}

func (auth *SessionAuth) middleware(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := auth.parse(c.Request().Header.Get(echo.HeaderAuthorization))
			switch {
			case errors.Is(err, errMissingToken):
				if required {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.error.unauthenticated")})
				}
			case err != nil:
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.error.invalid-token")})
			default:
				c.Set(sessionContextKey, session)
			}
			return next(c)
		}
	}
}

func (auth *SessionAuth) parse(header string) (*entity.Session, error) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, errMissingToken
	}
	token = strings.TrimSpace(token)

	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return auth.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &entity.Session{UserID: claims.Subject, Email: claims.Email, AccessToken: token}, nil
}

// SessionFrom returns the session stored by SessionAuth, or nil for anonymous requests.
func SessionFrom(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionContextKey).(*entity.Session)
	return session
}
