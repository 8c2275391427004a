package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/domain"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	msgUnauthorized = "требуется аутентификация"
	msgInvalidToken = "некорректный токен"
	msgForbidden    = "недостаточно прав"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

var errInvalidIdentity = errors.New("invalid identity")

// Auth аутентификация запроса.
// С секретом: Authorization: Bearer <HS256 JWT> с claims sub и role.
// Без секрета: доверяем заголовкам X-User-ID / X-User-Role от gateway
func Auth(jwtSecret string, logger Logger) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				userID int64
				role   domain.UserRole
				err    error
			)

			if len(secret) > 0 {
				userID, role, err = fromBearer(r, secret)
			} else {
				userID, role, err = fromHeaders(r)
			}
			if err != nil {
				logger.Warn("Auth: %s %s - %v", r.Method, r.URL.Path, err)
				if errors.Is(err, errInvalidIdentity) {
					handlers.RespondUnauthorized(w, msgUnauthorized)
					return
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только пользователей с одной из ролей
func RequireRole(roles ...domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// GetUserID ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole роль пользователя, установленная Auth
func GetUserRole(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.UserRole)
	return role, ok
}

func fromHeaders(r *http.Request) (int64, domain.UserRole, error) {
	return parseIdentity(r.Header.Get(HeaderUserID), r.Header.Get(HeaderUserRole))
}

func fromBearer(r *http.Request, secret []byte) (int64, domain.UserRole, error) {
	header := r.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return 0, "", fmt.Errorf("%w: missing bearer token", errInvalidIdentity)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, "", fmt.Errorf("parse token: %w", err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return 0, "", fmt.Errorf("sub claim: %w", err)
	}
	role, _ := claims["role"].(string)

	return parseIdentity(subject, role)
}

func parseIdentity(rawID, rawRole string) (int64, domain.UserRole, error) {
	if rawID == "" {
		return 0, "", fmt.Errorf("%w: missing user id", errInvalidIdentity)
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", fmt.Errorf("%w: malformed user id %q", errInvalidIdentity, rawID)
	}

	role := domain.UserRole(strings.ToLower(strings.TrimSpace(rawRole)))
	if !role.IsValid() {
		return 0, "", fmt.Errorf("%w: unknown role %q", errInvalidIdentity, rawRole)
	}

	return userID, role, nil
}
