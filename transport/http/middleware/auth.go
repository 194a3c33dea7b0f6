package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"eventbook/config"
	"eventbook/infras/otel"
	"eventbook/shared/constant"
	"eventbook/shared/failure"
	"eventbook/shared/password"
	"eventbook/transport/http/response"

	"github.com/rs/zerolog/log"
)

const basicAuthChallenge = `Basic realm="admin", charset="UTF-8"`

// Auth guards the admin pages.
type Auth interface {
	AdminAuth(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	if cfg.App.Admin.Username == "" {
		log.Warn().Msg("APP_ADMIN_USERNAME is not set, admin pages are not protected")
	}

	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// AdminAuth requires HTTP basic credentials matching APP_ADMIN_USERNAME and the bcrypt
// hash in APP_ADMIN_PASSWORD_HASH. It lets every request through when no username is configured.
func (m *authImpl) AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		expectedUser := m.cfg.App.Admin.Username
		if expectedUser == "" {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		username, secret, ok := request.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(username), []byte(expectedUser)) != 1 {
			m.reject(writer)

			return
		}

		if err := password.Verify(secret, m.cfg.App.Admin.PasswordHash); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Str("username", username).Msg("admin authentication failed")

			m.reject(writer)

			return
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyAdmin, username)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) reject(writer http.ResponseWriter) {
	writer.Header().Set(constant.RequestHeaderWWWAuthenticate, basicAuthChallenge)
	response.WithTextError(writer, failure.UnauthorizedError)
}
