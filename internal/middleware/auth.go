package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zykorwx/dapp/internal/apperror"
	"github.com/zykorwx/dapp/internal/auth"
	"github.com/zykorwx/dapp/pkg/jwtutil"
	"github.com/zykorwx/dapp/pkg/logger"
	appmetrics "github.com/zykorwx/dapp/prometheus"
	"go.uber.org/zap"
)

// AdminClaimsKey is where validated admin claims are stored
const AdminClaimsKey = "admin"

// APIKeyAuth authenticates the comercio from the Basic-Auth username and
// scopes the rest of the request to it.
func APIKeyAuth(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			comercio, err := resolver.ResolveRequest(c.Request())
			if err != nil {
				return err
			}

			c.Set(auth.ComercioKey, comercio)
			c.Set(logger.ComercioIDKey, comercio.ID)
			logger.SetEcho(c, logger.FromEcho(c).With(
				zap.Uint("comercio_id", comercio.ID),
				zap.String("comercio", comercio.Nombre),
			))

			return next(c)
		}
	}
}

// AdminAuth requires a Bearer token signed with the service key and carrying
// the admin role.
func AdminAuth(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			parts := strings.Split(c.Request().Header.Get(echo.HeaderAuthorization), " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format")
				appmetrics.RecordAuthFailure("admin_token")
				return apperror.ErrInvalidAdminToken
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				appmetrics.RecordAuthFailure("admin_token")
				return apperror.ErrInvalidAdminToken
			}
			if claims.Role != jwtutil.RoleAdmin {
				log.Warn("Token without admin role", zap.String("role", claims.Role))
				appmetrics.RecordAuthFailure("admin_token")
				return apperror.ErrInvalidAdminToken
			}

			c.Set(AdminClaimsKey, claims)
			log.Debug("Admin token validated", zap.String("subject", claims.Subject))

			return next(c)
		}
	}
}
