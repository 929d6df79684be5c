// Package adminauth gates StockManager's HTTP routes behind a single
// bearer token carrying the operator role, adapted from the teacher's
// pkg/jwt + internal/shared/middleware/admin.go role check.
package adminauth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/shared/response"
	"bookcatalog/pkg/jwt"
)

// RequireOperator returns gin middleware that rejects any request whose
// Authorization header does not carry a valid, unexpired operator token
// signed by manager's secret.
func RequireOperator(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, prefix)
		claims, err := manager.ValidateOperatorToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("operator_role", claims.Role)
		c.Next()
	}
}
