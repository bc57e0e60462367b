package internal

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	UserID int    `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// VerificarRol rejects any request whose bearer token is missing, invalid or
// carries a role other than rol. The token is trusted as presented: the guard
// never consults the database.
func VerificarRol(secret, rol string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Acceso denegado. No se proporcionó token."})
			return
		}

		tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido."})
			return
		}

		cl, ok := tok.Claims.(*claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido."})
			return
		}
		if cl.Role != rol {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Acceso denegado. Rol no autorizado."})
			return
		}

		c.Set("uid", cl.UserID)
		c.Set("rol", cl.Role)
		c.Next()
	}
}

func uid(c *gin.Context) int {
	v, _ := c.Get("uid")
	id, _ := v.(int)
	return id
}
