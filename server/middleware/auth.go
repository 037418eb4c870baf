package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerAuth пропускает запросы с заголовком "Authorization: Bearer <password>".
// При пустом пароле все запросы отклоняются.
func BearerAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if password == "" {
			WriteJSONError(c, http.StatusUnauthorized, "Uploads are disabled: admin password is not configured")
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(password)) != 1 {
			WriteJSONError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
