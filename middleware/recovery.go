package middleware

import (
	"log"
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("server", "panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					&utils.ErrorResponse{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
