package handler

import (
	"github.com/AkhilKonduru1/Eventure/internal/util"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. It deliberately ignores database state.
func Health(c *gin.Context) {
	util.Success(c, util.Response{
		"status":  "healthy",
		"message": "Eventure backend is running",
	})
}
