package handler

import (
	"net/http"

	"github.com/martinwilchesdev/backend-web-app/internal/middleware"
	"github.com/martinwilchesdev/backend-web-app/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe 返回当前登录用户信息（需要经过 RequireAuth）
func GetMe(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
		},
	})
}
