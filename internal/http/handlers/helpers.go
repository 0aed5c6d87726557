package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/validation"
	"modakart.com/app/internal/shared/apperr"
)

// bindJSON binds the request body and reports validation problems through the
// error chain. Returns false when the handler should stop.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fields := validation.FromBindError(err, dst)
		middleware.Fail(c, apperr.InvalidErr("Please check the highlighted fields.", fields))
		return false
	}
	return true
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
