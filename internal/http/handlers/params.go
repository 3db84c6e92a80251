package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/yungbote/mindpulse-backend/internal/pkg/errors"
)

// intParam parses a path parameter as a base-10 integer.
func intParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func isNotFound(err error) bool {
	return errors.Is(err, pkgerrors.ErrNotFound)
}
