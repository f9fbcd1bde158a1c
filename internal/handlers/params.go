package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskmgmt/task-management-api/internal/httputil"
)

// pathID parses a numeric path parameter. On failure it writes a 400
// envelope and reports false.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httputil.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body and writes the validation envelope on
// failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if msgs := httputil.ValidationMessages(err); msgs != nil {
			httputil.ValidationFailed(c, msgs)
		} else {
			httputil.BadRequest(c, "Invalid request body")
		}
		return false
	}
	return true
}
