package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID parses the named route parameter as an unsigned integer ID.
func ParamID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
