// Package response writes the uniform JSON envelope every endpoint uses:
// {"success": true, "data": ...} or {"success": false, "error": {...}}.
// Error codes are short upper-snake identifiers (INVALID_CATEGORY,
// TENANT_REQUIRED, REPORT_FAILED...); messages are user-facing Spanish.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails adds a free-form details object, used where the client
// can act on more than the message (valid values, remediation hints, the
// triggering fault).
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
