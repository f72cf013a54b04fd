package handler

import (
	"github.com/gin-gonic/gin"
)

// GetTerminalID extracts the terminal ID from the Gin context
func GetTerminalID(c *gin.Context) string {
	terminalIDVal, exists := c.Get("terminal_id")
	if !exists {
		return ""
	}
	terminalID, ok := terminalIDVal.(string)
	if !ok {
		return ""
	}
	return terminalID
}

// GetOperator extracts the operator name from the Gin context
func GetOperator(c *gin.Context) string {
	operator, exists := c.Get("operator")
	if !exists {
		return ""
	}
	return operator.(string)
}
