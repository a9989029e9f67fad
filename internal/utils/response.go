package utils

import "github.com/gin-gonic/gin"

// Error writes a JSON error body in the shape the admin panel and the
// public site expect: {"error": "<message>"}.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// Message writes a JSON body with a human-readable message, used by the
// signup and login endpoints: {"message": "<message>"}.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
