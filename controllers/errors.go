package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/k0marov/nutritioner-backend/services"
)

// storageErrorBody mirrors the repository's tagged result on the wire.
func storageErrorBody(se *services.StorageError) gin.H {
	return gin.H{
		"status":  "error",
		"error":   se.Op,
		"details": se.Cause,
	}
}
