package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Collection listings, filtered and partitioned by deployment age
		v1.GET("/listings", handler.GetListings)

		// Verification data (source code, ABI, balance) for a batch of contracts
		v1.POST("/contracts/data", handler.GetContractData)

		// Full analysis pipeline, single contract and batch
		v1.POST("/contracts/analyze", handler.AnalyzeContract)
		v1.POST("/contracts/analyze/batch", handler.AnalyzeContracts)
	}
}
