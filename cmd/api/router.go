package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares; Auth must run last so the identity it
	// resolves is visible to the GraphQL handler.
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Auth(c.JWTManager, c.UserService),
	)

	router.GET("/health", healthCheckHandler(c))
	router.POST("/graphql", graphQLHandler(c))

	return router
}

// graphQLRequest is the standard POST body shape.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

func graphQLHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req graphQLRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "invalid request body"}},
			})
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         c.Schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        ctx.Request.Context(),
		})

		// Resolver failures are part of the GraphQL response payload,
		// not transport errors.
		ctx.JSON(http.StatusOK, result)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		mongoStatus := "up"
		redisStatus := "up"

		if err := c.Mongo.HealthCheck(ctx.Request.Context()); err != nil {
			mongoStatus = "down"
			status = http.StatusServiceUnavailable
		}
		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			redisStatus = "down"
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
			"mongo":   mongoStatus,
			"redis":   redisStatus,
		})
	}
}
