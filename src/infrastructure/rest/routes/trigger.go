package routes

import (
	"n8n-relay-api/src/infrastructure/rest/controllers/trigger"

	"github.com/gin-gonic/gin"
)

func TriggerRoutes(router *gin.RouterGroup, controller trigger.ITriggerController) {
	router.POST("/trigger", controller.Trigger)
}
