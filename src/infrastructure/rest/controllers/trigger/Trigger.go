package trigger

import (
	"net/http"

	"n8n-relay-api/src/application/usecases/trigger"
	"n8n-relay-api/src/domain/common"
	"n8n-relay-api/src/domain/outbound"
	"n8n-relay-api/src/infrastructure/config"
	logger "n8n-relay-api/src/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ITriggerController interface {
	Trigger(c *gin.Context)
}

type TriggerController struct {
	commonService  common.CommonService
	configResolver config.Resolver
	triggerUseCase trigger.ITriggerUseCase
	Logger         *logger.Logger
}

func NewTriggerController(
	commonService common.CommonService,
	configResolver config.Resolver,
	triggerUseCase trigger.ITriggerUseCase,
	loggerInstance *logger.Logger,
) ITriggerController {
	return &TriggerController{
		commonService:  commonService,
		configResolver: configResolver,
		triggerUseCase: triggerUseCase,
		Logger:         loggerInstance,
	}
}

func (c *TriggerController) Trigger(ctx *gin.Context) {
	// The configuration check precedes the body parse: an unconfigured relay
	// answers 500 even for a body it could never decode.
	if !c.configResolver.Resolve().IsConfigured() {
		relayError := outbound.NewConfigurationError("N8N_WEBHOOK_URL is not configured")
		ctx.JSON(relayError.HTTPStatus(), TriggerResponse{Message: relayError.Message})
		return
	}

	var request TriggerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		relayError := outbound.NewMalformedInputError(err)
		ctx.JSON(relayError.HTTPStatus(), TriggerResponse{
			Message: relayError.Message,
			Issues:  relayError.Issues,
		})
		return
	}

	// Convert controller request to use case request
	useCaseRequest := &trigger.TriggerRequest{
		WorkflowTag:  request.WorkflowTag,
		Recipients:   request.Recipients,
		Message:      request.Message,
		MediaURL:     request.MediaURL,
		WorkflowVars: request.WorkflowVars,
		SendAt:       request.SendAt,
		Origin:       ctx.GetHeader("Origin"),
	}

	useCaseResponse, relayError := c.triggerUseCase.Trigger(useCaseRequest)
	if relayError != nil {
		if relayError.Kind == outbound.KindValidation {
			c.commonService.AppendValidationIssues(ctx, relayError.Message, relayError.Issues)
			return
		}
		ctx.JSON(relayError.HTTPStatus(), TriggerResponse{
			Message: relayError.Message,
			Issues:  relayError.Issues,
		})
		return
	}

	c.Logger.Info("Workflow trigger relayed",
		zap.String("workflowTag", request.WorkflowTag),
		zap.Int("recipientsCount", len(request.Recipients)))

	ctx.JSON(http.StatusOK, TriggerResponse{
		Message:     useCaseResponse.Message,
		N8NResponse: useCaseResponse.N8NResponse,
	})
}
