package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type CommonService interface {
	GenerateRequestID() string
	AppendValidationIssues(ctx *gin.Context, message string, issues []string)
}

type commonService struct{}

func NewCommonService() CommonService {
	return &commonService{}
}

// GenerateRequestID returns an identifier used to correlate relay log lines.
func (service *commonService) GenerateRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}

// AppendValidationIssues aborts the request with the full ordered issue list.
func (service *commonService) AppendValidationIssues(ctx *gin.Context, message string, issues []string) {
	ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"message": message,
		"issues":  issues,
	})
}
