package controllers

import (
	"context"
	"delivery-hours-service/internal/app/contracts"
	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/exceptions"
	"delivery-hours-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DeliveryHoursController struct {
	Log                  *zap.Logger
	DeliveryHoursUsecase contracts.DeliveryHoursUsecase
}

func NewDeliveryHoursController(logger *zap.Logger, deliveryHoursUsecase contracts.DeliveryHoursUsecase) *DeliveryHoursController {
	return &DeliveryHoursController{
		Log:                  logger,
		DeliveryHoursUsecase: deliveryHoursUsecase,
	}
}

func (ctrl *DeliveryHoursController) GetDeliveryHours(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := utils.BuildDeliveryHoursRequest(r)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.DeliveryHoursUsecase.GetDeliveryHours(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDeliveryHoursSuccessMessage, response)
}
