package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/icecream-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/icecream-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/form"
	"github.com/vietanh2810/icecream-api/internal/service"
)

type FlavourService interface {
	List(ctx context.Context) ([]domain.Flavour, error)
	Get(ctx context.Context, id uint) (domain.Flavour, error)
	Submit(ctx context.Context, raw form.Flavour, existing *domain.Flavour) (domain.Flavour, error)
	Delete(ctx context.Context, id uint) error
}

type FlavourHandler struct {
	svc FlavourService
}

func NewFlavourHandler(svc FlavourService) *FlavourHandler {
	return &FlavourHandler{
		svc: svc,
	}
}

// HandleListFlavours godoc
// @Summary      List flavours
// @Tags         flavours
// @Produce      json
// @Success      200  {array}   response.Flavour
// @Failure      500  {object}  response.Err
// @Router       /flavours [get]
func (h *FlavourHandler) HandleListFlavours(ctx *gin.Context) {
	flavours, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListFlavours -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewFlavours(flavours))
}

// HandleGetFlavour godoc
// @Summary      Get a flavour
// @Tags         flavours
// @Produce      json
// @Param        flavourID  path      int  true  "Flavour ID"
// @Success      200        {object}  response.Flavour
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /flavours/{flavourID} [get]
func (h *FlavourHandler) HandleGetFlavour(ctx *gin.Context) {
	flavour, respErr := h.flavourFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, response.NewFlavour(flavour))
}

// HandleCreateFlavour godoc
// @Summary      Create a flavour
// @Description  Validates the flavour like the web form does.
// @Tags         flavours
// @Accept       json
// @Produce      json
// @Param        input  body      request.FlavourRequest  true  "Flavour details"
// @Success      201    {object}  response.Flavour
// @Failure      400    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /flavours [post]
func (h *FlavourHandler) HandleCreateFlavour(ctx *gin.Context) {
	var req request.FlavourRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Submit(ctx.Request.Context(), req.Form(), nil)
	if err != nil {
		response.RenderErr(ctx, submitErr("HandleCreateFlavour", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewFlavour(created))
}

// HandleUpdateFlavour godoc
// @Summary      Update a flavour
// @Tags         flavours
// @Accept       json
// @Produce      json
// @Param        flavourID  path      int                     true  "Flavour ID"
// @Param        input      body      request.FlavourRequest  true  "Flavour details"
// @Success      200        {object}  response.Flavour
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      422        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /flavours/{flavourID} [put]
func (h *FlavourHandler) HandleUpdateFlavour(ctx *gin.Context) {
	existing, respErr := h.flavourFromPath(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FlavourRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Submit(ctx.Request.Context(), req.Form(), &existing)
	if err != nil {
		if errors.Is(err, service.ErrFlavourNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("flavour", "ID", existing.ID))
			return
		}

		response.RenderErr(ctx, submitErr("HandleUpdateFlavour", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewFlavour(updated))
}

// HandleDeleteFlavour godoc
// @Summary      Delete a flavour
// @Description  A flavour that is still someone's favourite is not deleted.
// @Tags         flavours
// @Param        flavourID  path  int  true  "Flavour ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flavours/{flavourID} [delete]
func (h *FlavourHandler) HandleDeleteFlavour(ctx *gin.Context) {
	id, respErr := idFromPath(ctx, "flavourID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrFlavourNotFound):
			response.RenderErr(ctx, response.ErrNotFound("flavour", "ID", id))
		case errors.Is(err, service.ErrFlavourInUse):
			response.RenderErr(ctx, response.ErrConflict(errors.New("the flavour is still someone's favourite")))
		default:
			err = fmt.Errorf("HandleDeleteFlavour -> h.svc.Delete -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *FlavourHandler) flavourFromPath(ctx *gin.Context) (domain.Flavour, *response.Err) {
	id, respErr := idFromPath(ctx, "flavourID")
	if respErr != nil {
		return domain.Flavour{}, respErr
	}

	flavour, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFlavourNotFound) {
			return domain.Flavour{}, response.ErrNotFound("flavour", "ID", id)
		}

		err = fmt.Errorf("h.svc.Get -> %w", err)
		return domain.Flavour{}, response.ErrInternalServerError(err)
	}

	return flavour, nil
}

func submitErr(handler string, err error) *response.Err {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return response.ErrUnprocessable(verr.Messages())
	}

	return response.ErrInternalServerError(fmt.Errorf("%s -> h.svc.Submit -> %w", handler, err))
}

func idFromPath(ctx *gin.Context, param string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 0)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("%s must be a positive integer", param))
	}

	return uint(id), nil
}
