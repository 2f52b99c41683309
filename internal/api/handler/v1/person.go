package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/icecream-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/icecream-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/service"
)

type PersonService interface {
	List(ctx context.Context) ([]domain.Person, error)
	Get(ctx context.Context, id uint) (domain.Person, error)
	Create(ctx context.Context, person domain.Person) (domain.Person, error)
	Update(ctx context.Context, person domain.Person) (domain.Person, error)
	Delete(ctx context.Context, id uint) error
}

type PersonHandler struct {
	svc PersonService
}

func NewPersonHandler(svc PersonService) *PersonHandler {
	return &PersonHandler{
		svc: svc,
	}
}

// HandleListPersons godoc
// @Summary      List persons
// @Tags         persons
// @Produce      json
// @Success      200  {array}   response.Person
// @Failure      500  {object}  response.Err
// @Router       /persons [get]
func (h *PersonHandler) HandleListPersons(ctx *gin.Context) {
	persons, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListPersons -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPersons(persons))
}

// HandleGetPerson godoc
// @Summary      Get a person
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "Person ID"
// @Success      200       {object}  response.Person
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID} [get]
func (h *PersonHandler) HandleGetPerson(ctx *gin.Context) {
	id, respErr := idFromPath(ctx, "personID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	person, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, personErr("HandleGetPerson -> h.svc.Get", id, err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPerson(person))
}

// HandleCreatePerson godoc
// @Summary      Create a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        input  body      request.PersonRequest  true  "Person details"
// @Success      201    {object}  response.Person
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /persons [post]
func (h *PersonHandler) HandleCreatePerson(ctx *gin.Context) {
	var req request.PersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), domain.Person{
		Name:               req.Name,
		FavouriteFlavourID: req.FavouriteFlavourID,
	})
	if err != nil {
		response.RenderErr(ctx, personErr("HandleCreatePerson -> h.svc.Create", 0, err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPerson(created))
}

// HandleUpdatePerson godoc
// @Summary      Update a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        personID  path      int                    true  "Person ID"
// @Param        input     body      request.PersonRequest  true  "Person details"
// @Success      200       {object}  response.Person
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID} [put]
func (h *PersonHandler) HandleUpdatePerson(ctx *gin.Context) {
	id, respErr := idFromPath(ctx, "personID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), domain.Person{
		ID:                 id,
		Name:               req.Name,
		FavouriteFlavourID: req.FavouriteFlavourID,
	})
	if err != nil {
		response.RenderErr(ctx, personErr("HandleUpdatePerson -> h.svc.Update", id, err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPerson(updated))
}

// HandleDeletePerson godoc
// @Summary      Delete a person
// @Tags         persons
// @Param        personID  path  int  true  "Person ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /persons/{personID} [delete]
func (h *PersonHandler) HandleDeletePerson(ctx *gin.Context) {
	id, respErr := idFromPath(ctx, "personID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		response.RenderErr(ctx, personErr("HandleDeletePerson -> h.svc.Delete", id, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func personErr(trace string, id uint, err error) *response.Err {
	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		return response.ErrNotFound("person", "ID", id)
	case errors.Is(err, service.ErrFavouriteFlavourMissing):
		return response.ErrBadRequest(errors.New("favourite_flavour_id: no such flavour"))
	}

	return response.ErrInternalServerError(fmt.Errorf("%s -> %w", trace, err))
}
