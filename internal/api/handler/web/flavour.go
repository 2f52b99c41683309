package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/flash"
	"github.com/vietanh2810/icecream-api/internal/form"
	"github.com/vietanh2810/icecream-api/internal/service"
)

const (
	ListPath = "/flavour/"

	MsgAdded         = "Flavour added."
	MsgAddInvalid    = "The data is not valid, so the new flavour was not added."
	MsgChanged       = "Flavour changed."
	MsgChangeInvalid = "The data is not valid, so the flavour was not updated."
	MsgDeleted       = "Flavour deleted."
	MsgDeleteRefused = "The flavour is still someone's favourite, so it was not deleted."

	templateList      = "flavours.html"
	templateForm      = "flavour-form.html"
	templateDeleteAsk = "flavour-delete.html"
)

// ErrNotFound is returned when the requested flavour does not exist or the id
// is not a positive integer.
var ErrNotFound = errors.New("not found")

type FlavourService interface {
	List(ctx context.Context) ([]domain.Flavour, error)
	Get(ctx context.Context, id uint) (domain.Flavour, error)
	Submit(ctx context.Context, raw form.Flavour, existing *domain.Flavour) (domain.Flavour, error)
	Delete(ctx context.Context, id uint) error
}

// Request is what a page needs to know about an incoming HTTP request.
type Request struct {
	// Submit is set for requests that post data, as opposed to display ones.
	Submit bool
	ID     string
	Values url.Values
}

// Result tells the HTTP layer what to answer: either a template to render or
// a location to redirect to. Flash is shown inline when rendering and carried
// to the next page when redirecting.
type Result struct {
	Status   int
	Template string
	Data     map[string]any
	Redirect string
	Flash    *flash.Message
}

func render(template string, data map[string]any, notice *flash.Message) Result {
	return Result{Status: http.StatusOK, Template: template, Data: data, Flash: notice}
}

func redirect(to string, notice *flash.Message) Result {
	return Result{Status: http.StatusFound, Redirect: to, Flash: notice}
}

type FlavourPages struct {
	svc FlavourService
}

func NewFlavourPages(svc FlavourService) *FlavourPages {
	return &FlavourPages{
		svc: svc,
	}
}

func (p *FlavourPages) List(ctx context.Context, _ Request) (Result, error) {
	flavours, err := p.svc.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("FlavourPages.List -> p.svc.List -> %w", err)
	}

	return render(templateList, map[string]any{"title": "Flavours", "flavours": flavours}, nil), nil
}

func (p *FlavourPages) Add(ctx context.Context, req Request) (Result, error) {
	if !req.Submit {
		return render(templateForm, formData("Add flavour", "/flavour/add/", form.Flavour{}, nil), nil), nil
	}

	raw := form.FlavourFromValues(req.Values)
	_, err := p.svc.Submit(ctx, raw, nil)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return render(templateForm, formData("Add flavour", "/flavour/add/", raw, verr), flash.Error(MsgAddInvalid)), nil
		}

		return Result{}, fmt.Errorf("FlavourPages.Add -> p.svc.Submit -> %w", err)
	}

	return redirect(ListPath, flash.Success(MsgAdded)), nil
}

func (p *FlavourPages) Edit(ctx context.Context, req Request) (Result, error) {
	flavour, err := p.find(ctx, req.ID)
	if err != nil {
		return Result{}, err
	}

	action := fmt.Sprintf("/flavour/%d/", flavour.ID)
	title := "Edit " + flavour.Name
	if !req.Submit {
		return render(templateForm, formData(title, action, form.FlavourFromEntity(flavour), nil), nil), nil
	}

	raw := form.FlavourFromValues(req.Values)
	_, err = p.svc.Submit(ctx, raw, &flavour)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return render(templateForm, formData(title, action, raw, verr), flash.Error(MsgChangeInvalid)), nil
		}
		if errors.Is(err, service.ErrFlavourNotFound) {
			return Result{}, ErrNotFound
		}

		return Result{}, fmt.Errorf("FlavourPages.Edit -> p.svc.Submit -> %w", err)
	}

	return redirect(ListPath, flash.Success(MsgChanged)), nil
}

func (p *FlavourPages) Delete(ctx context.Context, req Request) (Result, error) {
	flavour, err := p.find(ctx, req.ID)
	if err != nil {
		return Result{}, err
	}

	if !req.Submit {
		return render(templateDeleteAsk, map[string]any{"title": "Delete " + flavour.Name, "flavour": flavour}, nil), nil
	}

	if err = p.svc.Delete(ctx, flavour.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrFlavourInUse):
			return redirect(ListPath, flash.Error(MsgDeleteRefused)), nil
		case errors.Is(err, service.ErrFlavourNotFound):
			return Result{}, ErrNotFound
		}

		return Result{}, fmt.Errorf("FlavourPages.Delete -> p.svc.Delete -> %w", err)
	}

	return redirect(ListPath, flash.Success(MsgDeleted)), nil
}

func (p *FlavourPages) find(ctx context.Context, rawID string) (domain.Flavour, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Flavour{}, ErrNotFound
	}

	flavour, err := p.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrFlavourNotFound) {
			return domain.Flavour{}, ErrNotFound
		}

		return domain.Flavour{}, fmt.Errorf("p.svc.Get -> %w", err)
	}

	return flavour, nil
}

// parseID accepts positive decimal integers only.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}

	return uint(id), nil
}

func formData(title, action string, values form.Flavour, verr *form.ValidationError) map[string]any {
	errs := map[string]string{}
	if verr != nil {
		errs = verr.Messages()
	}

	return map[string]any{
		"title":  title,
		"action": action,
		"form":   values,
		"errors": errs,
	}
}
