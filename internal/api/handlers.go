package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/foodstation/handler"
	"github.com/dmitrymomot/foodstation/internal/resource"
	"github.com/dmitrymomot/foodstation/internal/session"
	"github.com/dmitrymomot/foodstation/internal/store"
	"github.com/dmitrymomot/foodstation/pkg/binder"
)

var (
	bodyBinder    = handler.Bind(binder.JSON())
	sessionBinder = handler.Bind(binder.OptionalJSON())
	pathBinder    = handler.Bind(binder.Path(chi.URLParam))
	queryBinder   = handler.Bind(binder.Query())
)

var (
	errFoodNotFound   = handler.NewHTTPError(http.StatusNotFound, "Food not found")
	errNoRequests     = handler.NewHTTPError(http.StatusNotFound, "No requests found for this email")
	errRequiredFields = handler.NewHTTPError(http.StatusBadRequest, "Required fields missing")
)

const msgFoodUpdated = "Food updated successfully!"

func wrap[R any](s *server, h handler.HandlerFunc[R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h, handler.WithBinders(binders...), handler.WithErrorHandler(s.onError))
}

// failure maps resource errors to client errors; anything else is left for
// the error handler to log and report as 500.
func failure(err error) handler.Response {
	switch {
	case errors.Is(err, resource.ErrRequiredFieldsMissing):
		return handler.Error(errRequiredFields)
	case errors.Is(err, resource.ErrNoRequestsForEmail):
		return handler.Error(errNoRequests)
	case errors.Is(err, resource.ErrNotFound):
		return handler.Error(errFoodNotFound)
	default:
		return handler.Error(err)
	}
}

type documentRequest struct {
	Doc store.Document `body:"json"`
}

type idRequest struct {
	ID string `path:"id"`
}

type sessionResponse struct {
	Success bool `json:"success"`
}

func (s *server) issueSession(ctx handler.Context, req documentRequest) handler.Response {
	if _, err := s.issuer.Issue(ctx.ResponseWriter(), session.Identity(req.Doc)); err != nil {
		return handler.Error(err)
	}
	if s.metrics != nil {
		s.metrics.RecordSessionIssued()
	}
	return handler.JSON(sessionResponse{Success: true})
}

func (s *server) listAccounts(ctx handler.Context, _ struct{}) handler.Response {
	docs, err := s.accounts.List(ctx)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(docs)
}

func (s *server) createAccount(ctx handler.Context, req documentRequest) handler.Response {
	res, err := s.accounts.Create(ctx, req.Doc)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(res)
}

type listFoodsRequest struct {
	Email string `query:"email"`
}

func (s *server) listFoods(ctx handler.Context, req listFoodsRequest) handler.Response {
	docs, err := s.foods.List(ctx, req.Email)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(docs)
}

func (s *server) createFood(ctx handler.Context, req documentRequest) handler.Response {
	res, err := s.foods.Create(ctx, req.Doc)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(res)
}

func (s *server) getFood(ctx handler.Context, req idRequest) handler.Response {
	doc, err := s.foods.Get(ctx, req.ID)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(doc)
}

type updateFoodRequest struct {
	ID     string         `path:"id"`
	Fields store.Document `body:"json"`
}

func (s *server) updateFood(ctx handler.Context, req updateFoodRequest) handler.Response {
	if err := s.foods.Update(ctx, req.ID, req.Fields); err != nil {
		return failure(err)
	}
	return handler.Message(http.StatusOK, msgFoodUpdated)
}

func (s *server) deleteFood(ctx handler.Context, req idRequest) handler.Response {
	res, err := s.foods.Delete(ctx, req.ID)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(res)
}

func (s *server) listRequests(ctx handler.Context, _ struct{}) handler.Response {
	docs, err := s.requests.List(ctx)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(docs)
}

type donatorRequest struct {
	Email string `path:"email"`
}

func (s *server) findRequestsByDonator(ctx handler.Context, req donatorRequest) handler.Response {
	docs, err := s.requests.FindByDonatorEmail(ctx, req.Email)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(docs)
}

func (s *server) createRequest(ctx handler.Context, req documentRequest) handler.Response {
	res, err := s.requests.Create(ctx, req.Doc)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(res)
}

func (s *server) deleteRequest(ctx handler.Context, req idRequest) handler.Response {
	res, err := s.requests.Delete(ctx, req.ID)
	if err != nil {
		return failure(err)
	}
	return handler.JSON(res)
}
