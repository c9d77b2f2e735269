// Package handler provides typed HTTP handlers for the JSON API.
//
// A HandlerFunc receives a Context and a request struct populated by binders
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type foodByIDRequest struct {
//		ID string `path:"id"`
//	}
//
//	func getFood(ctx handler.Context, req foodByIDRequest) handler.Response {
//		doc, err := foods.Get(ctx, req.ID)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(doc)
//	}
//
//	r.Get("/food/{id}", handler.Wrap(getFood,
//		handler.WithBinders(binder.Path(chi.URLParam)),
//		handler.WithErrorHandler(handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(v)                        // 200 with v encoded as JSON
//	handler.JSON(v, handler.WithStatus(201))
//	handler.Message(404, "Food not found") // {"message":"Food not found"}
//	handler.Text("pong")                   // text/plain
//	handler.Error(err)                     // delegated to the ErrorHandler
//
// # Errors
//
// Binding failures and errors returned through Error reach the ErrorHandler.
// HTTPError values carry their own status and message; binder errors become
// 400; everything else is a 500 with a generic message. NewErrorHandler logs
// client errors at warn and server errors at error level, with the request id.
package handler
