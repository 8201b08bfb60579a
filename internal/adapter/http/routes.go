package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health       *Handler
	Applications *ApplicationHandler
	Payments     *PaymentHandler
	Previews     *PreviewHandler
	Products     *ProductHandler
	Borrowers    *BorrowerHandler
}

// Register mounts every route on e. idem wraps the state-changing routes a
// client may retry (submission and payments); nil leaves them unwrapped.
func Register(e *echo.Echo, h Handlers, idem echo.MiddlewareFunc) {
	var retryable []echo.MiddlewareFunc
	if idem != nil {
		retryable = append(retryable, idem)
	}

	e.GET("/health", h.Health.Health)

	e.POST("/applications", h.Applications.Submit, retryable...)
	e.GET("/applications", h.Applications.List)
	e.GET("/applications/number/:number", h.Applications.GetByNumber)
	e.GET("/applications/:id", h.Applications.Get)
	e.GET("/applications/:id/summary", h.Applications.Summary)
	e.GET("/applications/:id/payments", h.Payments.ListByApplication)
	e.PUT("/applications/:id/review", h.Applications.Review)
	e.PUT("/applications/:id/start-review", h.Applications.StartReview)
	e.PUT("/applications/:id/cancel", h.Applications.Cancel)
	e.POST("/applications/:id/schedule", h.Applications.GenerateSchedule)

	e.GET("/payments", h.Payments.List)
	e.GET("/payments/number/:number", h.Payments.GetByNumber)
	e.GET("/payments/:id", h.Payments.Get)
	e.POST("/payments/:id/pay", h.Payments.Pay, retryable...)
	e.PUT("/payments/:id/default", h.Payments.MarkDefaulted, retryable...)

	e.POST("/previews", h.Previews.Create)
	e.GET("/previews/:id", h.Previews.Get)

	e.GET("/products", h.Products.List)
	e.GET("/products/match", h.Products.Match)
	e.GET("/products/:id", h.Products.Get)
	e.POST("/products", h.Products.Create)
	e.PUT("/products/:id", h.Products.Update)
	e.PUT("/products/:id/activate", h.Products.Activate)
	e.PUT("/products/:id/deactivate", h.Products.Deactivate)
	e.DELETE("/products/:id", h.Products.Delete)

	e.POST("/borrowers", h.Borrowers.Create)
	e.GET("/borrowers/:id", h.Borrowers.Get)
	e.PUT("/borrowers/:id/income", h.Borrowers.UpdateIncome)
	e.GET("/borrowers/:id/applications", h.Applications.ListByBorrower)
	e.GET("/borrowers/:id/previews", h.Previews.History)
	e.GET("/borrowers/:id/payments", h.Payments.ListByBorrower)
	e.GET("/borrowers/:id/payments/pending", h.Payments.PendingByBorrower)
	e.GET("/borrowers/:id/payments/late", h.Payments.LateByBorrower)
	e.GET("/borrowers/:id/payments/summary", h.Payments.BorrowerSummary)
	e.POST("/borrowers/:id/payments/:paymentId/pay", h.Payments.PayForBorrower, retryable...)
}
