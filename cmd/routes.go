package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(""))
	vendorAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("vendor"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/users/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/users/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/users/me", authMiddleware.ThenFunc(app.userHandler.GetMe))

	// Categories
	mux.Post("/products/categories", adminAuthMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Get("/products/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetCategories))
	mux.Get("/products/categories/:slug", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryBySlug))
	mux.Put("/products/categories/:slug", adminAuthMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/products/categories/:slug", adminAuthMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Products
	mux.Post("/products", vendorAuthMiddleware.ThenFunc(app.productHandler.CreateProduct))
	mux.Get("/products", standardMiddleware.ThenFunc(app.productHandler.GetProducts))
	mux.Get("/products/category/:category_slug", standardMiddleware.ThenFunc(app.productHandler.GetProductsByCategory))
	mux.Get("/products/:slug", standardMiddleware.ThenFunc(app.productHandler.GetProductBySlug))
	mux.Put("/products/:slug", vendorAuthMiddleware.ThenFunc(app.productHandler.UpdateProduct))
	mux.Del("/products/:slug", vendorAuthMiddleware.ThenFunc(app.productHandler.DeleteProduct))
	mux.Post("/products/:slug/image", vendorAuthMiddleware.ThenFunc(app.productHandler.UploadProductImage))

	// Customers
	mux.Get("/customers", adminAuthMiddleware.ThenFunc(app.customerHandler.GetCustomers))
	mux.Post("/customers", authMiddleware.ThenFunc(app.customerHandler.CreateCustomer))
	mux.Get("/customers/profile", authMiddleware.ThenFunc(app.customerHandler.GetProfile))
	mux.Put("/customers/profile", authMiddleware.ThenFunc(app.customerHandler.UpdateProfile))

	// Subscriptions
	mux.Post("/subscriptions", authMiddleware.ThenFunc(app.subscriptionHandler.CreateSubscription))
	mux.Get("/subscriptions", authMiddleware.ThenFunc(app.subscriptionHandler.GetSubscriptions))
	mux.Get("/subscriptions/:id", authMiddleware.ThenFunc(app.subscriptionHandler.GetSubscriptionByID))
	mux.Post("/subscriptions/:id/cancel", authMiddleware.ThenFunc(app.subscriptionHandler.CancelSubscription))

	// Payments
	mux.Post("/payments/process", authMiddleware.ThenFunc(app.paymentHandler.ProcessPayment))
	mux.Get("/payments/history", authMiddleware.ThenFunc(app.paymentHandler.GetPaymentHistory))
	mux.Get("/payments/invoices", authMiddleware.ThenFunc(app.paymentHandler.GetInvoices))
	mux.Get("/payments/invoices/:id/pdf", authMiddleware.ThenFunc(app.paymentHandler.DownloadInvoicePDF))
	mux.Get("/payments/invoices/:id", authMiddleware.ThenFunc(app.paymentHandler.GetInvoice))

	// Notifications
	mux.Post("/notifications/token", authMiddleware.ThenFunc(app.fcmHandler.RegisterToken))

	return mux
}
