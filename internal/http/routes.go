package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nmellal/gestock/internal/auth"
	categoryH "github.com/nmellal/gestock/internal/category/handler"
	"github.com/nmellal/gestock/internal/commerce"
	commerceH "github.com/nmellal/gestock/internal/commerce/handler"
	productH "github.com/nmellal/gestock/internal/product/handler"
	stockH "github.com/nmellal/gestock/internal/stock/handler"
	uploadH "github.com/nmellal/gestock/internal/upload/handler"
	"github.com/nmellal/gestock/pkg/logger"
)

// NewRouter mounts the full HTTP surface. Everything under the authenticated
// group runs behind auth.RequireCommerce, so handlers always see a resolved
// tenant in the request context.
func NewRouter(
	commerceUC commerce.UseCase,
	commerceHandler *commerceH.CommerceHandler,
	categoryHandler *categoryH.CategoryHandler,
	productHandler *productH.ProductHandler,
	stockHandler *stockH.StockHandler,
	uploadHandler *uploadH.UploadHandler,
	uploadDir string,
	log logger.ZapLogger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Uploaded product images are public.
	fileServer := stdhttp.FileServer(stdhttp.Dir(uploadDir))
	r.Handle("/uploads/*", stdhttp.StripPrefix("/uploads/", fileServer))

	r.Route("/v1", func(r chi.Router) {
		// First-login provisioning hook; runs before a commerce exists.
		r.Post("/auth/sync", commerceHandler.Sync)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireCommerce(commerceUC, log))

			r.Get("/commerce", commerceHandler.Me)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.List)
				r.Post("/", categoryHandler.Create)
				r.Get("/{categoryID}", categoryHandler.Get)
				r.Put("/{categoryID}", categoryHandler.Update)
				r.Delete("/{categoryID}", categoryHandler.Delete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.List)
				r.Post("/", productHandler.Create)
				r.Get("/{productID}", productHandler.Get)
				r.Put("/{productID}", productHandler.Update)
				r.Delete("/{productID}", productHandler.Delete)
				r.Post("/{productID}/replenish", stockHandler.Replenish)
			})

			r.Get("/stock/movements", stockHandler.ListMovements)

			r.Post("/upload", uploadHandler.Upload)
			r.Delete("/upload", uploadHandler.Delete)
		})
	})

	return r
}
