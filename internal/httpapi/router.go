package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/benittaafriyie-svg/acity-eats/internal/auth"
	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
	"github.com/benittaafriyie-svg/acity-eats/internal/user"
)

type Deps struct {
	Menu      menu.Repository
	Orders    order.Repository
	Users     user.Repository
	Tokens    *auth.Tokens
	Publisher OrderEventsPublisher
	Logger    *log.Logger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	guard := NewAuth(d.Tokens)
	authH := NewAuthHandler(d.Users, d.Tokens)
	menuH := NewMenuHandler(d.Menu)
	orderH := NewOrderHandler(d.Orders, d.Menu, d.Publisher, d.Logger)
	adminH := NewAdminHandler(d.Orders, d.Menu, d.Publisher, d.Logger)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.With(guard.Require).Get("/auth/profile", authH.Profile)

		// Menu is public: the browse page loads before login.
		r.Get("/menu", menuH.List)
		r.Get("/menu/{id}", menuH.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(guard.Require)
			r.Post("/orders", orderH.Create)
			r.Get("/orders", orderH.ListMine)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(guard.RequireAdmin)
			r.Get("/orders", adminH.ListOrders)
			r.Put("/orders/{id}/status", adminH.UpdateOrderStatus)
			r.Post("/menu", adminH.CreateMenuItem)
			r.Put("/menu/{id}", adminH.UpdateMenuItem)
			r.Delete("/menu/{id}", adminH.DeleteMenuItem)
			r.Get("/stats", adminH.Stats)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "cafeteriad",
	})
}
