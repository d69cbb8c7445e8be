package handlers

import (
	"net/http"

	_ "github.com/tukarid/tukarbot/docs"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/conversation"
	adminhandlers "github.com/tukarid/tukarbot/internal/handlers/admin"
	fundinghandlers "github.com/tukarid/tukarbot/internal/handlers/funding"
	tradehandlers "github.com/tukarid/tukarbot/internal/handlers/trade"
	"github.com/tukarid/tukarbot/internal/service"
	"github.com/tukarid/tukarbot/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type TradeHandler interface {
	StartBuy(w http.ResponseWriter, r *http.Request)
	BuyToken(w http.ResponseWriter, r *http.Request)
	BuyNetwork(w http.ResponseWriter, r *http.Request)
	BuyAmount(w http.ResponseWriter, r *http.Request)
	BuyWallet(w http.ResponseWriter, r *http.Request)
	BuyConfirm(w http.ResponseWriter, r *http.Request)
	StartSell(w http.ResponseWriter, r *http.Request)
	SellToken(w http.ResponseWriter, r *http.Request)
	SellNetwork(w http.ResponseWriter, r *http.Request)
	SellSender(w http.ResponseWriter, r *http.Request)
	SellAmount(w http.ResponseWriter, r *http.Request)
	SellTx(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type FundingHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	StartTopUp(w http.ResponseWriter, r *http.Request)
	TopUpAmount(w http.ResponseWriter, r *http.Request)
	TopUpMethod(w http.ResponseWriter, r *http.Request)
	TopUpName(w http.ResponseWriter, r *http.Request)
	TopUpProof(w http.ResponseWriter, r *http.Request)
	StartWithdraw(w http.ResponseWriter, r *http.Request)
	WithdrawMethod(w http.ResponseWriter, r *http.Request)
	WithdrawTarget(w http.ResponseWriter, r *http.Request)
	WithdrawName(w http.ResponseWriter, r *http.Request)
	WithdrawAmount(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	DecideTopUp(w http.ResponseWriter, r *http.Request)
	DecideWithdraw(w http.ResponseWriter, r *http.Request)
	ToggleFeature(w http.ResponseWriter, r *http.Request)
	SetMaintenance(w http.ResponseWriter, r *http.Request)
	ClearMaintenance(w http.ResponseWriter, r *http.Request)
	Maintenance(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TradeHandler   TradeHandler
	FundingHandler FundingHandler
	AdminHandler   AdminHandler

	jwt *auth.JWTService
}

func New(cfg *config.Config, s *service.Services, jwt *auth.JWTService, hotWallet string) *Handlers {
	conv := conversation.NewManager()
	return &Handlers{
		TradeHandler:   tradehandlers.New(cfg, s.BuyService, s.SellService, s.Gate, s.Oracle, conv, hotWallet),
		FundingHandler: fundinghandlers.New(cfg, s.FundingService, s.Ledger, s.Gate, conv),
		AdminHandler:   adminhandlers.New(s.FundingService, s.AdminService),
		jwt:            jwt,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/balance", h.FundingHandler.Balance)
		})

		r.Route("/flows/{userID}", func(r chi.Router) {
			r.Post("/cancel", h.TradeHandler.Cancel)

			r.Route("/buy", func(r chi.Router) {
				r.Post("/start", h.TradeHandler.StartBuy)
				r.Post("/token", h.TradeHandler.BuyToken)
				r.Post("/network", h.TradeHandler.BuyNetwork)
				r.Post("/amount", h.TradeHandler.BuyAmount)
				r.Post("/wallet", h.TradeHandler.BuyWallet)
				r.Post("/confirm", h.TradeHandler.BuyConfirm)
			})
			r.Route("/sell", func(r chi.Router) {
				r.Post("/start", h.TradeHandler.StartSell)
				r.Post("/token", h.TradeHandler.SellToken)
				r.Post("/network", h.TradeHandler.SellNetwork)
				r.Post("/sender", h.TradeHandler.SellSender)
				r.Post("/amount", h.TradeHandler.SellAmount)
				r.Post("/tx", h.TradeHandler.SellTx)
			})
			r.Route("/topup", func(r chi.Router) {
				r.Post("/start", h.FundingHandler.StartTopUp)
				r.Post("/amount", h.FundingHandler.TopUpAmount)
				r.Post("/method", h.FundingHandler.TopUpMethod)
				r.Post("/name", h.FundingHandler.TopUpName)
				r.Post("/proof", h.FundingHandler.TopUpProof)
			})
			r.Route("/withdraw", func(r chi.Router) {
				r.Post("/start", h.FundingHandler.StartWithdraw)
				r.Post("/method", h.FundingHandler.WithdrawMethod)
				r.Post("/target", h.FundingHandler.WithdrawTarget)
				r.Post("/name", h.FundingHandler.WithdrawName)
				r.Post("/amount", h.FundingHandler.WithdrawAmount)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.jwt.AdminMiddleware)
			r.Post("/topups/{id}/decision", h.AdminHandler.DecideTopUp)
			r.Post("/withdraws/{id}/decision", h.AdminHandler.DecideWithdraw)
			r.Post("/features/{name}", h.AdminHandler.ToggleFeature)
			r.Route("/maintenance", func(r chi.Router) {
				r.Get("/", h.AdminHandler.Maintenance)
				r.Post("/", h.AdminHandler.SetMaintenance)
				r.Delete("/", h.AdminHandler.ClearMaintenance)
			})
		})
	})

	return r
}
