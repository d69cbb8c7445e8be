package service

import (
	"github.com/tukarid/tukarbot/internal/chain"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	"github.com/tukarid/tukarbot/internal/notify"
	"github.com/tukarid/tukarbot/internal/rates"
	adminservice "github.com/tukarid/tukarbot/internal/service/adminservice"
	buyservice "github.com/tukarid/tukarbot/internal/service/buyservice"
	fundingservice "github.com/tukarid/tukarbot/internal/service/fundingservice"
	sellservice "github.com/tukarid/tukarbot/internal/service/sellservice"
	"github.com/tukarid/tukarbot/internal/store"
)

type Services struct {
	BuyService     *buyservice.Service
	SellService    *sellservice.Service
	FundingService *fundingservice.Service
	AdminService   *adminservice.Service
	Ledger         *ledger.Ledger
	Gate           *gate.Gate
	Oracle         *rates.Client
}

func New(cfg *config.Config, st store.Store, gateway *chain.Gateway, outbox *notify.Outbox) *Services {
	ldg := ledger.New(st)
	g := gate.New(st)
	oracle := rates.New(cfg)

	buySvc := buyservice.New(cfg, ldg, gateway, oracle, g, outbox, st)
	sellSvc := sellservice.New(cfg, ldg, gateway, oracle, g, outbox)
	fundingSvc := fundingservice.New(cfg, st, ldg, g, outbox)
	adminSvc := adminservice.New(g, outbox)

	return &Services{
		BuyService:     buySvc,
		SellService:    sellSvc,
		FundingService: fundingSvc,
		AdminService:   adminSvc,
		Ledger:         ldg,
		Gate:           g,
		Oracle:         oracle,
	}
}
