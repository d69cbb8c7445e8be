package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tukarid/tukarbot/internal/chain"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/handlers"
	"github.com/tukarid/tukarbot/internal/notify"
	"github.com/tukarid/tukarbot/internal/pg"
	"github.com/tukarid/tukarbot/internal/service"
	"github.com/tukarid/tukarbot/internal/store"
	"github.com/tukarid/tukarbot/internal/store/filestore"
	"github.com/tukarid/tukarbot/internal/store/pgstore"
	"github.com/tukarid/tukarbot/pkg/auth"
	"github.com/tukarid/tukarbot/pkg/clients"
	"github.com/tukarid/tukarbot/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	outbox *notify.Outbox

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	st, err := a.buildStore(ctx, cfg)
	if err != nil {
		zap.L().Error("build store failed: ", zap.Error(err))
		return fmt.Errorf("can't build store: %w", err)
	}

	gateway, err := chain.New(cfg)
	if err != nil {
		zap.L().Error("build chain gateway failed: ", zap.Error(err))
		return fmt.Errorf("can't build chain gateway: %w", err)
	}

	a.cfg = cfg
	a.outbox = notify.New(cfg, clients.NewHTTPClient())
	a.srv = service.New(cfg, st, gateway, a.outbox)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AdminIDs)
	a.api = handlers.New(cfg, a.srv, jwtService, gateway.HotWallet().Hex())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startOutbox(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) buildStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.StoreBackend != "postgres" {
		return filestore.New(cfg.StoreFile), nil
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	return pgstore.New(pg.New(pool), pg.NewTXManager(pool)), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startOutbox(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.outbox.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
