package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/application"
	httpwrap "github.com/aryaprdni/cash-ease-be/internal/wallet/infrastructure/http"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/infrastructure/postgres"
	"github.com/aryaprdni/cash-ease-be/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDir     = "."
	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

type WalletApp struct {
	cfg    WalletConfig
	logger logging.Logger

	server *http.Server
}

func NewWalletApp(cfg WalletConfig, logger logging.Logger) *WalletApp {
	return &WalletApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *WalletApp) Run(ctx context.Context) error {
	logger := a.logger
	databaseSettings := a.cfg.DbSettings

	err := database.MigrateDatabase(databaseSettings.GetUrl(), migrations.FS, migrationsDir, migrationsDriver, migrationsDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, databaseSettings.GetUrl())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbpool.Close()

	txManager := database.NewDelegateTxManager(dbpool, logger)

	usersRepository := postgres.NewUsersRepository(dbpool)
	userCase := application.NewUserCase(usersRepository, logger)

	transferCase := application.NewTransferCase(txManager, postgres.NewPartyLocker(), postgres.NewTransferRecorder(), logger)
	topUpCase := application.NewTopUpCase(txManager, postgres.NewBalanceLocker(), postgres.NewTopUpRecorder(), logger)

	ledgerSearcher := postgres.NewLedgerSearcher(dbpool, logger)
	searchCase := application.NewLedgerSearchCase(ledgerSearcher, logger)

	router := gin.Default()
	walletHandler := httpwrap.NewWalletHandler(userCase, transferCase, topUpCase, searchCase)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", walletHandler.CreateUser)
			users.PATCH("/:"+httpwrap.UserIDKey, walletHandler.UpdateUser)
			users.POST("/transfer", walletHandler.Transfer)
			users.POST("/topup", walletHandler.TopUp)
			users.GET("", walletHandler.Search)
		}
	}

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", a.cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *WalletApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}
