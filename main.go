package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siparis/adapters/excel"
	"siparis/adapters/notify"
	"siparis/adapters/postgres"
	"siparis/app"
	"siparis/internal"
	"siparis/internal/config"
	"siparis/internal/errors"
	"siparis/internal/limiter"
	"siparis/internal/migration"
	"siparis/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

// initDatabase opens the PostgreSQL connection and applies migrations
func initDatabase(ctx context.Context, appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}
	db.SetMaxOpenConns(appConfig.Database.MaxOpenConns)

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	started := time.Now()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))
	gin.SetMode(appConfig.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Workbook engine
	excelConfig := excel.DefaultExcelConfig()
	excelConfig.TemplateDir = appConfig.Excel.TemplateDir
	excelConfig.DefaultTemplate = appConfig.Excel.DefaultTemplate
	excelConfig.ExportFilename = appConfig.Excel.ExportFilename
	excelConfig.Aliases = appConfig.Excel.Aliases

	store := excel.NewDirTemplateStore(excelConfig.TemplateDir, excelConfig.Aliases)
	if !store.Exists(excelConfig.DefaultTemplate) {
		logger.Warn("default template %q not found in %s; run cmd/templategen", excelConfig.DefaultTemplate, excelConfig.TemplateDir)
	}

	workbookLimiter := limiter.New(appConfig.Excel.MaxConcurrent, limiter.DefaultMaxWait)
	workbooks := app.NewWorkbookService(
		excel.NewTemplateExporter(store, excelConfig),
		excel.NewWorkbookImporter(),
		workbookLimiter,
		logger,
	)

	// Orders need a database
	var orders ui.OrderAPI
	if appConfig.Database.Enabled() {
		db, err := initDatabase(ctx, appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		notifier := notify.NewConfirmationNotifier(notify.NewLogMailer(logger), appConfig.Mail.From, appConfig.Mail.Subject)
		orders = app.NewOrderService(postgres.NewOrderRepository(db), postgres.NewUserRepository(db), notifier, logger)
		logger.Info("order storage connected")
	} else {
		logger.Warn("DATABASE_URL not set, running without order storage")
	}

	server := ui.NewServer(workbooks, orders, ui.Options{
		DefaultTemplate: appConfig.Excel.DefaultTemplate,
		MaxUploadBytes:  appConfig.Excel.MaxUploadBytes,
		CORSOrigin:      appConfig.Server.CORSOrigin,
	}, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, ":"+appConfig.Server.Port, appConfig.Server.ShutdownTimeout)
	})
	g.Go(func() error {
		<-gctx.Done()
		// in-flight workbooks finish before the process exits
		drainCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		if err := workbookLimiter.Drain(drainCtx); err != nil {
			logger.Warn("workbooks still in flight at shutdown: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	logger.Info("stopped after %v", time.Since(started))
}
