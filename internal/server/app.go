// Package server wires the application together: it connects the two stores,
// runs migrations, builds the services and starts the HTTP server, handling
// graceful shutdown on termination signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/migrations"
	taskrepo "github.com/dmitrijs2005/taskboard/internal/server/repositories/tasks"
	userrepo "github.com/dmitrijs2005/taskboard/internal/server/repositories/users"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
	"github.com/dmitrijs2005/taskboard/internal/server/web"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoDatabase is the database holding the account collection; the
// collection name is owned by the users repository.
const mongoDatabase = "taskboard"

type App struct {
	config      *config.Config
	logger      logging.Logger
	mongoClient *mongo.Client
	db          *sql.DB
	webServer   *web.Server
}

// NewApp connects both stores and builds the full service stack. Both
// connections are verified with a ping so that misconfiguration fails at
// startup, not on the first request.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return nil, fmt.Errorf("error setting migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	usersRepo := userrepo.NewMongoRepository(mongoClient.Database(mongoDatabase))
	if err := usersRepo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	tasksRepo := taskrepo.NewPostgresRepository(db)

	userService := services.NewUserService(usersRepo)
	taskService := services.NewTaskService(tasksRepo)

	sessions := auth.NewManager([]byte(cfg.SessionSecret),
		cfg.SessionDuration, cfg.SessionActiveDuration)

	webServer, err := web.NewServer(cfg, logger, userService, taskService, sessions)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      cfg,
		logger:      logger,
		mongoClient: mongoClient,
		db:          db,
		webServer:   webServer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.webServer.Run(ctx); err != nil {
			app.logger.Error(ctx, "web server error", "error", err)
			cancelFunc()
		}
	}()
	wg.Wait()

	app.close()
}

// close releases both store connections.
func (app *App) close() {
	ctx := context.Background()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	if err := app.mongoClient.Disconnect(ctx); err != nil {
		app.logger.Error(ctx, "mongo disconnect error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
