package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/api"
	"github.com/vfg2006/attribution-insights-api/internal/config"
	"github.com/vfg2006/attribution-insights-api/internal/scheduler"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/attribution-insights-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	touchpointRepo := repository.NewTouchpointRepository(conn)
	resultRepo := repository.NewAttributionResultRepository(conn)
	userRepo := repository.NewUserRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)
	attributor := attributing.NewService(touchpointRepo, cfg.Attribution.HalfLifeDays)
	importer := ingesting.NewService(touchpointRepo)
	exporter := reporting.NewService(attributor)

	// Inicializa o agendador de snapshots de atribuição
	snapshotService := scheduler.NewAttributionSnapshotService(attributor, resultRepo, cfg)

	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de atribuição")
	} else {
		logrus.Info("Agendador de snapshots de atribuição iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		attributor,
		importer,
		exporter,
		authenticator,
		touchpointRepo,
		resultRepo,
		snapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn cria a conexão com o banco e garante o schema
func dbconn(ctx context.Context, dbConfig config.Database) *sqlite.Connection {
	conn, err := sqlite.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao SQLite")
	}

	if err := conn.InitSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o schema do banco")
	}

	logrus.Info("Conexão com SQLite estabelecida com sucesso")
	return conn
}
