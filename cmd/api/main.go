package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/infrastructure/spreadsheet"
	"github.com/vfg2006/retail-analytics-api/internal/api"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/datasets"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	uploadRepo := repository.NewUploadRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	loader := spreadsheet.NewLoader()

	// Registro de datasets com trilha de auditoria de uploads no banco
	datasetService := datasets.NewService(cfg, loader).WithUploadAudit(uploadRepo)

	analyzer := analyzing.NewService(cfg)

	// Carrega a planilha de exemplo na subida: as páginas do painel já ficam
	// disponíveis antes de qualquer upload
	if _, err := datasetService.LoadSample(); err != nil {
		logrus.WithError(err).Error("Erro ao carregar o dataset de exemplo na inicialização")
	}

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		datasetService,
		analyzer,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de métricas")
	} else {
		logrus.Info("Agendador de snapshots de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		datasetService,
		analyzer,
		authenticator,
		uploadRepo,
		snapshotSyncService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
