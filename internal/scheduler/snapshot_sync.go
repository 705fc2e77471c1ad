// Package scheduler contém os agendadores de tarefas em background
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/datasets"
)

// Snapshots mais antigos que isso são removidos a cada execução
const snapshotRetentionDays = 90

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotSyncService recarrega diariamente a planilha de exemplo, recalcula
// as métricas resumidas e persiste o snapshot do dia no banco
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	datasetService      datasets.DatasetService
	analyzer            analyzing.Analyzer
	snapshotRepo        repository.MetricSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do agendador de snapshots
func NewSnapshotSyncService(
	datasetService datasets.DatasetService,
	analyzer analyzing.Analyzer,
	snapshotRepo repository.MetricSnapshotRepository,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		datasetService: datasetService,
		analyzer:       analyzer,
		snapshotRepo:   snapshotRepo,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução manual fora do agendamento
func (s *SnapshotSyncService) TriggerManualSync() {
	logrus.Info("Disparando sincronização manual de snapshot de métricas")
	go s.syncSnapshot()
}

// GetStatus devolve o estado atual do agendador para o endpoint de cron
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":        s.config.SyncEnabled,
		"cron_schedule":  s.config.CronSchedule,
		"running":        s.syncRunning,
		"last_started":   s.lastSyncStartedAt,
		"last_completed": s.lastSyncCompletedAt,
	}
}

// syncSnapshot executa uma rodada completa: recarrega o exemplo, calcula as
// métricas do dia e persiste, removendo snapshots fora da retenção
func (s *SnapshotSyncService) syncSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	dataset, err := s.datasetService.LoadSample()
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar dataset de exemplo para o snapshot")
		return
	}

	report := s.analyzer.Overview(dataset)

	today := time.Now()

	existing, err := s.snapshotRepo.GetByDate(today)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar snapshot existente do dia")
	}

	entry := &domain.MetricSnapshotEntry{
		DatasetID: dataset.ID,
		Date:      today,
		Summary:   report.Summary,
		RowCount:  dataset.RowCount,
	}

	if err := s.snapshotRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithError(err).Error("Erro ao persistir snapshot de métricas")
		return
	}

	if existing != nil {
		logrus.WithField("snapshot_id", existing.ID).Info("Snapshot do dia atualizado")
	}

	if removed, err := s.snapshotRepo.DeleteOlderThan(snapshotRetentionDays); err != nil {
		logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
	} else if removed > 0 {
		logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id":  dataset.ID,
		"rows":        dataset.RowCount,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Snapshot de métricas sincronizado com sucesso")
}
