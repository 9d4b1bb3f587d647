package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/config"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/attributing"
)

// AttributionSnapshotConfig representa a configuração do agendador de
// snapshots de atribuição
type AttributionSnapshotConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	HalfLifeDays  float64
	RetentionDays int
}

// AttributionSnapshotService recalcula periodicamente todos os modelos de
// atribuição e persiste os resultados na tabela attribution_results
type AttributionSnapshotService struct {
	scheduler           *gocron.Scheduler
	config              AttributionSnapshotConfig
	attributor          attributing.Attributor
	resultRepo          repository.AttributionResultRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAttributionSnapshotService cria uma nova instância do serviço de
// snapshots de atribuição
func NewAttributionSnapshotService(
	attributor attributing.Attributor,
	resultRepo repository.AttributionResultRepository,
	appConfig *config.Config,
) *AttributionSnapshotService {
	snapshotConfig := AttributionSnapshotConfig{
		CronSchedule:  appConfig.AttributionSnapshotSync.CronSchedule,
		SyncEnabled:   appConfig.AttributionSnapshotSync.Enabled,
		HalfLifeDays:  appConfig.AttributionSnapshotSync.HalfLifeDays,
		RetentionDays: appConfig.AttributionSnapshotSync.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  snapshotConfig.CronSchedule,
		"sync_enabled":   snapshotConfig.SyncEnabled,
		"half_life_days": snapshotConfig.HalfLifeDays,
		"retention_days": snapshotConfig.RetentionDays,
	}).Info("Configuração do agendador de snapshots de atribuição carregada")

	return &AttributionSnapshotService{
		scheduler:   scheduler,
		config:      snapshotConfig,
		attributor:  attributor,
		resultRepo:  resultRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AttributionSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot de atribuição desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de atribuição")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de atribuição: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de atribuição")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots recalcula todos os modelos e persiste os resultados
func (s *AttributionSnapshotService) syncSnapshots(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de atribuição já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando snapshot de atribuição para todos os modelos")

	opts := &attributing.Options{HalfLifeDays: s.config.HalfLifeDays}
	succeeded := 0

	for _, modelType := range s.attributor.AvailableModels() {
		if err := s.snapshotModel(ctx, modelType, opts); err != nil {
			logrus.WithError(err).WithField("model", modelType).
				Error("Erro ao gerar snapshot de atribuição do modelo")
			continue
		}
		succeeded++
	}

	if s.config.RetentionDays > 0 {
		removed, err := s.resultRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover snapshots antigos")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"models":   succeeded,
	}).Info("Snapshot de atribuição concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// snapshotModel calcula o relatório de um modelo e persiste uma entrada por
// canal
func (s *AttributionSnapshotService) snapshotModel(
	ctx context.Context,
	modelType domain.ModelType,
	opts *attributing.Options,
) error {
	report, err := s.attributor.CalculateChannelMetrics(ctx, modelType, opts)
	if err != nil {
		return fmt.Errorf("erro ao calcular métricas do modelo %s: %w", modelType, err)
	}

	entries := make([]*domain.AttributionResultEntry, 0, len(report.Channels))
	for _, metrics := range report.Channels {
		entries = append(entries, &domain.AttributionResultEntry{
			ModelType: modelType,
			Channel:   metrics.Channel,
			Metrics:   metrics,
		})
	}

	if err := s.resultRepo.ReplaceForModel(ctx, modelType, entries); err != nil {
		return fmt.Errorf("erro ao persistir snapshot do modelo %s: %w", modelType, err)
	}

	logrus.WithFields(logrus.Fields{
		"model":    modelType,
		"channels": len(entries),
	}).Debug("Snapshot de atribuição do modelo persistido")

	return nil
}

// TriggerManualSync dispara um snapshot fora do agendamento
func (s *AttributionSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de atribuição já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de atribuição")
	go s.syncSnapshots(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AttributionSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
