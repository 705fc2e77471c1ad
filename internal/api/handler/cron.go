package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot = "snapshot"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de snapshots não disponível", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SnapshotSyncService != nil {
				services.SnapshotSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"snapshot": services.SnapshotSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
