package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/datasets"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

// GetDatasetOverview retorna as métricas da página de visão geral
func GetDatasetOverview(datasetService datasets.DatasetService, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset, ok := datasetFromRequest(w, r, datasetService)
		if !ok {
			return
		}

		writeReport(w, analyzer.Overview(dataset))
	}
}

// GetDatasetPerformance retorna o mapa de calor de tráfego e a contagem
// de notas por funcionário
func GetDatasetPerformance(datasetService datasets.DatasetService, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset, ok := datasetFromRequest(w, r, datasetService)
		if !ok {
			return
		}

		writeReport(w, analyzer.Performance(dataset))
	}
}

// GetDatasetCategories retorna os rankings de categorias por lucro e por
// dias em estoque
func GetDatasetCategories(datasetService datasets.DatasetService, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset, ok := datasetFromRequest(w, r, datasetService)
		if !ok {
			return
		}

		writeReport(w, analyzer.Categories(dataset))
	}
}

// datasetFromRequest resolve o dataset do parâmetro :id da rota. O valor
// especial "sample" aponta para o dataset de exemplo.
func datasetFromRequest(w http.ResponseWriter, r *http.Request, service datasets.DatasetService) (*domain.Dataset, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador do dataset não informado", nil)
		return nil, false
	}

	var dataset *domain.Dataset
	if id == "sample" {
		dataset = service.Sample()
	} else {
		dataset = service.GetByID(id)
	}

	if dataset == nil {
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Dataset não encontrado", map[string]any{
			"dataset_id": id,
		})
		return nil, false
	}

	return dataset, true
}

func writeReport(w http.ResponseWriter, report any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(report)
	if err != nil {
		logrus.Error("Erro ao enviar relatório:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
