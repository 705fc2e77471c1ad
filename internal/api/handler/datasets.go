package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/datasets"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

// Limite de memória para o parse do formulário multipart (32 MB)
const maxMultipartMemory = 32 << 20

// Limite padrão da listagem de auditoria de uploads
const defaultUploadHistoryLimit = 50

// ListDatasets retorna os datasets registrados, mais recentes primeiro
func ListDatasets(service datasets.DatasetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := service.List()

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(summaries)
		if err != nil {
			logrus.Error("Erro ao enviar lista de datasets:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetDatasetSummary retorna o resumo de um dataset registrado. O
// identificador especial "sample" aponta para o dataset de exemplo.
func GetDatasetSummary(service datasets.DatasetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset, ok := datasetFromRequest(w, r, service)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(dataset.Summary())
		if err != nil {
			logrus.Error("Erro ao enviar resumo do dataset:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UploadDataset recebe uma planilha de itens vendidos via multipart e
// registra um novo snapshot analisável
func UploadDataset(service datasets.DatasetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de planilha ausente no campo 'file'", nil)
			return
		}
		defer file.Close()

		name := r.FormValue("name")
		if name == "" {
			name = header.Filename
		}

		dataset, err := service.CreateFromUpload(name, file)
		if err != nil {
			handleDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(dataset.Summary())
		if err != nil {
			logrus.Error("Erro ao enviar resposta do upload:", err)
			return
		}
	}
}

// ListUploadHistory retorna a trilha de auditoria de uploads persistida no
// banco, mais recentes primeiro
func ListUploadHistory(uploadRepo repository.UploadRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultUploadHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		uploads, err := uploadRepo.ListUploads(limit)
		if err != nil {
			logrus.Error("Erro ao listar auditoria de uploads:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico de uploads", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(uploads)
		if err != nil {
			logrus.Error("Erro ao enviar histórico de uploads:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleDatasetError mapeia os erros de validação da planilha para as
// respostas padronizadas da API
func handleDatasetError(w http.ResponseWriter, err error) {
	var missingErr *domain.MissingColumnsError
	if errors.As(err, &missingErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, missingErr.Error(), map[string]any{
			"missing_columns": missingErr.Missing,
		})
		return
	}

	var dateErr *domain.DateParseError
	if errors.As(err, &dateErr) {
		apiErrors.WriteError(w, apiErrors.ErrDateParse, dateErr.Error(), map[string]any{
			"row":   dateErr.Row,
			"value": dateErr.Value,
		})
		return
	}

	var nameErr *domain.MalformedNameError
	if errors.As(err, &nameErr) {
		apiErrors.WriteError(w, apiErrors.ErrMalformedName, nameErr.Error(), map[string]any{
			"row": nameErr.Row,
		})
		return
	}

	logrus.Error("Erro ao registrar upload de planilha:", err)
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível processar a planilha enviada", nil)
}
