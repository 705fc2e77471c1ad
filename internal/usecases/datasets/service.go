// Package datasets gerencia os snapshots imutáveis de planilhas carregadas.
//
// Cada carga ou upload produz exatamente um snapshot: a tabela bruta é
// validada e normalizada uma única vez e, a partir daí, todas as páginas
// leem o mesmo dataset. Nenhuma página altera uma tabela que outra página
// também lê.
package datasets

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/infrastructure/spreadsheet"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/normalizing"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// DatasetService expõe o registro de datasets para o restante da aplicação
type DatasetService interface {
	LoadSample() (*domain.Dataset, error)
	CreateFromUpload(name string, reader io.Reader) (*domain.Dataset, error)
	GetByID(id string) *domain.Dataset
	Sample() *domain.Dataset
	List() []domain.DatasetSummary
}

// Service implementa DatasetService com um registro em memória
type Service struct {
	cfg        *config.Config
	loader     spreadsheet.Loader
	uploadRepo repository.UploadRepository

	mutex    sync.RWMutex
	byID     map[string]*domain.Dataset
	sampleID string
}

// NewService cria o registro de datasets
func NewService(cfg *config.Config, loader spreadsheet.Loader) *Service {
	return &Service{
		cfg:    cfg,
		loader: loader,
		byID:   make(map[string]*domain.Dataset),
	}
}

// WithUploadAudit habilita a trilha de auditoria de uploads no banco.
// Sem repositório configurado o serviço funciona apenas em memória.
func (s *Service) WithUploadAudit(uploadRepo repository.UploadRepository) *Service {
	s.uploadRepo = uploadRepo
	return s
}

// LoadSample carrega a planilha de exemplo configurada. É chamado na
// subida da aplicação e pelo agendador de snapshots.
func (s *Service) LoadSample() (*domain.Dataset, error) {
	table, err := s.loader.LoadFile(s.cfg.Dataset.SamplePath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar dataset de exemplo")
	}

	dataset, err := s.register(s.cfg.Dataset.SampleName, domain.DatasetSourceSample, table)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	if s.sampleID != "" {
		// Substitui o exemplo anterior a cada recarga
		delete(s.byID, s.sampleID)
	}
	s.sampleID = dataset.ID
	s.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"dataset_id": dataset.ID,
		"rows":       dataset.RowCount,
	}).Info("Dataset de exemplo carregado")

	return dataset, nil
}

// CreateFromUpload valida e registra uma planilha enviada pelo usuário
func (s *Service) CreateFromUpload(name string, reader io.Reader) (*domain.Dataset, error) {
	table, err := s.loader.Load(io.LimitReader(reader, s.cfg.Dataset.MaxUploadBytes))
	if err != nil {
		return nil, err
	}

	dataset, err := s.register(name, domain.DatasetSourceUpload, table)
	if err != nil {
		return nil, err
	}

	s.evictOldUploads()

	if s.uploadRepo != nil {
		if err := s.uploadRepo.SaveUpload(dataset); err != nil {
			// A auditoria não bloqueia o upload: o snapshot já está disponível
			logrus.WithError(err).Error("Erro ao registrar auditoria de upload")
		}
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": dataset.ID,
		"name":       dataset.Name,
		"rows":       dataset.RowCount,
	}).Info("Upload de planilha registrado")

	return dataset, nil
}

// GetByID retorna o snapshot pelo identificador, ou nil quando não existe
func (s *Service) GetByID(id string) *domain.Dataset {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.byID[id]
}

// Sample retorna o snapshot da planilha de exemplo, ou nil antes da carga
func (s *Service) Sample() *domain.Dataset {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.byID[s.sampleID]
}

// List devolve os datasets registrados, mais recentes primeiro
func (s *Service) List() []domain.DatasetSummary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	summaries := make([]domain.DatasetSummary, 0, len(s.byID))
	for _, dataset := range s.byID {
		summaries = append(summaries, dataset.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LoadedAt.After(summaries[j].LoadedAt)
	})

	return summaries
}

// register executa o pipeline completo de ingestão: validação de esquema,
// normalização e registro do snapshot imutável.
func (s *Service) register(name, source string, table domain.TransactionTable) (*domain.Dataset, error) {
	if err := normalizing.ValidateSchema(table, domain.RequiredColumns()); err != nil {
		return nil, err
	}

	normalized, err := normalizing.Normalize(table)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador do dataset")
	}

	dataset := &domain.Dataset{
		ID:         id,
		Name:       name,
		Source:     source,
		Table:      table,
		Normalized: normalized,
		RowCount:   len(table.Rows),
		LoadedAt:   time.Now(),
	}

	s.mutex.Lock()
	s.byID[id] = dataset
	s.mutex.Unlock()

	return dataset, nil
}

// evictOldUploads descarta os uploads mais antigos além do limite
// configurado. O dataset de exemplo nunca é descartado.
func (s *Service) evictOldUploads() {
	limit := s.cfg.Dataset.MaxUploadsKept
	if limit < 1 {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var uploads []*domain.Dataset
	for _, dataset := range s.byID {
		if dataset.Source == domain.DatasetSourceUpload {
			uploads = append(uploads, dataset)
		}
	}

	if len(uploads) <= limit {
		return
	}

	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].LoadedAt.Before(uploads[j].LoadedAt)
	})

	for _, dataset := range uploads[:len(uploads)-limit] {
		delete(s.byID, dataset.ID)
		logrus.WithField("dataset_id", dataset.ID).Info("Upload antigo descartado do registro")
	}
}
