package analyzing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Analyzer expõe os relatórios prontos para gráfico de cada página do painel
type Analyzer interface {
	Overview(dataset *domain.Dataset) *domain.OverviewReport
	Performance(dataset *domain.Dataset) *domain.PerformanceReport
	Categories(dataset *domain.Dataset) *domain.CategoryReport
	Options() domain.AnalyticsOptions
}

// Service é um serviço sem estado: cada chamada recalcula as métricas a
// partir do snapshot recebido. Nenhum agregador altera o dataset.
type Service struct {
	options domain.AnalyticsOptions
}

// NewService cria o serviço de análise com as opções vindas da configuração
func NewService(cfg *config.Config) Analyzer {
	options := domain.AnalyticsOptions{
		TopK:             cfg.Analytics.TopKCategories,
		CurrencyRounding: cfg.Analytics.CurrencyRounding,
		ItemsSoldMode:    domain.ItemsSoldMode(cfg.Analytics.ItemsSoldMode),
	}

	if options.TopK < 1 {
		logrus.Warnf("top_k inválido na configuração (%d), usando 10", options.TopK)
		options.TopK = 10
	}

	if options.ItemsSoldMode != domain.ItemsSoldByRowCount && options.ItemsSoldMode != domain.ItemsSoldByQuantity {
		logrus.Warnf("modo de itens vendidos inválido na configuração (%q), usando contagem de linhas", options.ItemsSoldMode)
		options.ItemsSoldMode = domain.ItemsSoldByRowCount
	}

	return &Service{options: options}
}

func (s *Service) Options() domain.AnalyticsOptions {
	return s.options
}

// Overview monta o relatório da página de visão geral
func (s *Service) Overview(dataset *domain.Dataset) *domain.OverviewReport {
	s.warnIfEmpty(dataset)

	summary, effectiveMode := Summary(dataset.Normalized, s.options.ItemsSoldMode)
	if effectiveMode != s.options.ItemsSoldMode {
		logrus.WithFields(logrus.Fields{
			"dataset_id":     dataset.ID,
			"requested_mode": s.options.ItemsSoldMode,
		}).Warn("Coluna quantity ausente, total de itens recuou para contagem de linhas")
	}

	return &domain.OverviewReport{
		Summary:       summary,
		ItemsSoldMode: effectiveMode,
		DailyProfit:   DailyProfitSeries(dataset.Normalized),
	}
}

// Performance monta o relatório de tráfego e desempenho dos funcionários
func (s *Service) Performance(dataset *domain.Dataset) *domain.PerformanceReport {
	s.warnIfEmpty(dataset)

	return &domain.PerformanceReport{
		Traffic:          Traffic(dataset.Normalized),
		EmployeeInvoices: EmployeeInvoiceCounts(dataset.Normalized),
	}
}

// Categories monta os rankings de categorias
func (s *Service) Categories(dataset *domain.Dataset) *domain.CategoryReport {
	s.warnIfEmpty(dataset)

	return &domain.CategoryReport{
		TopByProfit:     CategoryProfitRanking(dataset.Normalized, s.options.TopK, s.options.CurrencyRounding),
		TopByDaysOnHand: CategoryDaysOnHandRanking(dataset.Normalized, s.options.TopK),
	}
}

// warnIfEmpty registra o aviso de entrada vazia. Tabela vazia não é erro:
// os agregadores degradam para resultados vazios.
func (s *Service) warnIfEmpty(dataset *domain.Dataset) {
	if len(dataset.Normalized) == 0 {
		logrus.WithField("dataset_id", dataset.ID).Warn("Dataset sem transações, relatórios serão vazios")
	}
}
