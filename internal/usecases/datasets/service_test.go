package datasets

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// stubLoader devolve uma tabela fixa independente do conteúdo lido
type stubLoader struct {
	table domain.TransactionTable
	err   error
}

func (l *stubLoader) Load(reader io.Reader) (domain.TransactionTable, error) {
	// Consome o reader como o loader real faria
	_, _ = io.Copy(io.Discard, reader)
	return l.table, l.err
}

func (l *stubLoader) LoadFile(path string) (domain.TransactionTable, error) {
	return l.table, l.err
}

func validTable() domain.TransactionTable {
	return domain.TransactionTable{
		Columns: domain.RequiredColumns(),
		Rows: []domain.Transaction{
			{
				SoldAt:       "2024-03-04 09:30:00",
				InvoiceID:    "INV-1",
				CostTotal:    10,
				PriceTotal:   15,
				SubCategory:  "Sunglasses",
				DaysOnHand:   12,
				EmployeeName: "Jane Doe",
			},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Dataset: config.Dataset{
			SamplePath:     "data/items_sold_sample.xlsx",
			SampleName:     "Exportação de exemplo",
			MaxUploadBytes: 1 << 20,
			MaxUploadsKept: 2,
		},
	}
}

func TestLoadSample(t *testing.T) {
	service := NewService(testConfig(), &stubLoader{table: validTable()})

	dataset, err := service.LoadSample()
	require.NoError(t, err)

	assert.NotEmpty(t, dataset.ID)
	assert.Equal(t, "Exportação de exemplo", dataset.Name)
	assert.Equal(t, domain.DatasetSourceSample, dataset.Source)
	assert.Equal(t, 1, dataset.RowCount)
	require.Len(t, dataset.Normalized, 1)
	assert.Equal(t, "Jane", dataset.Normalized[0].EmployeeFirstName)

	assert.Equal(t, dataset, service.Sample())
	assert.Equal(t, dataset, service.GetByID(dataset.ID))
}

func TestLoadSample_recargaSubstituiOAnterior(t *testing.T) {
	service := NewService(testConfig(), &stubLoader{table: validTable()})

	first, err := service.LoadSample()
	require.NoError(t, err)

	second, err := service.LoadSample()
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second, service.Sample())
	assert.Nil(t, service.GetByID(first.ID))
}

func TestLoadSample_esquemaInvalido(t *testing.T) {
	table := validTable()
	table.Columns = table.Columns[:3]

	service := NewService(testConfig(), &stubLoader{table: table})

	_, err := service.LoadSample()

	var missingErr *domain.MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Nil(t, service.Sample())
}

func TestCreateFromUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploadRepo := mocks.NewMockUploadRepository(ctrl)
	uploadRepo.EXPECT().
		SaveUpload(gomock.Any()).
		DoAndReturn(func(dataset *domain.Dataset) error {
			assert.Equal(t, "vendas-marco.xlsx", dataset.Name)
			return nil
		})

	service := NewService(testConfig(), &stubLoader{table: validTable()}).
		WithUploadAudit(uploadRepo)

	dataset, err := service.CreateFromUpload("vendas-marco.xlsx", strings.NewReader("conteudo"))
	require.NoError(t, err)

	assert.Equal(t, domain.DatasetSourceUpload, dataset.Source)
	assert.Equal(t, dataset, service.GetByID(dataset.ID))
}

func TestCreateFromUpload_falhaDeAuditoriaNaoBloqueia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploadRepo := mocks.NewMockUploadRepository(ctrl)
	uploadRepo.EXPECT().
		SaveUpload(gomock.Any()).
		Return(assert.AnError)

	service := NewService(testConfig(), &stubLoader{table: validTable()}).
		WithUploadAudit(uploadRepo)

	dataset, err := service.CreateFromUpload("vendas.xlsx", strings.NewReader("conteudo"))

	require.NoError(t, err)
	assert.NotNil(t, service.GetByID(dataset.ID))
}

func TestCreateFromUpload_semAuditoriaConfigurada(t *testing.T) {
	service := NewService(testConfig(), &stubLoader{table: validTable()})

	dataset, err := service.CreateFromUpload("vendas.xlsx", strings.NewReader("conteudo"))

	require.NoError(t, err)
	assert.NotNil(t, service.GetByID(dataset.ID))
}

func TestCreateFromUpload_descartaUploadsAntigos(t *testing.T) {
	service := NewService(testConfig(), &stubLoader{table: validTable()})

	first, err := service.CreateFromUpload("primeiro.xlsx", strings.NewReader(""))
	require.NoError(t, err)

	second, err := service.CreateFromUpload("segundo.xlsx", strings.NewReader(""))
	require.NoError(t, err)

	third, err := service.CreateFromUpload("terceiro.xlsx", strings.NewReader(""))
	require.NoError(t, err)

	// MaxUploadsKept é 2: o upload mais antigo sai do registro
	assert.Nil(t, service.GetByID(first.ID))
	assert.NotNil(t, service.GetByID(second.ID))
	assert.NotNil(t, service.GetByID(third.ID))
}

func TestCreateFromUpload_nuncaDescartaOExemplo(t *testing.T) {
	service := NewService(testConfig(), &stubLoader{table: validTable()})

	sample, err := service.LoadSample()
	require.NoError(t, err)

	for _, name := range []string{"a.xlsx", "b.xlsx", "c.xlsx"} {
		_, err := service.CreateFromUpload(name, strings.NewReader(""))
		require.NoError(t, err)
	}

	assert.NotNil(t, service.GetByID(sample.ID))
}

func TestList_maisRecentesPrimeiro(t *testing.T) {
	service := NewService(testConfig(), &stubLoader{table: validTable()})

	_, err := service.LoadSample()
	require.NoError(t, err)

	upload, err := service.CreateFromUpload("vendas.xlsx", strings.NewReader(""))
	require.NoError(t, err)

	summaries := service.List()

	require.Len(t, summaries, 2)
	assert.Equal(t, upload.ID, summaries[0].ID)
}
