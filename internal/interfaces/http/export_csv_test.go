package http_test

import (
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jprezende/AgroGestor-api/internal/application/harvest"
	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
	apphttp "github.com/jprezende/AgroGestor-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositório para os endpoints de exportação
// ──────────────────────────────────────────────────────────────────────────────

type stubMovementRepo struct {
	list []*entity.MovementWithRefs
}

func (r *stubMovementRepo) Create(*entity.Movement) error            { return nil }
func (r *stubMovementRepo) GetByID(string) (*entity.Movement, error) { return nil, nil }
func (r *stubMovementRepo) Delete(string) error                      { return nil }
func (r *stubMovementRepo) ListWithRefs(repository.MovementFilter) ([]*entity.MovementWithRefs, int, error) {
	return r.list, len(r.list), nil
}

type stubLoadRepo struct {
	loads []*entity.HarvestLoad
}

func (r *stubLoadRepo) Create(*entity.HarvestLoad) error { return nil }
func (r *stubLoadRepo) GetByID(string) (*entity.HarvestLoad, error) {
	return nil, nil
}
func (r *stubLoadRepo) List(repository.HarvestLoadFilter) ([]*entity.HarvestLoad, int, error) {
	return r.loads, len(r.loads), nil
}
func (r *stubLoadRepo) ListAll(repository.HarvestLoadFilter) ([]*entity.HarvestLoad, error) {
	return r.loads, nil
}
func (r *stubLoadRepo) Delete(string) error { return nil }

func doExportRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, "operador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportação CSV — texto livre com vírgulas e aspas (RFC 4180)
// ──────────────────────────────────────────────────────────────────────────────

func TestExportCSV_Movimentacoes_EscapaCampoLivre(t *testing.T) {
	activity := `Pulverização "solo", talhão 2`
	repo := &stubMovementRepo{list: []*entity.MovementWithRefs{{
		Movement: entity.Movement{
			ID:        "mov-1",
			FarmID:    testFarmID,
			ItemKind:  entity.ItemKindProduct,
			ItemID:    "prod-1",
			Type:      entity.MovementTypeSaida,
			Quantity:  decimal.NewFromInt(5),
			Activity:  activity,
			CreatedAt: time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC),
		},
		ItemName: "Adubo 20-05-20",
	}}}
	rec := inventory.NewRecorderUseCase(nil, nil, nil, nil, repo)
	h := apphttp.NewMovementHandler(rec)

	app := fiber.New()
	app.Get("/movements/export.csv", apphttp.AuthMiddleware(testJWTSecret), h.ExportCSV)

	resp := doExportRequest(t, app, "/movements/export.csv")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "movimentacoes.csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// Campo com vírgula e aspas sai entre aspas, com as aspas internas dobradas.
	assert.Contains(t, string(raw), `"Pulverização ""solo"", talhão 2"`)

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err, "o CSV gerado deve ser parseável de volta")
	require.Len(t, records, 2)
	assert.Equal(t,
		[]string{"data", "tipo_item", "item", "tipo", "quantidade", "funcionario", "maquina", "atividade"},
		records[0])
	assert.Equal(t, activity, records[1][7], "o texto livre deve sobreviver ao round-trip")
	assert.Equal(t, "Adubo 20-05-20", records[1][2])
	assert.Equal(t, "5", records[1][4])
}

func TestExportCSV_Colheita_EscapaCampoLivre(t *testing.T) {
	fieldName := `Talhão "Baixada", lado sul`
	repo := &stubLoadRepo{loads: []*entity.HarvestLoad{{
		ID:        "load-1",
		FarmID:    testFarmID,
		Date:      time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Crop:      "Soja",
		FieldName: fieldName,
		GrossKg:   decimal.NewFromInt(15000),
		TareKg:    decimal.NewFromInt(5000),
		NetKg:     decimal.NewFromInt(10000),
		CreatedAt: time.Now(),
	}}}
	uc := harvest.NewUseCase(repo, nil, harvest.Config{})
	h := apphttp.NewHarvestHandler(uc, nil, nil)

	app := fiber.New()
	app.Get("/harvest-loads/export.csv", apphttp.AuthMiddleware(testJWTSecret), h.ExportCSV)

	resp := doExportRequest(t, app, "/harvest-loads/export.csv")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Talhão ""Baixada"", lado sul"`)

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-03-20", records[1][0])
	assert.Equal(t, fieldName, records[1][2])
	assert.Equal(t, "10000", records[1][9])
}
