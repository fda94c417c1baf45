package harvest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jprezende/AgroGestor-api/internal/application/harvest"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

const testFarmID = "farm-1"

type memLoadRepo struct {
	loads []*entity.HarvestLoad
}

func (r *memLoadRepo) Create(l *entity.HarvestLoad) error {
	cp := *l
	r.loads = append(r.loads, &cp)
	return nil
}

func (r *memLoadRepo) GetByID(id string) (*entity.HarvestLoad, error) {
	for _, l := range r.loads {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLoadRepo) matches(l *entity.HarvestLoad, f repository.HarvestLoadFilter) bool {
	if f.FarmID != "" && l.FarmID != f.FarmID {
		return false
	}
	if f.From != nil && l.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && l.Date.After(*f.To) {
		return false
	}
	if f.Crop != "" && !strings.Contains(strings.ToLower(l.Crop), strings.ToLower(f.Crop)) {
		return false
	}
	if f.FieldName != "" && !strings.Contains(strings.ToLower(l.FieldName), strings.ToLower(f.FieldName)) {
		return false
	}
	if f.PlantingID != "" && (l.PlantingID == nil || *l.PlantingID != f.PlantingID) {
		return false
	}
	return true
}

func (r *memLoadRepo) List(f repository.HarvestLoadFilter) ([]*entity.HarvestLoad, int, error) {
	all, err := r.ListAll(f)
	return all, len(all), err
}

func (r *memLoadRepo) ListAll(f repository.HarvestLoadFilter) ([]*entity.HarvestLoad, error) {
	var out []*entity.HarvestLoad
	for _, l := range r.loads {
		if r.matches(l, f) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLoadRepo) Delete(id string) error {
	for i, l := range r.loads {
		if l.ID == id {
			r.loads = append(r.loads[:i], r.loads[i+1:]...)
			return nil
		}
	}
	return nil
}

type memPlantingRepo struct {
	plantings map[string]*entity.Planting
}

func (r *memPlantingRepo) Create(p *entity.Planting) error { r.plantings[p.ID] = p; return nil }
func (r *memPlantingRepo) GetByID(id string) (*entity.Planting, error) {
	return r.plantings[id], nil
}
func (r *memPlantingRepo) Update(p *entity.Planting) error { r.plantings[p.ID] = p; return nil }
func (r *memPlantingRepo) ListByFarm(farmID, status string, limit, offset int) ([]*entity.Planting, int, error) {
	return nil, 0, nil
}
func (r *memPlantingRepo) Delete(id string) error { delete(r.plantings, id); return nil }

func newUC() (*harvest.UseCase, *memLoadRepo, *memPlantingRepo) {
	loads := &memLoadRepo{}
	plantings := &memPlantingRepo{plantings: map[string]*entity.Planting{}}
	uc := harvest.NewUseCase(loads, plantings, harvest.Config{})
	return uc, loads, plantings
}

func loadInput(gross, tare int64) harvest.RegisterLoadInput {
	return harvest.RegisterLoadInput{
		FarmID:  testFarmID,
		Date:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Crop:    "Soja",
		GrossKg: decimal.NewFromInt(gross),
		TareKg:  decimal.NewFromInt(tare),
	}
}

func TestRegisterLoad_PesoLiquidoDerivado(t *testing.T) {
	uc, _, _ := newUC()
	load, err := uc.RegisterLoad(loadInput(1000, 300))
	require.NoError(t, err)
	assert.True(t, load.NetKg.Equal(decimal.NewFromInt(700)))
}

// Política estrita: bruto == tara também é rejeitado (líquido zero não entra).
func TestRegisterLoad_BrutoNaoExcedeTara(t *testing.T) {
	uc, loads, _ := newUC()

	_, err := uc.RegisterLoad(loadInput(300, 300))
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.RegisterLoad(loadInput(200, 300))
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Empty(t, loads.loads)
}

func TestRegisterLoad_PlantioInexistente(t *testing.T) {
	uc, _, _ := newUC()
	in := loadInput(1000, 300)
	id := "nao-existe"
	in.PlantingID = &id
	_, err := uc.RegisterLoad(in)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAggregate_TotaisEProdutividade(t *testing.T) {
	uc, _, plantings := newUC()
	_ = plantings.Create(&entity.Planting{
		ID: "plant-1", FarmID: testFarmID, Crop: "Soja",
		AreaHa: decimal.NewFromInt(50),
	})

	for _, w := range [][2]int64{{10000, 4000}, {12000, 4000}, {9000, 4000}} {
		in := loadInput(w[0], w[1])
		pid := "plant-1"
		in.PlantingID = &pid
		_, err := uc.RegisterLoad(in)
		require.NoError(t, err)
	}

	sum, err := uc.Aggregate(repository.HarvestLoadFilter{FarmID: testFarmID, PlantingID: "plant-1"}, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Loads)
	assert.True(t, sum.TotalGrossKg.Equal(decimal.NewFromInt(31000)))
	assert.True(t, sum.TotalTareKg.Equal(decimal.NewFromInt(12000)))
	assert.True(t, sum.TotalNetKg.Equal(decimal.NewFromInt(19000)))
	assert.True(t, sum.ReferenceAreaHa.Equal(decimal.NewFromInt(50)))
	// 19000 kg / 50 ha = 380 kg/ha; 380/60 = 6.33 sacas/ha
	assert.True(t, sum.YieldKgPerHa.Equal(decimal.RequireFromString("380")), sum.YieldKgPerHa.String())
	assert.True(t, sum.YieldSacksPerHa.Equal(decimal.RequireFromString("6.33")), sum.YieldSacksPerHa.String())
}

// Sem plantio no filtro, usa a maior área entre os plantios vinculados; sem
// nenhum vínculo vale o fallback do chamador.
func TestAggregate_AreaDeReferencia(t *testing.T) {
	uc, _, plantings := newUC()
	_ = plantings.Create(&entity.Planting{ID: "p-a", FarmID: testFarmID, AreaHa: decimal.NewFromInt(30)})
	_ = plantings.Create(&entity.Planting{ID: "p-b", FarmID: testFarmID, AreaHa: decimal.NewFromInt(80)})

	for _, pid := range []string{"p-a", "p-b"} {
		in := loadInput(5000, 2000)
		id := pid
		in.PlantingID = &id
		_, err := uc.RegisterLoad(in)
		require.NoError(t, err)
	}

	sum, err := uc.Aggregate(repository.HarvestLoadFilter{FarmID: testFarmID}, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, sum.ReferenceAreaHa.Equal(decimal.NewFromInt(80)))

	// Sem vínculos: fallback.
	uc2, _, _ := newUC()
	_, err = uc2.RegisterLoad(loadInput(5000, 2000))
	require.NoError(t, err)
	sum2, err := uc2.Aggregate(repository.HarvestLoadFilter{FarmID: testFarmID}, decimal.NewFromInt(12))
	require.NoError(t, err)
	assert.True(t, sum2.ReferenceAreaHa.Equal(decimal.NewFromInt(12)))
	assert.True(t, sum2.YieldKgPerHa.Equal(decimal.NewFromInt(250)))
}

func TestAggregate_FiltroPorCultura(t *testing.T) {
	uc, _, _ := newUC()
	_, err := uc.RegisterLoad(loadInput(1000, 300))
	require.NoError(t, err)
	in := loadInput(2000, 500)
	in.Crop = "Milho"
	_, err = uc.RegisterLoad(in)
	require.NoError(t, err)

	sum, err := uc.Aggregate(repository.HarvestLoadFilter{FarmID: testFarmID, Crop: "soja"}, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Loads)
	assert.True(t, sum.TotalNetKg.Equal(decimal.NewFromInt(700)))
}

func TestDeleteLoad_SemEfeitoNoRazao(t *testing.T) {
	uc, loads, _ := newUC()
	load, err := uc.RegisterLoad(loadInput(1000, 300))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteLoad(testFarmID, load.ID))
	assert.Empty(t, loads.loads)

	err = uc.DeleteLoad(testFarmID, "nao-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
