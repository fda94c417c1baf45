package agro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jprezende/AgroGestor-api/internal/domain/agro"
)

// O prefixo NCM decide sozinho, independente do texto da descrição.
func TestInferCategory_PrefixoNCMTemPrioridade(t *testing.T) {
	got := agro.InferCategory("38089329", "Glifosato 480 g/L")
	assert.Equal(t, agro.CategoryHerbicida, got)

	// Descrição sugere herbicida, mas o NCM de fungicida vence.
	got = agro.InferCategory("38089210", "Glifosato concentrado")
	assert.Equal(t, agro.CategoryFungicida, got)
}

func TestInferCategory_FallbackPorDescricao(t *testing.T) {
	cases := []struct {
		ncm  string
		desc string
		want string
	}{
		{"", "Glifosato 480 g/L", agro.CategoryHerbicida},
		{"99999999", "MANCOZEBE WG 800", agro.CategoryFungicida},
		{"", "Óleo Mineral Assist", agro.CategoryAdjuvante},
		{"", "Ureia granulada 45-00-00", agro.CategoryFertilizante},
		{"", "Abamectina 18 EC", agro.CategoryAcaricida},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, agro.InferCategory(tc.ncm, tc.desc), "ncm=%q desc=%q", tc.ncm, tc.desc)
	}
}

func TestInferCategory_SemRegraUsaPadrao(t *testing.T) {
	got := agro.InferCategory("84329000", "Peça para plantadeira")
	assert.Equal(t, agro.DefaultCategory, got)
}

func TestFold_RemoveAcentosEMinusculas(t *testing.T) {
	assert.Equal(t, "oleo mineral", agro.Fold("Óleo Mineral"))
	assert.Equal(t, "soja", agro.Fold("SOJA"))
}
