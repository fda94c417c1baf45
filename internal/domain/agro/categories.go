// Package agro contém as tabelas de classificação de defensivos agrícolas
// usadas na importação de NF-e (NCM capítulo 38.08 e afins).
package agro

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Categorias de defensivo reconhecidas.
const (
	CategoryHerbicida   = "Herbicida"
	CategoryFungicida   = "Fungicida"
	CategoryInseticida  = "Inseticida"
	CategoryAcaricida   = "Acaricida"
	CategoryNematicida  = "Nematicida"
	CategoryAdjuvante   = "Adjuvante"
	CategoryFertilizante = "Fertilizante"
	CategoryOutros      = "Outros"
)

// =============================================================================
// Regra 1 - Prefixos NCM (capítulo 38.08: inseticidas, fungicidas, herbicidas;
// capítulo 31: adubos/fertilizantes). Avaliadas em ordem; o primeiro prefixo
// que casar decide a categoria, independente da descrição.
// =============================================================================

// NCMPrefixRule associa um prefixo de classificação fiscal a uma categoria.
type NCMPrefixRule struct {
	Prefix   string
	Category string
}

// NCMPrefixRules tabela ordenada de prefixos NCM -> categoria.
var NCMPrefixRules = []NCMPrefixRule{
	{Prefix: "380891", Category: CategoryInseticida},
	{Prefix: "380892", Category: CategoryFungicida},
	{Prefix: "380893", Category: CategoryHerbicida},
	{Prefix: "380894", Category: CategoryOutros},     // desinfetantes
	{Prefix: "380899", Category: CategoryNematicida}, // rodenticidas e semelhantes
	{Prefix: "3105", Category: CategoryFertilizante},
	{Prefix: "3102", Category: CategoryFertilizante},
	{Prefix: "3103", Category: CategoryFertilizante},
	{Prefix: "3104", Category: CategoryFertilizante},
	{Prefix: "3402", Category: CategoryAdjuvante}, // agentes tensoativos
}

// =============================================================================
// Regra 2 - Palavras-chave na descrição do item (fallback quando o NCM não
// resolve). Os padrões casam sobre a descrição minúscula e sem acentos.
// =============================================================================

// KeywordRule associa um padrão na descrição a uma categoria.
type KeywordRule struct {
	Pattern  *regexp.Regexp
	Category string
}

// KeywordRules lista ordenada de padrões -> categoria (primeiro que casar vence).
var KeywordRules = []KeywordRule{
	{Pattern: regexp.MustCompile(`herbicida|glifosato|glyphosate|atrazina|2,4-?d\b|paraquat|dicamba`), Category: CategoryHerbicida},
	{Pattern: regexp.MustCompile(`fungicida|mancozebe|tebuconazol|azoxistrobina|carbendazim`), Category: CategoryFungicida},
	{Pattern: regexp.MustCompile(`inseticida|imidacloprido|clorpirifos|deltametrina|lambda`), Category: CategoryInseticida},
	{Pattern: regexp.MustCompile(`acaricida|abamectina`), Category: CategoryAcaricida},
	{Pattern: regexp.MustCompile(`nematicida`), Category: CategoryNematicida},
	{Pattern: regexp.MustCompile(`adjuvante|espalhante|oleo mineral|oleo vegetal`), Category: CategoryAdjuvante},
	{Pattern: regexp.MustCompile(`fertilizante|adubo|npk|ureia|cloreto de potassio`), Category: CategoryFertilizante},
}

// DefaultCategory categoria atribuída quando nenhuma regra casa.
const DefaultCategory = CategoryOutros

// InferCategory infere a categoria de um defensivo a partir do NCM e da
// descrição do item da nota. Ordem fixa: prefixo NCM exato, depois
// palavra-chave na descrição, depois DefaultCategory.
func InferCategory(ncmCode, description string) string {
	ncm := strings.TrimSpace(ncmCode)
	for _, rule := range NCMPrefixRules {
		if strings.HasPrefix(ncm, rule.Prefix) {
			return rule.Category
		}
	}
	desc := Fold(description)
	for _, rule := range KeywordRules {
		if rule.Pattern.MatchString(desc) {
			return rule.Category
		}
	}
	return DefaultCategory
}

// foldTransformer remove marcas diacríticas (NFD -> remove Mn -> NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza texto para comparação: minúsculas e sem acentos
// ("Glifosato 480 g/L" -> "glifosato 480 g/l").
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
