package nfe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/infrastructure/nfe"
)

// Nota reduzida ao que o decodificador consome: ide, emit e det com rastro.
const sampleNFe = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc versao="4.00" xmlns="http://www.portalfiscal.inf.br/nfe">
  <NFe>
    <infNFe Id="NFe35260312345678000190550010000123451000123456" versao="4.00">
      <ide>
        <nNF>12345</nNF>
        <serie>1</serie>
        <dhEmi>2026-03-05T09:30:00-03:00</dhEmi>
      </ide>
      <emit>
        <CNPJ>12345678000190</CNPJ>
        <xNome>Agroquimica Brasil Ltda</xNome>
      </emit>
      <det nItem="1">
        <prod>
          <xProd>Glifosato 480 g/L SL</xProd>
          <NCM>38089329</NCM>
          <uCom>L</uCom>
          <qCom>200.0000</qCom>
          <vUnCom>28.90</vUnCom>
          <rastro>
            <nLote>L2026-031</nLote>
            <qLote>200.0000</qLote>
            <dFab>2026-01-15</dFab>
            <dVal>2028-01-15</dVal>
          </rastro>
        </prod>
      </det>
      <det nItem="2">
        <prod>
          <xProd>Mancozebe WG 800</xProd>
          <NCM>38089210</NCM>
          <uCom>KG</uCom>
          <qCom>50.0000</qCom>
          <vUnCom>42.00</vUnCom>
        </prod>
      </det>
    </infNFe>
  </NFe>
</nfeProc>`

func TestDecode_NotaCompleta(t *testing.T) {
	doc, err := nfe.NewDecoder().Decode([]byte(sampleNFe))
	require.NoError(t, err)

	assert.Equal(t, "12345", doc.Header.DocumentNumber)
	assert.Equal(t, "1", doc.Header.Series)
	assert.Equal(t, "Agroquimica Brasil Ltda", doc.Header.SupplierName)
	assert.Equal(t, "12345678000190", doc.Header.SupplierCNPJ)
	assert.Equal(t, 2026, doc.Header.IssueDate.Year())
	assert.NotEmpty(t, doc.Digest)

	require.Len(t, doc.Items, 2)
	first := doc.Items[0]
	assert.Equal(t, "Glifosato 480 g/L SL", first.Description)
	assert.Equal(t, "38089329", first.NCMCode)
	assert.Equal(t, "L", first.Unit)
	assert.True(t, first.Quantity.Equal(decimal.RequireFromString("200.0000")))
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("28.90")))

	require.Len(t, first.Lots, 1)
	assert.Equal(t, "L2026-031", first.Lots[0].LotID)
	assert.True(t, first.Lots[0].Quantity.Equal(decimal.RequireFromString("200.0000")))
	assert.Equal(t, "2026-01-15", first.Lots[0].ManufactureDate.Format("2006-01-02"))
	assert.Equal(t, "2028-01-15", first.Lots[0].ExpiryDate.Format("2006-01-02"))

	assert.Empty(t, doc.Items[1].Lots)
}

// O digest canônico ignora diferenças de formatação entre envios da mesma nota.
func TestDecode_DigestEstavel(t *testing.T) {
	d := nfe.NewDecoder()
	a, err := d.Decode([]byte(sampleNFe))
	require.NoError(t, err)
	b, err := d.Decode([]byte(sampleNFe))
	require.NoError(t, err)
	assert.Equal(t, a.Digest, b.Digest)
}

func TestDecode_XMLMalformado(t *testing.T) {
	_, err := nfe.NewDecoder().Decode([]byte("<nfeProc><NFe>"))
	require.ErrorIs(t, err, domain.ErrImportParse)
}

func TestDecode_SemInfNFe(t *testing.T) {
	_, err := nfe.NewDecoder().Decode([]byte("<outro><doc/></outro>"))
	require.ErrorIs(t, err, domain.ErrImportParse)
}

func TestDecode_NotaSemItens(t *testing.T) {
	xml := `<NFe><infNFe><ide><nNF>1</nNF><dEmi>2026-01-01</dEmi></ide><emit><xNome>X</xNome></emit></infNFe></NFe>`
	_, err := nfe.NewDecoder().Decode([]byte(xml))
	require.ErrorIs(t, err, domain.ErrImportParse)
}

func TestDecode_QuantidadeInvalida(t *testing.T) {
	xml := `<NFe><infNFe><ide><nNF>1</nNF><dEmi>2026-01-01</dEmi></ide><emit><xNome>X</xNome></emit>
	<det><prod><xProd>Item</xProd><qCom>abc</qCom><vUnCom>1</vUnCom></prod></det></infNFe></NFe>`
	_, err := nfe.NewDecoder().Decode([]byte(xml))
	require.ErrorIs(t, err, domain.ErrImportParse)
}
