package svgtemplate

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600">
  <text font-family="Playfair Display, serif">{{NOME_COMPLETO}}</text>
  <text font-family="Roboto Mono, monospace">{{CERT_ID}}</text>
  <text>{{CURSO}} ({{CARGA_HORARIA}}) concluido em {{DATA_CONCLUSAO}}</text>
  <text>Verifique em {{QR_URL}} o certificado de {{NOME_COMPLETO}}</text>
</svg>`

func sampleTokens() map[string]string {
	return map[string]string{
		"NOME_COMPLETO":  "Maria de Souza & Silva",
		"CURSO":          "Fundamentos de PABX",
		"DATA_CONCLUSAO": "2025-01-09",
		"CARGA_HORARIA":  "8h",
		"CERT_ID":        "FUP-2025-000001",
		"QR_URL":         "https://eralearn.com.br/verify/FUP-2025-000001",
	}
}

func TestExtractTokens(t *testing.T) {
	tokens := ExtractTokens(sampleTemplate)

	// sem duplicatas, na ordem da primeira ocorrência
	assert.Equal(t, []string{
		"NOME_COMPLETO",
		"CERT_ID",
		"CURSO",
		"CARGA_HORARIA",
		"DATA_CONCLUSAO",
		"QR_URL",
	}, tokens)
}

func TestExtractTokensEmptyDocument(t *testing.T) {
	assert.Empty(t, ExtractTokens("<svg></svg>"))
}

func TestSubstituteTokensReplacesEveryOccurrence(t *testing.T) {
	rendered := SubstituteTokens(sampleTemplate, sampleTokens())

	assert.NotContains(t, rendered, "{{")
	assert.NotContains(t, rendered, "}}")
	assert.Equal(t, 2, strings.Count(rendered, "Maria de Souza &amp; Silva"))
}

func TestSubstituteTokensEscapesXML(t *testing.T) {
	tokens := sampleTokens()
	tokens["NOME_COMPLETO"] = `<Maria> & "Silva" d'Ávila`

	rendered := SubstituteTokens(sampleTemplate, tokens)

	assert.Contains(t, rendered, "&lt;Maria&gt; &amp; &quot;Silva&quot; &apos;")

	// o resultado continua sendo XML bem formado
	dec := xml.NewDecoder(strings.NewReader(rendered))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
}

func TestSubstituteTokensDoesNotReprocessValues(t *testing.T) {
	tokens := sampleTokens()
	tokens["NOME_COMPLETO"] = "{{CURSO}}"

	rendered := SubstituteTokens(sampleTemplate, tokens)

	// o valor com formato de token é inserido literalmente, nunca
	// substituído de novo
	assert.Contains(t, rendered, ">{{CURSO}}</text>")
	assert.Equal(t, 1, strings.Count(rendered, "Fundamentos de PABX"))
}

func TestSubstituteTokensLeavesUnknownPlaceholders(t *testing.T) {
	rendered := SubstituteTokens("<text>{{NOME_COMPLETO}} {{ASSINATURA}}</text>", map[string]string{
		"NOME_COMPLETO": "Maria",
		"IGNORADO":      "sem efeito",
	})

	assert.Equal(t, "<text>Maria {{ASSINATURA}}</text>", rendered)
}

func TestSubstituteTokensGolden(t *testing.T) {
	rendered := SubstituteTokens(sampleTemplate, sampleTokens())

	g := goldie.New(t)
	g.Assert(t, "rendered_certificate", []byte(rendered))
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&apos;", EscapeXML(`&<>"'`))
	assert.Equal(t, "sem especiais", EscapeXML("sem especiais"))
}
