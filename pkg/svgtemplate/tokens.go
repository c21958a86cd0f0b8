package svgtemplate

import (
	"regexp"
	"strings"
)

// tokenPattern reconhece placeholders no formato {{IDENTIFICADOR}}
var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// xmlEscaper escapa os caracteres especiais de XML nos valores substituídos
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// ExtractTokens varre o documento SVG e retorna os nomes de tokens
// encontrados, sem duplicatas, na ordem da primeira ocorrência
func ExtractTokens(svgSource string) []string {
	matches := tokenPattern.FindAllStringSubmatch(svgSource, -1)
	seen := make(map[string]bool, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		tokens = append(tokens, name)
	}
	return tokens
}

// SubstituteTokens substitui cada ocorrência de {{CHAVE}} pelo valor
// correspondente do mapa, escapado para XML. Chaves ausentes no documento são
// ignoradas; tokens sem valor no mapa permanecem intactos.
//
// Os valores são escapados antes da substituição e a substituição é feita em
// uma única passada sobre o documento, então um valor contendo texto no
// formato {{...}} nunca é reprocessado.
func SubstituteTokens(svgSource string, tokenMap map[string]string) string {
	if len(tokenMap) == 0 {
		return svgSource
	}
	pairs := make([]string, 0, len(tokenMap)*2)
	for key, value := range tokenMap {
		pairs = append(pairs, "{{"+key+"}}", EscapeXML(value))
	}
	return strings.NewReplacer(pairs...).Replace(svgSource)
}

// EscapeXML escapa &, <, >, " e ' para inserção segura em conteúdo XML
func EscapeXML(value string) string {
	return xmlEscaper.Replace(value)
}
