package svgtemplate

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	svgTagPattern     = regexp.MustCompile(`(?s)<svg\b[^>]*>`)
	widthAttrPattern  = regexp.MustCompile(`\bwidth\s*=\s*["']([^"']+)["']`)
	heightAttrPattern = regexp.MustCompile(`\bheight\s*=\s*["']([^"']+)["']`)
	dimensionPattern  = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([a-z%]*)$`)

	// cobre tanto o atributo font-family="..." quanto a propriedade CSS
	// font-family: ...;
	fontFamilyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`font-family\s*=\s*"([^"]+)"`),
		regexp.MustCompile(`font-family\s*=\s*'([^']+)'`),
		regexp.MustCompile(`font-family\s*:\s*([^;"}<]+)`),
	}
)

// ParseDimensions extrai largura, altura e unidade dos atributos width/height
// da tag <svg>. Atributos ausentes ou ilegíveis resultam em zero; a unidade
// padrão é px.
func ParseDimensions(svgSource string) (width, height float64, unit string) {
	unit = "px"
	tag := svgTagPattern.FindString(svgSource)
	if tag == "" {
		return 0, 0, unit
	}
	var wUnit, hUnit string
	width, wUnit = parseDimension(widthAttrPattern, tag)
	height, hUnit = parseDimension(heightAttrPattern, tag)
	if wUnit != "" {
		unit = wUnit
	} else if hUnit != "" {
		unit = hUnit
	}
	return width, height, unit
}

func parseDimension(attr *regexp.Regexp, tag string) (float64, string) {
	m := attr.FindStringSubmatch(tag)
	if m == nil {
		return 0, ""
	}
	dm := dimensionPattern.FindStringSubmatch(strings.TrimSpace(m[1]))
	if dm == nil {
		return 0, ""
	}
	value, err := strconv.ParseFloat(dm[1], 64)
	if err != nil {
		return 0, ""
	}
	return value, dm[2]
}

// ParseFonts retorna os nomes de font-family referenciados no documento, sem
// duplicatas, na ordem da primeira ocorrência
func ParseFonts(svgSource string) []string {
	type fontList struct {
		pos   int
		names string
	}

	var lists []fontList
	for _, pattern := range fontFamilyPatterns {
		for _, idx := range pattern.FindAllStringSubmatchIndex(svgSource, -1) {
			lists = append(lists, fontList{pos: idx[0], names: svgSource[idx[2]:idx[3]]})
		}
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].pos < lists[j].pos })

	seen := make(map[string]bool)
	fonts := make([]string, 0, len(lists))
	for _, l := range lists {
		for _, name := range strings.Split(l.names, ",") {
			name = strings.Trim(strings.TrimSpace(name), `"'`)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			fonts = append(fonts, name)
		}
	}
	return fonts
}
