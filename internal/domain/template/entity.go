package template

// Template descreve um modelo de certificado: a chave usada nas requisições,
// o nome de exibição e o arquivo SVG correspondente no diretório de modelos
type Template struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
	File string `json:"file" yaml:"file"`
}
