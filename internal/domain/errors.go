package domain

import (
	"fmt"
	"strings"
)

// MissingColumnsError indica que a planilha não possui todas as colunas
// obrigatórias. Fatal para a sessão: nenhuma página consegue renderizar.
type MissingColumnsError struct {
	Missing []Column `json:"missing"`
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, c := range e.Missing {
		names = append(names, string(c))
	}
	return fmt.Sprintf("colunas obrigatórias ausentes na planilha: %s", strings.Join(names, ", "))
}

// DateParseError indica um valor de sold_at que não pôde ser interpretado.
// A normalização é tudo-ou-nada: uma única data inválida aborta a tabela inteira.
type DateParseError struct {
	Row   int    `json:"row"`
	Value string `json:"value"`
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("data de venda inválida na linha %d: %q", e.Row, e.Value)
}

// MalformedNameError indica um nome de funcionário vazio ou inválido
type MalformedNameError struct {
	Row   int    `json:"row"`
	Value string `json:"value"`
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("nome de funcionário inválido na linha %d: %q", e.Row, e.Value)
}
