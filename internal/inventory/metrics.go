package inventory

import "github.com/apires/pizzaria-backoffice/internal/models"

// Metricas resume a página carregada do estoque. O escopo é a página, não o
// catálogo inteiro; os cartões do painel sempre refletiram só o que está na
// tela.
type Metricas struct {
	Total        int                      `json:"total"`
	BaixoEstoque int                      `json:"baixoEstoque"`
	Categorias   map[models.Categoria]int `json:"categorias"`
}

func CalcularMetricas(produtos []models.Produto, limiteBaixo int) Metricas {
	m := Metricas{
		Total:      len(produtos),
		Categorias: make(map[models.Categoria]int),
	}
	for _, p := range produtos {
		if p.QuantidadeEstoque < limiteBaixo {
			m.BaixoEstoque++
		}
		m.Categorias[p.Categoria]++
	}
	return m
}
