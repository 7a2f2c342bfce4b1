// Package catalog expõe o cardápio já carregado para a tela de montagem de
// pedidos: separação por categoria e busca por sabor ou ingredientes.
package catalog

import (
	"strings"

	"github.com/apires/pizzaria-backoffice/internal/models"
)

type Catalog struct {
	produtos []models.Produto
}

func New(produtos []models.Produto) *Catalog {
	return &Catalog{produtos: append([]models.Produto(nil), produtos...)}
}

func (c *Catalog) Produtos() []models.Produto {
	return append([]models.Produto(nil), c.produtos...)
}

func (c *Catalog) Pizzas() []models.Produto {
	return c.porCategoria(func(cat models.Categoria) bool { return cat.IsPizza() })
}

func (c *Catalog) PizzasSalgadas() []models.Produto {
	return c.porCategoria(func(cat models.Categoria) bool { return cat == models.CategoriaPizza })
}

func (c *Catalog) PizzasDoces() []models.Produto {
	return c.porCategoria(func(cat models.Categoria) bool { return cat == models.CategoriaPizzaDoce })
}

func (c *Catalog) Bebidas() []models.Produto {
	return c.porCategoria(func(cat models.Categoria) bool { return cat == models.CategoriaBebidas })
}

func (c *Catalog) porCategoria(match func(models.Categoria) bool) []models.Produto {
	var out []models.Produto
	for _, p := range c.produtos {
		if match(p.Categoria) {
			out = append(out, p)
		}
	}
	return out
}

// Buscar filtra uma lista por substring (sem diferenciar maiúsculas) do nome
// ou dos ingredientes. Termo em branco devolve a lista inalterada.
func Buscar(produtos []models.Produto, termo string) []models.Produto {
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return produtos
	}

	var out []models.Produto
	for _, p := range produtos {
		if strings.Contains(strings.ToLower(p.Nome), termo) ||
			strings.Contains(strings.ToLower(p.Ingredientes), termo) {
			out = append(out, p)
		}
	}
	return out
}
