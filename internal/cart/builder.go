// Package cart implements the order-assembly workflow: a Builder holding the
// selection for one order line, the Cart of committed lines, and the composer
// that turns lines into the wire payload.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/apires/pizzaria-backoffice/internal/models"
)

type Metade string

const (
	MetadePrimeira Metade = "primeira"
	MetadeSegunda  Metade = "segunda"
)

// OrderLine é um pedido montado: uma pizza configurada mais as bebidas
// anexadas, como uma unidade dentro do carrinho.
type OrderLine struct {
	ID      string
	Tamanho models.Tamanho
	Borda   models.Borda
	Pizzas  []models.Produto
	Bebidas []models.Produto
	Total   decimal.Decimal
}

// Builder guarda a seleção transitória de uma linha em montagem. O estado é
// zerado a cada Commit.
type Builder struct {
	tamanho models.Tamanho
	borda   models.Borda
	pizzas  []models.Produto
	bebidas []models.Produto
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetTamanho(t models.Tamanho) error {
	if !t.Valid() {
		return ErrInvalidSelection
	}
	b.tamanho = t
	return nil
}

func (b *Builder) SetBorda(borda models.Borda) error {
	if !borda.Valid() {
		return ErrInvalidSelection
	}
	b.borda = borda
	return nil
}

// SelecionarMetade fills a pizza half. The first slot replaces the whole
// selection; the second appends. A third half is rejected, as is any product
// that is not a pizza.
func (b *Builder) SelecionarMetade(metade Metade, produto models.Produto) error {
	if !produto.Categoria.IsPizza() {
		return ErrInvalidSelection
	}

	switch metade {
	case MetadePrimeira:
		b.pizzas = []models.Produto{produto}
	case MetadeSegunda:
		if len(b.pizzas) >= 2 {
			return ErrInvalidSelection
		}
		b.pizzas = append(b.pizzas, produto)
	default:
		return ErrInvalidSelection
	}

	return nil
}

// RemoverMetade removes the half at index. Slot identity is positional:
// removing the first of two halves promotes the remaining one to first.
func (b *Builder) RemoverMetade(index int) error {
	if index < 0 || index >= len(b.pizzas) {
		return ErrIndexOutOfRange
	}
	b.pizzas = append(b.pizzas[:index], b.pizzas[index+1:]...)
	return nil
}

func (b *Builder) AdicionarBebida(produto models.Produto) error {
	if produto.Categoria != models.CategoriaBebidas {
		return ErrInvalidSelection
	}
	b.bebidas = append(b.bebidas, produto)
	return nil
}

func (b *Builder) RemoverBebida(index int) error {
	if index < 0 || index >= len(b.bebidas) {
		return ErrIndexOutOfRange
	}
	b.bebidas = append(b.bebidas[:index], b.bebidas[index+1:]...)
	return nil
}

func (b *Builder) Tamanho() models.Tamanho   { return b.tamanho }
func (b *Builder) Borda() models.Borda       { return b.borda }
func (b *Builder) Pizzas() []models.Produto  { return append([]models.Produto(nil), b.pizzas...) }
func (b *Builder) Bebidas() []models.Produto { return append([]models.Produto(nil), b.bebidas...) }

// PodeConfirmar reports whether the line may be committed: size and crust set
// and at least one pizza half selected.
func (b *Builder) PodeConfirmar() bool {
	return b.tamanho != "" && b.borda != "" && len(b.pizzas) > 0
}

// TotalParcial soma os preços dos produtos selecionados, com duas casas
// decimais, para exibição antes do Commit.
func (b *Builder) TotalParcial() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.pizzas {
		total = total.Add(p.Preco)
	}
	for _, p := range b.bebidas {
		total = total.Add(p.Preco)
	}
	return total.Round(2)
}

// Confirmar produces the committed line with a fresh id and the 2-decimal
// total, then clears all transient state for the next line.
func (b *Builder) Confirmar() (OrderLine, error) {
	if !b.PodeConfirmar() {
		return OrderLine{}, ErrCannotCommit
	}

	line := OrderLine{
		ID:      uuid.New().String(),
		Tamanho: b.tamanho,
		Borda:   b.borda,
		Pizzas:  b.pizzas,
		Bebidas: b.bebidas,
		Total:   b.TotalParcial(),
	}

	b.tamanho = ""
	b.borda = ""
	b.pizzas = nil
	b.bebidas = nil

	return line, nil
}
