package cart

import (
	"github.com/shopspring/decimal"

	"github.com/apires/pizzaria-backoffice/internal/models"
)

// Cart mantém as linhas confirmadas e os itens do payload em paralelo. Ambas
// as sequências são mutadas apenas juntas, então cart[i] e itens[i] descrevem
// sempre a mesma linha.
type Cart struct {
	lines []OrderLine
	itens []models.PayloadItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Adicionar appends the line and its derived payload item at the same index.
func (c *Cart) Adicionar(line OrderLine) {
	c.lines = append(c.lines, line)
	c.itens = append(c.itens, ToPayloadItem(line))
}

// Remover removes the line and its payload item at index, all-or-nothing.
func (c *Cart) Remover(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	c.itens = append(c.itens[:index], c.itens[index+1:]...)
	return nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total)
	}
	return total.Round(2)
}

func (c *Cart) Vazio() bool {
	return len(c.lines) == 0
}

func (c *Cart) Tamanho() int {
	return len(c.lines)
}

func (c *Cart) Linhas() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *Cart) Itens() []models.PayloadItem {
	return append([]models.PayloadItem(nil), c.itens...)
}
