package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Categoria string

const (
	CategoriaPizza      Categoria = "PIZZA"
	CategoriaPizzaDoce  Categoria = "PIZZA_DOCE"
	CategoriaPorcao     Categoria = "PORCAO"
	CategoriaSobremesa  Categoria = "SOBREMESA"
	CategoriaEsfiha     Categoria = "ESFIHA"
	CategoriaEsfihaDoce Categoria = "ESFIHA_DOCE"
	CategoriaBebidas    Categoria = "BEBIDAS"
)

var Categorias = []Categoria{
	CategoriaPizza,
	CategoriaPizzaDoce,
	CategoriaPorcao,
	CategoriaSobremesa,
	CategoriaEsfiha,
	CategoriaEsfihaDoce,
	CategoriaBebidas,
}

func (c Categoria) Valid() bool {
	for _, known := range Categorias {
		if c == known {
			return true
		}
	}
	return false
}

// IsPizza reports whether products of this category can fill a pizza half.
func (c Categoria) IsPizza() bool {
	return c == CategoriaPizza || c == CategoriaPizzaDoce
}

type Tamanho string

const (
	TamanhoGrande    Tamanho = "GRANDE"
	TamanhoMeioAMeio Tamanho = "MEIO_A_MEIO"
)

func (t Tamanho) Valid() bool {
	return t == TamanhoGrande || t == TamanhoMeioAMeio
}

type Borda string

const (
	BordaCatupiry Borda = "CATUPIRY"
	BordaNenhum   Borda = "NENHUM"
)

func (b Borda) Valid() bool {
	return b == BordaCatupiry || b == BordaNenhum
}

type StatusPedido string

const (
	StatusRecebido  StatusPedido = "RECEBIDO"
	StatusEmPreparo StatusPedido = "EM_PREPARO"
	StatusPronto    StatusPedido = "PRONTO"
	StatusEntregue  StatusPedido = "ENTREGUE"
)

func (s StatusPedido) Valid() bool {
	switch s {
	case StatusRecebido, StatusEmPreparo, StatusPronto, StatusEntregue:
		return true
	}
	return false
}

type Produto struct {
	ID                int64           `json:"id"`
	Nome              string          `json:"nome"`
	Preco             decimal.Decimal `json:"preco"`
	QuantidadeEstoque int             `json:"quantidadeEstoque"`
	Ingredientes      string          `json:"ingredientes,omitempty"`
	Categoria         Categoria       `json:"categoriaProduto"`
}

// ProdutoPage mirrors the collaborator's paginated response verbatim.
type ProdutoPage struct {
	Content       []Produto `json:"content"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
}

type Pedido struct {
	ID          int64        `json:"id"`
	NomeCliente string       `json:"nomeCliente"`
	Status      StatusPedido `json:"statusPedido"`
	TipoEntrega string       `json:"tipoEntrega"`
	DataPedido  time.Time    `json:"dataPedido,omitzero"`
}

// PayloadItem is the wire shape of one order line. Beverages are not part of
// the backend contract and never appear here.
type PayloadItem struct {
	Produto       []int64 `json:"produto"`
	Quantidade    int     `json:"quantidade"`
	TamanhoPizza  Tamanho `json:"tamanhoPizza"`
	BordaRecheada Borda   `json:"bordaRecheada"`
}

type SubmissionPayload struct {
	ClienteID *int64        `json:"clienteId"`
	Itens     []PayloadItem `json:"itens"`
}
