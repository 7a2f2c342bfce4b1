package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/apires/pizzaria-backoffice/internal/models"
)

// CadastroProduto is the POST /api/produtos request body. The create endpoint
// takes "quantidade" while fetched products carry "quantidadeEstoque".
type CadastroProduto struct {
	Nome         string           `json:"nome"`
	Preco        decimal.Decimal  `json:"preco"`
	Quantidade   int              `json:"quantidade"`
	Ingredientes string           `json:"ingredientes"`
	Categoria    models.Categoria `json:"categoriaProduto"`
}

func (c *Client) ListarProdutos(ctx context.Context, page, size int, sort string) (*models.ProdutoPage, error) {
	var result models.ProdutoPage

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page": strconv.Itoa(page),
			"size": strconv.Itoa(size),
			"sort": sort,
		}).
		SetResult(&result).
		Get("/api/produtos")
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	if resp.IsError() {
		return nil, c.errorFrom(resp)
	}

	return &result, nil
}

// ListarCardapio busca o catálogo completo para a tela de montagem de
// pedidos, lendo apenas o content da resposta.
func (c *Client) ListarCardapio(ctx context.Context) ([]models.Produto, error) {
	var result struct {
		Content []models.Produto `json:"content"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/produtos")
	if err != nil {
		return nil, fmt.Errorf("listar cardápio: %w", err)
	}
	if resp.IsError() {
		return nil, c.errorFrom(resp)
	}

	return result.Content, nil
}

func (c *Client) BuscarProduto(ctx context.Context, id int64) (*models.Produto, error) {
	var result struct {
		Produto models.Produto `json:"produto"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/api/produtos/%d", id))
	if err != nil {
		return nil, fmt.Errorf("buscar produto %d: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrProdutoNaoEncontrado
	}
	if resp.IsError() {
		return nil, c.errorFrom(resp)
	}

	return &result.Produto, nil
}

func (c *Client) CadastrarProduto(ctx context.Context, req CadastroProduto) (*models.Produto, error) {
	var result models.Produto

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/produtos")
	if err != nil {
		return nil, fmt.Errorf("cadastrar produto: %w", err)
	}
	if resp.IsError() {
		return nil, c.errorFrom(resp)
	}

	return &result, nil
}

func (c *Client) DeletarProduto(ctx context.Context, id int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/produtos/%d", id))
	if err != nil {
		return fmt.Errorf("deletar produto %d: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrProdutoNaoEncontrado
	}
	if resp.IsError() {
		return c.errorFrom(resp)
	}

	return nil
}
