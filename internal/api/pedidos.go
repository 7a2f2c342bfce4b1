package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apires/pizzaria-backoffice/internal/models"
)

func (c *Client) ListarPedidos(ctx context.Context) ([]models.Pedido, error) {
	var result struct {
		Content []models.Pedido `json:"content"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/pedidos")
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	if resp.IsError() {
		return nil, c.errorFrom(resp)
	}

	return result.Content, nil
}

func (c *Client) GerarPedido(ctx context.Context, payload models.SubmissionPayload) (*models.Pedido, error) {
	var result models.Pedido

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/api/pedidos")
	if err != nil {
		return nil, fmt.Errorf("gerar pedido: %w", err)
	}
	if resp.IsError() {
		return nil, c.errorFrom(resp)
	}

	return &result, nil
}

func (c *Client) AtualizarStatus(ctx context.Context, id int64, status models.StatusPedido) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]models.StatusPedido{"status": status}).
		Put(fmt.Sprintf("/api/pedidos/%d/status", id))
	if err != nil {
		return fmt.Errorf("atualizar status do pedido %d: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrPedidoNaoEncontrado
	}
	if resp.IsError() {
		return c.errorFrom(resp)
	}

	return nil
}

func (c *Client) CancelarPedido(ctx context.Context, id int64, motivo string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"motivoCancelamento": motivo}).
		Delete(fmt.Sprintf("/api/pedidos/%d", id))
	if err != nil {
		return fmt.Errorf("cancelar pedido %d: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrPedidoNaoEncontrado
	}
	if resp.IsError() {
		return c.errorFrom(resp)
	}

	return nil
}
