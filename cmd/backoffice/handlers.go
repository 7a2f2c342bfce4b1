package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apires/pizzaria-backoffice/internal/api"
	"github.com/apires/pizzaria-backoffice/internal/cart"
	"github.com/apires/pizzaria-backoffice/internal/catalog"
	"github.com/apires/pizzaria-backoffice/internal/inventory"
	"github.com/apires/pizzaria-backoffice/internal/models"
	"github.com/apires/pizzaria-backoffice/internal/orders"
)

// Handler liga os view models ao gateway JSON que o painel consome.
type Handler struct {
	client  *api.Client
	estoque *inventory.ViewModel
	pedidos *orders.ViewModel
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "pizzaria-backoffice"})
}

func (h *Handler) ListarEstoque(c *gin.Context) {
	pag := h.estoque.Paginacao()
	page := queryInt(c, "page", pag.Page)
	size := queryInt(c, "size", pag.Size)
	sort := c.DefaultQuery("sort", pag.Sort)

	if err := h.estoque.Load(c.Request.Context(), page, size, sort); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"produtos":  h.estoque.Produtos(),
		"paginacao": h.estoque.Paginacao(),
		"metricas":  h.estoque.Metricas(),
	})
}

func (h *Handler) BuscarProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "id de produto inválido"})
		return
	}

	produto, err := h.estoque.BuscarDetalhe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"produto": produto})
}

func (h *Handler) CadastrarProduto(c *gin.Context) {
	var form inventory.Formulario
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
		return
	}

	criado, err := h.estoque.Cadastrar(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, criado)
}

func (h *Handler) DeletarProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "id de produto inválido"})
		return
	}

	if err := h.estoque.Deletar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *Handler) ListarPedidosAtivos(c *gin.Context) {
	if err := h.pedidos.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	busca := orders.Busca{Termo: c.Query("termo")}
	for _, campo := range c.QueryArray("campo") {
		busca.Campos = append(busca.Campos, orders.Campo(campo))
	}
	h.pedidos.SetBusca(busca)
	h.pedidos.IrParaPagina(queryInt(c, "pagina", 1))

	c.JSON(http.StatusOK, gin.H{
		"pedidos":      h.pedidos.PaginaAtual(),
		"pagina":       h.pedidos.Pagina(),
		"totalPaginas": h.pedidos.TotalPaginas(),
		"total":        len(h.pedidos.Filtrados()),
	})
}

func (h *Handler) AtualizarStatusPedido(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "id de pedido inválido"})
		return
	}

	var body struct {
		Status models.StatusPedido `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
		return
	}

	if err := h.pedidos.AtualizarStatus(c.Request.Context(), id, body.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": body.Status})
}

func (h *Handler) CancelarPedido(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "id de pedido inválido"})
		return
	}

	var body struct {
		MotivoCancelamento string `json:"motivoCancelamento"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
		return
	}

	if err := h.pedidos.Cancelar(c.Request.Context(), id, body.MotivoCancelamento); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *Handler) Cardapio(c *gin.Context) {
	produtos, err := h.client.ListarCardapio(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	menu := catalog.New(produtos)
	termo := c.Query("termo")
	c.JSON(http.StatusOK, gin.H{
		"pizzasSalgadas": catalog.Buscar(menu.PizzasSalgadas(), termo),
		"pizzasDoces":    catalog.Buscar(menu.PizzasDoces(), termo),
		"bebidas":        menu.Bebidas(),
	})
}

type linhaPedidoRequest struct {
	Tamanho models.Tamanho `json:"tamanho"`
	Borda   models.Borda   `json:"borda"`
	Pizzas  []int64        `json:"pizzas"`
	Bebidas []int64        `json:"bebidas"`
}

type gerarPedidoRequest struct {
	ClienteID *int64               `json:"clienteId"`
	Itens     []linhaPedidoRequest `json:"itens"`
}

// GerarPedido monta cada linha com o Builder, acumula no carrinho e envia o
// payload composto para o colaborador.
func (h *Handler) GerarPedido(c *gin.Context) {
	var req gerarPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
		return
	}
	if len(req.Itens) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "pedido sem itens"})
		return
	}

	produtos, err := h.client.ListarCardapio(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	porID := make(map[int64]models.Produto, len(produtos))
	for _, p := range produtos {
		porID[p.ID] = p
	}

	carrinho := cart.NewCart()
	builder := cart.NewBuilder()
	for _, item := range req.Itens {
		line, err := montarLinha(builder, porID, item)
		if err != nil {
			respondError(c, err)
			return
		}
		carrinho.Adicionar(line)
	}

	payload := cart.ToSubmissionPayload(carrinho, req.ClienteID)
	criado, err := h.client.GerarPedido(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"pedido": criado,
		"total":  carrinho.Total(),
	})
}

func montarLinha(builder *cart.Builder, porID map[int64]models.Produto, item linhaPedidoRequest) (cart.OrderLine, error) {
	if err := builder.SetTamanho(item.Tamanho); err != nil {
		return cart.OrderLine{}, err
	}
	if err := builder.SetBorda(item.Borda); err != nil {
		return cart.OrderLine{}, err
	}

	metades := []cart.Metade{cart.MetadePrimeira, cart.MetadeSegunda}
	for i, id := range item.Pizzas {
		if i >= len(metades) {
			return cart.OrderLine{}, cart.ErrInvalidSelection
		}
		produto, ok := porID[id]
		if !ok {
			return cart.OrderLine{}, api.ErrProdutoNaoEncontrado
		}
		if err := builder.SelecionarMetade(metades[i], produto); err != nil {
			return cart.OrderLine{}, err
		}
	}

	for _, id := range item.Bebidas {
		produto, ok := porID[id]
		if !ok {
			return cart.OrderLine{}, api.ErrProdutoNaoEncontrado
		}
		if err := builder.AdicionarBebida(produto); err != nil {
			return cart.OrderLine{}, err
		}
	}

	return builder.Confirmar()
}

func respondError(c *gin.Context, err error) {
	var erros inventory.ErrosValidacao
	if errors.As(err, &erros) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"erros": erros})
		return
	}

	switch {
	case errors.Is(err, api.ErrCredencialInvalida):
		c.JSON(http.StatusUnauthorized, gin.H{"erro": err.Error()})
	case errors.Is(err, api.ErrProdutoNaoEncontrado), errors.Is(err, api.ErrPedidoNaoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"erro": err.Error()})
	case errors.Is(err, cart.ErrInvalidSelection),
		errors.Is(err, cart.ErrCannotCommit),
		errors.Is(err, cart.ErrIndexOutOfRange),
		errors.Is(err, orders.ErrStatusInvalido):
		c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
	default:
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"erro":            apiErr.Message,
				"tentarNovamente": api.IsTransient(err),
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"erro":            "falha ao comunicar com o servidor",
			"tentarNovamente": true,
		})
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
