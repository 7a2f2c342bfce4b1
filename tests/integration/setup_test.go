package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apires/pizzaria-backoffice/internal/api"
	"github.com/apires/pizzaria-backoffice/internal/config"
	"github.com/apires/pizzaria-backoffice/internal/models"
	"github.com/apires/pizzaria-backoffice/internal/session"
)

const testToken = "token-integracao"

// fakeBackend é a API da pizzaria em memória: os mesmos endpoints e formatos
// do colaborador real, o suficiente para exercitar cliente e view models.
type fakeBackend struct {
	mu            sync.Mutex
	produtos      []models.Produto
	pedidos       []models.Pedido
	payloads      []models.SubmissionPayload
	proximoID     int64
	proximoPedido int64
}

func novoBackend() *fakeBackend {
	b := &fakeBackend{proximoID: 1, proximoPedido: 1}

	seed := []struct {
		nome         string
		preco        float64
		estoque      int
		ingredientes string
		categoria    models.Categoria
	}{
		{"Calabresa", 45.00, 20, "Calabresa, cebola e orégano", models.CategoriaPizza},
		{"Quatro Queijos", 52.50, 5, "Muçarela, provolone, parmesão e catupiry", models.CategoriaPizza},
		{"Romeu e Julieta", 48.00, 8, "Goiabada com queijo", models.CategoriaPizzaDoce},
		{"Coca-Cola", 8.00, 50, "", models.CategoriaBebidas},
		{"Batata Frita", 25.00, 15, "Batata e sal", models.CategoriaPorcao},
	}
	for _, p := range seed {
		b.produtos = append(b.produtos, models.Produto{
			ID:                b.proximoID,
			Nome:              p.nome,
			Preco:             decimal.NewFromFloat(p.preco),
			QuantidadeEstoque: p.estoque,
			Ingredientes:      p.ingredientes,
			Categoria:         p.categoria,
		})
		b.proximoID++
	}

	b.pedidos = []models.Pedido{
		{ID: b.proximoPedido, NomeCliente: "Maria Silva", Status: models.StatusRecebido, TipoEntrega: "DELIVERY"},
	}
	b.proximoPedido++

	return b
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/produtos", b.listarProdutos)
	mux.HandleFunc("POST /api/produtos", b.cadastrarProduto)
	mux.HandleFunc("GET /api/produtos/{id}", b.buscarProduto)
	mux.HandleFunc("DELETE /api/produtos/{id}", b.deletarProduto)

	mux.HandleFunc("GET /api/pedidos", b.listarPedidos)
	mux.HandleFunc("POST /api/pedidos", b.gerarPedido)
	mux.HandleFunc("PUT /api/pedidos/{id}/status", b.atualizarStatus)
	mux.HandleFunc("DELETE /api/pedidos/{id}", b.cancelarPedido)

	return b.exigirToken(mux)
}

func (b *fakeBackend) exigirToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "token inválido"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) listarProdutos(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ordenados := append([]models.Produto(nil), b.produtos...)
	if strings.HasSuffix(r.URL.Query().Get("sort"), "DESC") {
		sort.Slice(ordenados, func(i, j int) bool { return ordenados[i].ID > ordenados[j].ID })
	} else {
		sort.Slice(ordenados, func(i, j int) bool { return ordenados[i].ID < ordenados[j].ID })
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		// Sem paginação explícita (tela de montagem), devolve tudo.
		size = len(ordenados)
		if size == 0 {
			size = 1
		}
		page = 0
	}

	total := len(ordenados)
	totalPages := (total + size - 1) / size
	inicio := page * size
	fim := inicio + size
	if inicio > total {
		inicio = total
	}
	if fim > total {
		fim = total
	}

	json.NewEncoder(w).Encode(models.ProdutoPage{
		Content:       ordenados[inicio:fim],
		Number:        page,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: int64(total),
	})
}

func (b *fakeBackend) cadastrarProduto(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var req api.CadastroProduto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "corpo inválido"})
		return
	}

	produto := models.Produto{
		ID:                b.proximoID,
		Nome:              req.Nome,
		Preco:             req.Preco,
		QuantidadeEstoque: req.Quantidade,
		Ingredientes:      req.Ingredientes,
		Categoria:         req.Categoria,
	}
	b.proximoID++
	b.produtos = append(b.produtos, produto)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(produto)
}

func (b *fakeBackend) buscarProduto(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	for _, p := range b.produtos {
		if p.ID == id {
			json.NewEncoder(w).Encode(map[string]models.Produto{"produto": p})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "produto não encontrado"})
}

func (b *fakeBackend) deletarProduto(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	for i, p := range b.produtos {
		if p.ID == id {
			b.produtos = append(b.produtos[:i], b.produtos[i+1:]...)
			json.NewEncoder(w).Encode(map[string]string{"message": "produto removido"})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "produto não encontrado"})
}

func (b *fakeBackend) listarPedidos(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	json.NewEncoder(w).Encode(map[string][]models.Pedido{"content": b.pedidos})
}

func (b *fakeBackend) gerarPedido(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var payload models.SubmissionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "payload inválido"})
		return
	}
	b.payloads = append(b.payloads, payload)

	pedido := models.Pedido{
		ID:          b.proximoPedido,
		NomeCliente: "Balcão",
		Status:      models.StatusRecebido,
		TipoEntrega: "RETIRADA",
	}
	b.proximoPedido++
	b.pedidos = append(b.pedidos, pedido)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(pedido)
}

func (b *fakeBackend) atualizarStatus(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	var body struct {
		Status models.StatusPedido `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Status.Valid() {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "status inválido"})
		return
	}

	for i := range b.pedidos {
		if b.pedidos[i].ID == id {
			b.pedidos[i].Status = body.Status
			json.NewEncoder(w).Encode(b.pedidos[i])
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "pedido não encontrado"})
}

func (b *fakeBackend) cancelarPedido(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	for i, p := range b.pedidos {
		if p.ID == id {
			b.pedidos = append(b.pedidos[:i], b.pedidos[i+1:]...)
			json.NewEncoder(w).Encode(map[string]string{"message": "pedido cancelado"})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "pedido não encontrado"})
}

func setupBackend(t *testing.T) (*fakeBackend, *api.Client, *session.Session) {
	t.Helper()

	backend := novoBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	sess := session.New(testToken)
	cfg := &config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	return backend, api.NewClient(cfg, sess), sess
}
