// Package inventory é o view model do controle de estoque: listagem paginada
// no servidor, métricas da página carregada e ações de CRUD que recarregam a
// lista ao concluir.
package inventory

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/apires/pizzaria-backoffice/internal/api"
	"github.com/apires/pizzaria-backoffice/internal/models"
)

type API interface {
	ListarProdutos(ctx context.Context, page, size int, sort string) (*models.ProdutoPage, error)
	BuscarProduto(ctx context.Context, id int64) (*models.Produto, error)
	CadastrarProduto(ctx context.Context, req api.CadastroProduto) (*models.Produto, error)
	DeletarProduto(ctx context.Context, id int64) error
}

// Paginacao guarda os metadados devolvidos pelo servidor, mais a ordenação
// pedida (o servidor não a ecoa).
type Paginacao struct {
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	Sort          string `json:"sort"`
	TotalPages    int    `json:"totalPages"`
	TotalElements int64  `json:"totalElements"`
}

type ViewModel struct {
	api         API
	limiteBaixo int

	// mu guarda o estado publicado; as chamadas à API acontecem fora do lock
	// para que um carregamento lento não bloqueie as leituras.
	mu        sync.Mutex
	produtos  []models.Produto
	paginacao Paginacao
	metricas  Metricas
	detalhe   *models.Produto
	loadErr   error

	// geracao sequencia os carregamentos: só a resposta da geração mais
	// recente pode publicar estado, respostas atrasadas são descartadas.
	geracao atomic.Uint64
}

func NewViewModel(apiClient API, size int, sort string, limiteBaixo int) *ViewModel {
	if size <= 0 {
		size = 10
	}
	if sort == "" {
		sort = "id,DESC"
	}
	if limiteBaixo <= 0 {
		limiteBaixo = 10
	}
	return &ViewModel{
		api:         apiClient,
		limiteBaixo: limiteBaixo,
		paginacao:   Paginacao{Size: size, Sort: sort},
	}
}

// Load busca uma página do servidor. Os metadados da resposta são gravados
// como vieram; as métricas valem só para a página carregada.
func (vm *ViewModel) Load(ctx context.Context, page, size int, sort string) error {
	gen := vm.geracao.Add(1)

	resp, err := vm.api.ListarProdutos(ctx, page, size, sort)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if gen != vm.geracao.Load() {
		// Um carregamento mais novo já foi disparado.
		return nil
	}
	if err != nil {
		zap.S().Errorw("falha ao carregar produtos", "err", err)
		vm.loadErr = err
		vm.produtos = nil
		vm.metricas = CalcularMetricas(nil, vm.limiteBaixo)
		return err
	}

	vm.loadErr = nil
	vm.produtos = resp.Content
	vm.paginacao = Paginacao{
		Page:          resp.Number,
		Size:          resp.Size,
		Sort:          sort,
		TotalPages:    resp.TotalPages,
		TotalElements: resp.TotalElements,
	}
	vm.metricas = CalcularMetricas(resp.Content, vm.limiteBaixo)
	return nil
}

func (vm *ViewModel) Recarregar(ctx context.Context) error {
	pag := vm.Paginacao()
	return vm.Load(ctx, pag.Page, pag.Size, pag.Sort)
}

func (vm *ViewModel) MudarPagina(ctx context.Context, pagina int) error {
	pag := vm.Paginacao()
	return vm.Load(ctx, pagina, pag.Size, pag.Sort)
}

// MudarTamanhoPagina volta para a primeira página com o novo tamanho.
func (vm *ViewModel) MudarTamanhoPagina(ctx context.Context, tamanho int) error {
	return vm.Load(ctx, 0, tamanho, vm.Paginacao().Sort)
}

func (vm *ViewModel) MudarOrdenacao(ctx context.Context, sort string) error {
	pag := vm.Paginacao()
	return vm.Load(ctx, pag.Page, pag.Size, sort)
}

// BuscarDetalhe carrega o detalhe de um produto. Falha limpa o detalhe
// anterior para nunca exibir estado obsoleto.
func (vm *ViewModel) BuscarDetalhe(ctx context.Context, id int64) (*models.Produto, error) {
	produto, err := vm.api.BuscarProduto(ctx, id)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err != nil {
		vm.detalhe = nil
		return nil, err
	}
	vm.detalhe = produto
	return produto, nil
}

// Cadastrar valida o formulário, envia o produto e recarrega a primeira
// página com o tamanho e a ordenação correntes.
func (vm *ViewModel) Cadastrar(ctx context.Context, form Formulario) (*models.Produto, error) {
	req, err := form.ParaCadastro()
	if err != nil {
		return nil, err
	}

	criado, err := vm.api.CadastrarProduto(ctx, req)
	if err != nil {
		return nil, err
	}

	pag := vm.Paginacao()
	if err := vm.Load(ctx, 0, pag.Size, pag.Sort); err != nil {
		return criado, err
	}
	return criado, nil
}

// Deletar remove o produto e recarrega a página corrente. Se ela voltar vazia
// e não for a primeira, recua uma página em vez de exibir uma página vazia.
func (vm *ViewModel) Deletar(ctx context.Context, id int64) error {
	if err := vm.api.DeletarProduto(ctx, id); err != nil {
		return err
	}

	if err := vm.Recarregar(ctx); err != nil {
		return err
	}

	vm.mu.Lock()
	vazia := len(vm.produtos) == 0 && vm.paginacao.Page > 0
	anterior := vm.paginacao.Page - 1
	vm.mu.Unlock()

	if vazia {
		return vm.MudarPagina(ctx, anterior)
	}
	return nil
}

func (vm *ViewModel) Produtos() []models.Produto {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]models.Produto(nil), vm.produtos...)
}

func (vm *ViewModel) Paginacao() Paginacao {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.paginacao
}

func (vm *ViewModel) Metricas() Metricas {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.metricas
}

func (vm *ViewModel) Detalhe() *models.Produto {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.detalhe
}

func (vm *ViewModel) Err() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loadErr
}
