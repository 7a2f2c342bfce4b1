// Package orders é o view model da tela de pedidos ativos: carrega a lista do
// colaborador, filtra no cliente e pagina o resultado filtrado.
package orders

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/apires/pizzaria-backoffice/internal/models"
)

const defaultPageSize = 8

var ErrStatusInvalido = errors.New("status de pedido inválido")

type API interface {
	ListarPedidos(ctx context.Context) ([]models.Pedido, error)
	AtualizarStatus(ctx context.Context, id int64, status models.StatusPedido) error
	CancelarPedido(ctx context.Context, id int64, motivo string) error
}

type ViewModel struct {
	api      API
	pageSize int

	// mu guarda o estado publicado; as chamadas à API acontecem fora do lock
	// para que um carregamento lento não bloqueie as leituras.
	mu        sync.Mutex
	todos     []models.Pedido
	filtrados []models.Pedido
	busca     Busca
	pagina    int
	loadErr   error
}

func NewViewModel(api API, pageSize int) *ViewModel {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &ViewModel{api: api, pageSize: pageSize, pagina: 1}
}

// Load busca os pedidos ativos. Em caso de falha a lista anterior é mantida e
// o erro fica disponível em Err até o próximo carregamento bem-sucedido.
func (vm *ViewModel) Load(ctx context.Context) error {
	pedidos, err := vm.api.ListarPedidos(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err != nil {
		zap.S().Errorw("falha ao carregar pedidos", "err", err)
		vm.loadErr = err
		return err
	}

	vm.loadErr = nil
	vm.todos = pedidos
	vm.filtrados = Filtrar(vm.todos, vm.busca)
	vm.pagina = vm.clampPagina(vm.pagina)
	return nil
}

// SetBusca troca os critérios de filtro e volta para a primeira página.
func (vm *ViewModel) SetBusca(busca Busca) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.busca = busca
	vm.filtrados = Filtrar(vm.todos, busca)
	vm.pagina = 1
}

func (vm *ViewModel) Filtrados() []models.Pedido {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]models.Pedido(nil), vm.filtrados...)
}

func (vm *ViewModel) Err() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loadErr
}

func (vm *ViewModel) TotalPaginas() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.totalPaginas()
}

// IrParaPagina navega prendendo o destino entre 1 e a última página válida.
func (vm *ViewModel) IrParaPagina(pagina int) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.pagina = vm.clampPagina(pagina)
}

func (vm *ViewModel) Pagina() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pagina
}

// PaginaAtual devolve a fatia da página corrente do resultado filtrado.
func (vm *ViewModel) PaginaAtual() []models.Pedido {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	pagina := vm.clampPagina(vm.pagina)
	inicio := (pagina - 1) * vm.pageSize
	if inicio >= len(vm.filtrados) {
		return nil
	}
	fim := inicio + vm.pageSize
	if fim > len(vm.filtrados) {
		fim = len(vm.filtrados)
	}
	return append([]models.Pedido(nil), vm.filtrados[inicio:fim]...)
}

// totalPaginas e clampPagina assumem que o chamador segura mu.
func (vm *ViewModel) totalPaginas() int {
	paginas := (len(vm.filtrados) + vm.pageSize - 1) / vm.pageSize
	if paginas < 1 {
		paginas = 1
	}
	return paginas
}

func (vm *ViewModel) clampPagina(pagina int) int {
	if pagina < 1 {
		return 1
	}
	if total := vm.totalPaginas(); pagina > total {
		return total
	}
	return pagina
}

// AtualizarStatus delega a mudança ao colaborador e recarrega a lista, no
// contrato mutate-then-reload.
func (vm *ViewModel) AtualizarStatus(ctx context.Context, id int64, status models.StatusPedido) error {
	if !status.Valid() {
		return ErrStatusInvalido
	}
	if err := vm.api.AtualizarStatus(ctx, id, status); err != nil {
		return err
	}
	return vm.Load(ctx)
}

// Cancelar remove o pedido no colaborador com o motivo informado e recarrega.
func (vm *ViewModel) Cancelar(ctx context.Context, id int64, motivo string) error {
	if err := vm.api.CancelarPedido(ctx, id, motivo); err != nil {
		return err
	}
	return vm.Load(ctx)
}
