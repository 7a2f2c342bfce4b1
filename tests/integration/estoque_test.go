package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apires/pizzaria-backoffice/internal/api"
	"github.com/apires/pizzaria-backoffice/internal/inventory"
	"github.com/apires/pizzaria-backoffice/internal/models"
)

func TestEstoqueCicloCompleto(t *testing.T) {
	backend, client, _ := setupBackend(t)
	vm := inventory.NewViewModel(client, 2, "id,DESC", 10)
	ctx := context.Background()

	// Primeira página: 5 produtos em páginas de 2, do mais novo para o mais
	// antigo.
	require.NoError(t, vm.Load(ctx, 0, 2, "id,DESC"))

	pag := vm.Paginacao()
	assert.Equal(t, 0, pag.Page)
	assert.Equal(t, 3, pag.TotalPages)
	assert.Equal(t, int64(5), pag.TotalElements)

	produtos := vm.Produtos()
	require.Len(t, produtos, 2)
	assert.Equal(t, "Batata Frita", produtos[0].Nome)
	assert.Equal(t, "Coca-Cola", produtos[1].Nome)

	// Cadastro válido volta para a primeira página, onde o recém-criado
	// aparece no topo.
	criado, err := vm.Cadastrar(ctx, inventory.Formulario{
		Nome:         "Margherita",
		Preco:        "39.90",
		Quantidade:   "8",
		Ingredientes: "Molho, muçarela e manjericão",
		Categoria:    "PIZZA",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), criado.ID)

	produtos = vm.Produtos()
	require.NotEmpty(t, produtos)
	assert.Equal(t, "Margherita", produtos[0].Nome)
	assert.Equal(t, 0, vm.Paginacao().Page)

	// Detalhe vem desembrulhado do envelope {produto}.
	detalhe, err := vm.BuscarDetalhe(ctx, criado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", detalhe.Nome)
	assert.True(t, detalhe.Preco.Equal(criado.Preco))

	// 6 produtos em páginas de 2: a página 2 tem os dois mais antigos.
	require.NoError(t, vm.MudarPagina(ctx, 2))
	produtos = vm.Produtos()
	require.Len(t, produtos, 2)
	assert.Equal(t, int64(2), produtos[0].ID)
	assert.Equal(t, int64(1), produtos[1].ID)

	// Remover os dois esvazia a página e o view model recua para a anterior.
	require.NoError(t, vm.Deletar(ctx, 2))
	require.NoError(t, vm.Deletar(ctx, 1))

	assert.Equal(t, 1, vm.Paginacao().Page)
	assert.Len(t, backend.produtos, 4)
}

func TestEstoqueValidacaoNaoChegaAoServidor(t *testing.T) {
	backend, client, _ := setupBackend(t)
	vm := inventory.NewViewModel(client, 10, "id,DESC", 10)

	_, err := vm.Cadastrar(context.Background(), inventory.Formulario{
		Nome:      "Pi",
		Preco:     "0",
		Categoria: "SOBREMESA",
	})

	var erros inventory.ErrosValidacao
	require.ErrorAs(t, err, &erros)
	assert.Len(t, backend.produtos, 5)
}

func TestEstoqueMetricasDaPaginaCarregada(t *testing.T) {
	_, client, _ := setupBackend(t)
	vm := inventory.NewViewModel(client, 10, "id,ASC", 10)

	require.NoError(t, vm.Load(context.Background(), 0, 10, "id,ASC"))

	m := vm.Metricas()
	assert.Equal(t, 5, m.Total)
	// Quatro Queijos (5) e Romeu e Julieta (8) estão abaixo do limite 10.
	assert.Equal(t, 2, m.BaixoEstoque)
	assert.Equal(t, 2, m.Categorias[models.CategoriaPizza])
	assert.Equal(t, 1, m.Categorias[models.CategoriaBebidas])
}

func TestEstoqueTokenInvalidoDerrubaSessao(t *testing.T) {
	_, client, sess := setupBackend(t)
	sess.SetToken("token-errado")

	vm := inventory.NewViewModel(client, 10, "id,DESC", 10)
	err := vm.Load(context.Background(), 0, 10, "id,DESC")

	assert.ErrorIs(t, err, api.ErrCredencialInvalida)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, vm.Produtos())
}
