package inventory

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/apires/pizzaria-backoffice/internal/api"
	"github.com/apires/pizzaria-backoffice/internal/models"
)

// Formulario carrega os campos do cadastro como digitados, antes de qualquer
// conversão, para que a validação reporte exatamente o que o usuário vê.
type Formulario struct {
	Nome         string `json:"nome"`
	Preco        string `json:"preco"`
	Quantidade   string `json:"quantidade"`
	Ingredientes string `json:"ingredientes"`
	Categoria    string `json:"categoriaProduto"`
}

// ErrosValidacao mapeia campo para mensagem. Cada campo valida sozinho (blur)
// e o conjunto valida no submit.
type ErrosValidacao map[string]string

func (e ErrosValidacao) Error() string {
	return "formulário de produto inválido"
}

const (
	CampoNome         = "nome"
	CampoPreco        = "preco"
	CampoQuantidade   = "quantidade"
	CampoIngredientes = "ingredientes"
	CampoCategoria    = "categoriaProduto"
)

// ValidarCampo devolve a mensagem de erro do campo, ou vazio quando válido.
func (f Formulario) ValidarCampo(campo string) string {
	switch campo {
	case CampoNome:
		nome := strings.TrimSpace(f.Nome)
		if nome == "" {
			return "Nome é obrigatório"
		}
		if utf8.RuneCountInString(nome) < 3 {
			return "Nome deve ter no mínimo 3 caracteres"
		}
	case CampoPreco:
		if f.Preco == "" {
			return "Preço é obrigatório"
		}
		preco, err := decimal.NewFromString(f.Preco)
		if err != nil || preco.LessThanOrEqual(decimal.Zero) {
			return "Preço deve ser maior que zero"
		}
	case CampoQuantidade:
		if f.Quantidade == "" {
			return "Quantidade é obrigatória"
		}
		qtd, err := strconv.Atoi(f.Quantidade)
		if err != nil || qtd < 0 {
			return "Quantidade deve ser um número positivo"
		}
	case CampoIngredientes:
		ingredientes := strings.TrimSpace(f.Ingredientes)
		if ingredientes == "" {
			return "Ingredientes são obrigatórios"
		}
		if utf8.RuneCountInString(ingredientes) < 5 {
			return "Ingredientes devem ter no mínimo 5 caracteres"
		}
	case CampoCategoria:
		if f.Categoria == "" {
			return "Categoria é obrigatória"
		}
		if !models.Categoria(f.Categoria).Valid() {
			return "Categoria inválida"
		}
	}
	return ""
}

// Validar roda todos os campos; o submit fica bloqueado enquanto o resultado
// não for vazio.
func (f Formulario) Validar() ErrosValidacao {
	erros := ErrosValidacao{}
	for _, campo := range []string{CampoNome, CampoPreco, CampoQuantidade, CampoIngredientes, CampoCategoria} {
		if msg := f.ValidarCampo(campo); msg != "" {
			erros[campo] = msg
		}
	}
	if len(erros) == 0 {
		return nil
	}
	return erros
}

// ParaCadastro converte o formulário já validado no corpo da requisição.
func (f Formulario) ParaCadastro() (api.CadastroProduto, error) {
	if erros := f.Validar(); erros != nil {
		return api.CadastroProduto{}, erros
	}

	preco, err := decimal.NewFromString(f.Preco)
	if err != nil {
		return api.CadastroProduto{}, err
	}
	quantidade, err := strconv.Atoi(f.Quantidade)
	if err != nil {
		return api.CadastroProduto{}, err
	}

	return api.CadastroProduto{
		Nome:         strings.TrimSpace(f.Nome),
		Preco:        preco,
		Quantidade:   quantidade,
		Ingredientes: strings.TrimSpace(f.Ingredientes),
		Categoria:    models.Categoria(f.Categoria),
	}, nil
}
