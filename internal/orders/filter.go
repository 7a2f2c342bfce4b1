package orders

import (
	"strconv"
	"strings"

	"github.com/apires/pizzaria-backoffice/internal/models"
)

type Campo string

const (
	CampoCodigo  Campo = "codigo"
	CampoCliente Campo = "cliente"
	CampoStatus  Campo = "status"
	CampoEntrega Campo = "entrega"
	CampoData    Campo = "data"
)

type Busca struct {
	Termo  string
	Campos []Campo
}

// Aliases digitáveis para os status; a ordem decide o empate quando o termo
// aparece em mais de uma chave (ex.: "re" em recebido e preparo).
var statusAliases = []struct {
	chave  string
	status models.StatusPedido
}{
	{"recebido", models.StatusRecebido},
	{"preparo", models.StatusEmPreparo},
	{"pronto", models.StatusPronto},
	{"entregue", models.StatusEntregue},
}

// Filtrar aplica a busca sobre a lista já carregada. O resultado é sempre uma
// fatia nova, nunca um alias da entrada. Termo em branco devolve tudo; sem
// campos, o termo é comparado contra código, cliente, status e tipo de entrega
// (OU entre eles); com campos, basta um campo solicitado casar.
func Filtrar(pedidos []models.Pedido, busca Busca) []models.Pedido {
	termo := strings.ToLower(strings.TrimSpace(busca.Termo))
	if termo == "" {
		return append([]models.Pedido(nil), pedidos...)
	}

	var out []models.Pedido
	for _, pedido := range pedidos {
		if combina(pedido, termo, busca.Campos) {
			out = append(out, pedido)
		}
	}
	return out
}

func combina(pedido models.Pedido, termo string, campos []Campo) bool {
	if len(campos) == 0 {
		return combinaCodigo(pedido, termo) ||
			combinaCliente(pedido, termo) ||
			strings.Contains(strings.ToLower(string(pedido.Status)), termo) ||
			combinaEntrega(pedido, termo)
	}

	for _, campo := range campos {
		switch campo {
		case CampoCodigo:
			if combinaCodigo(pedido, termo) {
				return true
			}
		case CampoCliente:
			if combinaCliente(pedido, termo) {
				return true
			}
		case CampoStatus:
			if combinaStatus(pedido, termo) {
				return true
			}
		case CampoEntrega:
			if combinaEntrega(pedido, termo) {
				return true
			}
		case CampoData:
			// Busca por data nunca foi implementada na tela original;
			// mantida como filtro que não casa, não como erro.
		}
	}
	return false
}

func combinaCodigo(pedido models.Pedido, termo string) bool {
	return strings.Contains(strconv.FormatInt(pedido.ID, 10), termo)
}

func combinaCliente(pedido models.Pedido, termo string) bool {
	return strings.Contains(strings.ToLower(pedido.NomeCliente), termo)
}

func combinaEntrega(pedido models.Pedido, termo string) bool {
	return strings.Contains(strings.ToLower(pedido.TipoEntrega), termo)
}

// combinaStatus tenta primeiro os aliases digitáveis: se o termo é substring
// de uma chave conhecida, o status precisa casar exatamente com o valor
// mapeado. Sem alias, cai para substring sobre o status bruto.
func combinaStatus(pedido models.Pedido, termo string) bool {
	for _, alias := range statusAliases {
		if strings.Contains(alias.chave, termo) {
			return pedido.Status == alias.status
		}
	}
	return strings.Contains(strings.ToLower(string(pedido.Status)), termo)
}
