package cart

import "github.com/apires/pizzaria-backoffice/internal/models"

// ToPayloadItem converts a committed line into the wire item. Only pizza ids
// travel: beverages stay local to the cart, matching the backend contract
// (produto + quantidade + tamanhoPizza + bordaRecheada).
func ToPayloadItem(line OrderLine) models.PayloadItem {
	ids := make([]int64, 0, len(line.Pizzas))
	for _, pizza := range line.Pizzas {
		ids = append(ids, pizza.ID)
	}

	return models.PayloadItem{
		Produto:       ids,
		Quantidade:    1,
		TamanhoPizza:  line.Tamanho,
		BordaRecheada: line.Borda,
	}
}

// ToSubmissionPayload monta o corpo de POST /api/pedidos. O clienteId é
// preenchido por uma etapa posterior do fluxo e pode ser nulo aqui.
func ToSubmissionPayload(c *Cart, clienteID *int64) models.SubmissionPayload {
	return models.SubmissionPayload{
		ClienteID: clienteID,
		Itens:     c.Itens(),
	}
}
