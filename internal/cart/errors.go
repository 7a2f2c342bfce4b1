package cart

import "errors"

var (
	// ErrInvalidSelection rejects a product that cannot fill the requested
	// slot: a third pizza half, a non-pizza product as a half, or a
	// non-beverage product as a beverage.
	ErrInvalidSelection = errors.New("seleção inválida")

	// ErrCannotCommit rejects Commit while size, crust or the first half is
	// still missing. Transient state is left untouched.
	ErrCannotCommit = errors.New("pedido incompleto: tamanho, borda e ao menos uma pizza são obrigatórios")

	// ErrIndexOutOfRange is a programming error on cart or builder mutation;
	// correct UI wiring never produces it.
	ErrIndexOutOfRange = errors.New("índice fora do intervalo")
)
