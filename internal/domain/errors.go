package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound               = errors.New("recurso não encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInvalidQuantity        = errors.New("quantidade inválida")
	ErrInsufficientStock      = errors.New("estoque insuficiente")
	ErrWouldUnderflow         = errors.New("estorno deixaria o estoque negativo")
	ErrConcurrentModification = errors.New("modificação concorrente do estoque")
	ErrImportParse            = errors.New("XML da nota fiscal malformado")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("não autorizado")
	ErrForbidden              = errors.New("acesso negado")
)
