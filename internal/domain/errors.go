package domain

import "errors"

// Erros de domínio (sem dependências externas). Conjunto fechado: handlers e
// chamadores distinguem falha de validação, recurso ausente, conflito e
// indisponibilidade de dependência externa (esta última é a única retryable).
var (
	ErrNaoEncontrado       = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado   = errors.New("o email já está cadastrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrNaoAutorizado       = errors.New("não autorizado")
	ErrAcessoNegado        = errors.New("acesso negado")
	ErrConflito            = errors.New("conflito com o estado atual")
	ErrDependenciaExterna  = errors.New("dependência externa indisponível")
)
