package entity

import "time"

// Tipos de destino de uma movimentação de material.
const (
	LocalizacaoEmpresa  = "empresa"
	LocalizacaoVeiculo  = "veiculo"
	LocalizacaoContrato = "contrato"
)

// Localizacao é um fato append-only: "o material X estava em {empresa|veiculo|contrato}
// no instante T". Registros nunca são atualizados nem removidos.
// Para tipo veiculo/contrato exatamente uma das referências é preenchida;
// para empresa, nenhuma.
type Localizacao struct {
	ID         string
	EmpresaID  string
	MaterialID string
	Tipo       string
	VeiculoID  *string
	ContratoID *string
	CreatedAt  time.Time
	CreatedBy  string // UserID
}

// LocalizacaoAtual é a projeção materializada da posição corrente de um
// material: uma linha por material, atualizada na mesma transação de cada
// append no histórico. Leitura O(1), sem varrer o ledger.
type LocalizacaoAtual struct {
	MaterialID   string
	EmpresaID    string
	Tipo         string
	VeiculoID    *string
	ContratoID   *string
	AtualizadoEm time.Time
}
