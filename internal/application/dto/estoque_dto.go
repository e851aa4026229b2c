package dto

// MovimentarMaterialRequest body para POST /api/materiais/:id/movimentar.
// Tipo ∈ {empresa, veiculo, contrato}; veiculo_id ou contrato_id acompanha o
// tipo correspondente, nunca ambos.
type MovimentarMaterialRequest struct {
	Tipo       string `json:"tipo"`
	VeiculoID  string `json:"veiculo_id,omitempty"`
	ContratoID string `json:"contrato_id,omitempty"`
}

// LocalizacaoResponse posição corrente de um material.
type LocalizacaoResponse struct {
	MaterialID   string  `json:"material_id"`
	Tipo         string  `json:"tipo"`
	VeiculoID    *string `json:"veiculo_id,omitempty"`
	ContratoID   *string `json:"contrato_id,omitempty"`
	AtualizadoEm string  `json:"atualizado_em"`
}
