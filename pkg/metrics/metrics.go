package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores Prometheus da aplicação.
type Metrics struct {
	AcoesContrato      *prometheus.CounterVec
	MovimentosMaterial prometheus.Counter
	MensagensEnviadas  prometheus.Counter
	Erros              *prometheus.CounterVec
}

// New registra e devolve as métricas com o namespace informado.
func New(namespace string) *Metrics {
	return &Metrics{
		AcoesContrato: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acoes_contrato_total",
			Help:      "Total de ações de ciclo de vida aplicadas a contratos",
		}, []string{"acao"}),
		MovimentosMaterial: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movimentos_material_total",
			Help:      "Total de movimentações de materiais registradas",
		}),
		MensagensEnviadas: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mensagens_whatsapp_total",
			Help:      "Total de mensagens WhatsApp enviadas",
		}),
		Erros: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "erros_total",
			Help:      "Total de erros por operação",
		}, []string{"operacao"}),
	}
}
