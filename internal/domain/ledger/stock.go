package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
)

// ResumoStock totais de stock de um material sobre uma fatia do ledger.
type ResumoStock struct {
	Entradas decimal.Decimal
	Saidas   decimal.Decimal
}

// ConsumoLiquido devolve o resultado líquido da fatia segundo a convenção de
// sinal única do sistema: entradas − saídas (positivo = aumento de stock).
func (r ResumoStock) ConsumoLiquido() decimal.Decimal {
	return ConsumoLiquido(r.Entradas, r.Saidas)
}

// ConsumoLiquido convenção de sinal do consumo líquido: entradas − saídas.
// Ponto único de verdade; nenhum relatório deve rederivar a convenção.
func ConsumoLiquido(entradas, saidas decimal.Decimal) decimal.Decimal {
	return entradas.Sub(saidas)
}

// ResumirStock soma entradas e saídas de stock numa fatia do ledger.
// Movimentos que não sejam entrada/saida_stock são ignorados. Uma quantidade
// ausente ou não positiva num movimento de stock devolve ErrQuantidadeInvalida.
func ResumirStock(movimentos []*entity.Movimento) (ResumoStock, error) {
	resumo := ResumoStock{Entradas: decimal.Zero, Saidas: decimal.Zero}
	for _, m := range movimentos {
		if !m.MovimentoDeStock() {
			continue
		}
		if m.Quantidade == nil || !m.Quantidade.IsPositive() {
			return ResumoStock{}, domain.ErrQuantidadeInvalida
		}
		switch m.TipoMovimento {
		case entity.TipoMovimentoEntrada:
			resumo.Entradas = resumo.Entradas.Add(*m.Quantidade)
		case entity.TipoMovimentoSaidaStock:
			resumo.Saidas = resumo.Saidas.Add(*m.Quantidade)
		}
	}
	return resumo, nil
}

// CalcularStock deriva o stock atual de um material a partir do histórico
// completo: Σ entradas − Σ saídas, partindo de zero. O ledger é a única fonte;
// não existe contador persistido.
func CalcularStock(movimentos []*entity.Movimento) (decimal.Decimal, error) {
	resumo, err := ResumirStock(movimentos)
	if err != nil {
		return decimal.Zero, err
	}
	return resumo.Entradas.Sub(resumo.Saidas), nil
}
