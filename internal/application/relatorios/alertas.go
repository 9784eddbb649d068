package relatorios

import (
	"context"
	"sort"
	"time"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
)

// RelatorioAlertas lista os documentos de recursos ativos que expiram dentro
// da janela de antecedência (ou já expiraram). Equipamentos contribuem com o
// certificado; viaturas com a inspeção e o seguro, cada documento como alerta
// independente. A lista vem ordenada por dias restantes ascendente, ou seja,
// os já expirados primeiro.
func (uc *RelatoriosUseCase) RelatorioAlertas(ctx context.Context, f dto.FiltrosRelatorio) (*dto.RelatorioAlertasResponse, error) {
	janela := uc.alertas.DiasAntecedencia
	if f.DiasAntecedencia > 0 {
		janela = f.DiasAntecedencia
	}
	hoje := uc.Agora()

	out := &dto.RelatorioAlertasResponse{
		Alertas: make([]dto.AlertaDTO, 0),
	}

	if f.TipoRecurso == "" || f.TipoRecurso == entity.TipoRecursoEquipamento {
		equipamentos, err := uc.equipamentoRepo.ListAtivos()
		if err != nil {
			return nil, err
		}
		for _, e := range equipamentos {
			uc.acumularAlerta(out, hoje, janela, entity.TipoRecursoEquipamento,
				e.ID, e.Codigo, ledger.TipoAlertaCertificado, e.ValidadeCertificado)
		}
	}

	if f.TipoRecurso == "" || f.TipoRecurso == entity.TipoRecursoViatura {
		viaturas, err := uc.viaturaRepo.ListAtivos()
		if err != nil {
			return nil, err
		}
		for _, v := range viaturas {
			uc.acumularAlerta(out, hoje, janela, entity.TipoRecursoViatura,
				v.ID, v.Matricula, ledger.TipoAlertaInspecao, v.ValidadeInspecao)
			uc.acumularAlerta(out, hoje, janela, entity.TipoRecursoViatura,
				v.ID, v.Matricula, ledger.TipoAlertaSeguro, v.ValidadeSeguro)
		}
	}

	sort.SliceStable(out.Alertas, func(i, j int) bool {
		return out.Alertas[i].DiasRestantes < out.Alertas[j].DiasRestantes
	})
	return out, nil
}

// acumularAlerta classifica um documento e junta-o ao relatório se cair dentro
// da janela. Documentos sem data de validade não geram alerta.
func (uc *RelatoriosUseCase) acumularAlerta(out *dto.RelatorioAlertasResponse, hoje time.Time, janela int, tipoRecurso, recursoID, identificador, tipoAlerta string, validade *time.Time) {
	if validade == nil {
		return
	}
	dias := ledger.DiasRestantes(hoje, *validade)
	if dias > janela {
		return
	}
	expirado, urgente := ledger.ClassificarAlerta(dias, uc.alertas.LimiarUrgente)

	out.Alertas = append(out.Alertas, dto.AlertaDTO{
		TipoRecurso:   tipoRecurso,
		RecursoID:     recursoID,
		Identificador: identificador,
		TipoAlerta:    tipoAlerta,
		DataExpiracao: *validade,
		DiasRestantes: dias,
		Urgente:       urgente,
		Expirado:      expirado,
	})

	out.Estatisticas.TotalAlertas++
	switch {
	case expirado:
		out.Estatisticas.Expirados++
	case urgente:
		out.Estatisticas.Urgentes++
	default:
		out.Estatisticas.Proximos++
	}
}
