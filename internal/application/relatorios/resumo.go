package relatorios

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// ResumoDashboard compõe a visão geral do armazém: contagens por categoria
// com o estado derivado do ledger, stock total de materiais e os alertas de
// documentos dentro da janela por omissão.
func (uc *RelatoriosUseCase) ResumoDashboard(ctx context.Context) (*dto.ResumoDashboardResponse, error) {
	out := &dto.ResumoDashboardResponse{
		Materiais: dto.ResumoMateriaisDTO{StockTotal: decimal.Zero},
		Alerts:    make([]dto.ResumoAlertaDTO, 0),
	}

	equipamentos, err := uc.equipamentoRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	historico, err := uc.movRepo.List(repository.FiltroMovimentos{TipoRecurso: entity.TipoRecursoEquipamento})
	if err != nil {
		return nil, err
	}
	grupos := agruparPorRecurso(historico)
	for _, e := range equipamentos {
		out.Equipamentos.Total++
		estado, _ := ledger.ResolverEstado(e.EmManutencao, grupos[e.ID])
		switch estado {
		case ledger.EstadoDisponivel:
			out.Equipamentos.Ativos++
		case ledger.EstadoEmObra:
			out.Equipamentos.EmObra++
		case ledger.EstadoManutencao:
			out.Equipamentos.Manutencao++
		}
	}

	viaturas, err := uc.viaturaRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	historico, err = uc.movRepo.List(repository.FiltroMovimentos{TipoRecurso: entity.TipoRecursoViatura})
	if err != nil {
		return nil, err
	}
	grupos = agruparPorRecurso(historico)
	for _, v := range viaturas {
		out.Viaturas.Total++
		estado, _ := ledger.ResolverEstado(v.EmManutencao, grupos[v.ID])
		switch estado {
		case ledger.EstadoDisponivel:
			out.Viaturas.Ativas++
		case ledger.EstadoEmObra:
			out.Viaturas.EmObra++
		case ledger.EstadoManutencao:
			out.Viaturas.Manutencao++
		}
	}

	materiais, err := uc.materialRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	for _, m := range materiais {
		out.Materiais.Total++
		stock, err := uc.stockAtual(m.ID)
		if err != nil {
			return nil, err
		}
		out.Materiais.StockTotal = out.Materiais.StockTotal.Add(stock)
	}

	obras, err := uc.obraRepo.ListTodas()
	if err != nil {
		return nil, err
	}
	for _, o := range obras {
		if !o.Ativo {
			continue
		}
		out.Obras.Total++
		if o.Estado == entity.ObraAtiva {
			out.Obras.Ativas++
		}
	}

	alertas, err := uc.RelatorioAlertas(ctx, dto.FiltrosRelatorio{})
	if err != nil {
		return nil, err
	}
	out.Alerts = resumirAlertas(alertas.Alertas)

	return out, nil
}

// VerificarAlertas devolve os alertas correntes em formato compacto.
func (uc *RelatoriosUseCase) VerificarAlertas(ctx context.Context) (*dto.VerificacaoAlertasResponse, error) {
	rel, err := uc.RelatorioAlertas(ctx, dto.FiltrosRelatorio{})
	if err != nil {
		return nil, err
	}
	alerts := resumirAlertas(rel.Alertas)
	return &dto.VerificacaoAlertasResponse{Alerts: alerts, Total: len(alerts)}, nil
}

func resumirAlertas(alertas []dto.AlertaDTO) []dto.ResumoAlertaDTO {
	out := make([]dto.ResumoAlertaDTO, 0, len(alertas))
	for _, a := range alertas {
		out = append(out, dto.ResumoAlertaDTO{
			Item:    a.Identificador,
			Message: mensagemAlerta(a),
			Urgent:  a.Urgente || a.Expirado,
		})
	}
	return out
}

func mensagemAlerta(a dto.AlertaDTO) string {
	nome := nomeTipoAlerta(a.TipoAlerta)
	switch {
	case a.Expirado:
		return fmt.Sprintf("%s expirou há %d dias", nome, -a.DiasRestantes)
	case a.DiasRestantes == 0:
		return nome + " expira hoje"
	default:
		return fmt.Sprintf("%s expira em %d dias", nome, a.DiasRestantes)
	}
}

func nomeTipoAlerta(tipo string) string {
	switch tipo {
	case ledger.TipoAlertaCertificado:
		return "Certificado"
	case ledger.TipoAlertaInspecao:
		return "Inspeção"
	case ledger.TipoAlertaSeguro:
		return "Seguro"
	}
	return tipo
}
