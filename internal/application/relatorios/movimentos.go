package relatorios

import (
	"context"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/movimentos"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
)

// RelatorioMovimentos produz o relatório de movimentos de ativos (equipamentos
// e viaturas) sob os filtros dados, com os movimentos enriquecidos com os
// dados de apresentação do recurso e da obra.
func (uc *RelatoriosUseCase) RelatorioMovimentos(ctx context.Context, f dto.FiltrosRelatorio) (*dto.RelatorioMovimentosResponse, error) {
	filtro, err := filtroLedger(f, f.TipoRecurso)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, err
	}

	info, err := uc.mapaAtivos()
	if err != nil {
		return nil, err
	}
	obras, err := uc.mapaObras()
	if err != nil {
		return nil, err
	}

	out := &dto.RelatorioMovimentosResponse{
		Movimentos: make([]dto.RelatorioMovimentoDTO, 0, len(movs)),
	}
	equipamentosVistos := make(map[string]struct{})
	viaturasVistas := make(map[string]struct{})

	for _, m := range movs {
		if !m.MovimentoDeAtivo() {
			continue
		}
		out.Movimentos = append(out.Movimentos, uc.enriquecer(m, info, obras))

		out.Estatisticas.TotalMovimentos++
		switch m.TipoMovimento {
		case entity.TipoMovimentoSaida:
			out.Estatisticas.TotalSaidas++
		case entity.TipoMovimentoDevolucao:
			out.Estatisticas.TotalDevolucoes++
		}
		switch m.TipoRecurso {
		case entity.TipoRecursoEquipamento:
			equipamentosVistos[m.RecursoID] = struct{}{}
		case entity.TipoRecursoViatura:
			viaturasVistas[m.RecursoID] = struct{}{}
		}
	}
	out.Estatisticas.EquipamentosMovidos = len(equipamentosVistos)
	out.Estatisticas.ViaturasMovidas = len(viaturasVistas)
	return out, nil
}

// enriquecer anexa código, descrição e nome da obra a um movimento. Recursos
// ou obras entretanto removidos ficam com os campos de apresentação vazios.
func (uc *RelatoriosUseCase) enriquecer(m *entity.Movimento, info map[string]infoRecurso, obras map[string]string) dto.RelatorioMovimentoDTO {
	enriquecido := dto.RelatorioMovimentoDTO{
		MovimentoResponse: movimentos.ToMovimentoResponse(m),
	}
	if r, ok := info[m.RecursoID]; ok {
		enriquecido.RecursoCodigo = r.codigo
		enriquecido.RecursoDescricao = r.descricao
	}
	if m.ObraID != nil {
		enriquecido.ObraNome = obras[*m.ObraID]
	}
	return enriquecido
}
