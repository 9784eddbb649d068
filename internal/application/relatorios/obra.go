package relatorios

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// RelatorioObra produz o relatório detalhado de uma obra: recursos atualmente
// afetos, consumo de materiais imputado e estatísticas dos movimentos da
// janela filtrada. Obra desconhecida devolve ErrNotFound.
func (uc *RelatoriosUseCase) RelatorioObra(ctx context.Context, obraID string, f dto.FiltrosRelatorio) (*dto.RelatorioObraResponse, error) {
	obra, err := uc.obraRepo.GetByID(obraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, domain.ErrNotFound
	}

	f.ObraID = obraID
	filtro, err := filtroLedger(f, "")
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, err
	}

	out := &dto.RelatorioObraResponse{
		Obra: usecase.ToObraResponse(obra),
		RecursosAtuais: dto.RecursosAtuaisDTO{
			Equipamentos: make([]dto.RecursoAtualDTO, 0),
			Viaturas:     make([]dto.RecursoAtualDTO, 0),
		},
		ConsumoMateriais: make([]dto.MaterialConsumoDTO, 0),
	}

	consumo := make(map[string]decimal.Decimal)
	for _, m := range movs {
		if m.MovimentoDeAtivo() {
			out.Estatisticas.MovimentosAtivos++
			switch m.TipoMovimento {
			case entity.TipoMovimentoSaida:
				out.Estatisticas.TotalSaidasAtivos++
			case entity.TipoMovimentoDevolucao:
				out.Estatisticas.TotalDevolucoes++
			}
			continue
		}
		if m.MovimentoDeStock() {
			out.Estatisticas.MovimentosStock++
			if m.TipoMovimento == entity.TipoMovimentoSaidaStock && m.Quantidade != nil {
				consumo[m.RecursoID] = consumo[m.RecursoID].Add(*m.Quantidade)
			}
		}
	}

	if err := uc.recursosAtuais(obraID, out); err != nil {
		return nil, err
	}
	out.Estatisticas.EquipamentosAtuais = len(out.RecursosAtuais.Equipamentos)
	out.Estatisticas.ViaturasAtuais = len(out.RecursosAtuais.Viaturas)

	for materialID, quantidade := range consumo {
		linha := dto.MaterialConsumoDTO{MaterialID: materialID, Quantidade: quantidade}
		mat, err := uc.materialRepo.GetByID(materialID)
		if err != nil {
			return nil, err
		}
		if mat != nil {
			linha.Codigo = mat.Codigo
			linha.Descricao = mat.Descricao
			linha.Unidade = mat.Unidade
		}
		out.ConsumoMateriais = append(out.ConsumoMateriais, linha)
	}
	sort.Slice(out.ConsumoMateriais, func(i, j int) bool {
		return out.ConsumoMateriais[i].Codigo < out.ConsumoMateriais[j].Codigo
	})

	return out, nil
}

// recursosAtuais determina quais ativos têm neste momento uma afetação aberta
// a esta obra. O estado resolve-se sempre sobre o histórico completo de cada
// recurso, não sobre a janela filtrada: um filtro de datas não deve fazer um
// equipamento "regressar" ao armazém.
func (uc *RelatoriosUseCase) recursosAtuais(obraID string, out *dto.RelatorioObraResponse) error {
	saidas, err := uc.movRepo.List(repository.FiltroMovimentos{
		ObraID:        obraID,
		TipoMovimento: entity.TipoMovimentoSaida,
	})
	if err != nil {
		return err
	}

	vistos := make(map[string]struct{})
	for _, m := range saidas {
		if !m.MovimentoDeAtivo() {
			continue
		}
		if _, ok := vistos[m.RecursoID]; ok {
			continue
		}
		vistos[m.RecursoID] = struct{}{}

		historico, err := uc.movRepo.List(repository.FiltroMovimentos{
			TipoRecurso: m.TipoRecurso,
			RecursoID:   m.RecursoID,
		})
		if err != nil {
			return err
		}

		switch m.TipoRecurso {
		case entity.TipoRecursoEquipamento:
			e, err := uc.equipamentoRepo.GetByID(m.RecursoID)
			if err != nil {
				return err
			}
			if e == nil {
				continue
			}
			estado, atual := ledger.ResolverEstado(e.EmManutencao, historico)
			if estado == ledger.EstadoEmObra && atual != nil && *atual == obraID {
				out.RecursosAtuais.Equipamentos = append(out.RecursosAtuais.Equipamentos, dto.RecursoAtualDTO{
					ID:        e.ID,
					Codigo:    e.Codigo,
					Descricao: e.Descricao,
				})
			}
		case entity.TipoRecursoViatura:
			v, err := uc.viaturaRepo.GetByID(m.RecursoID)
			if err != nil {
				return err
			}
			if v == nil {
				continue
			}
			estado, atual := ledger.ResolverEstado(v.EmManutencao, historico)
			if estado == ledger.EstadoEmObra && atual != nil && *atual == obraID {
				out.RecursosAtuais.Viaturas = append(out.RecursosAtuais.Viaturas, dto.RecursoAtualDTO{
					ID:        v.ID,
					Codigo:    v.Matricula,
					Descricao: v.Marca + " " + v.Modelo,
				})
			}
		}
	}
	return nil
}
