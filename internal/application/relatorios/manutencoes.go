package relatorios

import (
	"context"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
)

// RelatorioManutencoes lista os equipamentos e viaturas ativos com o flag de
// manutenção levantado. O filtro de tipo esvazia a lista da outra categoria
// sem a omitir da resposta.
func (uc *RelatoriosUseCase) RelatorioManutencoes(ctx context.Context, f dto.FiltrosRelatorio) (*dto.RelatorioManutencoesResponse, error) {
	out := &dto.RelatorioManutencoesResponse{
		Equipamentos: make([]dto.EquipamentoResponse, 0),
		Viaturas:     make([]dto.ViaturaResponse, 0),
	}

	if f.TipoRecurso == "" || f.TipoRecurso == entity.TipoRecursoEquipamento {
		equipamentos, err := uc.equipamentoRepo.ListAtivos()
		if err != nil {
			return nil, err
		}
		for _, e := range equipamentos {
			if e.EmManutencao {
				out.Equipamentos = append(out.Equipamentos, usecase.ToEquipamentoResponse(e))
			}
		}
	}

	if f.TipoRecurso == "" || f.TipoRecurso == entity.TipoRecursoViatura {
		viaturas, err := uc.viaturaRepo.ListAtivos()
		if err != nil {
			return nil, err
		}
		for _, v := range viaturas {
			if v.EmManutencao {
				out.Viaturas = append(out.Viaturas, usecase.ToViaturaResponse(v))
			}
		}
	}

	out.Estatisticas.TotalEquipamentos = len(out.Equipamentos)
	out.Estatisticas.TotalViaturas = len(out.Viaturas)
	out.Estatisticas.TotalGeral = out.Estatisticas.TotalEquipamentos + out.Estatisticas.TotalViaturas
	return out, nil
}
