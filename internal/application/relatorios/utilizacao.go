package relatorios

import (
	"context"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// RelatorioUtilizacao anota cada ativo com o estado resolvido e os totais de
// movimentos da janela filtrada.
//
// O estado resolve-se sempre sobre o histórico completo do recurso; apenas as
// contagens respeitam os filtros de datas. O filtro de estado aplica-se depois
// da resolução.
func (uc *RelatoriosUseCase) RelatorioUtilizacao(ctx context.Context, f dto.FiltrosRelatorio) (*dto.RelatorioUtilizacaoResponse, error) {
	out := &dto.RelatorioUtilizacaoResponse{
		Equipamentos: make([]dto.UtilizacaoRecursoDTO, 0),
		Viaturas:     make([]dto.UtilizacaoRecursoDTO, 0),
	}

	if f.TipoRecurso == "" || f.TipoRecurso == entity.TipoRecursoEquipamento {
		equipamentos, err := uc.equipamentoRepo.ListAtivos()
		if err != nil {
			return nil, err
		}
		recursos := make([]ativoUtilizacao, 0, len(equipamentos))
		for _, e := range equipamentos {
			recursos = append(recursos, ativoUtilizacao{
				id:           e.ID,
				codigo:       e.Codigo,
				descricao:    e.Descricao,
				emManutencao: e.EmManutencao,
			})
		}
		out.Equipamentos, out.Estatisticas.Equipamentos, err =
			uc.utilizacaoPorTipo(entity.TipoRecursoEquipamento, recursos, f)
		if err != nil {
			return nil, err
		}
	}

	if f.TipoRecurso == "" || f.TipoRecurso == entity.TipoRecursoViatura {
		viaturas, err := uc.viaturaRepo.ListAtivos()
		if err != nil {
			return nil, err
		}
		recursos := make([]ativoUtilizacao, 0, len(viaturas))
		for _, v := range viaturas {
			recursos = append(recursos, ativoUtilizacao{
				id:           v.ID,
				codigo:       v.Matricula,
				descricao:    v.Marca + " " + v.Modelo,
				emManutencao: v.EmManutencao,
			})
		}
		out.Viaturas, out.Estatisticas.Viaturas, err =
			uc.utilizacaoPorTipo(entity.TipoRecursoViatura, recursos, f)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ativoUtilizacao campos comuns a equipamentos e viaturas para este relatório.
type ativoUtilizacao struct {
	id           string
	codigo       string
	descricao    string
	emManutencao bool
}

// utilizacaoPorTipo resolve estados e contagens de todos os ativos de um tipo
// com duas consultas agrupadas ao ledger, evitando uma consulta por recurso.
func (uc *RelatoriosUseCase) utilizacaoPorTipo(tipoRecurso string, recursos []ativoUtilizacao, f dto.FiltrosRelatorio) ([]dto.UtilizacaoRecursoDTO, dto.ContagemEstados, error) {
	// Histórico completo do tipo, para resolução de estado.
	historico, err := uc.movRepo.List(repository.FiltroMovimentos{TipoRecurso: tipoRecurso})
	if err != nil {
		return nil, dto.ContagemEstados{}, err
	}
	historicoPorRecurso := agruparPorRecurso(historico)

	// Janela filtrada do mesmo tipo, para contagens.
	filtro, err := filtroLedger(f, tipoRecurso)
	if err != nil {
		return nil, dto.ContagemEstados{}, err
	}
	janela, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, dto.ContagemEstados{}, err
	}
	janelaPorRecurso := agruparPorRecurso(janela)

	lista := make([]dto.UtilizacaoRecursoDTO, 0, len(recursos))
	var contagem dto.ContagemEstados

	for _, r := range recursos {
		estado, obraID := ledger.ResolverEstado(r.emManutencao, historicoPorRecurso[r.id])
		if f.Estado != "" && f.Estado != string(estado) {
			continue
		}
		totais := ledger.ContarMovimentos(janelaPorRecurso[r.id])

		lista = append(lista, dto.UtilizacaoRecursoDTO{
			ID:              r.id,
			Codigo:          r.codigo,
			Descricao:       r.descricao,
			EstadoAtual:     string(estado),
			ObraAtualID:     obraID,
			TotalMovimentos: totais.Total,
			TotalSaidas:     totais.Saidas,
			TotalDevolucoes: totais.Devolucoes,
		})

		contagem.Total++
		switch estado {
		case ledger.EstadoDisponivel:
			contagem.Disponivel++
		case ledger.EstadoEmObra:
			contagem.EmObra++
		case ledger.EstadoManutencao:
			contagem.Manutencao++
		}
	}
	return lista, contagem, nil
}
