package relatorios

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/movimentos"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// RelatorioStock produz o relatório de movimentos de stock de materiais.
// Os totais por material respeitam a janela filtrada; o stock atual de cada
// material deriva sempre do histórico completo, independentemente dos filtros.
func (uc *RelatoriosUseCase) RelatorioStock(ctx context.Context, f dto.FiltrosRelatorio) (*dto.RelatorioStockResponse, error) {
	filtro, err := filtroLedger(f, entity.TipoRecursoMaterial)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, err
	}

	materiais, err := uc.materialRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	porID := make(map[string]*entity.Material, len(materiais))
	for _, m := range materiais {
		porID[m.ID] = m
	}
	obras, err := uc.mapaObras()
	if err != nil {
		return nil, err
	}

	out := &dto.RelatorioStockResponse{
		Movimentos:      make([]dto.RelatorioMovimentoDTO, 0, len(movs)),
		MateriaisResumo: make([]dto.MaterialResumoDTO, 0),
	}
	out.Estatisticas.TotalEntradas = decimal.Zero
	out.Estatisticas.TotalSaidas = decimal.Zero

	for _, m := range movs {
		enriquecido := dto.RelatorioMovimentoDTO{
			MovimentoResponse: movimentos.ToMovimentoResponse(m),
		}
		if mat, ok := porID[m.RecursoID]; ok {
			enriquecido.RecursoCodigo = mat.Codigo
			enriquecido.RecursoDescricao = mat.Descricao
		}
		if m.ObraID != nil {
			enriquecido.ObraNome = obras[*m.ObraID]
		}
		out.Movimentos = append(out.Movimentos, enriquecido)
	}

	grupos := agruparPorRecurso(movs)
	out.Estatisticas.TotalMovimentos = len(movs)
	out.Estatisticas.MateriaisDiferentes = len(grupos)

	for materialID, fatia := range grupos {
		resumo, err := ledger.ResumirStock(fatia)
		if err != nil {
			return nil, err
		}
		out.Estatisticas.TotalEntradas = out.Estatisticas.TotalEntradas.Add(resumo.Entradas)
		out.Estatisticas.TotalSaidas = out.Estatisticas.TotalSaidas.Add(resumo.Saidas)

		linha := dto.MaterialResumoDTO{
			MaterialID:     materialID,
			Entradas:       resumo.Entradas,
			Saidas:         resumo.Saidas,
			ConsumoLiquido: resumo.ConsumoLiquido(),
		}
		if mat, ok := porID[materialID]; ok {
			linha.Codigo = mat.Codigo
			linha.Descricao = mat.Descricao
			linha.Unidade = mat.Unidade
			linha.StockMinimo = mat.StockMinimo

			stockAtual, err := uc.stockAtual(materialID)
			if err != nil {
				return nil, err
			}
			linha.StockAtual = stockAtual
			linha.AbaixoMinimo = stockAtual.LessThan(mat.StockMinimo)
		} else {
			linha.StockMinimo = decimal.Zero
			linha.StockAtual = decimal.Zero
		}
		out.MateriaisResumo = append(out.MateriaisResumo, linha)
	}
	sort.Slice(out.MateriaisResumo, func(i, j int) bool {
		return out.MateriaisResumo[i].Codigo < out.MateriaisResumo[j].Codigo
	})

	out.Estatisticas.ConsumoLiquido = ledger.ConsumoLiquido(
		out.Estatisticas.TotalEntradas, out.Estatisticas.TotalSaidas)
	return out, nil
}

// stockAtual deriva o stock corrente de um material do histórico completo.
func (uc *RelatoriosUseCase) stockAtual(materialID string) (decimal.Decimal, error) {
	historico, err := uc.movRepo.List(repository.FiltroMovimentos{
		TipoRecurso: entity.TipoRecursoMaterial,
		RecursoID:   materialID,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.CalcularStock(historico)
}
