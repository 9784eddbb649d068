// Package relatorios contém os casos de uso read-only que compõem o registo
// de recursos com o ledger de movimentos para produzir os seis relatórios
// operacionais. Nenhum relatório lê estado derivado persistido: estados e
// stocks são recalculados a cada pedido a partir da fatia ordenada do ledger.
package relatorios

import (
	"time"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/application/movimentos"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/ledger"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// AlertasConfig valores por omissão dos alertas de documentos.
type AlertasConfig struct {
	DiasAntecedencia int
	LimiarUrgente    int
}

// RelatoriosUseCase compõe registo + ledger + derivação sob filtros de query.
//
// Agora é injetável para que os testes de alertas fixem a data de referência;
// em produção fica time.Now.
type RelatoriosUseCase struct {
	movRepo         repository.MovimentoRepository
	equipamentoRepo repository.EquipamentoRepository
	viaturaRepo     repository.ViaturaRepository
	materialRepo    repository.MaterialRepository
	obraRepo        repository.ObraRepository
	alertas         AlertasConfig

	Agora func() time.Time
}

// NewRelatoriosUseCase constrói o caso de uso.
func NewRelatoriosUseCase(
	movRepo repository.MovimentoRepository,
	equipamentoRepo repository.EquipamentoRepository,
	viaturaRepo repository.ViaturaRepository,
	materialRepo repository.MaterialRepository,
	obraRepo repository.ObraRepository,
	alertas AlertasConfig,
) *RelatoriosUseCase {
	if alertas.DiasAntecedencia <= 0 {
		alertas.DiasAntecedencia = ledger.DiasAntecedenciaPadrao
	}
	if alertas.LimiarUrgente <= 0 {
		alertas.LimiarUrgente = ledger.LimiarUrgentePadrao
	}
	return &RelatoriosUseCase{
		movRepo:         movRepo,
		equipamentoRepo: equipamentoRepo,
		viaturaRepo:     viaturaRepo,
		materialRepo:    materialRepo,
		obraRepo:        obraRepo,
		alertas:         alertas,
		Agora:           time.Now,
	}
}

// filtroLedger traduz os filtros de query num filtro do ledger.
// Mes sem Ano é entrada inválida; filtros ausentes significam "sem restrição".
func filtroLedger(f dto.FiltrosRelatorio, tipoRecurso string) (repository.FiltroMovimentos, error) {
	if f.Mes != 0 && f.Ano == 0 {
		return repository.FiltroMovimentos{}, domain.ErrInvalidInput
	}
	filtro := repository.FiltroMovimentos{
		TipoRecurso: tipoRecurso,
		ObraID:      f.ObraID,
		Ano:         f.Ano,
		Mes:         f.Mes,
	}
	var err error
	if filtro.DataInicio, err = movimentos.ParseData(f.DataInicio, false); err != nil {
		return repository.FiltroMovimentos{}, err
	}
	if filtro.DataFim, err = movimentos.ParseData(f.DataFim, true); err != nil {
		return repository.FiltroMovimentos{}, err
	}
	return filtro, nil
}

// agruparPorRecurso parte uma fatia do ledger por recurso, preservando a ordem.
func agruparPorRecurso(movs []*entity.Movimento) map[string][]*entity.Movimento {
	grupos := make(map[string][]*entity.Movimento)
	for _, m := range movs {
		grupos[m.RecursoID] = append(grupos[m.RecursoID], m)
	}
	return grupos
}

// mapaObras devolve nome por ID de obra para enriquecimento de listagens.
func (uc *RelatoriosUseCase) mapaObras() (map[string]string, error) {
	obras, err := uc.obraRepo.ListTodas()
	if err != nil {
		return nil, err
	}
	nomes := make(map[string]string, len(obras))
	for _, o := range obras {
		nomes[o.ID] = o.Nome
	}
	return nomes, nil
}

// infoRecurso dados de apresentação de um recurso para enriquecimento.
type infoRecurso struct {
	codigo    string
	descricao string
}

// mapaAtivos devolve código/descrição por ID para equipamentos e viaturas ativos.
func (uc *RelatoriosUseCase) mapaAtivos() (map[string]infoRecurso, error) {
	info := make(map[string]infoRecurso)
	equipamentos, err := uc.equipamentoRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	for _, e := range equipamentos {
		info[e.ID] = infoRecurso{codigo: e.Codigo, descricao: e.Descricao}
	}
	viaturas, err := uc.viaturaRepo.ListAtivos()
	if err != nil {
		return nil, err
	}
	for _, v := range viaturas {
		info[v.ID] = infoRecurso{codigo: v.Matricula, descricao: v.Marca + " " + v.Modelo}
	}
	return info, nil
}
