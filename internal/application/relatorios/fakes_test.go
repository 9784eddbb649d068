package relatorios_test

import (
	"sort"
	"strings"
	"sync"

	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios em memória para os testes dos relatórios. Implementam a mesma
// semântica de filtragem e ordenação que a implementação postgres.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovimentoRepo struct {
	mu      sync.Mutex
	seq     int64
	eventos []*entity.Movimento
}

func (r *fakeMovimentoRepo) Create(m *entity.Movimento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.Seq = r.seq
	r.eventos = append(r.eventos, m)
	return nil
}

func (r *fakeMovimentoRepo) GetByID(id string) (*entity.Movimento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.eventos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovimentoRepo) List(f repository.FiltroMovimentos) ([]*entity.Movimento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Movimento, 0)
	for _, m := range r.eventos {
		if f.TipoRecurso != "" && m.TipoRecurso != f.TipoRecurso {
			continue
		}
		if f.RecursoID != "" && m.RecursoID != f.RecursoID {
			continue
		}
		if f.TipoMovimento != "" && m.TipoMovimento != f.TipoMovimento {
			continue
		}
		if f.ObraID != "" && (m.ObraID == nil || *m.ObraID != f.ObraID) {
			continue
		}
		if f.Ano != 0 && m.Data.Year() != f.Ano {
			continue
		}
		if f.Mes != 0 && int(m.Data.Month()) != f.Mes {
			continue
		}
		if f.DataInicio != nil && m.Data.Before(*f.DataInicio) {
			continue
		}
		if f.DataFim != nil && !m.Data.Before(*f.DataFim) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Data.Equal(out[j].Data) {
			return out[i].Data.Before(out[j].Data)
		}
		return out[i].Seq < out[j].Seq
	})
	return out, nil
}

type fakeEquipamentoRepo struct {
	itens map[string]*entity.Equipamento
}

func newFakeEquipamentoRepo() *fakeEquipamentoRepo {
	return &fakeEquipamentoRepo{itens: make(map[string]*entity.Equipamento)}
}

func (r *fakeEquipamentoRepo) Create(e *entity.Equipamento) error {
	r.itens[e.ID] = e
	return nil
}

func (r *fakeEquipamentoRepo) GetByID(id string) (*entity.Equipamento, error) {
	return r.itens[id], nil
}

func (r *fakeEquipamentoRepo) GetByCodigo(codigo string) (*entity.Equipamento, error) {
	for _, e := range r.itens {
		if e.Codigo == codigo {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEquipamentoRepo) Update(e *entity.Equipamento) error {
	r.itens[e.ID] = e
	return nil
}

func (r *fakeEquipamentoRepo) UpdateManutencao(id string, emManutencao bool, descricaoAvaria string) error {
	if e, ok := r.itens[id]; ok {
		e.EmManutencao = emManutencao
		e.DescricaoAvaria = descricaoAvaria
	}
	return nil
}

func (r *fakeEquipamentoRepo) List(q string, limit, offset int) ([]*entity.Equipamento, error) {
	out, _ := r.ListAtivos()
	if q == "" {
		return out, nil
	}
	filtrado := out[:0]
	for _, e := range out {
		if strings.Contains(strings.ToLower(e.Descricao), strings.ToLower(q)) {
			filtrado = append(filtrado, e)
		}
	}
	return filtrado, nil
}

func (r *fakeEquipamentoRepo) ListAtivos() ([]*entity.Equipamento, error) {
	out := make([]*entity.Equipamento, 0, len(r.itens))
	for _, e := range r.itens {
		if e.Ativo {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (r *fakeEquipamentoRepo) Delete(id string) error {
	if e, ok := r.itens[id]; ok {
		e.Ativo = false
	}
	return nil
}

type fakeViaturaRepo struct {
	itens map[string]*entity.Viatura
}

func newFakeViaturaRepo() *fakeViaturaRepo {
	return &fakeViaturaRepo{itens: make(map[string]*entity.Viatura)}
}

func (r *fakeViaturaRepo) Create(v *entity.Viatura) error {
	r.itens[v.ID] = v
	return nil
}

func (r *fakeViaturaRepo) GetByID(id string) (*entity.Viatura, error) {
	return r.itens[id], nil
}

func (r *fakeViaturaRepo) GetByMatricula(matricula string) (*entity.Viatura, error) {
	for _, v := range r.itens {
		if v.Matricula == matricula {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeViaturaRepo) Update(v *entity.Viatura) error {
	r.itens[v.ID] = v
	return nil
}

func (r *fakeViaturaRepo) UpdateManutencao(id string, emManutencao bool, descricaoAvaria string) error {
	if v, ok := r.itens[id]; ok {
		v.EmManutencao = emManutencao
		v.DescricaoAvaria = descricaoAvaria
	}
	return nil
}

func (r *fakeViaturaRepo) List(q string, limit, offset int) ([]*entity.Viatura, error) {
	return r.ListAtivos()
}

func (r *fakeViaturaRepo) ListAtivos() ([]*entity.Viatura, error) {
	out := make([]*entity.Viatura, 0, len(r.itens))
	for _, v := range r.itens {
		if v.Ativo {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Matricula < out[j].Matricula })
	return out, nil
}

func (r *fakeViaturaRepo) Delete(id string) error {
	if v, ok := r.itens[id]; ok {
		v.Ativo = false
	}
	return nil
}

type fakeMaterialRepo struct {
	itens map[string]*entity.Material
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{itens: make(map[string]*entity.Material)}
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	r.itens[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.itens[id], nil
}

func (r *fakeMaterialRepo) GetByCodigo(codigo string) (*entity.Material, error) {
	for _, m := range r.itens {
		if m.Codigo == codigo {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialRepo) Update(m *entity.Material) error {
	r.itens[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) List(q string, limit, offset int) ([]*entity.Material, error) {
	return r.ListAtivos()
}

func (r *fakeMaterialRepo) ListAtivos() ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(r.itens))
	for _, m := range r.itens {
		if m.Ativo {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (r *fakeMaterialRepo) Delete(id string) error {
	if m, ok := r.itens[id]; ok {
		m.Ativo = false
	}
	return nil
}

type fakeObraRepo struct {
	itens map[string]*entity.Obra
}

func newFakeObraRepo() *fakeObraRepo {
	return &fakeObraRepo{itens: make(map[string]*entity.Obra)}
}

func (r *fakeObraRepo) Create(o *entity.Obra) error {
	r.itens[o.ID] = o
	return nil
}

func (r *fakeObraRepo) GetByID(id string) (*entity.Obra, error) {
	return r.itens[id], nil
}

func (r *fakeObraRepo) GetByCodigo(codigo string) (*entity.Obra, error) {
	for _, o := range r.itens {
		if o.Codigo == codigo {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeObraRepo) Update(o *entity.Obra) error {
	r.itens[o.ID] = o
	return nil
}

func (r *fakeObraRepo) List(q string, limit, offset int) ([]*entity.Obra, error) {
	return r.ListTodas()
}

func (r *fakeObraRepo) ListTodas() ([]*entity.Obra, error) {
	out := make([]*entity.Obra, 0, len(r.itens))
	for _, o := range r.itens {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (r *fakeObraRepo) Delete(id string) error {
	if o, ok := r.itens[id]; ok {
		o.Ativo = false
	}
	return nil
}
