package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turismo-market/internal/application/usecase"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// Fakes mínimos: solo ListDestacados devuelve datos, el resto no se usa acá.

type fakePaqueteDestacados struct{ rows []*entity.Paquete }

func (f *fakePaqueteDestacados) Create(context.Context, *entity.Paquete) error { return nil }
func (f *fakePaqueteDestacados) GetByID(context.Context, string) (*entity.Paquete, error) {
	return nil, nil
}
func (f *fakePaqueteDestacados) OwnerOf(context.Context, string) (*int64, bool, error) {
	return nil, false, nil
}
func (f *fakePaqueteDestacados) Update(context.Context, *entity.Paquete) error { return nil }
func (f *fakePaqueteDestacados) Delete(context.Context, string) error          { return nil }
func (f *fakePaqueteDestacados) List(context.Context, repository.Scope, int, int) ([]*entity.Paquete, error) {
	return nil, nil
}
func (f *fakePaqueteDestacados) ListDestacados(context.Context, int) ([]*entity.Paquete, error) {
	return f.rows, nil
}

type fakeTrenDestacados struct{ rows []*entity.Tren }

func (f *fakeTrenDestacados) Create(context.Context, *entity.Tren) error          { return nil }
func (f *fakeTrenDestacados) GetByID(context.Context, string) (*entity.Tren, error) { return nil, nil }
func (f *fakeTrenDestacados) OwnerOf(context.Context, string) (*int64, bool, error) {
	return nil, false, nil
}
func (f *fakeTrenDestacados) Update(context.Context, *entity.Tren) error { return nil }
func (f *fakeTrenDestacados) Delete(context.Context, string) error       { return nil }
func (f *fakeTrenDestacados) List(context.Context, repository.Scope, int, int) ([]*entity.Tren, error) {
	return nil, nil
}
func (f *fakeTrenDestacados) ListDestacados(context.Context, int) ([]*entity.Tren, error) {
	return f.rows, nil
}

type fakeCircuitoDestacados struct{ rows []*entity.Circuito }

func (f *fakeCircuitoDestacados) Create(context.Context, *entity.Circuito) error { return nil }
func (f *fakeCircuitoDestacados) GetByID(context.Context, string) (*entity.Circuito, error) {
	return nil, nil
}
func (f *fakeCircuitoDestacados) OwnerOf(context.Context, string) (*int64, bool, error) {
	return nil, false, nil
}
func (f *fakeCircuitoDestacados) Update(context.Context, *entity.Circuito) error { return nil }
func (f *fakeCircuitoDestacados) Delete(context.Context, string) error           { return nil }
func (f *fakeCircuitoDestacados) List(context.Context, repository.Scope, int, int) ([]*entity.Circuito, error) {
	return nil, nil
}
func (f *fakeCircuitoDestacados) ListDestacados(context.Context, int) ([]*entity.Circuito, error) {
	return f.rows, nil
}

// La vidriera agrega los módulos públicos con lister registrado y etiqueta
// cada item con su módulo.
func TestDestacadosList_AgregaModulosPublicos(t *testing.T) {
	uc := usecase.NewDestacadosUseCase(
		&fakePaqueteDestacados{rows: []*entity.Paquete{
			{Publicacion: entity.Publicacion{ID: "p1"}, Nombre: "Bariloche", Destino: "Bariloche"},
		}},
		&fakeTrenDestacados{rows: []*entity.Tren{
			{Publicacion: entity.Publicacion{ID: "t1"}, Nombre: "Tren a las Nubes", Destino: "Salta"},
		}},
		&fakeCircuitoDestacados{rows: []*entity.Circuito{
			{Publicacion: entity.Publicacion{ID: "c1"}, Nombre: "Europa Clásica", Paises: "España, Francia"},
		}},
	)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	porModulo := map[string]string{}
	for _, it := range out.Items {
		porModulo[it.Modulo] = it.ID
	}
	assert.Equal(t, "p1", porModulo[policy.ModPaquetes])
	assert.Equal(t, "t1", porModulo[policy.ModTrenes])
	assert.Equal(t, "c1", porModulo[policy.ModCircuitos])
}

// Todo módulo que aparece en la vidriera debe estar declarado como público en
// el registro de módulos; la etiqueta sale del registro, no de los repos.
func TestDestacadosList_SoloModulosDeclaradosPublicos(t *testing.T) {
	uc := usecase.NewDestacadosUseCase(
		&fakePaqueteDestacados{rows: []*entity.Paquete{
			{Publicacion: entity.Publicacion{ID: "p1"}, Nombre: "Salta"},
		}},
		&fakeTrenDestacados{},
		&fakeCircuitoDestacados{},
	)

	out, err := uc.List(context.Background())
	require.NoError(t, err)

	publicos := map[string]bool{}
	for _, m := range policy.PublicModules() {
		publicos[m.Nombre] = true
	}
	for _, it := range out.Items {
		assert.True(t, publicos[it.Modulo],
			"el módulo %q de la vidriera debe estar declarado como público", it.Modulo)
	}
}

func TestDestacadosList_SinDestacadosDevuelveListaVacia(t *testing.T) {
	uc := usecase.NewDestacadosUseCase(
		&fakePaqueteDestacados{}, &fakeTrenDestacados{}, &fakeCircuitoDestacados{},
	)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}
