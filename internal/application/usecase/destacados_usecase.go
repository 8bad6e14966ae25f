package usecase

import (
	"context"
	"sort"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

const destacadosPorModulo = 6 // items por módulo en la vidriera pública

// destacadosLister consulta los destacados de un módulo ya proyectados al DTO.
type destacadosLister func(ctx context.Context, limit int) ([]dto.DestacadoDTO, error)

// DestacadosUseCase arma la vidriera pública de publicaciones destacadas.
//
// El agregador se gobierna por el registro de módulos de policy: solo entran
// módulos declarados con vidriera (Publico), y el flag de estado de cada uno
// (activo o disponible) también sale del registro — acá no se sondean
// atributos en runtime. Un módulo público sin lister registrado simplemente
// no aporta items.
type DestacadosUseCase struct {
	listers map[string]destacadosLister
}

// NewDestacadosUseCase construye el agregador de la vidriera.
func NewDestacadosUseCase(
	paquetes repository.PaqueteRepository,
	trenes repository.TrenRepository,
	circuitos repository.CircuitoRepository,
) *DestacadosUseCase {
	return &DestacadosUseCase{listers: map[string]destacadosLister{
		policy.ModPaquetes: func(ctx context.Context, limit int) ([]dto.DestacadoDTO, error) {
			list, err := paquetes.ListDestacados(ctx, limit)
			if err != nil {
				return nil, err
			}
			items := make([]dto.DestacadoDTO, 0, len(list))
			for _, p := range list {
				items = append(items, dto.DestacadoDTO{
					Modulo:    policy.ModPaquetes,
					ID:        p.ID,
					Titulo:    p.Nombre,
					Destino:   p.Destino,
					Precio:    p.Precio,
					Moneda:    p.Moneda,
					CreatedAt: p.CreatedAt,
				})
			}
			return items, nil
		},
		policy.ModTrenes: func(ctx context.Context, limit int) ([]dto.DestacadoDTO, error) {
			list, err := trenes.ListDestacados(ctx, limit)
			if err != nil {
				return nil, err
			}
			items := make([]dto.DestacadoDTO, 0, len(list))
			for _, t := range list {
				items = append(items, dto.DestacadoDTO{
					Modulo:    policy.ModTrenes,
					ID:        t.ID,
					Titulo:    t.Nombre,
					Destino:   t.Destino,
					Precio:    t.Precio,
					Moneda:    t.Moneda,
					CreatedAt: t.CreatedAt,
				})
			}
			return items, nil
		},
		policy.ModCircuitos: func(ctx context.Context, limit int) ([]dto.DestacadoDTO, error) {
			list, err := circuitos.ListDestacados(ctx, limit)
			if err != nil {
				return nil, err
			}
			items := make([]dto.DestacadoDTO, 0, len(list))
			for _, c := range list {
				items = append(items, dto.DestacadoDTO{
					Modulo:    policy.ModCircuitos,
					ID:        c.ID,
					Titulo:    c.Nombre,
					Destino:   c.Paises,
					Precio:    c.Precio,
					Moneda:    c.Moneda,
					CreatedAt: c.CreatedAt,
				})
			}
			return items, nil
		},
	}}
}

// List devuelve la vidriera completa. Las consultas de los módulos públicos
// corren en paralelo; el orden de salida sigue el nombre de módulo para que
// la respuesta sea estable.
func (uc *DestacadosUseCase) List(ctx context.Context) (*dto.DestacadosResponse, error) {
	publicos := policy.PublicModules()
	sort.Slice(publicos, func(i, j int) bool { return publicos[i].Nombre < publicos[j].Nombre })

	type resultado struct {
		modulo string
		items  []dto.DestacadoDTO
		err    error
	}

	ch := make(chan resultado, len(publicos))
	consultados := 0
	for _, m := range publicos {
		lister, ok := uc.listers[m.Nombre]
		if !ok {
			continue
		}
		consultados++
		go func(nombre string, lister destacadosLister) {
			items, err := lister(ctx, destacadosPorModulo)
			ch <- resultado{modulo: nombre, items: items, err: err}
		}(m.Nombre, lister)
	}

	porModulo := make(map[string][]dto.DestacadoDTO, consultados)
	for i := 0; i < consultados; i++ {
		r := <-ch
		if r.err != nil {
			return nil, r.err
		}
		porModulo[r.modulo] = r.items
	}

	var items []dto.DestacadoDTO
	for _, m := range publicos {
		items = append(items, porModulo[m.Nombre]...)
	}
	if items == nil {
		items = []dto.DestacadoDTO{}
	}
	return &dto.DestacadosResponse{Items: items}, nil
}
