package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de agregación para los reportes de administración.
// Ninguna lleva filtro de ownership: el use case verifica rol admin antes
// de llegar acá.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de consultas de reportes.
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// ClicksPorModulo cuenta clicks agrupados por módulo en el rango dado.
func (r *ReporteRepo) ClicksPorModulo(ctx context.Context, desde, hasta time.Time) ([]repository.ClicksPorModuloResult, error) {
	query := `
		SELECT modulo, COUNT(*) AS clicks
		FROM clicks
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY modulo
		ORDER BY clicks DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("clicks por modulo: %w", err)
	}
	defer rows.Close()
	var out []repository.ClicksPorModuloResult
	for rows.Next() {
		var res repository.ClicksPorModuloResult
		if err := rows.Scan(&res.Modulo, &res.Clicks); err != nil {
			return nil, fmt.Errorf("scan clicks por modulo: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// PublicacionesPorVendedor cuenta publicaciones activas por vendedor y módulo.
// Une las tablas de publicaciones con UNION ALL; las filas legacy sin dueño
// quedan agrupadas bajo el vendedor "(sin dueño)".
func (r *ReporteRepo) PublicacionesPorVendedor(ctx context.Context) ([]repository.PublicacionesPorVendedorResult, error) {
	query := `
		SELECT COALESCE(p.published_by_user_id, 0) AS user_id,
		       COALESCE(u.nombre, '(sin dueño)') AS vendedor,
		       p.modulo,
		       COUNT(*) AS total
		FROM (
			SELECT published_by_user_id, 'paquetes' AS modulo FROM paquetes WHERE activo = true
			UNION ALL
			SELECT published_by_user_id, 'trenes' FROM trenes WHERE activo = true
			UNION ALL
			SELECT published_by_user_id, 'circuitos' FROM circuitos WHERE activo = true
			UNION ALL
			SELECT published_by_user_id, 'cupos-mercado' FROM cupos WHERE disponible = true
		) p
		LEFT JOIN usuarios u ON u.id = p.published_by_user_id
		GROUP BY COALESCE(p.published_by_user_id, 0), COALESCE(u.nombre, '(sin dueño)'), p.modulo
		ORDER BY total DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("publicaciones por vendedor: %w", err)
	}
	defer rows.Close()
	var out []repository.PublicacionesPorVendedorResult
	for rows.Next() {
		var res repository.PublicacionesPorVendedorResult
		if err := rows.Scan(&res.UserID, &res.Vendedor, &res.Modulo, &res.Total); err != nil {
			return nil, fmt.Errorf("scan publicaciones por vendedor: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// ActividadDiaria agrega clicks por día calendario en el rango dado.
func (r *ReporteRepo) ActividadDiaria(ctx context.Context, desde, hasta time.Time) ([]repository.ActividadDiariaResult, error) {
	query := `
		SELECT date_trunc('day', created_at) AS dia, COUNT(*) AS clicks
		FROM clicks
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY dia
		ORDER BY dia ASC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("actividad diaria: %w", err)
	}
	defer rows.Close()
	var out []repository.ActividadDiariaResult
	for rows.Next() {
		var res repository.ActividadDiariaResult
		if err := rows.Scan(&res.Dia, &res.Clicks); err != nil {
			return nil, fmt.Errorf("scan actividad diaria: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
