package repository

import "github.com/tu-usuario/turismo-market/internal/domain/policy"

// Scope es el alcance de un listado que los repositorios mezclan en el WHERE.
// OwnerID nil significa sin restricción. Se construye siempre desde una
// policy.FilterDirective; los handlers nunca lo arman a mano.
type Scope struct {
	OwnerID *int64
}

// ScopeFromDirective traduce la directiva del resolver al alcance de
// persistencia. La directiva vacía no tiene traducción: el caller debe
// cortar antes y no ejecutar consulta alguna.
func ScopeFromDirective(d policy.FilterDirective) Scope {
	if id, ok := d.OwnerID(); ok {
		return Scope{OwnerID: &id}
	}
	return Scope{}
}
