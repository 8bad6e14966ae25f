// Package policy concentra la política de ownership y visibilidad del
// marketplace: tabla estática de roles, registro de módulos y el resolver
// puro que decide filtros de listado y veredictos de mutación.
//
// Antes esta lógica vivía duplicada en varios middlewares; acá es una sola
// implementación sin I/O, consumida por el middleware HTTP y por los reportes.
package policy

import (
	"errors"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// ErrUnauthenticated se reporta cuando falta el principal en una operación
// protegida. El middleware HTTP lo traduce a 401.
var ErrUnauthenticated = errors.New("principal no autenticado")

// Principal es la identidad del caller sobre la que se resuelven las
// decisiones de acceso.
type Principal struct {
	ID             int64
	Role           string
	UserType       string
	CalculatedRole string
}

// EffectiveRole devuelve el rol con el que se decide: el calculatedRole si
// fue derivado (usuarios B2B), si no el rol almacenado.
func (p Principal) EffectiveRole() string {
	if p.CalculatedRole != "" {
		return p.CalculatedRole
	}
	return p.Role
}

// Authenticated informa si el principal es utilizable para decidir.
func (p *Principal) Authenticated() bool {
	return p != nil && p.ID > 0
}

// FilterDirective es la directiva de alcance para un listado.
// Tres estados posibles: sin filtro (admin o lectura abierta), restringido al
// dueño, o resultado vacío (sin principal; nunca "mostrar todo").
type FilterDirective struct {
	todas   bool
	vacia   bool
	ownerID int64
}

// ShowAll directiva sin filtro: se listan todas las filas.
func ShowAll() FilterDirective { return FilterDirective{todas: true} }

// OwnerOnly directiva restringida a las filas del dueño indicado.
func OwnerOnly(ownerID int64) FilterDirective { return FilterDirective{ownerID: ownerID} }

// Nothing directiva de resultado vacío (principal ausente o corrupto).
func Nothing() FilterDirective { return FilterDirective{vacia: true} }

// Unrestricted informa si la directiva no impone filtro.
func (d FilterDirective) Unrestricted() bool { return d.todas }

// Empty informa si la directiva exige resultado vacío.
func (d FilterDirective) Empty() bool { return d.vacia }

// OwnerID devuelve el dueño al que se restringe el listado y si aplica.
func (d FilterDirective) OwnerID() (int64, bool) {
	if d.todas || d.vacia {
		return 0, false
	}
	return d.ownerID, true
}

// Fragment devuelve el fragmento de predicado para la capa de persistencia:
// {"published_by_user_id": id} o {} (sin restricción). Para la directiva
// vacía no hay fragmento válido; el caller no debe ejecutar la consulta.
func (d FilterDirective) Fragment() map[string]any {
	if id, ok := d.OwnerID(); ok {
		return map[string]any{"published_by_user_id": id}
	}
	return map[string]any{}
}

// Verdict es el resultado de una decisión de mutación.
// Warning queda seteado en el caso legacy de fila sin dueño: la operación se
// permite pero debe auditarse (dato a remediar, no política permanente).
type Verdict struct {
	Allowed bool
	Reason  string
	Warning string
}

// Allow veredicto positivo.
func Allow() Verdict { return Verdict{Allowed: true} }

// AllowWithWarning veredicto positivo con advertencia auditable.
func AllowWithWarning(warning string) Verdict { return Verdict{Allowed: true, Warning: warning} }

// Deny veredicto negativo con motivo (para el audit log; al cliente se le
// responde un mensaje genérico que no revela la identidad del dueño real).
func Deny(reason string) Verdict { return Verdict{Reason: reason} }

// ResolveListFilter decide el alcance de un listado para (principal, módulo).
//
//   - rol con CanSeeOthersInOtherModules (admin/sysadmin): sin filtro.
//   - módulo con lectura abierta (mercado de cupos), si el rol tiene
//     CanSeeOthersInCuposMercado: sin filtro.
//   - resto: solo filas del principal.
//   - principal ausente: resultado vacío, jamás "mostrar todo".
//
// Función pura: sin I/O, mismo resultado para las mismas entradas.
func ResolveListFilter(p *Principal, mod Module) FilterDirective {
	if !p.Authenticated() {
		return Nothing()
	}
	pol := PolicyFor(p.EffectiveRole())
	if pol.CanSeeOthersInOtherModules {
		return ShowAll()
	}
	if mod.LecturaAbierta && pol.CanSeeOthersInCuposMercado {
		return ShowAll()
	}
	return OwnerOnly(p.ID)
}

// ResolveMutationVerdict decide si el principal puede mutar (o leer en
// detalle) una fila cuyo dueño es targetOwnerID. Las capacidades salen del
// registro del rol en la tabla de políticas:
//
//   - CanMutateOthers (admin/sysadmin): siempre permitido.
//   - dueño ausente (fila legacy sin owner): permitido con advertencia
//     auditable; caso de calidad de datos, no una puerta a abrir más.
//   - fila propia: permitido si el rol tiene CanMutateOwn.
//   - resto: denegado.
func ResolveMutationVerdict(p *Principal, mod Module, targetOwnerID *int64) Verdict {
	if !p.Authenticated() {
		return Deny("principal ausente")
	}
	pol := PolicyFor(p.EffectiveRole())
	if pol.CanMutateOthers() {
		return Allow()
	}
	if targetOwnerID == nil {
		return AllowWithWarning("fila sin published_by_user_id (pendiente de backfill)")
	}
	if *targetOwnerID == p.ID {
		if !pol.CanMutateOwn() {
			return Deny("el rol no tiene capacidad de mutación sobre sus filas")
		}
		return Allow()
	}
	return Deny("el principal no es el dueño de la fila")
}

// ResolvePublishVerdict decide si el principal puede crear publicaciones.
// Publicar es una capacidad exclusivamente B2B: una cuenta B2C nunca publica
// inventario sin importar su rol, y el rol además debe declarar CanPublish
// en la tabla de políticas.
func ResolvePublishVerdict(p *Principal) Verdict {
	if !p.Authenticated() {
		return Deny("principal ausente")
	}
	if IsAdmin(p.EffectiveRole()) {
		return Allow()
	}
	if p.UserType == entity.UserTypeB2C {
		return Deny("una cuenta B2C no publica inventario")
	}
	pol := PolicyFor(p.EffectiveRole())
	if !pol.CanPublish {
		return Deny("el rol no tiene capacidad de publicación")
	}
	return Allow()
}

// ResolveReadVerdict decide la lectura de un ítem puntual. Idéntico a la
// mutación salvo en módulos de lectura abierta, donde cualquier vendedor
// autenticado puede leer el detalle.
func ResolveReadVerdict(p *Principal, mod Module, targetOwnerID *int64) Verdict {
	if mod.LecturaAbierta && p.Authenticated() {
		return Allow()
	}
	return ResolveMutationVerdict(p, mod, targetOwnerID)
}

// ResolveModuleVisibility informa si el módulo aparece en el dashboard del
// principal: pertenece a DashboardModules del rol o el set es "*". El
// dashboard completo es superficie B2B, así que el rol necesita
// CanAccessB2BModules y una cuenta B2C no lo ve (salvo admin).
func ResolveModuleVisibility(p *Principal, moduleName string) bool {
	if !p.Authenticated() {
		return false
	}
	eff := p.EffectiveRole()
	pol := PolicyFor(eff)
	if !pol.CanAccessB2BModules {
		return false
	}
	if p.UserType == entity.UserTypeB2C && !IsAdmin(eff) {
		return false
	}
	for _, m := range pol.DashboardModules {
		if m == AllModules || m == moduleName {
			return true
		}
	}
	return false
}
