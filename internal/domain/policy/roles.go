package policy

import "github.com/tu-usuario/turismo-market/internal/domain/entity"

// Roles válidos del sistema. Las variantes legacy de operador (mayorista,
// bloqueador, etc.) se colapsan a RoleOperador en la migración de datos.
const (
	RoleAdmin    = "admin"
	RoleSysadmin = "sysadmin"
	RoleAgencia  = "agencia"
	RoleOperador = "operador"
)

// AllModules es el centinela de DashboardModules: acceso irrestricto.
const AllModules = "*"

// RolePolicy es el registro estático de capacidades de un rol.
// Se carga una sola vez al iniciar el proceso y nunca se muta en runtime.
type RolePolicy struct {
	CanPublish                 bool
	CanSeeOthersInCuposMercado bool
	CanSeeOthersInOtherModules bool
	CanEditOwn                 bool
	CanEditOthers              bool
	CanDeleteOwn               bool
	CanDeleteOthers            bool
	CanAccessB2CModules        bool
	CanAccessB2BModules        bool
	VisibleToPassengers        bool
	DashboardModules           []string
}

// sellerModules módulos de dashboard comunes a todos los vendedores B2B.
var sellerModules = []string{
	ModPaquetes, ModVuelos, ModCruceros, ModTrenes, ModTraslados, ModAutos,
	ModHospedajes, ModExcursiones, ModSeguros, ModCircuitos, ModSalidasGrupales,
	ModCuposMercado, ModClientes, ModReservas,
}

// policyTable tabla estática rol → capacidades. admin y sysadmin comparten
// registro: ambos saltean todo filtro de ownership.
var policyTable = map[string]RolePolicy{
	RoleAdmin: {
		CanPublish:                 true,
		CanSeeOthersInCuposMercado: true,
		CanSeeOthersInOtherModules: true,
		CanEditOwn:                 true,
		CanEditOthers:              true,
		CanDeleteOwn:               true,
		CanDeleteOthers:            true,
		CanAccessB2CModules:        true,
		CanAccessB2BModules:        true,
		VisibleToPassengers:        false,
		DashboardModules:           []string{AllModules},
	},
	RoleSysadmin: {
		CanPublish:                 true,
		CanSeeOthersInCuposMercado: true,
		CanSeeOthersInOtherModules: true,
		CanEditOwn:                 true,
		CanEditOthers:              true,
		CanDeleteOwn:               true,
		CanDeleteOthers:            true,
		CanAccessB2CModules:        true,
		CanAccessB2BModules:        true,
		VisibleToPassengers:        false,
		DashboardModules:           []string{AllModules},
	},
	RoleAgencia: {
		CanPublish:                 true,
		CanSeeOthersInCuposMercado: true,
		CanSeeOthersInOtherModules: false,
		CanEditOwn:                 true,
		CanEditOthers:              false,
		CanDeleteOwn:               true,
		CanDeleteOthers:            false,
		CanAccessB2CModules:        true,
		CanAccessB2BModules:        true,
		VisibleToPassengers:        false,
		DashboardModules:           sellerModules,
	},
	RoleOperador: {
		CanPublish:                 true,
		CanSeeOthersInCuposMercado: true,
		CanSeeOthersInOtherModules: false,
		CanEditOwn:                 true,
		CanEditOthers:              false,
		CanDeleteOwn:               true,
		CanDeleteOthers:            false,
		CanAccessB2CModules:        false,
		CanAccessB2BModules:        true,
		VisibleToPassengers:        true,
		DashboardModules:           sellerModules,
	},
}

// CanMutateOwn informa si el rol puede editar Y borrar sus propias filas.
// Conjunción conservadora: si cualquiera de las dos capacidades falta, la
// mutación se niega completa en vez de abrir a medias.
func (p RolePolicy) CanMutateOwn() bool { return p.CanEditOwn && p.CanDeleteOwn }

// CanMutateOthers informa si el rol puede editar Y borrar filas ajenas.
func (p RolePolicy) CanMutateOthers() bool { return p.CanEditOthers && p.CanDeleteOthers }

// PolicyFor devuelve el registro de capacidades del rol. Nunca falla: un rol
// desconocido degrada al registro de operador (el menos privilegiado conocido)
// para fallar cerrado en vez de abierto.
func PolicyFor(role string) RolePolicy {
	if p, ok := policyTable[role]; ok {
		return p
	}
	return policyTable[RoleOperador]
}

// IsAdmin informa si el rol saltea los filtros de ownership.
func IsAdmin(role string) bool {
	return role == RoleAdmin || role == RoleSysadmin
}

// CalculatedRole deriva el rol efectivo de un usuario. Para usuarios B2B que
// publican inventario propio el rol efectivo es operador aunque la cuenta esté
// registrada como agencia; para el resto, el rol almacenado. Es la única
// fuente de verdad del rol usado en decisiones de ownership y visibilidad.
func CalculatedRole(u *entity.Usuario) string {
	if u == nil {
		return RoleOperador
	}
	if IsAdmin(u.Role) {
		return u.Role
	}
	if u.UserType == entity.UserTypeB2B && u.PublicaProductos {
		return RoleOperador
	}
	return u.Role
}
