package policy

// Nombres de módulo del dashboard. Coinciden con los prefijos de ruta de la API.
const (
	ModPaquetes        = "paquetes"
	ModVuelos          = "vuelos"
	ModCruceros        = "cruceros"
	ModTrenes          = "trenes"
	ModTraslados       = "traslados"
	ModAutos           = "autos"
	ModHospedajes      = "hospedajes"
	ModExcursiones     = "excursiones"
	ModSeguros         = "seguros"
	ModCircuitos       = "circuitos"
	ModSalidasGrupales = "salidas-grupales"
	ModCuposMercado    = "cupos-mercado"
	ModClientes        = "clientes"
	ModReservas        = "reservas"
	ModReportes        = "reportes"
)

// Campos de estado posibles de una publicación. Cada tipo de entidad declara
// exactamente uno (tabla estática, no introspección en runtime).
const (
	EstadoActivo     = "activo"
	EstadoDisponible = "disponible"
	EstadoNinguno    = "" // módulos sin vidriera (clientes, reservas, reportes)
)

// Module es el registro estático de rasgos de un módulo.
//
// LecturaAbierta marca la excepción del mercado de cupos: todos los vendedores
// leen todas las publicaciones, pero solo el dueño (o admin) las muta. Es un
// flag explícito del módulo; generalizarlo por inferencia a otros módulos
// sería una regresión de seguridad.
type Module struct {
	Nombre         string
	CampoEstado    string // EstadoActivo | EstadoDisponible | EstadoNinguno
	LecturaAbierta bool
	Publico        bool // participa de la vidriera pública (isPublic/destacado)
}

// moduleTable registro módulo → rasgos. Proceso-constante.
var moduleTable = map[string]Module{
	ModPaquetes:        {Nombre: ModPaquetes, CampoEstado: EstadoActivo, Publico: true},
	ModVuelos:          {Nombre: ModVuelos, CampoEstado: EstadoActivo, Publico: true},
	ModCruceros:        {Nombre: ModCruceros, CampoEstado: EstadoActivo, Publico: true},
	ModTrenes:          {Nombre: ModTrenes, CampoEstado: EstadoActivo, Publico: true},
	ModTraslados:       {Nombre: ModTraslados, CampoEstado: EstadoActivo, Publico: true},
	ModAutos:           {Nombre: ModAutos, CampoEstado: EstadoDisponible, Publico: true},
	ModHospedajes:      {Nombre: ModHospedajes, CampoEstado: EstadoDisponible, Publico: true},
	ModExcursiones:     {Nombre: ModExcursiones, CampoEstado: EstadoActivo, Publico: true},
	ModSeguros:         {Nombre: ModSeguros, CampoEstado: EstadoActivo, Publico: true},
	ModCircuitos:       {Nombre: ModCircuitos, CampoEstado: EstadoActivo, Publico: true},
	ModSalidasGrupales: {Nombre: ModSalidasGrupales, CampoEstado: EstadoActivo, Publico: true},
	ModCuposMercado:    {Nombre: ModCuposMercado, CampoEstado: EstadoDisponible, LecturaAbierta: true, Publico: false},
	ModClientes:        {Nombre: ModClientes, CampoEstado: EstadoNinguno, Publico: false},
	ModReservas:        {Nombre: ModReservas, CampoEstado: EstadoNinguno, Publico: false},
	ModReportes:        {Nombre: ModReportes, CampoEstado: EstadoNinguno, Publico: false},
}

// ModuleByName devuelve el registro de rasgos de un módulo.
func ModuleByName(nombre string) (Module, bool) {
	m, ok := moduleTable[nombre]
	return m, ok
}

// Modules devuelve todos los módulos registrados.
func Modules() []Module {
	out := make([]Module, 0, len(moduleTable))
	for _, m := range moduleTable {
		out = append(out, m)
	}
	return out
}

// PublicModules devuelve los módulos con vidriera pública, para el agregador
// de destacados.
func PublicModules() []Module {
	out := make([]Module, 0, len(moduleTable))
	for _, m := range moduleTable {
		if m.Publico {
			out = append(out, m)
		}
	}
	return out
}
