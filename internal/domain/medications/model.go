package medications

// NamesKey es la key fija de la lista con todos los nombres de medicamentos.
const NamesKey = "allNames"

// Campos del hash de un medicamento.
const (
	FieldDosage = "dosage"
	FieldVia    = "via"
	FieldAdult  = "adult"
	FieldPed    = "ped"
	FieldGPO90  = "gpo90"

	// FieldName no se persiste: se reconstruye desde la key al leer.
	FieldName = "name"
)

// Medication es la ficha de un medicamento tal como se escribe en el store.
// Name es la key del hash; el resto son sus campos.
type Medication struct {
	Name string

	Dosage string
	Via    string // vía de administración
	Adult  string // dosis adulto
	Ped    string // dosis pediátrica
	GPO90  string
}

// Fields devuelve los pares campo/valor en orden fijo (sin name).
// Siempre incluye los cinco campos: escribir una ficha la sobreescribe completa.
func (m Medication) Fields() []string {
	return []string{
		FieldDosage, m.Dosage,
		FieldVia, m.Via,
		FieldAdult, m.Adult,
		FieldPed, m.Ped,
		FieldGPO90, m.GPO90,
	}
}

// Record es el hash leído del store más el campo name.
// Puede traer campos extra: no se impone esquema sobre lo almacenado.
type Record map[string]string
