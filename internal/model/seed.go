package model

// LookupSeed is the fixed content of one catalog table. Row i gets id i+1.
type LookupSeed struct {
	Table string
	Rows  []string
}

var LookupSeeds = []LookupSeed{
	{Table: "nivel_educativo", Rows: []string{
		"Primaria",
		"Secundaria",
		"Superior",
	}},
	{Table: "conocimiento_alt_inversion", Rows: []string{
		"Nulo",
		"Poco",
		"Minimo",
		"Intermedio",
		"Experto",
	}},
	{Table: "experiencia_invirtiendo", Rows: []string{
		"Ninguna",
		"Minima",
		"Intermedia",
		"Avanzada",
		"Experto",
	}},
	{Table: "porcentaje_ahorro_mensual", Rows: []string{
		"Hasta el 10%",
		"Hasta el 25%",
		"Hasta el 50%",
		"Hasta el 75%",
	}},
	{Table: "porcentaje_ahorro_invertir", Rows: []string{
		"Hasta el 10%",
		"Hasta el 25%",
		"Hasta el 50%",
		"Hasta el 75%",
	}},
	{Table: "tiempo_mantener_inversion", Rows: []string{
		"Menos de 1 año",
		"Entre 1 y 5 años",
		"Entre 5 y 10 años",
		"Más de 10 años",
	}},
	{Table: "busca_invertir_en", Rows: []string{
		"Mantener el valor de mis ahorros",
		"Ganarle a la inflación",
		"Obtener rendimientos entre la tasa de inflación y hasta 5% más que la misma",
		"Obtener rendimientos mayores a 5% sobre la tasa de inflación, aún si eso implica asumir mayores riesgos",
	}},
	{Table: "proporcion_inversion_mantener", Rows: []string{
		"Me retiro inmediatamente (vendo el total)",
		"Rescato parte de la inversión y el resto lo asigno a productos de menor riesgo",
		"Mi estrategia no varía, ya creo que para obtener rentabilidades superiores, existe la posibilidad de que hayan rentabilidades negativas (mantengo el total)",
		"Obtener rendimientos mayores a 5% sobre la tasa de inflación, aún si eso implica asumir mayores riesgos",
	}},
	{Table: "tolerancia_al_riesgo", Rows: []string{
		"baja",
		"media",
		"alta",
	}},
	{Table: "objetivo", Rows: []string{
		"Comprar una casa o un departamento",
		"Comprar un vehículo",
		"Crear un fondo para estudios universitarios (propios o de un familiar)",
		"Crear un fondo para el retiro jubilatorio",
		"Preservar el valor de los ahorros en el tiempo",
		"Ahorrar para realizar un viaje",
		"Generar un fondo para iniciar un emprendimiento",
	}},
	{Table: "proposito_sesion", Rows: []string{
		"Fortalecer mis conocimientos financieros",
		"Buscar asistencia para lograr un objetivo personal",
		"Obtener información de los mercados y realizar investigación financiera",
	}},
}

// SeedRows returns the rows of one table with their ids assigned.
func (s LookupSeed) SeedRows() []LookupRow {
	rows := make([]LookupRow, len(s.Rows))
	for i, desc := range s.Rows {
		rows[i] = LookupRow{Id: int16(i + 1), Desc: desc}
	}
	return rows
}
