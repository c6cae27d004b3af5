package entity

// Lookup is one row of a seeded survey catalog such as nivel_educativo.
type Lookup struct {
	Id   int16
	Desc string
}

// Catalog table names, in migration order.
const (
	CatalogEducationLevel         = "nivel_educativo"
	CatalogAltInvestmentKnowledge = "conocimiento_alt_inversion"
	CatalogInvestingExperience    = "experiencia_invirtiendo"
	CatalogMonthlySavingsShare    = "porcentaje_ahorro_mensual"
	CatalogSavingsToInvestShare   = "porcentaje_ahorro_invertir"
	CatalogHoldingPeriod          = "tiempo_mantener_inversion"
	CatalogInvestmentGoal         = "busca_invertir_en"
	CatalogDrawdownReaction       = "proporcion_inversion_mantener"
	CatalogRiskTolerance          = "tolerancia_al_riesgo"
	CatalogObjective              = "objetivo"
	CatalogSessionPurpose         = "proposito_sesion"
)

var Catalogs = []string{
	CatalogEducationLevel,
	CatalogAltInvestmentKnowledge,
	CatalogInvestingExperience,
	CatalogMonthlySavingsShare,
	CatalogSavingsToInvestShare,
	CatalogHoldingPeriod,
	CatalogInvestmentGoal,
	CatalogDrawdownReaction,
	CatalogRiskTolerance,
	CatalogObjective,
	CatalogSessionPurpose,
}

func IsCatalog(name string) bool {
	for _, c := range Catalogs {
		if c == name {
			return true
		}
	}
	return false
}
