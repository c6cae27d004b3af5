package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/pkg/token"

	"github.com/shopspring/decimal"
)

var ErrIncompleteProfile = errors.New("user profile is missing survey answers")

const (
	titleLayout = "01/02/2006, 15:04:05"

	DefaultRiskTolerance = "moderada"

	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskBold         = "bold"
)

const userProfileTemplate = "Hola, mi nombre es %s. " +
	"Mi nivel educativo es %s. " +
	"Mi experiencia invirtiendo es %s. " +
	"Mi conocimiento sobre las distintas alternativas de inversión en el mercado de capitales es %s. " +
	"Puedo ahorrar mensualmente %s de mis ingresos. " +
	"Estoy dispuesto/a a invertir %s de mis ahorros. " +
	"Puedo mantener una inversión por %s. " +
	"Cuando realizo inversiones principalmente busco %s. " +
	"Si observo una baja importante en el valor de uno de mis activos, %s."

// FallbackAnswer is persisted as the system text when the RAG service times out.
const FallbackAnswer = "Disculpa, el servicio de análisis está experimentando demoras. " +
	"Mientras tanto, puedo sugerirte que para inversiones básicas consideres: " +
	"1) Fondos de inversión diversificados para principiantes, " +
	"2) Bonos del gobierno para inversiones conservadoras, " +
	"3) Educación financiera continua. " +
	"Por favor, intenta tu consulta nuevamente en unos momentos."

var riskProfiles = map[string]string{
	"baja":  RiskConservative,
	"media": RiskModerate,
	"alta":  RiskBold,
}

// GenerateChatTitle prefixes the creation time to the objective (goal sessions) or the purpose.
func GenerateChatTitle(session *entity.AdvisorySession, now time.Time) string {
	title := "(" + now.Format(titleLayout) + ") "
	if session.PurposeId == entity.PurposeGoalAssistance && session.Objective != nil {
		return title + session.Objective.Desc
	}
	if session.Purpose != nil {
		return title + session.Purpose.Desc
	}
	return title
}

// PrepareFirstTurnPrompt synthesises the opening message of a session from its stored answers.
func PrepareFirstTurnPrompt(session *entity.AdvisorySession) string {
	purpose := ""
	if session.Purpose != nil {
		purpose = strings.ToLower(session.Purpose.Desc)
	}
	prompt := fmt.Sprintf("En esta oportunidad, vine a %s.", purpose)

	if session.Objective == nil {
		return prompt
	}

	capital := decimal.Zero
	if session.InitialCapital != nil {
		capital = *session.InitialCapital
	}

	horizon := DefaultHorizonMonths(session.HorizonMonths)

	risk := DefaultRiskTolerance
	if session.RiskTolerance != nil {
		risk = strings.ToLower(session.RiskTolerance.Desc)
	}

	return prompt + fmt.Sprintf(
		" Quiero %s. Dispongo de un capital inicial de %s. Me gustaría lograr este objetivo en %d meses. Mi tolerancia al riesgo para lograr este objetivo es %s.",
		strings.ToLower(session.Objective.Desc),
		capital.StringFixed(2),
		horizon,
		risk,
	)
}

// DefaultHorizonMonths treats a missing or zero horizon as twelve months.
func DefaultHorizonMonths(h *int16) int {
	if h == nil || *h == 0 {
		return entity.DefaultHorizonMonths
	}
	return int(*h)
}

// PrepareUserProfile renders the fixed profile paragraph sent with every RAG request.
// All eight survey associations must be loaded.
func PrepareUserProfile(user *entity.User) (string, error) {
	answers := []*entity.Lookup{
		user.EducationLevel,
		user.InvestingExperience,
		user.AltInvestmentKnowledge,
		user.MonthlySavingsShare,
		user.SavingsToInvestShare,
		user.HoldingPeriod,
		user.InvestmentGoal,
		user.DrawdownReaction,
	}

	args := make([]interface{}, 0, len(answers)+1)
	args = append(args, token.UserName(user.Email))
	for _, a := range answers {
		if a == nil {
			return "", ErrIncompleteProfile
		}
		args = append(args, strings.ToLower(a.Desc))
	}

	return fmt.Sprintf(userProfileTemplate, args...), nil
}

// RiskProfile maps the session risk tolerance to the advisor vocabulary.
func RiskProfile(session *entity.AdvisorySession) string {
	if session.RiskTolerance == nil {
		return RiskModerate
	}
	if p, ok := riskProfiles[session.RiskTolerance.Desc]; ok {
		return p
	}
	return RiskModerate
}
