package form

// UsageReason is the declared purpose of a Gravamen certificate.
type UsageReason string

const (
	UsageJudicial UsageReason = "Tramites Judiciales"
	UsageBanking  UsageReason = "Instituciones Bancarias"
	UsagePublic   UsageReason = "Instituciones Publicas"
	UsageOther    UsageReason = "Otro"
)

// ParseUsageReason matches s exactly against the known reasons.
// An unknown value reports false and no mark is drawn for it.
func ParseUsageReason(s string) (UsageReason, bool) {
	switch r := UsageReason(s); r {
	case UsageJudicial, UsageBanking, UsagePublic, UsageOther:
		return r, true
	default:
		return "", false
	}
}

// ReceptionMethod is how the applicant wants to receive the certificate.
type ReceptionMethod string

const (
	ReceptionInPerson   ReceptionMethod = "Presencial"
	ReceptionElectronic ReceptionMethod = "Electrónico"
)

// ParseReceptionMethod matches s exactly against the known methods.
func ParseReceptionMethod(s string) (ReceptionMethod, bool) {
	switch m := ReceptionMethod(s); m {
	case ReceptionInPerson, ReceptionElectronic:
		return m, true
	default:
		return "", false
	}
}
