package domain

// WarningKind classifies an unsafe intake pattern.
type WarningKind string

const (
	WarningRapidIntake    WarningKind = "rapid_intake"
	WarningExcessiveDaily WarningKind = "excessive_daily"
	WarningExtremeDaily   WarningKind = "extreme_daily"
)

func (k WarningKind) String() string {
	return string(k)
}

// SeverityWarning is the only severity safety checks produce. Warnings
// are advisory and never block the intake they describe.
const SeverityWarning = "warning"

type SafetyWarning struct {
	Kind     WarningKind `json:"kind"`
	Message  string      `json:"message"`
	Severity string      `json:"severity"`
}

type SafetyCheck struct {
	HasWarning bool            `json:"has_warning"`
	Warnings   []SafetyWarning `json:"warnings"`
}
