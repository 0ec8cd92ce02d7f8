package domain

// QualityTier is the externally controlled rendering quality level.
type QualityTier int

// Available quality tiers.
const (
	QualityLow QualityTier = iota
	QualityMedium
	QualityHigh
)

// String implements fmt.Stringer.
func (t QualityTier) String() string {
	switch t {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseQualityTier maps a string to a tier, defaulting to medium for
// unrecognized values.
func ParseQualityTier(s string) QualityTier {
	switch s {
	case "low":
		return QualityLow
	case "high":
		return QualityHigh
	default:
		return QualityMedium
	}
}
