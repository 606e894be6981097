package entity

// AnalyticsPeriod selects the granularity of an analytics request. The set
// is closed so that cached analytics keys can be enumerated per owner.
type AnalyticsPeriod string

const (
	AnalyticsPeriodMonthly AnalyticsPeriod = "monthly"
	AnalyticsPeriodYearly  AnalyticsPeriod = "yearly"
)

// AnalyticsPeriods returns every valid analytics period.
func AnalyticsPeriods() []AnalyticsPeriod {
	return []AnalyticsPeriod{AnalyticsPeriodMonthly, AnalyticsPeriodYearly}
}

// Valid reports whether p is a known analytics period.
func (p AnalyticsPeriod) Valid() bool {
	return p == AnalyticsPeriodMonthly || p == AnalyticsPeriodYearly
}
