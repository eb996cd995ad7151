package enums

// TrendDirection summarizes whether revenue is moving over a span of weeks.
type TrendDirection string

const (
	TrendGrowing   TrendDirection = "GROWING"
	TrendDeclining TrendDirection = "DECLINING"
	TrendStable    TrendDirection = "STABLE"
)

// String implements fmt.Stringer.
func (t TrendDirection) String() string {
	return string(t)
}
