package enums

// StockStatus classifies a product's inventory risk.
type StockStatus string

const (
	StockStatusOK         StockStatus = "OK"
	StockStatusLow        StockStatus = "LOW"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// String implements fmt.Stringer.
func (s StockStatus) String() string {
	return string(s)
}
