package pricing

import (
	"math"

	"github.com/familyexpressec/courier-api/internal/httperr"
)

// Tarifas vigentes (esquema por peso). El FODINFA aplica SOLO al valor
// declarado de la mercadería, nunca al flete ni al impuesto courier.
const (
	RatePerPound   = 4.00
	CourierTax     = 20.00
	FodinfaRate    = 0.005
	FlatRateG      = 25.00
	FlatWeightLbG  = 8.0
	MinWeightLb    = 1.0
	MaxDeclaredUSD = 400.00
)

type Category string

const (
	CategoryB Category = "B"
	CategoryG Category = "G"
)

func (c Category) IsValid() bool {
	return c == CategoryB || c == CategoryG
}

type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Quote es el desglose ordenado de costos de un envío. El total es
// exactamente la suma de las líneas, centavo a centavo.
type Quote struct {
	Category Category `json:"category"`
	WeightLb float64  `json:"weight_lb"`

	Shipping   float64 `json:"shipping"`
	CourierTax float64 `json:"courier_tax"`
	Fodinfa    float64 `json:"fodinfa"`

	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// Calculate cotiza un envío para un valor declarado y un peso en libras.
// Peso no positivo → piso de 1 lb (categoría G lo ignora: tarifa plana
// hasta 8 lb). Determinística, sin I/O.
func Calculate(category Category, declaredValue, weightLb float64) (Quote, error) {
	if !category.IsValid() {
		return Quote{}, httperr.ErrBusiness("invalid_category")
	}
	if declaredValue < 0 {
		return Quote{}, httperr.ErrBusiness("negative_declared_value")
	}

	if weightLb < MinWeightLb {
		weightLb = MinWeightLb
	}

	fodinfa := round2(declaredValue * FodinfaRate)

	if category == CategoryG {
		base := round2(FlatRateG)
		q := Quote{
			Category: CategoryG,
			WeightLb: weightLb,
			Shipping: base,
			Fodinfa:  fodinfa,
			Items: []LineItem{
				{Label: "Tarifa plana (hasta 8 lb)", Amount: base},
				{Label: "FODINFA (0.5% del valor)", Amount: fodinfa},
			},
		}
		q.Total = sumItems(q.Items)
		return q, nil
	}

	shipping := round2(RatePerPound * weightLb)
	tax := round2(CourierTax)

	q := Quote{
		Category:   CategoryB,
		WeightLb:   weightLb,
		Shipping:   shipping,
		CourierTax: tax,
		Fodinfa:    fodinfa,
		Items: []LineItem{
			{Label: "Tarifa de envío", Amount: shipping},
			{Label: "Impuesto Courier", Amount: tax},
			{Label: "FODINFA (0.5% del valor)", Amount: fodinfa},
		},
	}
	q.Total = sumItems(q.Items)
	return q, nil
}

func sumItems(items []LineItem) float64 {
	var cents int64
	for _, it := range items {
		cents += int64(math.Round(it.Amount * 100))
	}
	return float64(cents) / 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
