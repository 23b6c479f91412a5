package utils

// Macros groups the four tracked macro-nutrient values. Calories in kcal,
// the rest in grams.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Scale multiplies per-unit macros by a quantity.
func (m Macros) Scale(qty float64) Macros {
	return Macros{
		Calories: m.Calories * qty,
		Protein:  m.Protein * qty,
		Carbs:    m.Carbs * qty,
		Fat:      m.Fat * qty,
	}
}

// Add returns the field-wise sum of two macro sets.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// Remaining subtracts consumed from m, clamping each field at zero.
func (m Macros) Remaining(consumed Macros) Macros {
	return Macros{
		Calories: clampZero(m.Calories - consumed.Calories),
		Protein:  clampZero(m.Protein - consumed.Protein),
		Carbs:    clampZero(m.Carbs - consumed.Carbs),
		Fat:      clampZero(m.Fat - consumed.Fat),
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
