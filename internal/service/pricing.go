package service

import "fmt"

// DisplayPrice resolves the price to show for a prestation. When the
// request is urgent the base tarif is multiplied by the urgency factor
// and truncated toward zero (integer conversion, not rounding), and
// the label keeps the non-urgent tarif for comparison.
func DisplayPrice(tarif int, urgent bool, factor float64) (int, string) {
	if !urgent {
		return tarif, fmt.Sprintf("%d€", tarif)
	}
	adjusted := int(float64(tarif) * factor)
	return adjusted, fmt.Sprintf("%d€ (urgent) - Normal: %d€", adjusted, tarif)
}
