package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GeneratePixCode builds a BR-code shaped PIX payload for the given amount.
// No real provider is integrated, so the code is opaque: it only needs to be
// unique per purchase and stable enough to display and copy.
func GeneratePixCode(amount float64) string {
	return fmt.Sprintf(
		"00020126580014BR.GOV.BCB.PIX0136%s520400005303986540%.2f5802BR5913CentralPalpite6009Sao Paulo62070503***6304CAFE",
		uuid.NewString(), amount,
	)
}
