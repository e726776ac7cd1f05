package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mtaylor482/dps-payments/models"
)

// ValidateLuhn validates a card number using the Luhn algorithm. The input
// may be a single string or pre-joined fragments; non-digits are ignored.
func ValidateLuhn(cardNumber string) error {
	var digits []int
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("invalid card number length: must be 13-19 digits")
	}

	sum := 0
	isSecond := false

	for i := len(digits) - 1; i >= 0; i-- {
		digit := digits[i]

		if isSecond {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isSecond = !isSecond
	}

	if sum%10 != 0 {
		return fmt.Errorf("invalid card number: failed Luhn check")
	}

	return nil
}

// ValidateCardFragments joins card-number fragments and validates the result.
func ValidateCardFragments(parts []string) error {
	if len(parts) == 0 {
		return fmt.Errorf("card number is required")
	}
	return ValidateLuhn(strings.Join(parts, ""))
}

// ValidateDateExpiry checks a four-digit mmyy expiry and rejects cards
// already expired.
func ValidateDateExpiry(dateExpiry string) error {
	if len(dateExpiry) != 4 {
		return fmt.Errorf("invalid expiry: must be four digits (mmyy)")
	}

	month, err := strconv.Atoi(dateExpiry[:2])
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("invalid expiry month: must be between 01 and 12")
	}

	year, err := strconv.Atoi(dateExpiry[2:])
	if err != nil {
		return fmt.Errorf("invalid expiry year")
	}
	year += (time.Now().Year() / 100) * 100

	now := time.Now()
	if year < now.Year() {
		return fmt.Errorf("card expired: year %d is in the past", year)
	}
	if year == now.Year() && month < int(now.Month()) {
		return fmt.Errorf("card expired: %02d/%d", month, year)
	}

	return nil
}

// ValidateCvc checks card verification code format.
func ValidateCvc(cvc string) error {
	if len(cvc) < 3 || len(cvc) > 4 {
		return fmt.Errorf("invalid card verification code: must be 3 or 4 digits")
	}

	for _, r := range cvc {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid card verification code: must contain only digits")
		}
	}

	return nil
}

// ValidateAmount checks that an amount is positive.
func ValidateAmount(amount models.Money) error {
	if !amount.Value.IsPositive() {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}
