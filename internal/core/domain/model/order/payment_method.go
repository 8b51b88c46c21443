package order

import (
	"fmt"

	"meddelivery/internal/pkg/errs"
)

// CashOnDeliveryMaxDistanceKm is the distance from which cash on delivery is refused.
const CashOnDeliveryMaxDistanceKm = 10.0

type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	CashOnDelivery
	UPI
	Card
	PayPal
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		CashOnDelivery: "cash_on_delivery",
		UPI:            "upi",
		Card:           "card",
		PayPal:         "paypal",
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a supported payment method", s))
}

func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a supported payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if name, ok := getPaymentMethodStrings()[m]; ok {
		return name
	}
	return "unknown"
}

// ValidateDistance refuses cash on delivery for distant pharmacies.
func (m PaymentMethod) ValidateDistance(distanceKm float64) error {
	if m == CashOnDelivery && distanceKm >= CashOnDeliveryMaxDistanceKm {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("cash on delivery is not available for orders %.2f km away (limit %.0f km)",
				distanceKm, CashOnDeliveryMaxDistanceKm),
		)
	}
	return nil
}

// PaymentStatus is settled by the payment provider; orders start as PaymentPending.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a payment status", string(s)))
	}
}
