package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"meddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "123")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderID", "123", cause)

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderID, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("medicineID", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("paymentMethod")

		assert.Equal(t, "paymentMethod", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("paymentMethod", cause)

		assert.Equal(t, "paymentMethod", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("distanceKm", 150, 0, 120)

		assert.Equal(t, "distanceKm", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is distanceKm, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 0, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("pharmacyID")

		assert.Equal(t, "pharmacyID", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: pharmacyID", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("pharmacyID", cause)

		assert.Equal(t, "pharmacyID", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: pharmacyID (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("order")

		assert.Equal(t, "order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: order", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("row was updated concurrently")
		err := errs.NewVersionIsInvalidErrorWithCause("order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order (cause: row was updated concurrently)", err.Error())
	})
}

func TestActionIsForbiddenError(t *testing.T) {
	t.Run("NewActionIsForbiddenError", func(t *testing.T) {
		err := errs.NewActionIsForbiddenError("driver", "accept order")

		assert.Equal(t, "driver", err.Actor)
		assert.Equal(t, "accept order", err.Action)
		assert.Equal(t, "action is forbidden: driver cannot accept order", err.Error())
		assert.Equal(t, errs.ErrActionIsForbidden, err.Unwrap())
	})

	t.Run("NewActionIsForbiddenErrorWithCause", func(t *testing.T) {
		err := errs.NewActionIsForbiddenErrorWithCause("customer", "view order", errors.New("not the owner"))

		assert.Equal(t, "action is forbidden: customer cannot view order (cause: not the owner)", err.Error())
	})
}

func TestTransitionIsInvalidError(t *testing.T) {
	t.Run("NewTransitionIsInvalidError", func(t *testing.T) {
		err := errs.NewTransitionIsInvalidError("pending", "in_transit")

		assert.Equal(t, "pending", err.From)
		assert.Equal(t, "in_transit", err.To)
		assert.Equal(t, "transition is invalid: pending -> in_transit", err.Error())
		assert.Equal(t, errs.ErrTransitionIsInvalid, err.Unwrap())
	})

	t.Run("NewTransitionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewTransitionIsInvalidErrorWithCause("delivered", "cancelled", errors.New("terminal"))

		assert.Equal(t, "transition is invalid: delivered -> cancelled (cause: terminal)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrActionIsForbidden)
		require.Error(t, errs.ErrTransitionIsInvalid)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "action is forbidden", errs.ErrActionIsForbidden.Error())
		assert.Equal(t, "transition is invalid", errs.ErrTransitionIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderID", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("paymentMethod")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("distanceKm", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("pharmacyID")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidError("order")
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)

		forbiddenErr := errs.NewActionIsForbiddenError("driver", "cancel order")
		require.ErrorIs(t, forbiddenErr, errs.ErrActionIsForbidden)

		transitionErr := errs.NewTransitionIsInvalidError("pending", "delivered")
		require.ErrorIs(t, transitionErr, errs.ErrTransitionIsInvalid)
	})
}

func TestErrorsMatchTheirCause(t *testing.T) {
	errInactive := errors.New("pharmacy is not accepting orders")

	err := fmt.Errorf("place order: %w", errs.NewValueIsInvalidErrorWithCause("pharmacyID", errInactive))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errInactive)
	assert.NotErrorIs(t, errs.NewValueIsInvalidError("pharmacyID"), errInactive)
}
