package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// FormPayload is a request payload that knows how to populate itself from an
// HTML form body.
type FormPayload interface {
	Decode(r *http.Request) error
}

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request, object FormPayload) error {
	if err := object.Decode(r); err != nil {
		return fmt.Errorf("decoding form payload: %w", err)
	}

	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
