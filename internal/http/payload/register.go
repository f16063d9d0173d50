package payload

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"nsslens/internal/core"

	"github.com/jellydator/validation"
)

// vitIDPattern is the fixed institutional ID format: 2 digits, 3 uppercase
// letters, 4 digits.
var vitIDPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{3}[0-9]{4}$`)

type RegisterRequest struct {
	FullName        string
	VitID           string
	Email           string
	Password        string
	ConfirmPassword string
}

func (p *RegisterRequest) Decode(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	p.FullName = r.PostFormValue("fullName")
	p.VitID = r.PostFormValue("vitId")
	p.Email = r.PostFormValue("email")
	p.Password = r.PostFormValue("password")
	p.ConfirmPassword = r.PostFormValue("confirmPassword")

	return nil
}

func (p RegisterRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required),
		validation.Field(&p.VitID, validation.Required,
			validation.Match(vitIDPattern).Error("invalid VIT ID format")),
		validation.Field(&p.Email, validation.Required),
		validation.Field(&p.Password, validation.Required),
		validation.Field(&p.ConfirmPassword, validation.Required,
			validation.By(p.matchesPassword)),
	)
}

func (p RegisterRequest) matchesPassword(value interface{}) error {
	confirm, _ := value.(string)
	if confirm != p.Password {
		return errors.New("passwords do not match")
	}
	return nil
}

func (p RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		FullName: p.FullName,
		VitID:    p.VitID,
		Email:    p.Email,
		Password: p.Password,
	}
}
