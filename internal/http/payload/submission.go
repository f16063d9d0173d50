package payload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"nsslens/internal/core"

	"github.com/jellydator/validation"
)

// memory threshold for multipart parsing; larger parts spill to temp files
const maxFormMemory = 10 << 20

type SubmissionRequest struct {
	FullName    string
	VitID       string
	PhotoTitle  string
	Theme       string
	Description string
	Photo       *multipart.FileHeader
}

func (p *SubmissionRequest) Decode(r *http.Request) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return fmt.Errorf("parse multipart form: %w", err)
	}

	p.FullName = r.PostFormValue("fullName")
	p.VitID = r.PostFormValue("vitId")
	p.PhotoTitle = r.PostFormValue("photoTitle")
	p.Theme = r.PostFormValue("theme")
	p.Description = r.PostFormValue("description")

	file, header, err := r.FormFile("photoFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			// validation reports the missing file part
			return nil
		}
		return fmt.Errorf("read photo file part: %w", err)
	}
	file.Close()

	p.Photo = header
	return nil
}

func (p SubmissionRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required),
		validation.Field(&p.VitID, validation.Required,
			validation.Match(vitIDPattern).Error("invalid VIT ID format")),
		validation.Field(&p.PhotoTitle, validation.Required),
		validation.Field(&p.Theme, validation.Required),
		validation.Field(&p.Photo,
			validation.Required.Error("no photo file in the request"),
			validation.By(validPhotoFile)),
	)
}

func (p SubmissionRequest) ToMessage() core.SubmissionMessage {
	msg := core.SubmissionMessage{
		FullName:    p.FullName,
		VitID:       p.VitID,
		PhotoTitle:  p.PhotoTitle,
		Theme:       p.Theme,
		Description: p.Description,
	}
	if p.Photo != nil {
		msg.Filename = p.Photo.Filename
	}
	return msg
}

func validPhotoFile(value interface{}) error {
	header, ok := value.(*multipart.FileHeader)
	if !ok || header == nil {
		return nil
	}
	if header.Filename == "" {
		return errors.New("no photo file selected")
	}
	if header.Size == 0 {
		return errors.New("photo file is empty")
	}
	if !AllowedExtension(header.Filename) {
		return errors.New("invalid file type, only png, jpg and jpeg are allowed")
	}
	return nil
}

// AllowedExtension checks the substring after the last dot, case-insensitive.
func AllowedExtension(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return false
	}

	switch strings.ToLower(filename[idx+1:]) {
	case "png", "jpg", "jpeg":
		return true
	}
	return false
}
