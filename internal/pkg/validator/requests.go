// Package validator checks incoming request shapes before any downstream
// call. Malformed client input is the only error class that produces a
// 400; everything provider-related fails open further down the stack.
package validator

import (
	"fmt"

	"github.com/momorit/mein-formularprojekt/internal/entity"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateChat(req *entity.ChatRequest) error {
	if req.Message == "" {
		return fmt.Errorf("%w: message", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateFormSave(req *entity.FormSaveRequest) error {
	if req.Values == nil {
		return fmt.Errorf("%w: values", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateDialogMessage(req *entity.DialogMessageRequest) error {
	if req.Message == "" {
		return fmt.Errorf("%w: message", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateDialogSave(req *entity.DialogSaveRequest) error {
	if req.Answers == nil {
		return fmt.Errorf("%w: answers", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateStudySave(req *entity.StudySaveRequest) error {
	if req.ParticipantID == "" {
		return fmt.Errorf("%w: participantId", entity.ErrMissingField)
	}
	return nil
}
