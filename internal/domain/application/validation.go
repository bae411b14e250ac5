package application

import "strings"

// ValidateCreateInput validates application creation inputs.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.Position) == "" {
		return ErrInvalidInput
	}
	if req.Status != "" && !ValidStatus(req.Status) {
		return ErrInvalidStatus
	}
	for _, value := range []string{req.ApplicationDate, req.Deadline, req.InterviewDate} {
		if err := validateDate(value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpdateInput validates the fields present in an update request.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.ID == "" {
		return ErrInvalidInput
	}
	if req.Company != nil && strings.TrimSpace(*req.Company) == "" {
		return ErrInvalidInput
	}
	if req.Position != nil && strings.TrimSpace(*req.Position) == "" {
		return ErrInvalidInput
	}
	for _, value := range []*string{req.ApplicationDate, req.Deadline, req.InterviewDate} {
		if value == nil {
			continue
		}
		if err := validateDate(*value); err != nil {
			return err
		}
	}
	return nil
}

// validateDate accepts the empty string (field not set) and any value
// ParseDate understands.
func validateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, ok := ParseDate(value); !ok {
		return ErrInvalidDate
	}
	return nil
}
