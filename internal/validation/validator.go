package validation

import "mindflow/internal/domain"

// Validator provides request validation functionality
type Validator struct {
	assessmentSchema *Schema
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		assessmentSchema: MustCompileSchema(assessmentSchemaJSON),
	}
}

// ValidateUserID checks the user_id carried by listing queries and create bodies.
// User ids are generated by the assessment endpoint or by the client.
func (v *Validator) ValidateUserID(userID string) domain.ValidationErrors {
	return v.validateID("user_id", userID)
}

// ValidatePathID checks a resource id taken from the URL.
func (v *Validator) ValidatePathID(field, id string) domain.ValidationErrors {
	return v.validateID(field, id)
}

func (v *Validator) validateID(field, id string) domain.ValidationErrors {
	return domain.ValidateID(field, id)
}

// ValidateAssessmentBody checks the raw submission body against the assessment schema.
// An empty array is accepted.
func (v *Validator) ValidateAssessmentBody(body []byte) domain.ValidationErrors {
	return v.assessmentSchema.Validate(body)
}
