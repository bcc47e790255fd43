package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"docgraph/domain/core/entities"
	pkgerrors "docgraph/pkg/errors"
)

// DocumentValidator validates incoming document descriptors before they are
// admitted to an assembly run.
type DocumentValidator struct {
	validate *validator.Validate
}

// NewDocumentValidator creates a document validator
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateDocument checks a single descriptor against its struct constraints
func (v *DocumentValidator) ValidateDocument(doc entities.Document) error {
	if err := v.validate.Struct(doc); err != nil {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("invalid document descriptor %q: %v", doc.SourcePath, err),
		).WithCause(err)
	}
	return nil
}

// ValidateBatch checks a whole run's descriptors, failing on the first
// invalid one. Source-path uniqueness is the Graph aggregate's concern, not
// the validator's; this only guards descriptor shape.
func (v *DocumentValidator) ValidateBatch(docs []entities.Document) error {
	for i, doc := range docs {
		if err := v.ValidateDocument(doc); err != nil {
			return pkgerrors.Wrapf(err, "document %d of %d", i+1, len(docs))
		}
	}
	return nil
}
