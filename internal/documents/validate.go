package documents

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so violation paths match the wire
	// format: "items[0].quantity", "presentation.watermark.opacity".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterValidation("document_kind", func(fl validator.FieldLevel) bool {
		return Kind(fl.Field().String()).Valid()
	})
	v.RegisterValidation("document_theme", func(fl validator.FieldLevel) bool {
		return Theme(fl.Field().String()).Valid()
	})

	v.RegisterStructValidation(receiptOnlyRules, Document{})

	return v
}

// receiptOnlyRules rejects presentation options the invoice layout does not
// render.
func receiptOnlyRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(Document)
	if d.Kind != KindInvoice {
		return
	}

	if d.Presentation.DarkMode {
		sl.ReportError(d.Presentation.DarkMode, "presentation.dark_mode", "Presentation.DarkMode", "receipt_only", "")
	}
	if d.Presentation.Watermark != nil {
		sl.ReportError(d.Presentation.Watermark, "presentation.watermark", "Presentation.Watermark", "receipt_only", "")
	}
}

// Validate checks the document against its field constraints and returns a
// ValidationError listing every violation, or nil when the document is valid.
// Validation runs before any persistence or export attempt.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	verr := &ValidationError{}
	for _, fe := range ferrs {
		verr.add(fieldPath(fe), fieldMessage(fe))
	}
	return verr
}

// fieldPath strips the root struct segment from the violation namespace:
// "Document.items[0].quantity" becomes "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "document_kind":
		return fmt.Sprintf("unknown kind %q", fe.Value())
	case "document_theme":
		return fmt.Sprintf("unknown theme %q", fe.Value())
	case "len":
		return "must be a 3-letter currency code"
	case "datetime":
		return "must be formatted YYYY-MM-DD"
	case "required":
		return "required"
	case "receipt_only":
		return "only supported for receipts"
	case "min":
		return "must be >= " + fe.Param()
	case "max":
		return "must be <= " + fe.Param()
	default:
		return fe.Tag()
	}
}
