package resizer

import "github.com/GunmeetS/rotate-resize-image/internal/validate"

// MaxFileSize is the largest upload ValidateFile accepts, in bytes.
const MaxFileSize = validate.MaxFileSize

// SupportedTypes lists the MIME types ValidateFile accepts.
func SupportedTypes() []string {
	return append([]string(nil), validate.SupportedTypes...)
}

// ValidateFile checks the declared type and size of f. A nil file is
// invalid.
func ValidateFile(f *File) ValidationResult {
	if f == nil {
		return ValidationResult{Error: "no file"}
	}
	return fromValidate(validate.File(f.Type, f.Size()))
}

// ValidateOptions checks a loosely typed options bag such as decoded
// JSON: maxWidth and maxHeight must be positive, quality (if present)
// within [0,1].
func ValidateOptions(opts map[string]any) ValidationResult {
	return fromValidate(validate.Options(opts))
}

// Validate applies ValidateOptions to typed options. A zero Quality
// stands for the default and always passes.
func (o Options) Validate() ValidationResult {
	return fromValidate(validate.Dimensions(o.MaxWidth, o.MaxHeight, o.quality()))
}

func fromValidate(r validate.Result) ValidationResult {
	return ValidationResult{Valid: r.Valid, Error: r.Error}
}
