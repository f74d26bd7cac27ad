package contactform

// Field styling returned by Form.FieldClasses.
const (
	ClassesError  = "border-red-500 focus:border-red-500 focus:ring-red-500"
	ClassesNormal = "border-gray-300 focus:border-blue-500 focus:ring-blue-500"
)

// Form tracks values, touched flags and errors for the contact form. Every
// operation recomputes validity synchronously. A Form is not safe for
// concurrent use.
type Form struct {
	FormData map[Field]string
	Errors   map[Field]string
	Touched  map[Field]bool
}

func New() *Form {
	data := make(map[Field]string, len(Fields))
	for _, f := range Fields {
		data[f] = ""
	}
	return &Form{
		FormData: data,
		Errors:   make(map[Field]string),
		Touched:  make(map[Field]bool),
	}
}

// FromValues builds an untouched form pre-filled with values.
func FromValues(values map[Field]string) *Form {
	f := New()
	for field, value := range values {
		f.FormData[field] = value
	}
	return f
}

// HandleInputChange stores value and, if the field was already touched,
// revalidates it at once.
func (f *Form) HandleInputChange(field Field, value string) {
	f.FormData[field] = value
	if f.Touched[field] {
		f.validate(field)
	}
}

// HandleBlur marks field as touched and validates it.
func (f *Form) HandleBlur(field Field) {
	f.Touched[field] = true
	f.validate(field)
}

func (f *Form) MarkAllTouched() {
	for _, field := range RequiredFields {
		f.Touched[field] = true
	}
}

// ValidateForm validates every required field regardless of touched state and
// reports whether all of them pass.
func (f *Form) ValidateForm() bool {
	valid := true
	for _, field := range RequiredFields {
		if !f.validate(field) {
			valid = false
		}
	}
	return valid
}

// Submit marks required fields touched and validates them. Callers forward
// FormData only when it returns true.
func (f *Form) Submit() bool {
	f.MarkAllTouched()
	return f.ValidateForm()
}

// VisibleError is the error to display for field: empty until it is touched.
func (f *Form) VisibleError(field Field) string {
	if !f.Touched[field] {
		return ""
	}
	return f.Errors[field]
}

func (f *Form) FieldClasses(field Field) string {
	if f.Touched[field] && f.Errors[field] != "" {
		return ClassesError
	}
	return ClassesNormal
}

// ErrorDetails copies the current errors keyed by field name.
func (f *Form) ErrorDetails() map[string]string {
	if len(f.Errors) == 0 {
		return nil
	}
	details := make(map[string]string, len(f.Errors))
	for field, msg := range f.Errors {
		details[string(field)] = msg
	}
	return details
}

func (f *Form) validate(field Field) bool {
	if !isRequired(field) {
		return true
	}
	msg := ValidateField(field, f.FormData[field])
	if msg == "" {
		delete(f.Errors, field)
		return true
	}
	f.Errors[field] = msg
	return false
}
