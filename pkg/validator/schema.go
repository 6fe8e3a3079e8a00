package validator

// Field binds a field name to its ordered validators.
type Field struct {
	Name       string
	Validators []Validator
}

// F is shorthand for declaring a Field.
func F(name string, validators ...Validator) Field {
	return Field{Name: name, Validators: validators}
}

// Schema is an ordered list of fields to validate.
type Schema []Field

// NewSchema builds a Schema. Repeated field names are merged,
// keeping the validators in declaration order.
func NewSchema(fields ...Field) Schema {
	s := make(Schema, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Name]; ok {
			merged := make([]Validator, 0, len(s[i].Validators)+len(f.Validators))
			merged = append(merged, s[i].Validators...)
			s[i].Validators = append(merged, f.Validators...)
			continue
		}
		index[f.Name] = len(s)
		s = append(s, Field{Name: f.Name, Validators: append([]Validator(nil), f.Validators...)})
	}
	return s
}

// Field returns the field declared under name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the declared field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// ValidateField runs the field's validators in order and returns the first
// failure among those whose gate lets them apply.
func ValidateField(values Values, field Field) Result {
	value := values.Get(field.Name)
	for _, v := range field.Validators {
		if !v.Applies(values) {
			continue
		}
		if res := v.Run(value, values); !res.Valid {
			return res
		}
	}
	return Pass()
}

// ValidateForm validates values against schema and reports at most one message
// per failed field. Fields missing from schema are ignored.
func ValidateForm(values Values, schema Schema) ErrorMap {
	errs := make(ErrorMap)
	for _, field := range schema {
		if _, done := errs[field.Name]; done {
			continue
		}
		if res := ValidateField(values, field); !res.Valid {
			errs[field.Name] = res.Message
		}
	}
	return errs
}

// Validate is ValidateForm returning an error, nil when the form is valid.
func Validate(values Values, schema Schema) error {
	return ValidateForm(values, schema).Err()
}
