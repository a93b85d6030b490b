package flow

// Field identifies the input a failed validation should move focus to.
type Field int

const (
	FieldNone Field = iota
	FieldPassword
	FieldConfirm
)

// ValidationError is a local, pre-network rejection of a form submission.
// It never reaches the wire; Msg is surfaced as the form alert.
type ValidationError struct {
	Msg   string
	Focus Field
}

func (e *ValidationError) Error() string {
	return e.Msg
}
