package application

// ValidationError envolve um erro de validação do domínio. A mensagem é a do
// erro de domínio, sem prefixo, para o adapter repassar como detail.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// BusinessRuleViolation envolve um erro de política do domínio.
type BusinessRuleViolation struct {
	Err error
}

func (e *BusinessRuleViolation) Error() string { return e.Err.Error() }
func (e *BusinessRuleViolation) Unwrap() error { return e.Err }
