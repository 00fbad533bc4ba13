package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrInvalidRange  = errors.New("invalid date range: start date after end date")
	ErrRangeTooLarge error = rangeTooLarge{}
	ErrInvalidInput  = errors.New("invalid input")

	// Erros de infraestrutura. ErrStoreUnavailable é tratado dentro do serviço e não chega aos handlers.
	ErrStoreUnavailable = errors.New("sales store unavailable")
	ErrInternal         = errors.New("internal reporting error")
)

// rangeTooLarge também responde como ErrInvalidRange em errors.Is
type rangeTooLarge struct{}

func (rangeTooLarge) Error() string        { return "invalid date range: exceeds the maximum number of days" }
func (rangeTooLarge) Is(target error) bool { return target == ErrInvalidRange }

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
