package contract

type PlanErrorCode string

const (
	ErrNoCatalog      PlanErrorCode = "NO_CATALOG"
	ErrInvalidRequest PlanErrorCode = "INVALID_REQUEST"
	ErrEmptyRequest   PlanErrorCode = "EMPTY_REQUEST"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
