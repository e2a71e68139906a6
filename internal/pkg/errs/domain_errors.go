package errs

// Cross-layer sentinels. Usecases mark lower-level failures with these so that
// handlers can map them with errors.Is without importing infra packages.
var (
	ErrNotFound           = New("not found")
	ErrNotAuthorized      = New("not authorized")
	ErrDomainValidation   = New("domain validation error")
	ErrConflict           = New("conflict")
	ErrDatabaseOperation  = New("database operation failed")
	ErrExternalDependency = New("external dependency failed")
)
