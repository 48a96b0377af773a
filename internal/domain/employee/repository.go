package employee

import "context"

// EmployeeRepository scopes every lookup by organizationID to prevent
// cross-organization data access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, organizationID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmail(ctx context.Context, email string, organizationID string) (Employee, error)
	List(ctx context.Context, organizationID string, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context, organizationID string) ([]Employee, error)
	Update(ctx context.Context, organizationID string, req UpdateEmployeeRequest) error
	LinkUser(ctx context.Context, id string, userID string) error

	GetBankDetail(ctx context.Context, employeeID string) (BankDetail, error)
	UpsertBankDetail(ctx context.Context, detail BankDetail) (BankDetail, error)
}
