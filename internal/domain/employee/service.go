package employee

import "context"

type EmployeeService interface {
	// Organization side
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpsertBankDetail(ctx context.Context, req UpsertBankDetailRequest) (BankDetailResponse, error)

	// Employee side
	GetMyProfile(ctx context.Context) (EmployeeResponse, error)
	UpsertMyBankDetail(ctx context.Context, req UpsertBankDetailRequest) (BankDetailResponse, error)
}
