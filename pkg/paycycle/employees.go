package paycycle

import (
	"context"
	"strconv"
)

func (c *Client) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (Employee, error) {
	var out Employee
	err := c.post(ctx, "/organization/employees", in, &out)
	return out, err
}

func (c *Client) ListEmployees(ctx context.Context, search, status string, page, limit int) (EmployeeList, error) {
	q := map[string]string{"search": search, "status": status}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}

	var out EmployeeList
	_, err := c.get(ctx, "/organization/employees"+query(q), &out)
	return out, err
}

func (c *Client) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	var out Employee
	_, err := c.get(ctx, "/organization/employees/"+employeeID, &out)
	return out, err
}

func (c *Client) UpdateEmployee(ctx context.Context, employeeID string, in UpdateEmployeeInput) (Employee, error) {
	var out Employee
	err := c.put(ctx, "/organization/employees/"+employeeID, in, &out)
	return out, err
}

func (c *Client) UpsertBankDetail(ctx context.Context, employeeID string, in UpsertBankDetailInput) (Employee, error) {
	var out Employee
	err := c.put(ctx, "/organization/employees/"+employeeID+"/bank-detail", in, &out)
	return out, err
}

// GetMyProfile reads the calling employee's own record.
func (c *Client) GetMyProfile(ctx context.Context) (Employee, error) {
	var out Employee
	_, err := c.get(ctx, "/employee/profile", &out)
	return out, err
}

func (c *Client) UpsertMyBankDetail(ctx context.Context, in UpsertBankDetailInput) (Employee, error) {
	var out Employee
	err := c.put(ctx, "/employee/bank-detail", in, &out)
	return out, err
}
