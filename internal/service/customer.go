package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/umalmyha/erp-crm/internal/model"
	"github.com/umalmyha/erp-crm/internal/repository"
	"github.com/umalmyha/erp-crm/internal/validation"
)

// CustomerService validates customer requests and delegates to repositories
type CustomerService interface {
	Balance(ctx context.Context, customerCode string) (decimal.Decimal, error)
	Create(ctx context.Context, c model.NewCustomer) (string, error)
	Update(ctx context.Context, c model.CustomerChange) error
}

type customerService struct {
	customerRps  repository.CustomerRepository
	referenceRps repository.ReferenceRepository
}

// NewCustomerService builds CustomerService
func NewCustomerService(customerRps repository.CustomerRepository, referenceRps repository.ReferenceRepository) CustomerService {
	return &customerService{
		customerRps:  customerRps,
		referenceRps: referenceRps,
	}
}

func (s *customerService) Balance(ctx context.Context, customerCode string) (decimal.Decimal, error) {
	return s.customerRps.Balance(ctx, customerCode)
}

// Create validates the request, derives the customer group from the company
// flag and asks ERP to create the customer. Validation collects every failed
// rule before giving up.
func (s *customerService) Create(ctx context.Context, c model.NewCustomer) (string, error) {
	err := validation.Run(ctx,
		validation.Required("Name", c.Name),
		validation.MaxLen("Name", c.Name, 130),
		validation.PersonName("Name", c.Name),
		validation.Required("CreatedBy", c.CreatedBy),
		validation.MaxLen("CreatedBy", c.CreatedBy, 30),
		validation.Required("Manager", c.Manager),
		validation.MaxLen("Manager", c.Manager, 3),
		validation.Exists("Manager", c.Manager, "Manager does not exist in the ERP database or is not a customer manager", s.referenceRps.ManagerExists),
		validation.Required("Segment", c.Segment),
		validation.MaxLen("Segment", c.Segment, 5),
		validation.Exists("Segment", c.Segment, "Segment does not exist in the ERP database", s.referenceRps.SegmentExists),
		validation.MaxLen("MobileNumber", c.MobileNumber, 25),
	)
	if err != nil {
		return "", err
	}

	return s.customerRps.Create(ctx, c, model.GroupFor(c.IsCompany))
}

// Update validates the request and rewrites the customer master record.
// Manager is optional here - its existence is checked only when provided.
func (s *customerService) Update(ctx context.Context, c model.CustomerChange) error {
	err := validation.Run(ctx,
		validation.Required("CustomerCode", c.Code),
		validation.ExactLen("CustomerCode", c.Code, 6),
		validation.Exists("CustomerCode", c.Code, "Customer does not exist in the ERP database", s.customerRps.Exists),
		validation.Required("Name", c.Name),
		validation.MaxLen("Name", c.Name, 130),
		validation.PersonName("Name", c.Name),
		validation.Required("ChangedBy", c.ChangedBy),
		validation.MaxLen("ChangedBy", c.ChangedBy, 30),
		validation.MaxLen("Manager", c.Manager, 3),
		validation.Exists("Manager", c.Manager, "Manager does not exist in the ERP database or is not a customer manager", s.referenceRps.ManagerExists),
		validation.Required("Segment", c.Segment),
		validation.MaxLen("Segment", c.Segment, 5),
		validation.Exists("Segment", c.Segment, "Segment does not exist in the ERP database", s.referenceRps.SegmentExists),
		validation.MaxLen("MobileNumber", c.MobileNumber, 25),
	)
	if err != nil {
		return err
	}

	return s.customerRps.Update(ctx, c)
}
