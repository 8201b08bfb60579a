package product

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/errs"
	productDomain "credit-engine/internal/domain/product"
	"credit-engine/internal/infrastructure/logging"
)

var ErrInUse = errs.Conflict("loan product", "loan product has applications and cannot be deleted")

type Usecase struct {
	products     productDomain.Repository
	applications application.Repository
	log          logrus.FieldLogger
}

func NewUsecase(products productDomain.Repository, apps application.Repository, log logrus.FieldLogger) *Usecase {
	if log == nil {
		log = logging.Discard()
	}
	return &Usecase{products: products, applications: apps, log: log}
}

func (in ProductInput) apply(p *productDomain.Product) {
	p.Name = in.Name
	p.Description = in.Description
	p.InterestRate = in.InterestRate
	p.MinAmount = in.MinAmount
	p.MaxAmount = in.MaxAmount
	p.MinTerm = in.MinTerm
	p.MaxTerm = in.MaxTerm
	p.CommissionRate = in.CommissionRate
	p.IsActive = in.IsActive
	p.Requirements = in.Requirements
}

func (u *Usecase) Create(ctx context.Context, in ProductInput) (*productDomain.Product, error) {
	p := &productDomain.Product{}
	in.apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.WithField("product_id", p.ID).Info("loan product created")
	return p, nil
}

func (u *Usecase) Update(ctx context.Context, productID uint64, in ProductInput) (*productDomain.Product, error) {
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	in.apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := u.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Activate(ctx context.Context, productID uint64) (*productDomain.Product, error) {
	return u.setActive(ctx, productID, true)
}

// Deactivate hides the product from new applications; existing ones are kept.
func (u *Usecase) Deactivate(ctx context.Context, productID uint64) (*productDomain.Product, error) {
	return u.setActive(ctx, productID, false)
}

func (u *Usecase) setActive(ctx context.Context, productID uint64, active bool) (*productDomain.Product, error) {
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.IsActive == active {
		return p, nil
	}
	p.IsActive = active
	if err := u.products.Save(ctx, p); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"product_id": p.ID, "active": active}).Info("loan product status changed")
	return p, nil
}

// Delete refuses products that any application refers to.
func (u *Usecase) Delete(ctx context.Context, productID uint64) error {
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return err
	}
	n, err := u.applications.CountByProduct(ctx, productID)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return u.products.Delete(ctx, productID)
}

func (u *Usecase) Get(ctx context.Context, productID uint64) (*productDomain.Product, error) {
	return u.products.GetByID(ctx, productID)
}

func (u *Usecase) ListActive(ctx context.Context) ([]*productDomain.Product, error) {
	return u.products.ListActive(ctx)
}

// Match lists active products whose amount range covers amount.
func (u *Usecase) Match(ctx context.Context, amount decimal.Decimal) ([]*productDomain.Product, error) {
	if !amount.IsPositive() {
		return nil, errs.Validation("loan product", "amount must be positive")
	}
	return u.products.ListByAmount(ctx, amount)
}
