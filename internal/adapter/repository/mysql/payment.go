package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	paymentDomain "credit-engine/internal/domain/payment"
)

const paymentEntity = "payment"

const joinApplications = "JOIN loan_applications ON loan_applications.id = payments.application_id"

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

// CreateBatch inserts the whole schedule in one statement. A second schedule for
// the same application trips ux_payments_application_installment and comes back
// as ErrScheduleExist; any other duplicate (a payment number) is a plain conflict.
func (r *PaymentRepository) CreateBatch(ctx context.Context, items []*paymentDomain.Installment) error {
	if len(items) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Create(items).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// translated errors drop the index name, so look for the schedule itself
		if n, cerr := r.CountByApplication(ctx, items[0].ApplicationID); cerr == nil && n > 0 {
			return paymentDomain.ErrScheduleExist.Wrap(err)
		}
	}
	return translate(paymentEntity, paymentDomain.ErrNotFound, err)
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Installment) error {
	return translate(paymentEntity, paymentDomain.ErrNotFound, r.db.WithContext(ctx).Save(p).Error)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint64) (*paymentDomain.Installment, error) {
	var out paymentDomain.Installment
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, translate(paymentEntity, paymentDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*paymentDomain.Installment, error) {
	var out paymentDomain.Installment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id).Error
	if err != nil {
		return nil, translate(paymentEntity, paymentDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *PaymentRepository) GetByNumber(ctx context.Context, number string) (*paymentDomain.Installment, error) {
	var out paymentDomain.Installment
	if err := r.db.WithContext(ctx).Where("payment_number = ?", number).First(&out).Error; err != nil {
		return nil, translate(paymentEntity, paymentDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *PaymentRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]*paymentDomain.Installment, error) {
	var out []*paymentDomain.Installment
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("installment_number ASC").
		Find(&out).Error
	return out, translate(paymentEntity, paymentDomain.ErrNotFound, err)
}

func (r *PaymentRepository) ListByStatus(ctx context.Context, status paymentDomain.Status) ([]*paymentDomain.Installment, error) {
	var out []*paymentDomain.Installment
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	return out, translate(paymentEntity, paymentDomain.ErrNotFound, err)
}

func (r *PaymentRepository) ListByBorrower(ctx context.Context, borrowerID uint64, status *paymentDomain.Status) ([]*paymentDomain.Installment, error) {
	q := r.db.WithContext(ctx).
		Select("payments.*").
		Joins(joinApplications).
		Where("loan_applications.borrower_id = ?", borrowerID)
	if status != nil {
		q = q.Where("payments.status = ?", *status)
	}
	var out []*paymentDomain.Installment
	err := q.Order("payments.due_date ASC, payments.id ASC").Find(&out).Error
	return out, translate(paymentEntity, paymentDomain.ErrNotFound, err)
}

func (r *PaymentRepository) ListPendingDueBefore(ctx context.Context, before time.Time) ([]*paymentDomain.Installment, error) {
	var out []*paymentDomain.Installment
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", paymentDomain.StatusPending, before).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	return out, translate(paymentEntity, paymentDomain.ErrNotFound, err)
}

func (r *PaymentRepository) CountByApplication(ctx context.Context, applicationID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Installment{}).
		Where("application_id = ?", applicationID).
		Count(&n).Error
	return n, translate(paymentEntity, paymentDomain.ErrNotFound, err)
}

func (r *PaymentRepository) OwnerOf(ctx context.Context, paymentID uint64) (uint64, error) {
	var owners []uint64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Installment{}).
		Joins(joinApplications).
		Where("payments.id = ?", paymentID).
		Pluck("loan_applications.borrower_id", &owners).Error
	if err != nil {
		return 0, translate(paymentEntity, paymentDomain.ErrNotFound, err)
	}
	if len(owners) == 0 {
		return 0, paymentDomain.ErrNotFound
	}
	return owners[0], nil
}
