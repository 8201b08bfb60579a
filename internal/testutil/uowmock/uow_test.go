package uowmock

import (
	"context"
	"errors"
	"testing"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/uow"
	"credit-engine/internal/testutil/applicationmock"
	"credit-engine/internal/testutil/paymentmock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	apps := &applicationmock.Repo{}
	pays := &paymentmock.Repo{}
	repos := uow.Repos{Applications: apps, Payments: pays}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Applications != apps || r.Payments != pays {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_Defaults_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := New()
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinApplicationTx(ctx, 1, func(uow.Repos, *application.Application) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinApplicationTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinPaymentTx(ctx, 1, func(uow.Repos, *payment.Installment) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinPaymentTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_LoadsLockedRows(t *testing.T) {
	ctx := context.Background()
	locked := &application.Application{ID: 7, Number: "APP-7"}
	inst := &payment.Installment{ID: 9}
	repos := uow.Repos{
		Applications: &applicationmock.Repo{
			GetByIDForUpdateFn: func(_ context.Context, id uint64) (*application.Application, error) {
				if id != 7 {
					t.Fatalf("unexpected application id %d", id)
				}
				return locked, nil
			},
		},
		Payments: &paymentmock.Repo{
			GetByIDForUpdateFn: func(_ context.Context, id uint64) (*payment.Installment, error) {
				return inst, nil
			},
		},
	}
	m := Passthrough(repos)

	var gotApp *application.Application
	if err := m.WithinApplicationTx(ctx, 7, func(_ uow.Repos, a *application.Application) error {
		gotApp = a
		return nil
	}); err != nil {
		t.Fatalf("WithinApplicationTx: %v", err)
	}
	if gotApp != locked {
		t.Fatalf("application not forwarded")
	}

	sentinel := errors.New("boom")
	if err := m.WithinPaymentTx(ctx, 9, func(_ uow.Repos, p *payment.Installment) error {
		if p != inst {
			t.Fatalf("installment not forwarded")
		}
		return sentinel
	}); !errors.Is(err, sentinel) {
		t.Fatalf("WithinPaymentTx: want sentinel, got %v", err)
	}
}

func TestPassthrough_LockErrorSkipsCallback(t *testing.T) {
	repos := uow.Repos{Applications: &applicationmock.Repo{
		GetByIDForUpdateFn: func(context.Context, uint64) (*application.Application, error) {
			return nil, application.ErrNotFound
		},
	}}
	err := Passthrough(repos).WithinApplicationTx(context.Background(), 1, func(uow.Repos, *application.Application) error {
		t.Fatalf("callback must not run")
		return nil
	})
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}
