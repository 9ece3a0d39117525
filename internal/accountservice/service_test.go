package accountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/test"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var errDB = errors.New("driver: bad connection")

func TestAuthenticate(t *testing.T) {
	account := test.RandomAccount()
	account.FailedAttempts = 2

	reset := account
	reset.FailedAttempts = 0

	testCases := []struct {
		name          string
		pin           string
		buildStubs    func(ar *MockAccountRepo)
		checkResponse func(got domain.Account, err error)
	}{
		{
			name: "OK",
			pin:  account.PIN,
			buildStubs: func(ar *MockAccountRepo) {
				ar.EXPECT().
					GetByCredentials(gomock.Any(), account.CardNumber, account.PIN).
					Times(1).
					Return(account, nil)
				ar.EXPECT().
					ResetFailedAttempts(gomock.Any(), account.ID, gomock.Any()).
					Times(1).
					Return(reset, nil)
			},
			checkResponse: func(got domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, reset, got)
			},
		},
		{
			name: "ErrAuthFailure",
			pin:  "0000",
			buildStubs: func(ar *MockAccountRepo) {
				ar.EXPECT().
					GetByCredentials(gomock.Any(), account.CardNumber, "0000").
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				ar.EXPECT().ResetFailedAttempts(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.Account, err error) {
				require.ErrorIs(t, err, domain.ErrAuthFailure)
				require.Empty(t, got)
			},
		},
		{
			name: "GetByCredentialsFault",
			pin:  account.PIN,
			buildStubs: func(ar *MockAccountRepo) {
				ar.EXPECT().
					GetByCredentials(gomock.Any(), account.CardNumber, account.PIN).
					Times(1).
					Return(domain.Account{}, errDB)
			},
			checkResponse: func(got domain.Account, err error) {
				require.ErrorIs(t, err, errorspkg.ErrOperationFailed)
				require.ErrorIs(t, err, errDB)
				require.Empty(t, got)
			},
		},
		{
			name: "ResetFault",
			pin:  account.PIN,
			buildStubs: func(ar *MockAccountRepo) {
				ar.EXPECT().
					GetByCredentials(gomock.Any(), account.CardNumber, account.PIN).
					Times(1).
					Return(account, nil)
				ar.EXPECT().
					ResetFailedAttempts(gomock.Any(), account.ID, gomock.Any()).
					Times(1).
					Return(domain.Account{}, errDB)
			},
			checkResponse: func(got domain.Account, err error) {
				require.ErrorIs(t, err, errorspkg.ErrOperationFailed)
				require.Empty(t, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := NewMockAccountRepo(ctrl)
			tc.buildStubs(accountRepo)

			service := New(accountRepo, NewMockEntryRepo(ctrl))

			got, err := service.Authenticate(context.Background(), account.CardNumber, tc.pin)
			tc.checkResponse(got, err)
		})
	}
}

func TestGet(t *testing.T) {
	account := test.RandomAccount()

	testCases := []struct {
		name          string
		buildStubs    func(ar *MockAccountRepo)
		checkResponse func(got domain.Account, err error)
	}{
		{
			name: "OK",
			buildStubs: func(ar *MockAccountRepo) {
				ar.EXPECT().Get(gomock.Any(), account.ID).Times(1).Return(account, nil)
			},
			checkResponse: func(got domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, account, got)
			},
		},
		{
			name: "ErrAccountNotFound",
			buildStubs: func(ar *MockAccountRepo) {
				ar.EXPECT().Get(gomock.Any(), account.ID).Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(got domain.Account, err error) {
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
				require.NotErrorIs(t, err, errorspkg.ErrOperationFailed)
			},
		},
		{
			name: "Fault",
			buildStubs: func(ar *MockAccountRepo) {
				ar.EXPECT().Get(gomock.Any(), account.ID).Times(1).Return(domain.Account{}, errDB)
			},
			checkResponse: func(got domain.Account, err error) {
				require.ErrorIs(t, err, errorspkg.ErrOperationFailed)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := NewMockAccountRepo(ctrl)
			tc.buildStubs(accountRepo)

			got, err := New(accountRepo, NewMockEntryRepo(ctrl)).Get(context.Background(), account.ID)
			tc.checkResponse(got, err)
		})
	}
}

func TestHistory(t *testing.T) {
	account := test.RandomAccount()
	entries := test.RandomEntries(account.ID, 5)

	testCases := []struct {
		name          string
		buildStubs    func(ar *MockAccountRepo, er *MockEntryRepo)
		checkResponse func(got []domain.Entry, err error)
	}{
		{
			name: "OK",
			buildStubs: func(ar *MockAccountRepo, er *MockEntryRepo) {
				ar.EXPECT().Get(gomock.Any(), account.ID).Times(1).Return(account, nil)
				er.EXPECT().List(gomock.Any(), account.ID, int32(5), int32(0)).Times(1).Return(entries, nil)
			},
			checkResponse: func(got []domain.Entry, err error) {
				require.NoError(t, err)
				require.Equal(t, entries, got)
			},
		},
		{
			name: "ErrAccountNotFound",
			buildStubs: func(ar *MockAccountRepo, er *MockEntryRepo) {
				ar.EXPECT().Get(gomock.Any(), account.ID).Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
				er.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got []domain.Entry, err error) {
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
				require.Nil(t, got)
			},
		},
		{
			name: "ListFault",
			buildStubs: func(ar *MockAccountRepo, er *MockEntryRepo) {
				ar.EXPECT().Get(gomock.Any(), account.ID).Times(1).Return(account, nil)
				er.EXPECT().List(gomock.Any(), account.ID, int32(5), int32(0)).Times(1).Return(nil, errDB)
			},
			checkResponse: func(got []domain.Entry, err error) {
				require.ErrorIs(t, err, errorspkg.ErrOperationFailed)
				require.Nil(t, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := NewMockAccountRepo(ctrl)
			entryRepo := NewMockEntryRepo(ctrl)
			tc.buildStubs(accountRepo, entryRepo)

			got, err := New(accountRepo, entryRepo).History(context.Background(), account.ID, 5, 0)
			tc.checkResponse(got, err)
		})
	}
}

func TestBalanceArithmetic(t *testing.T) {
	a := domain.Account{Balance: decimal.NewFromInt(5000)}

	require.True(t, HasFunds(a, decimal.NewFromInt(5000)))
	require.False(t, HasFunds(a, decimal.RequireFromString("5000.01")))

	Credit(&a, decimal.RequireFromString("0.10"))
	require.True(t, a.Balance.Equal(decimal.RequireFromString("5000.10")))

	require.NoError(t, Debit(&a, decimal.RequireFromString("200.10")))
	require.True(t, a.Balance.Equal(decimal.NewFromInt(4800)))

	require.ErrorIs(t, Debit(&a, decimal.NewFromInt(4801)), domain.ErrInsufficientFunds)
	require.True(t, a.Balance.Equal(decimal.NewFromInt(4800)))
}

func TestMaskCard(t *testing.T) {
	require.Equal(t, "****", maskCard("1111"))
	require.Equal(t, "****5678", maskCard("1234123412345678"))
}
