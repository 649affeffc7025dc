package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testRows = [][]string{
	{"Date", "Bank", "Card", "Merchant", "Amount", "Category", "", "Notes", "", "Currency", "Type"},
	{"15/1/2025", "DBS", "3115", "Din Tai Fung", "45.80", "Dining", "", "", "", "SGD", ""},
	{"16/1/2025", "UOB", "0076", "Salary Credit", "5200", "Income & Refunds", "", "", "", "SGD", ""},
	{"not a date", "UOB", "", "junk", "10", "Dining", "", "", "", "SGD", ""},
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := NewMockRowSource(ctrl)
	src.EXPECT().Fetch(gomock.Any()).Return(testRows, nil)

	svc := NewService(src)

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// The malformed row is dropped, not an error.
	assert.Equal(t, 2, snap.Count)
	assert.NotEmpty(t, snap.ID)

	txs := svc.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "Din Tai Fung", txs[0].Merchant)
	assert.Equal(t, "Salary Credit", txs[1].Merchant)
}

func TestService_RefreshFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := NewMockRowSource(ctrl)
	src.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("HTTP 403"))

	svc := NewService(src)

	_, err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching rows")

	assert.Empty(t, svc.Transactions())
	assert.Zero(t, svc.LastSnapshot())
}

func TestService_RefreshReplacesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := NewMockRowSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Fetch(gomock.Any()).Return(testRows, nil),
		src.EXPECT().Fetch(gomock.Any()).Return(testRows[:2], nil),
	)

	svc := NewService(src)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, svc.Transactions(), 2)

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Count)
	assert.Len(t, svc.Transactions(), 1)
}

func TestService_TransactionsReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := NewMockRowSource(ctrl)
	src.EXPECT().Fetch(gomock.Any()).Return(testRows, nil)

	svc := NewService(src)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	first := svc.Transactions()
	first[0].Merchant = "mutated"

	assert.Equal(t, "Din Tai Fung", svc.Transactions()[0].Merchant)
}
