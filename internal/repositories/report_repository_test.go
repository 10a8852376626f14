package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-system/pkg/constants"
)

func TestDealsAmountQuery(t *testing.T) {
	sql, args, err := dealsAmountQuery()
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT COALESCE(SUM(amount), 0) FROM requests WHERE status IN ($1,$2,$3,$4,$5)`,
		sql)

	// В сумму дохода входят только выигранные стадии.
	assert.Equal(t, []interface{}{
		constants.RequestStatusFulfillment,
		constants.RequestStatusContractDone,
		constants.RequestStatusAwaitingPayment,
		constants.RequestStatusPaymentReceived,
		constants.RequestStatusCompleted,
	}, args)

	assert.NotContains(t, args, constants.RequestStatusNew)
	assert.NotContains(t, args, constants.RequestStatusDealLost)
}
