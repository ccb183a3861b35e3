package coreumfun_test

import (
	"coreum-fun/modules/coreumfun"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchContractError(t *testing.T) {
	cases := []struct {
		text     string
		sentinel *coreumfun.ContractError
		fields   map[string]string
	}{
		{
			"failed to execute message; message index: 0: Not enough tickets left (requested: Uint128(12), available: Uint128(3)): execute wasm contract failed",
			coreumfun.ErrNotEnoughTicketsLeft,
			map[string]string{"requested": "Uint128(12)", "available": "Uint128(3)"},
		},
		{
			"Not enough tickets (requested: Uint128(2), available: Uint128(1))",
			coreumfun.ErrNotEnoughTickets,
			map[string]string{"requested": "Uint128(2)", "available": "Uint128(1)"},
		},
		{
			"Undelegation period not completed (current timestamp: Timestamp(Uint64(1735689600000000000)), undelegation timestamp: Timestamp(Uint64(1737504000000000000))): execute wasm contract failed",
			coreumfun.ErrUndelegationPeriodNotCompleted,
			map[string]string{
				"current_timestamp":      "Timestamp(Uint64(1735689600000000000))",
				"undelegation_timestamp": "Timestamp(Uint64(1737504000000000000))",
			},
		},
		{
			"Invalid draw state (expected: TicketSalesOpen, actual: DrawFinished): execute wasm contract failed",
			coreumfun.ErrInvalidDrawState,
			map[string]string{"expected": "TicketSalesOpen", "actual": "DrawFinished"},
		},
		{
			`Invalid address: "core1nope": execute wasm contract failed`,
			coreumfun.ErrInvalidAddress,
			map[string]string{"address": `"core1nope"`},
		},
		{
			"Ticket sales are closed: execute wasm contract failed",
			coreumfun.ErrTicketSalesClosed,
			map[string]string{},
		},
	}
	for _, c := range cases {
		ce, ok := coreumfun.MatchContractError(errors.New(c.text))
		require.True(t, ok, c.text)
		assert.ErrorIs(t, ce, c.sentinel)
		assert.Equal(t, c.sentinel.Name, ce.Name)
		assert.Equal(t, c.fields, ce.Fields)
		assert.Equal(t, c.text, ce.Error())
	}
}

func TestMatchContractErrorUnknown(t *testing.T) {
	_, ok := coreumfun.MatchContractError(errors.New("account sequence mismatch"))
	assert.False(t, ok)
	_, ok = coreumfun.MatchContractError(nil)
	assert.False(t, ok)
}

func TestMatchContractErrorWrapped(t *testing.T) {
	cause := errors.New("No winner has been selected yet")
	wrapped := fmt.Errorf("send_funds_to_winner: %w", cause)

	ce, ok := coreumfun.MatchContractError(wrapped)
	require.True(t, ok)
	assert.ErrorIs(t, ce, coreumfun.ErrNoWinnerSelected)
	assert.ErrorIs(t, ce, cause)
	assert.NotErrorIs(t, ce, coreumfun.ErrNoRewardsToSend)

	again, ok := coreumfun.MatchContractError(fmt.Errorf("retry: %w", ce))
	require.True(t, ok)
	assert.Same(t, ce, again)
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "Unauthorized", coreumfun.ErrUnauthorized.Error())
	assert.Equal(t, "Invalid address: {address}", coreumfun.ErrInvalidAddress.Error())
}
