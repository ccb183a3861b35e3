package coreumfun_test

import (
	"context"
	"coreum-fun/lib/test_utils"
	"coreum-fun/lib/wasmclient"
	"coreum-fun/modules/contract/descriptor"
	"coreum-fun/modules/coreumfun"
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contractAddr = "core1lottery"
	senderAddr   = "core1admin"
)

func TestGetUserNumberOfTickets(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.Reply("get_user_number_of_tickets", `{"address":"core1abc","tickets":"3"}`)
	client := coreumfun.NewQueryClient(chain, contractAddr)

	res, err := client.GetUserNumberOfTickets(context.Background(), coreumfun.GetUserNumberOfTicketsArgs{
		Address: "core1abc",
	}).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "core1abc", res.Address)
	assert.Equal(t, "3", res.Tickets.String())

	calls := chain.Queries()
	require.Len(t, calls, 1)
	assert.Equal(t, contractAddr, calls[0].ContractAddress)
	assert.JSONEq(t, `{"get_user_number_of_tickets":{"address":"core1abc"}}`, string(calls[0].Msg))
}

func TestBuyTicket(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.ExecuteResult = wasmclient.ExecuteResult{TransactionHash: "9F0A", Height: 1200}
	client := coreumfun.NewClient(chain, senderAddr, contractAddr)

	res, err := client.BuyTicket(context.Background(), coreumfun.BuyTicketArgs{
		NumberOfTickets: wasmclient.MustUint128("5"),
	}).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "9F0A", res.TransactionHash)

	calls := chain.Executes()
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{"buy_ticket":{"number_of_tickets":"5"}}`, string(calls[0].Msg))
	assert.Equal(t, senderAddr, calls[0].Sender)
	assert.Equal(t, contractAddr, calls[0].ContractAddress)
	assert.True(t, calls[0].Fee.IsAuto())
	assert.True(t, calls[0].Memo.IsNone())
	assert.Nil(t, calls[0].Funds)
}

func TestBuyTicketWithFunds(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	client := coreumfun.NewClient(chain, senderAddr, contractAddr)
	funds := wasmclient.Coin{Denom: "ucore", Amount: "50000000"}

	_, err := client.BuyTicket(
		context.Background(),
		coreumfun.BuyTicketArgs{NumberOfTickets: wasmclient.NewUint128(5)},
		wasmclient.WithFunds(funds),
		wasmclient.WithMemo("5 tickets"),
	).Await(context.Background())
	require.NoError(t, err)

	calls := chain.Executes()
	require.Len(t, calls, 1)
	assert.Equal(t, []wasmclient.Coin{funds}, calls[0].Funds)
	memo, err := calls[0].Memo.Take()
	require.NoError(t, err)
	assert.Equal(t, "5 tickets", memo)
}

func TestGetClaims(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.Reply("get_claims", `{"claims":[{"address":"core1abc","amount":"100"}],"total_claimed":"100"}`)
	client := coreumfun.NewQueryClient(chain, contractAddr)

	res, err := client.GetClaims(context.Background(), coreumfun.GetClaimsArgs{}).Await(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Claims, 1)
	assert.Equal(t, "100", res.TotalClaimed.String())

	_, err = client.GetClaims(context.Background(), coreumfun.GetClaimsArgs{
		Address: optional.Some("core1abc"),
	}).Await(context.Background())
	require.NoError(t, err)

	calls := chain.Queries()
	require.Len(t, calls, 2)
	assert.JSONEq(t, `{"get_claims":{"address":null}}`, string(calls[0].Msg))
	assert.JSONEq(t, `{"get_claims":{"address":"core1abc"}}`, string(calls[1].Msg))
}

func TestQueriesWithoutParameters(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.Reply("get_winner", `{"winner":null,"rewards":"0"}`)
	client := coreumfun.NewClient(chain, senderAddr, contractAddr)

	res, err := client.GetWinner(context.Background()).Await(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Winner.IsNone())
	assert.True(t, res.Rewards.IsZero())

	calls := chain.Queries()
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{"get_winner":{}}`, string(calls[0].Msg))
}

func TestClientAccessors(t *testing.T) {
	client := coreumfun.NewClient(test_utils.NewMockChainClient(), senderAddr, contractAddr)
	assert.Equal(t, senderAddr, client.Sender())
	assert.Equal(t, contractAddr, client.ContractAddress())
}

func TestErrorsPassThrough(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.Err = errors.New("Generic error: Querier contract error: Invalid query")
	client := coreumfun.NewClient(chain, senderAddr, contractAddr)

	_, err := client.GetCurrentState(context.Background()).Await(context.Background())
	require.Error(t, err)
	assert.Equal(t, chain.Err.Error(), err.Error())
	assert.ErrorIs(t, err, chain.Err)

	ce, ok := coreumfun.MatchContractError(err)
	require.True(t, ok)
	assert.ErrorIs(t, ce, coreumfun.ErrInvalidQuery)
}

// Every operation of the table must be a method on Client that sends its own
// wire tag with exactly its declared fields.
func TestOperationsTable(t *testing.T) {
	iface := reflect.TypeOf((*coreumfun.Interface)(nil)).Elem()
	assert.Equal(t, len(coreumfun.Operations)+2, iface.NumMethod())

	queries, executes := 0, 0
	for _, op := range coreumfun.Operations {
		t.Run(op.Method, func(t *testing.T) {
			chain := test_utils.NewMockChainClient()
			client := coreumfun.NewClient(chain, senderAddr, contractAddr)
			method := reflect.ValueOf(client).MethodByName(op.GoName)
			require.True(t, method.IsValid(), "missing method %s", op.GoName)

			args := []reflect.Value{reflect.ValueOf(context.Background())}
			if len(op.Params) > 0 {
				args = append(args, reflect.Zero(method.Type().In(1)))
			}
			out := method.Call(args)
			require.Len(t, out, 1)
			awaited := out[0].MethodByName("Await").Call([]reflect.Value{reflect.ValueOf(context.Background())})
			require.True(t, awaited[1].IsNil(), "%s failed: %v", op.GoName, awaited[1].Interface())

			var calls []test_utils.ChainCall
			if op.Kind == descriptor.Query {
				calls = chain.Queries()
			} else {
				calls = chain.Executes()
			}
			require.Len(t, calls, 1)
			tag, err := calls[0].Tag()
			require.NoError(t, err)
			assert.Equal(t, op.Tag, tag)

			fields, err := calls[0].Fields()
			require.NoError(t, err)
			keys := make([]string, 0, len(fields))
			for k := range fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			want := op.WireNames()
			sort.Strings(want)
			assert.Equal(t, len(want), len(keys))
			if len(want) > 0 {
				assert.Equal(t, want, keys)
			}
		})
		if op.Kind == descriptor.Query {
			queries++
		} else {
			executes++
		}
	}
	assert.Equal(t, 16, queries)
	assert.Equal(t, 8, executes)
}

func TestContractConfigResponse(t *testing.T) {
	raw := `{
		"owner": "core1owner",
		"ticket_token": "uticket-core1lottery",
		"core_denom": "ucore",
		"validator_address": "corevaloper1xyz",
		"total_tickets": "1000",
		"max_tickets_per_user": "10",
		"ticket_price": "1000000",
		"draw_state": "TicketsSoldOutAccumulationInProgress",
		"winner": null,
		"undelegation_done_timestamp": 1735689600,
		"accumulated_rewards": "42",
		"bonus_rewards": "0"
	}`
	var cfg coreumfun.ContractConfigResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, coreumfun.TicketsSoldOutAccumulationInProgress, cfg.DrawState)
	assert.True(t, cfg.DrawState.Valid())
	assert.True(t, cfg.Winner.IsNone())
	ts, err := cfg.UndelegationDoneTimestamp.Take()
	require.NoError(t, err)
	assert.Equal(t, uint64(1735689600), ts)
	assert.Equal(t, "1000000", cfg.TicketPrice.String())
}

func TestUpdateDrawState(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	client := coreumfun.NewClient(chain, senderAddr, contractAddr)

	_, err := client.UpdateDrawState(context.Background(), coreumfun.UpdateDrawStateArgs{
		NewState: coreumfun.DrawFinished,
	}).Await(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"update_draw_state":{"new_state":"DrawFinished"}}`, string(chain.Executes()[0].Msg))

	assert.False(t, coreumfun.DrawState("Paused").Valid())
}
