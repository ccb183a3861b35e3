package wasmclient_test

import (
	"context"
	"coreum-fun/lib/test_utils"
	"coreum-fun/lib/wasmclient"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractAddr = "core1contract"
const senderAddr = "core1sender"

type winnerArgs struct {
	Round uint64 `json:"round"`
}

type winnerResponse struct {
	Winner *string `json:"winner"`
}

func TestQuery(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.Reply("get_winner", `{"winner":"core1abc"}`)
	qc := wasmclient.NewQueryClient(chain, contractAddr)

	res, err := wasmclient.Query[winnerResponse](context.Background(), qc, "get_winner", winnerArgs{Round: 3}).Await(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "core1abc", *res.Winner)

	calls := chain.Queries()
	require.Len(t, calls, 1)
	assert.Equal(t, contractAddr, calls[0].ContractAddress)
	assert.JSONEq(t, `{"get_winner":{"round":3}}`, string(calls[0].Msg))
	assert.Equal(t, contractAddr, qc.ContractAddress())
}

func TestQueryWithoutArgs(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	qc := wasmclient.NewQueryClient(chain, contractAddr)

	_, err := wasmclient.Query[winnerResponse](context.Background(), qc, "get_winner", nil).Await(context.Background())
	require.NoError(t, err)
	_, err = wasmclient.Query[winnerResponse](context.Background(), qc, "get_winner", wasmclient.NoArgs{}).Await(context.Background())
	require.NoError(t, err)

	for _, call := range chain.Queries() {
		assert.JSONEq(t, `{"get_winner":{}}`, string(call.Msg))
	}
}

func TestQueryIsNotCached(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	qc := wasmclient.NewQueryClient(chain, contractAddr)

	chain.Reply("get_winner", `{"winner":null}`)
	first, err := wasmclient.Query[winnerResponse](context.Background(), qc, "get_winner", nil).Await(context.Background())
	require.NoError(t, err)
	assert.Nil(t, first.Winner)

	chain.Reply("get_winner", `{"winner":"core1abc"}`)
	second, err := wasmclient.Query[winnerResponse](context.Background(), qc, "get_winner", nil).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "core1abc", *second.Winner)
	assert.Len(t, chain.Queries(), 2)
}

func TestQueryPropagatesErrors(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.Err = errors.New("rpc error: code = Unknown desc = Invalid query")
	qc := wasmclient.NewQueryClient(chain, contractAddr)

	res, err := wasmclient.Query[winnerResponse](context.Background(), qc, "get_winner", nil).Await(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, chain.Err)
	assert.EqualError(t, err, chain.Err.Error())
}

func TestQueryForwardsContext(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	qc := wasmclient.NewQueryClient(chain, contractAddr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := wasmclient.Query[winnerResponse](ctx, qc, "get_winner", nil).Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteDefaults(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.ExecuteResult = wasmclient.ExecuteResult{TransactionHash: "ABCDEF", Height: 42}
	sc := wasmclient.NewSigningClient(chain, senderAddr, contractAddr)

	res, err := sc.Execute(context.Background(), "send_funds_to_winner", nil).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, chain.ExecuteResult, *res)

	calls := chain.Executes()
	require.Len(t, calls, 1)
	assert.Equal(t, senderAddr, calls[0].Sender)
	assert.Equal(t, contractAddr, calls[0].ContractAddress)
	assert.JSONEq(t, `{"send_funds_to_winner":{}}`, string(calls[0].Msg))
	assert.True(t, calls[0].Fee.IsAuto())
	assert.True(t, calls[0].Memo.IsNone())
	assert.Nil(t, calls[0].Funds)

	assert.Equal(t, senderAddr, sc.Sender())
	assert.Equal(t, contractAddr, sc.ContractAddress())
}

func TestExecuteOptions(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	sc := wasmclient.NewSigningClient(chain, senderAddr, contractAddr)
	funds := []wasmclient.Coin{{Denom: "ucore", Amount: "5000000"}}

	_, err := sc.Execute(
		context.Background(),
		"buy_ticket",
		map[string]string{"number_of_tickets": "5"},
		wasmclient.WithFee(wasmclient.GasMultiplier(1.5)),
		wasmclient.WithMemo("lucky"),
		wasmclient.WithFunds(funds...),
	).Await(context.Background())
	require.NoError(t, err)

	calls := chain.Executes()
	require.Len(t, calls, 1)
	m, ok := calls[0].Fee.Multiplier()
	assert.True(t, ok)
	assert.Equal(t, 1.5, m)
	memo, err := calls[0].Memo.Take()
	require.NoError(t, err)
	assert.Equal(t, "lucky", memo)
	assert.Equal(t, funds, calls[0].Funds)
}

func TestExecuteIsNotDeduplicated(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	sc := wasmclient.NewSigningClient(chain, senderAddr, contractAddr)

	for i := 0; i < 2; i++ {
		_, err := sc.Execute(context.Background(), "send_funds_to_winner", nil).Await(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, chain.Executes(), 2)
}

func TestExecutePropagatesErrors(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	chain.Err = errors.New("insufficient funds")
	sc := wasmclient.NewSigningClient(chain, senderAddr, contractAddr)

	_, err := sc.Execute(context.Background(), "send_funds_to_winner", nil).Await(context.Background())
	assert.ErrorIs(t, err, chain.Err)
	assert.EqualError(t, err, "insufficient funds")
	assert.Len(t, chain.Executes(), 1)
}

func TestConcurrentCalls(t *testing.T) {
	chain := test_utils.NewMockChainClient()
	sc := wasmclient.NewSigningClient(chain, senderAddr, contractAddr)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := wasmclient.Query[winnerResponse](context.Background(), sc.QueryClient, "get_winner", nil).Await(context.Background())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := sc.Execute(context.Background(), "send_funds_to_winner", nil).Await(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, chain.Queries(), 20)
	assert.Len(t, chain.Executes(), 20)
}

func TestNewEnvelope(t *testing.T) {
	env := wasmclient.NewEnvelope("get_winner", nil)
	assert.Equal(t, wasmclient.Envelope{"get_winner": wasmclient.NoArgs{}}, env)
}
