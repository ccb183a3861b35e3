package test_utils

import (
	"context"
	"coreum-fun/lib/wasmclient"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/moznion/go-optional"
)

// ChainCall is one request seen by MockChainClient, with the message already
// encoded the way it would travel to the chain.
type ChainCall struct {
	ContractAddress string
	Msg             json.RawMessage
	Sender          string
	Fee             wasmclient.Fee
	Memo            optional.Option[string]
	Funds           []wasmclient.Coin
}

// Tag returns the single top level key of the message.
func (c ChainCall) Tag() (string, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(c.Msg, &m); err != nil {
		return "", err
	}
	if len(m) != 1 {
		return "", fmt.Errorf("message has %d top level keys", len(m))
	}
	for k := range m {
		return k, nil
	}
	return "", nil
}

// Fields decodes the value stored under the message's tag.
func (c ChainCall) Fields() (map[string]any, error) {
	var m map[string]map[string]any
	if err := json.Unmarshal(c.Msg, &m); err != nil {
		return nil, err
	}
	for _, v := range m {
		return v, nil
	}
	return nil, fmt.Errorf("empty message")
}

// MockChainClient records every query and execute and answers from canned
// replies keyed by wire tag. A message that is not an object with exactly one
// top level key is refused without being recorded.
type MockChainClient struct {
	mu       sync.Mutex
	queries  []ChainCall
	executes []ChainCall

	QueryReplies  map[string]json.RawMessage
	ExecuteResult wasmclient.ExecuteResult
	// Err, when set, fails every call.
	Err error
}

var _ wasmclient.SigningCosmWasmClient = &MockChainClient{}

func NewMockChainClient() *MockChainClient {
	return &MockChainClient{QueryReplies: make(map[string]json.RawMessage)}
}

func (m *MockChainClient) Reply(tag string, reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryReplies[tag] = json.RawMessage(reply)
}

func (m *MockChainClient) QueryContractSmart(ctx context.Context, contractAddress string, queryMsg any, result any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(queryMsg)
	if err != nil {
		return err
	}
	call := ChainCall{ContractAddress: contractAddress, Msg: b}
	tag, err := call.Tag()
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.queries = append(m.queries, call)
	failure := m.Err
	reply, ok := m.QueryReplies[tag]
	m.mu.Unlock()

	if failure != nil {
		return failure
	}
	if !ok {
		reply = json.RawMessage(`{}`)
	}
	return json.Unmarshal(reply, result)
}

func (m *MockChainClient) Execute(ctx context.Context, sender string, contractAddress string, msg any, fee wasmclient.Fee, memo optional.Option[string], funds []wasmclient.Coin) (wasmclient.ExecuteResult, error) {
	if err := ctx.Err(); err != nil {
		return wasmclient.ExecuteResult{}, err
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return wasmclient.ExecuteResult{}, err
	}
	call := ChainCall{
		ContractAddress: contractAddress,
		Msg:             b,
		Sender:          sender,
		Fee:             fee,
		Memo:            memo,
		Funds:           funds,
	}
	if _, err := call.Tag(); err != nil {
		return wasmclient.ExecuteResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.executes = append(m.executes, call)
	if m.Err != nil {
		return wasmclient.ExecuteResult{}, m.Err
	}
	return m.ExecuteResult, nil
}

func (m *MockChainClient) Queries() []ChainCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ChainCall(nil), m.queries...)
}

func (m *MockChainClient) Executes() []ChainCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ChainCall(nil), m.executes...)
}
