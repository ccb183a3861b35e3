// Package wasmclient is the runtime behind generated CosmWasm contract
// clients. Generated methods only pick a wire tag and an argument struct; the
// one generic Query and the one generic Execute here do the rest.
package wasmclient

import (
	"context"

	"github.com/chebyrash/promise"
	"github.com/moznion/go-optional"
)

// CosmWasmClient is the read side of a chain client.
type CosmWasmClient interface {
	// QueryContractSmart runs a smart query against contractAddress and
	// decodes the contract's JSON reply into result.
	QueryContractSmart(ctx context.Context, contractAddress string, queryMsg any, result any) error
}

// SigningCosmWasmClient can also sign and broadcast execute transactions.
type SigningCosmWasmClient interface {
	CosmWasmClient
	Execute(ctx context.Context, sender string, contractAddress string, msg any, fee Fee, memo optional.Option[string], funds []Coin) (ExecuteResult, error)
}

// Envelope is the message sent to a contract: a single key, the operation's
// wire tag, holding the operation's arguments.
type Envelope map[string]any

// NoArgs encodes as {} for operations without parameters.
type NoArgs struct{}

func NewEnvelope(tag string, args any) Envelope {
	if args == nil {
		args = NoArgs{}
	}
	return Envelope{tag: args}
}

type QueryClient struct {
	client          CosmWasmClient
	contractAddress string
}

func NewQueryClient(client CosmWasmClient, contractAddress string) *QueryClient {
	return &QueryClient{
		client:          client,
		contractAddress: contractAddress,
	}
}

func (c *QueryClient) ContractAddress() string {
	return c.contractAddress
}

// Query sends {tag: args} to the contract and resolves with the decoded reply.
// Every call is one round trip to the chain client; errors are passed on as
// they are.
func Query[T any](ctx context.Context, c *QueryClient, tag string, args any) *promise.Promise[T] {
	msg := NewEnvelope(tag, args)
	return promise.New(func(resolve func(T), reject func(error)) {
		var res T
		if err := c.client.QueryContractSmart(ctx, c.contractAddress, msg, &res); err != nil {
			reject(err)
			return
		}
		resolve(res)
	})
}

type SigningClient struct {
	*QueryClient
	client SigningCosmWasmClient
	sender string
}

func NewSigningClient(client SigningCosmWasmClient, sender string, contractAddress string) *SigningClient {
	return &SigningClient{
		QueryClient: NewQueryClient(client, contractAddress),
		client:      client,
		sender:      sender,
	}
}

func (c *SigningClient) Sender() string {
	return c.sender
}

type executeOptions struct {
	fee   Fee
	memo  optional.Option[string]
	funds []Coin
}

type ExecuteOption func(*executeOptions)

// WithFee overrides the default FeeAuto.
func WithFee(fee Fee) ExecuteOption {
	return func(o *executeOptions) {
		o.fee = fee
	}
}

func WithMemo(memo string) ExecuteOption {
	return func(o *executeOptions) {
		o.memo = optional.Some(memo)
	}
}

// WithFunds attaches coins to the execute message.
func WithFunds(funds ...Coin) ExecuteOption {
	return func(o *executeOptions) {
		o.funds = funds
	}
}

// Execute submits one transaction carrying {tag: args} from the configured
// sender. It is not idempotent: each call broadcasts a new transaction, and
// nothing is retried or rolled back.
func (c *SigningClient) Execute(ctx context.Context, tag string, args any, opts ...ExecuteOption) *promise.Promise[ExecuteResult] {
	o := executeOptions{
		fee:  FeeAuto,
		memo: optional.None[string](),
	}
	for _, opt := range opts {
		opt(&o)
	}
	msg := NewEnvelope(tag, args)
	return promise.New(func(resolve func(ExecuteResult), reject func(error)) {
		res, err := c.client.Execute(ctx, c.sender, c.contractAddress, msg, o.fee, o.memo, o.funds)
		if err != nil {
			reject(err)
			return
		}
		resolve(res)
	})
}
