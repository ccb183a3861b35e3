// Package lcd is a read-only chain client that runs contract smart queries
// through a node's LCD (REST) endpoint.
package lcd

import (
	"context"
	"coreum-fun/lib/logger"
	"coreum-fun/lib/wasmclient"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JustinKnueppel/go-result"
	"github.com/go-resty/resty/v2"
)

const smartQueryPath = "/cosmwasm/wasm/v1/contract/{address}/smart/{query}"

// Error is a non-2xx answer from the LCD. Contract failures arrive this way,
// with the contract's message in Message.
type Error struct {
	StatusCode int
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("lcd: http status %d", e.StatusCode)
	}
	return fmt.Sprintf("lcd: http status %d: %s", e.StatusCode, e.Message)
}

type smartQueryResponse struct {
	Data json.RawMessage `json:"data"`
}

type Client struct {
	http *resty.Client
	log  logger.Logger
}

var _ wasmclient.CosmWasmClient = &Client{}

func New(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http, log}
}

func (c *Client) QueryContractSmart(ctx context.Context, contractAddress string, queryMsg any, out any) error {
	return resultGetErr(result.AndThen(
		result.AndThen(
			resultWrap(json.Marshal(queryMsg)),
			func(msg []byte) result.Result[json.RawMessage] {
				return c.get(ctx, contractAddress, msg)
			},
		),
		func(data json.RawMessage) result.Result[any] {
			return resultWrap[any](nil, json.Unmarshal(data, out))
		},
	))
}

func (c *Client) get(ctx context.Context, contractAddress string, msg []byte) result.Result[json.RawMessage] {
	var body smartQueryResponse
	var failure Error

	c.log.Debug("smart query", "contract", contractAddress, "msg", string(msg))
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"address": contractAddress,
			"query":   base64.URLEncoding.EncodeToString(msg),
		}).
		SetResult(&body).
		SetError(&failure).
		Get(smartQueryPath)
	if err != nil {
		c.log.Error("smart query failed", "contract", contractAddress, "err", err)
		return result.Err[json.RawMessage](err)
	}
	if resp.IsError() {
		failure.StatusCode = resp.StatusCode()
		c.log.Error("smart query rejected", "contract", contractAddress, "status", failure.StatusCode, "message", failure.Message)
		return result.Err[json.RawMessage](&failure)
	}
	if len(body.Data) == 0 {
		return result.Err[json.RawMessage](fmt.Errorf("lcd: response without data"))
	}
	return result.Ok(body.Data)
}

func resultWrap[T any](res T, err error) result.Result[T] {
	if err != nil {
		return result.Err[T](err)
	}
	return result.Ok(res)
}

func resultGetErr[T any](r result.Result[T]) error {
	return result.MapOrElse(
		r,
		func(err error) error {
			return err
		},
		func(_ T) error {
			return nil
		})
}
