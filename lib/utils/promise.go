package utils

import (
	"github.com/chebyrash/promise"
)

func PromiseResolve[T any](val T) *promise.Promise[T] {
	return promise.New(func(resolve func(T), reject func(error)) {
		resolve(val)
	})
}

func PromiseReject[T any](err error) *promise.Promise[T] {
	return promise.New(func(resolve func(T), reject func(error)) {
		reject(err)
	})
}
