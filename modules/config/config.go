package config

import (
	"coreum-fun/lib/utils"
	"coreum-fun/modules/aggregate"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"reflect"

	"github.com/chebyrash/promise"
	"github.com/go-playground/validator/v10"
)

const DATA_DIR = "data"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is a JSON file under <dataDir>/config named after T. It is written
// from the default value the first time it is initialised. Struct values are
// checked against their `validate` tags on every load and update.
type Config[T any] struct {
	defaultValue T
	dataDir      string

	loaded bool
	value  T
}

var _ aggregate.Plugin = &Config[struct{}]{}

func New[T any](defaultValue T, dataDir *string) *Config[T] {
	dir := DATA_DIR
	if dataDir != nil {
		dir = *dataDir
	}
	return &Config[T]{defaultValue: defaultValue, dataDir: dir}
}

func (c *Config[T]) FilePath() string {
	name := reflect.TypeFor[T]().Name()
	return path.Join(c.dataDir, "config", name+".json")
}

func (c *Config[T]) Init() error {
	f, err := os.Open(c.FilePath())
	if err != nil {
		if os.IsNotExist(err) {
			err = c.Update(func(t *T) {
				*t = c.defaultValue
			})
			if err != nil {
				return err
			}
		} else {
			return err
		}
	} else {
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		var value T
		err = json.Unmarshal(b, &value)
		if err != nil {
			return fmt.Errorf("%s: %w", c.FilePath(), err)
		}
		if err := check(value); err != nil {
			return fmt.Errorf("%s: %w", c.FilePath(), err)
		}
		c.value = value
	}
	c.loaded = true
	return nil
}

func (c *Config[T]) Start() *promise.Promise[any] {
	return utils.PromiseResolve[any](nil)
}

func (c *Config[T]) Stop() error {
	return nil
}

func (c *Config[T]) Loaded() bool {
	return c.loaded
}

func (c *Config[T]) Get() T {
	return c.value
}

func (c *Config[T]) Update(updater func(*T)) error {
	temp := c.value
	updater(&temp)
	if err := check(temp); err != nil {
		return err
	}
	b, err := json.MarshalIndent(temp, "", "  ")
	if err != nil {
		return err
	}
	err = os.MkdirAll(path.Dir(c.FilePath()), 0755)
	if err != nil {
		return err
	}
	err = os.WriteFile(c.FilePath(), b, 0644)
	if err != nil {
		return err
	}
	c.value = temp
	return nil
}

func check[T any](value T) error {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return validate.Struct(value)
}
