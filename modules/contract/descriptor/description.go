package descriptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

var ErrInvalidDescription = errors.New("invalid interface description")

// Description is the declarative interface of a contract: its query and
// execute operations as the contract's schema names them.
type Description struct {
	Contract string          `mapstructure:"contract" validate:"required"`
	Query    []OperationSpec `mapstructure:"query" validate:"dive"`
	Execute  []OperationSpec `mapstructure:"execute" validate:"dive"`
}

type OperationSpec struct {
	Name   string      `mapstructure:"name" validate:"required"`
	Doc    string      `mapstructure:"doc"`
	Params []ParamSpec `mapstructure:"params" validate:"dive"`
	// Response names the decoded reply type. Required for queries, ignored
	// for executes.
	Response string `mapstructure:"response"`
}

type ParamSpec struct {
	Name     string `mapstructure:"name" validate:"required"`
	Type     string `mapstructure:"type" validate:"required"`
	Optional bool   `mapstructure:"optional"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a JSON interface description from disk.
func Load(path string) (Description, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Description{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return Description{}, fmt.Errorf("%w: %s: %w", ErrInvalidDescription, path, err)
	}
	return Decode(raw)
}

// Decode converts a generic JSON object into a Description. Unknown keys are
// errors so that typos in the description file are not silently dropped.
func Decode(raw map[string]any) (Description, error) {
	var desc Description
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &desc,
	})
	if err != nil {
		return Description{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Description{}, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	if err := desc.Validate(); err != nil {
		return Description{}, err
	}
	return desc, nil
}

func (d Description) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	for _, op := range d.Query {
		if op.Response == "" {
			return fmt.Errorf("%w: query %q has no response type", ErrInvalidDescription, op.Name)
		}
	}
	return nil
}
