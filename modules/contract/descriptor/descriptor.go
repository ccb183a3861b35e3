// Package descriptor derives the operation descriptors of a contract client
// from its interface description.
//
// The mapping is pure: the same Description always produces the same
// operations, in the same order, so regenerating a client from an unchanged
// description does not change it.
package descriptor

import (
	"coreum-fun/modules/contract/naming"
	"errors"
	"fmt"
)

var ErrNameCollision = errors.New("name collision")

type Kind int

const (
	Query Kind = iota
	Execute
)

func (k Kind) String() string {
	switch k {
	case Query:
		return "query"
	case Execute:
		return "execute"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ExecuteResultType is the response of every execute operation.
const ExecuteResultType = "ExecuteResult"

// Generated clients expose these accessors next to the operation methods.
var reservedGoNames = map[string]struct{}{
	"ContractAddress": {},
	"Sender":          {},
}

type Operation struct {
	// camelCase method name, e.g. getUserNumberOfTickets
	Method string
	// exported Go method name, e.g. GetUserNumberOfTickets
	GoName string
	// snake_case wire tag, e.g. get_user_number_of_tickets
	Tag      string
	Kind     Kind
	Params   []Param
	Response string
	Doc      string
}

type Param struct {
	Name     string
	GoName   string
	WireName string
	Type     string
	Optional bool
}

// WireNames returns the message field names in declared order.
func (o Operation) WireNames() []string {
	names := make([]string, len(o.Params))
	for i, p := range o.Params {
		names[i] = p.WireName
	}
	return names
}

// Build derives the descriptors of every operation in desc: queries first,
// then executes, each in declared order. All naming problems are reported
// together.
func Build(desc Description) ([]Operation, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	var errs []error
	ops := make([]Operation, 0, len(desc.Query)+len(desc.Execute))

	for _, group := range []struct {
		kind  Kind
		specs []OperationSpec
	}{
		{Query, desc.Query},
		{Execute, desc.Execute},
	} {
		tags := make(map[string]string, len(group.specs))
		for _, spec := range group.specs {
			op, err := buildOperation(group.kind, spec)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if other, ok := tags[op.Tag]; ok {
				errs = append(errs, fmt.Errorf("%w: %s operations %q and %q share wire tag %q", ErrNameCollision, group.kind, other, spec.Name, op.Tag))
				continue
			}
			tags[op.Tag] = spec.Name
			ops = append(ops, op)
		}
	}

	methods := make(map[string]Operation, len(ops))
	for _, op := range ops {
		if _, ok := reservedGoNames[op.GoName]; ok {
			errs = append(errs, fmt.Errorf("%w: %s operation %q shadows client accessor %s", ErrNameCollision, op.Kind, op.Tag, op.GoName))
			continue
		}
		if other, ok := methods[op.GoName]; ok {
			errs = append(errs, fmt.Errorf("%w: %s %q and %s %q both become method %s", ErrNameCollision, other.Kind, other.Tag, op.Kind, op.Tag, op.GoName))
			continue
		}
		methods[op.GoName] = op
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ops, nil
}

func buildOperation(kind Kind, spec OperationSpec) (Operation, error) {
	words, err := naming.Words(spec.Name)
	if err != nil {
		return Operation{}, fmt.Errorf("%s operation: %w", kind, err)
	}

	op := Operation{
		Method:   naming.Camel(words),
		GoName:   naming.Pascal(words),
		Tag:      naming.Snake(words),
		Kind:     kind,
		Response: spec.Response,
		Doc:      spec.Doc,
	}
	if kind == Execute {
		op.Response = ExecuteResultType
	}

	var errs []error
	wire := make(map[string]struct{}, len(spec.Params))
	goNames := make(map[string]struct{}, len(spec.Params))
	for _, ps := range spec.Params {
		pw, err := naming.Words(ps.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("parameter of %s %q: %w", kind, op.Tag, err))
			continue
		}
		p := Param{
			Name:     naming.Camel(pw),
			GoName:   naming.Pascal(pw),
			WireName: naming.Snake(pw),
			Type:     ps.Type,
			Optional: ps.Optional,
		}
		if _, ok := wire[p.WireName]; ok {
			errs = append(errs, fmt.Errorf("%w: %s %q declares field %q twice", ErrNameCollision, kind, op.Tag, p.WireName))
			continue
		}
		if _, ok := goNames[p.GoName]; ok {
			errs = append(errs, fmt.Errorf("%w: %s %q has two fields named %s", ErrNameCollision, kind, op.Tag, p.GoName))
			continue
		}
		wire[p.WireName] = struct{}{}
		goNames[p.GoName] = struct{}{}
		op.Params = append(op.Params, p)
	}
	if len(errs) > 0 {
		return Operation{}, errors.Join(errs...)
	}
	return op, nil
}
