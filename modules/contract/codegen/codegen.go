// Package codegen renders operation descriptors as a typed Go client: one
// argument struct per operation, a read-only QueryClient, a Client that adds
// the execute operations, and the Operations table itself.
package codegen

import (
	"bytes"
	"coreum-fun/modules/contract/descriptor"
	"errors"
	"fmt"
	"strings"

	. "github.com/dave/jennifer/jen"
)

const (
	descriptorPath = "coreum-fun/modules/contract/descriptor"
	wasmclientPath = "coreum-fun/lib/wasmclient"
	promisePath    = "github.com/chebyrash/promise"
	optionalPath   = "github.com/moznion/go-optional"
)

var knownImports = map[string]string{
	descriptorPath: "descriptor",
	wasmclientPath: "wasmclient",
	promisePath:    "promise",
	optionalPath:   "optional",
}

// Description types that map onto Go builtins or runtime types. Anything
// else is taken as a type declared in the generated package.
var builtinTypes = map[string]func() *Statement{
	"string": String,
	"bool":   Bool,
	"u8":     Uint8,
	"u16":    Uint16,
	"u32":    Uint32,
	"u64":    Uint64,
	"i32":    Int32,
	"i64":    Int64,
	"Uint128": func() *Statement {
		return Qual(wasmclientPath, "Uint128")
	},
	"Coin": func() *Statement {
		return Qual(wasmclientPath, "Coin")
	},
	"ExecuteResult": func() *Statement {
		return Qual(wasmclientPath, "ExecuteResult")
	},
}

var ErrNoPackage = errors.New("package name is required")

type Settings struct {
	// Package is the name of the generated package.
	Package string
	// Source is mentioned in the header, usually the description file name.
	Source string
}

// Render generates the client and returns gofmt'ed source.
func Render(opts Settings, ops []descriptor.Operation) ([]byte, error) {
	f, err := Generate(opts, ops)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Generate(opts Settings, ops []descriptor.Operation) (*File, error) {
	if opts.Package == "" {
		return nil, ErrNoPackage
	}

	var queries, executes []descriptor.Operation
	for _, op := range ops {
		switch op.Kind {
		case descriptor.Query:
			queries = append(queries, op)
		case descriptor.Execute:
			executes = append(executes, op)
		default:
			return nil, fmt.Errorf("operation %q has unknown kind %s", op.Tag, op.Kind)
		}
	}

	f := NewFile(opts.Package)
	header := "Code generated by contract-gen. DO NOT EDIT."
	if opts.Source != "" {
		header = fmt.Sprintf("Code generated by contract-gen from %s. DO NOT EDIT.", opts.Source)
	}
	f.HeaderComment(header)
	f.ImportNames(knownImports)

	for _, op := range ops {
		if len(op.Params) > 0 {
			f.Add(argsStruct(op))
			f.Line()
		}
	}

	f.Comment("ReadOnlyInterface lists the contract's query operations.")
	f.Type().Id("ReadOnlyInterface").Interface(append(
		[]Code{Id("ContractAddress").Params().String()},
		signatures(queries)...,
	)...)
	f.Line()

	f.Comment("Interface lists every operation of the contract.")
	f.Type().Id("Interface").Interface(append(
		[]Code{Id("ReadOnlyInterface"), Id("Sender").Params().String()},
		signatures(executes)...,
	)...)
	f.Line()

	f.Var().Id("_").Id("ReadOnlyInterface").Op("=").Op("&").Id("QueryClient").Values()
	f.Var().Id("_").Id("Interface").Op("=").Op("&").Id("Client").Values()
	f.Line()

	f.Type().Id("QueryClient").Struct(Op("*").Qual(wasmclientPath, "QueryClient"))
	f.Line()
	f.Func().Id("NewQueryClient").Params(
		Id("client").Qual(wasmclientPath, "CosmWasmClient"),
		Id("contractAddress").String(),
	).Op("*").Id("QueryClient").Block(
		Return(Op("&").Id("QueryClient").Values(
			Qual(wasmclientPath, "NewQueryClient").Call(Id("client"), Id("contractAddress")),
		)),
	)
	f.Line()
	for _, op := range queries {
		f.Add(queryMethod(op))
		f.Line()
	}

	f.Type().Id("Client").Struct(
		Op("*").Id("QueryClient"),
		Id("signer").Op("*").Qual(wasmclientPath, "SigningClient"),
	)
	f.Line()
	f.Func().Id("NewClient").Params(
		Id("client").Qual(wasmclientPath, "SigningCosmWasmClient"),
		Id("sender").String(),
		Id("contractAddress").String(),
	).Op("*").Id("Client").Block(
		Id("signer").Op(":=").Qual(wasmclientPath, "NewSigningClient").Call(Id("client"), Id("sender"), Id("contractAddress")),
		Return(Op("&").Id("Client").Values(Dict{
			Id("QueryClient"): Op("&").Id("QueryClient").Values(Id("signer").Dot("QueryClient")),
			Id("signer"):      Id("signer"),
		})),
	)
	f.Line()
	f.Func().Params(Id("c").Op("*").Id("Client")).Id("Sender").Params().String().Block(
		Return(Id("c").Dot("signer").Dot("Sender").Call()),
	)
	f.Line()
	for _, op := range executes {
		f.Add(executeMethod(op))
		f.Line()
	}

	f.Comment("Operations describes every method of Client, in declaration order.")
	f.Var().Id("Operations").Op("=").Index().Qual(descriptorPath, "Operation").Values(operationTable(ops)...)

	return f, nil
}

func argsName(op descriptor.Operation) string {
	return op.GoName + "Args"
}

func typeOf(t string) *Statement {
	if strings.HasPrefix(t, "[]") {
		return Index().Add(typeOf(strings.TrimPrefix(t, "[]")))
	}
	if gen, ok := builtinTypes[t]; ok {
		return gen()
	}
	return Id(t)
}

func argsStruct(op descriptor.Operation) *Statement {
	fields := make([]Code, len(op.Params))
	for i, p := range op.Params {
		typ := typeOf(p.Type)
		if p.Optional {
			typ = Qual(optionalPath, "Option").Types(typ)
		}
		fields[i] = Id(p.GoName).Add(typ).Tag(map[string]string{"json": p.WireName})
	}
	return Commentf("%s holds the fields of the %s message.", argsName(op), op.Tag).Line().
		Type().Id(argsName(op)).Struct(fields...)
}

func params(op descriptor.Operation) []Code {
	ps := []Code{Id("ctx").Qual("context", "Context")}
	if len(op.Params) > 0 {
		ps = append(ps, Id("args").Id(argsName(op)))
	}
	if op.Kind == descriptor.Execute {
		ps = append(ps, Id("opts").Op("...").Qual(wasmclientPath, "ExecuteOption"))
	}
	return ps
}

func result(op descriptor.Operation) *Statement {
	return Op("*").Qual(promisePath, "Promise").Types(typeOf(op.Response))
}

func signatures(ops []descriptor.Operation) []Code {
	sigs := make([]Code, len(ops))
	for i, op := range ops {
		sigs[i] = Id(op.GoName).Params(params(op)...).Add(result(op))
	}
	return sigs
}

func argsValue(op descriptor.Operation) *Statement {
	if len(op.Params) == 0 {
		return Qual(wasmclientPath, "NoArgs").Values()
	}
	return Id("args")
}

func methodDoc(op descriptor.Operation) *Statement {
	doc := fmt.Sprintf("%s sends the %s %s.", op.GoName, op.Tag, op.Kind)
	if op.Doc != "" {
		doc += " " + strings.TrimSuffix(op.Doc, ".") + "."
	}
	return Comment(doc)
}

func queryMethod(op descriptor.Operation) *Statement {
	return methodDoc(op).Line().
		Func().Params(Id("c").Op("*").Id("QueryClient")).Id(op.GoName).Params(params(op)...).Add(result(op)).Block(
		Return(Qual(wasmclientPath, "Query").Types(typeOf(op.Response)).Call(
			Id("ctx"),
			Id("c").Dot("QueryClient"),
			Lit(op.Tag),
			argsValue(op),
		)),
	)
}

func executeMethod(op descriptor.Operation) *Statement {
	return methodDoc(op).Line().
		Func().Params(Id("c").Op("*").Id("Client")).Id(op.GoName).Params(params(op)...).Add(result(op)).Block(
		Return(Id("c").Dot("signer").Dot("Execute").Call(
			Id("ctx"),
			Lit(op.Tag),
			argsValue(op),
			Id("opts").Op("..."),
		)),
	)
}

func kindCode(k descriptor.Kind) *Statement {
	if k == descriptor.Execute {
		return Qual(descriptorPath, "Execute")
	}
	return Qual(descriptorPath, "Query")
}

func operationTable(ops []descriptor.Operation) []Code {
	rows := make([]Code, len(ops))
	for i, op := range ops {
		d := Dict{
			Id("Method"):   Lit(op.Method),
			Id("GoName"):   Lit(op.GoName),
			Id("Tag"):      Lit(op.Tag),
			Id("Kind"):     kindCode(op.Kind),
			Id("Response"): Lit(op.Response),
		}
		if op.Doc != "" {
			d[Id("Doc")] = Lit(op.Doc)
		}
		if len(op.Params) > 0 {
			ps := make([]Code, len(op.Params))
			for j, p := range op.Params {
				pd := Dict{
					Id("Name"):     Lit(p.Name),
					Id("GoName"):   Lit(p.GoName),
					Id("WireName"): Lit(p.WireName),
					Id("Type"):     Lit(p.Type),
				}
				if p.Optional {
					pd[Id("Optional")] = True()
				}
				ps[j] = Values(pd)
			}
			d[Id("Params")] = Index().Qual(descriptorPath, "Param").Values(ps...)
		}
		rows[i] = Values(d)
	}
	return rows
}
