// Package registry maps task names to typed handlers.
//
// A task's parameters are declared as a struct whose exported fields carry an
// `arg:"name[,required]"` tag. Field order is positional order. The struct is
// validated when the task is registered, so a malformed declaration fails at
// startup rather than when an operator first invokes the task.
package registry

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
)

const tagName = "arg"

// Defaulter is implemented by parameter structs whose optional arguments
// default to something other than the zero value.
type Defaulter interface {
	Defaults()
}

type entry[S any] struct {
	spec domain.TaskSpec
	run  func(ctx context.Context, session S, args map[string]any) error
}

// Registry holds the tasks callable against a session of type S.
type Registry[S any] struct {
	tasks map[string]entry[S]
}

// New returns an empty registry.
func New[S any]() *Registry[S] {
	return &Registry[S]{tasks: make(map[string]entry[S])}
}

// Register adds a task whose parameters decode into P.
// It panics if name is empty or taken, or if P is not a valid parameter struct.
func Register[S, P any](r *Registry[S], name, summary string, fn func(ctx context.Context, session S, params P) error) {
	if name == "" {
		panic("registry: empty task name")
	}
	if _, ok := r.tasks[name]; ok {
		panic(fmt.Sprintf("registry: task %q registered twice", name))
	}

	params, err := paramsOf(reflect.TypeFor[P]())
	if err != nil {
		panic(fmt.Sprintf("registry: task %q: %v", name, err))
	}

	r.tasks[name] = entry[S]{
		spec: domain.TaskSpec{Name: name, Summary: summary, Params: params},
		run: func(ctx context.Context, session S, args map[string]any) error {
			var p P
			if d, ok := any(&p).(Defaulter); ok {
				d.Defaults()
			}
			if err := decode(args, &p); err != nil {
				return zerr.With(zerr.Wrap(domain.ErrInvalidArguments, err.Error()), "task", name)
			}
			return fn(ctx, session, p)
		},
	}
}

// Lookup returns the spec of a registered task.
func (r *Registry[S]) Lookup(name string) (domain.TaskSpec, error) {
	e, ok := r.tasks[name]
	if !ok {
		return domain.TaskSpec{}, notFound(name)
	}
	return e.spec, nil
}

// Specs returns every registered task sorted by name.
func (r *Registry[S]) Specs() []domain.TaskSpec {
	specs := make([]domain.TaskSpec, 0, len(r.tasks))
	for _, e := range r.tasks {
		specs = append(specs, e.spec)
	}
	slices.SortFunc(specs, func(a, b domain.TaskSpec) int {
		return strings.Compare(a.Name, b.Name)
	})
	return specs
}

// Invoke runs the task named by inv. Argument errors match ErrInvalidArguments;
// a failing handler is reported as a *domain.ActionError.
func (r *Registry[S]) Invoke(ctx context.Context, session S, inv domain.Invocation) error {
	e, ok := r.tasks[inv.Task]
	if !ok {
		return notFound(inv.Task)
	}

	args, err := bind(e.spec, inv)
	if err != nil {
		return zerr.With(zerr.With(err, "task", inv.Task), "usage", e.spec.Signature())
	}

	if err := e.run(ctx, session, args); err != nil {
		if errors.Is(err, domain.ErrInvalidArguments) {
			return err
		}
		return &domain.ActionError{Task: inv.Task, Err: err}
	}
	return nil
}

// bind maps positional and named arguments onto parameter names and checks
// that every required parameter is present.
func bind(spec domain.TaskSpec, inv domain.Invocation) (map[string]any, error) {
	if len(inv.Positional) > len(spec.Params) {
		return nil, invalid(fmt.Sprintf("takes at most %d arguments, got %d", len(spec.Params), len(inv.Positional)))
	}

	args := make(map[string]any, len(inv.Positional)+len(inv.Named))
	for i, v := range inv.Positional {
		args[spec.Params[i].Name] = v
	}
	for k, v := range inv.Named {
		if !slices.ContainsFunc(spec.Params, func(p domain.Param) bool { return p.Name == k }) {
			return nil, invalid("unknown argument " + k)
		}
		if _, dup := args[k]; dup {
			return nil, invalid("argument " + k + " given twice")
		}
		args[k] = v
	}
	for _, p := range spec.Params {
		if _, ok := args[p.Name]; p.Required && !ok {
			return nil, invalid("missing required argument " + p.Name)
		}
	}
	return args, nil
}

func notFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "unknown task "+name), "task", name)
}

func invalid(reason string) error {
	return zerr.Wrap(domain.ErrInvalidArguments, reason)
}

func decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          tagName,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			trimListHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

// trimListHook trims list items and drops empty ones, so "www, api," is [www api].
func trimListHook(f, t reflect.Type, data any) (any, error) {
	items, ok := data.([]string)
	if !ok || f.Kind() != reflect.Slice || t.Kind() != reflect.Slice {
		return data, nil
	}
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// paramsOf validates a parameter struct and returns its parameters in field order.
func paramsOf(t reflect.Type) ([]domain.Param, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("parameters must be a struct, got %s", t.Kind())
	}

	params := make([]domain.Param, 0, t.NumField())
	seen := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, ok := f.Tag.Lookup(tagName)
		if !ok {
			return nil, fmt.Errorf("field %s has no %s tag", f.Name, tagName)
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			return nil, fmt.Errorf("field %s has an empty %s name", f.Name, tagName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("argument %s declared twice", name)
		}
		seen[name] = struct{}{}

		kind, err := kindOf(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		var required bool
		switch opts {
		case "":
		case "required":
			required = true
		default:
			return nil, fmt.Errorf("field %s has unknown %s option %q", f.Name, tagName, opts)
		}

		params = append(params, domain.Param{Name: name, Kind: kind, Required: required})
	}
	return params, nil
}

func kindOf(t reflect.Type) (domain.ParamKind, error) {
	switch {
	case t.Kind() == reflect.String:
		return domain.KindString, nil
	case t.Kind() == reflect.Bool:
		return domain.KindBool, nil
	case t.Kind() == reflect.Int:
		return domain.KindInt, nil
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String:
		return domain.KindList, nil
	default:
		return "", fmt.Errorf("unsupported type %s", t)
	}
}
