package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/engine/registry"
	"go.trai.ch/zerr"
)

type session struct {
	calls []any
}

type birthParams struct {
	Name      string `arg:"name,required"`
	Size      int    `arg:"size"`
	Wait      bool   `arg:"wait"`
	NoProfile bool   `arg:"no_profile"`
}

type brandParams struct {
	Aliases []string `arg:"aliases"`
}

func newRegistry() *registry.Registry[*session] {
	r := registry.New[*session]()
	registry.Register(r, "birth", "Make a new box", func(_ context.Context, s *session, p birthParams) error {
		s.calls = append(s.calls, p)
		return nil
	})
	registry.Register(r, "brand", "Publish DNS records", func(_ context.Context, s *session, p brandParams) error {
		s.calls = append(s.calls, p)
		return nil
	})
	registry.Register(r, "boxen", "List servers", func(_ context.Context, s *session, _ struct{}) error {
		s.calls = append(s.calls, "boxen")
		return nil
	})
	return r
}

func invoke(t *testing.T, r *registry.Registry[*session], token string) (*session, error) {
	t.Helper()
	inv, err := domain.ParseInvocation(token)
	require.NoError(t, err)
	s := &session{}
	return s, r.Invoke(context.Background(), s, inv)
}

func TestRegistry_Specs(t *testing.T) {
	r := newRegistry()

	specs := r.Specs()
	require.Len(t, specs, 3)
	assert.Equal(t, "birth", specs[0].Name)
	assert.Equal(t, "boxen", specs[1].Name)
	assert.Equal(t, "brand", specs[2].Name)

	assert.Equal(t, []domain.Param{
		{Name: "name", Kind: domain.KindString, Required: true},
		{Name: "size", Kind: domain.KindInt},
		{Name: "wait", Kind: domain.KindBool},
		{Name: "no_profile", Kind: domain.KindBool},
	}, specs[0].Params)
	assert.Equal(t, "birth(name string, [size int], [wait bool], [no_profile bool])", specs[0].Signature())
	assert.Equal(t, "boxen", specs[1].Signature())
	assert.Equal(t, "brand([aliases list])", specs[2].Signature())
}

func TestRegistry_EmptySpecs(t *testing.T) {
	assert.Empty(t, registry.New[*session]().Specs())
}

func TestRegistry_Lookup(t *testing.T) {
	r := newRegistry()

	spec, err := r.Lookup("brand")
	require.NoError(t, err)
	assert.Equal(t, "Publish DNS records", spec.Summary)

	_, err = r.Lookup("deploy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
}

func TestRegistry_Invoke(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  any
	}{
		{"positional", "birth:web,4096", birthParams{Name: "web", Size: 4096}},
		{"mixed", "birth:web,wait=True,size=512", birthParams{Name: "web", Size: 512, Wait: true}},
		{"named only", "birth:name=web,no_profile=1", birthParams{Name: "web", NoProfile: true}},
		{"list", "brand:aliases=www\\, api", brandParams{Aliases: []string{"www", "api"}}},
		{"positional list", "brand:www", brandParams{Aliases: []string{"www"}}},
		{"empty list", "brand:aliases=", brandParams{Aliases: []string{}}},
		{"no args", "brand", brandParams{}},
		{"no params", "boxen", "boxen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := invoke(t, newRegistry(), tt.token)
			require.NoError(t, err)
			assert.Equal(t, []any{tt.want}, s.calls)
		})
	}
}

func TestRegistry_InvokeInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		message string
	}{
		{"missing required", "birth", "missing required argument name"},
		{"missing required with others", "birth:size=512", "missing required argument name"},
		{"too many", "birth:a,1,true,false,extra", "takes at most 4 arguments, got 5"},
		{"unknown", "birth:web,colour=red", "unknown argument colour"},
		{"twice", "birth:web,name=db", "argument name given twice"},
		{"bad int", "birth:web,size=huge", "size"},
		{"bad bool", "birth:web,wait=perhaps", "wait"},
		{"args to no-param task", "boxen:x", "takes at most 0 arguments, got 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := invoke(t, newRegistry(), tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidArguments))
			assert.False(t, errors.Is(err, domain.ErrActionFailed))
			assert.Contains(t, err.Error(), tt.message)
			assert.Empty(t, s.calls, "handler must not run")
		})
	}
}

func TestRegistry_InvokeUnknownTask(t *testing.T) {
	_, err := invoke(t, newRegistry(), "deploy:prod")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
}

func TestRegistry_InvokeActionFailure(t *testing.T) {
	r := registry.New[*session]()
	cause := zerr.With(zerr.Wrap(domain.ErrVolumeNotFound, "no volume named data"), "volume", "data")
	registry.Register(r, "graze", "", func(context.Context, *session, struct {
		Name string `arg:"name,required"`
	}) error {
		return cause
	})

	_, err := invoke(t, r, "graze:data")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrActionFailed))
	assert.True(t, errors.Is(err, domain.ErrVolumeNotFound), "the underlying failure stays reachable")

	var actionErr *domain.ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, "graze", actionErr.Task)
	assert.Equal(t, "task graze failed: no volume named data: volume not found", err.Error())
}

func TestRegister_Panics(t *testing.T) {
	noop := func(context.Context, *session, struct{}) error { return nil }

	t.Run("duplicate", func(t *testing.T) {
		r := registry.New[*session]()
		registry.Register(r, "boxen", "", noop)
		assert.PanicsWithValue(t, `registry: task "boxen" registered twice`, func() {
			registry.Register(r, "boxen", "", noop)
		})
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Panics(t, func() { registry.Register(registry.New[*session](), "", "", noop) })
	})

	t.Run("not a struct", func(t *testing.T) {
		assert.PanicsWithValue(t, `registry: task "x": parameters must be a struct, got string`, func() {
			registry.Register(registry.New[*session](), "x", "", func(context.Context, *session, string) error { return nil })
		})
	})

	t.Run("untagged field", func(t *testing.T) {
		type params struct {
			Name string
		}
		assert.PanicsWithValue(t, `registry: task "x": field Name has no arg tag`, func() {
			registry.Register(registry.New[*session](), "x", "", func(context.Context, *session, params) error { return nil })
		})
	})

	t.Run("unsupported kind", func(t *testing.T) {
		type params struct {
			Ratio float64 `arg:"ratio"`
		}
		assert.PanicsWithValue(t, `registry: task "x": field Ratio: unsupported type float64`, func() {
			registry.Register(registry.New[*session](), "x", "", func(context.Context, *session, params) error { return nil })
		})
	})

	t.Run("duplicate argument", func(t *testing.T) {
		type params struct {
			A string `arg:"name"`
			B string `arg:"name"`
		}
		assert.PanicsWithValue(t, `registry: task "x": argument name declared twice`, func() {
			registry.Register(registry.New[*session](), "x", "", func(context.Context, *session, params) error { return nil })
		})
	})

	t.Run("unknown option", func(t *testing.T) {
		type params struct {
			A string `arg:"name,optional"`
		}
		assert.Panics(t, func() {
			registry.Register(registry.New[*session](), "x", "", func(context.Context, *session, params) error { return nil })
		})
	})
}

type bootstrapParams struct {
	Master bool `arg:"master"`
	Shell  bool `arg:"shell"`
}

func (p *bootstrapParams) Defaults() {
	p.Shell = true
}

func TestRegistry_InvokeDefaults(t *testing.T) {
	r := registry.New[*session]()
	registry.Register(r, "bootstrap", "", func(_ context.Context, s *session, p bootstrapParams) error {
		s.calls = append(s.calls, p)
		return nil
	})

	s, err := invoke(t, r, "bootstrap:master=true")
	require.NoError(t, err)
	assert.Equal(t, []any{bootstrapParams{Master: true, Shell: true}}, s.calls)

	s, err = invoke(t, r, "bootstrap:shell=false")
	require.NoError(t, err)
	assert.Equal(t, []any{bootstrapParams{Shell: false}}, s.calls)
}
