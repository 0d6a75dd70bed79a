package triggers

import (
	"context"
	"os"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Script hook events.
const (
	EventStart  = "start"
	EventResult = "result"
	EventStop   = "stop"
)

var (
	stringType      = reflect.TypeFor[string]()
	optionsType     = reflect.TypeFor[map[string]string]()
	stringSliceType = reflect.TypeFor[[]string]()
	errorType       = reflect.TypeFor[error]()
)

// scriptTrigger runs a hook function interpreted from a Go source file.
//
// The constructor named by the identifier must have the signature
//
//	func(repository string, options map[string]string) (func(event string, success, failed []string) error, error)
type scriptTrigger struct {
	path string
	hook reflect.Value
}

func loadScript(path, symbol string, env Environment) (trigger Trigger, err error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "failed to read trigger script: "+err.Error())
	}
	if strings.TrimSpace(string(code)) == "" {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "trigger script is empty")
	}

	defer zerr.Defer(func(perr error) {
		trigger = nil
		err = zerr.Wrap(domain.ErrExtensionLoad, "trigger script panicked: "+perr.Error())
	})

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "failed to prepare interpreter: "+err.Error())
	}
	if _, err := i.EvalPath(path); err != nil {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "failed to interpret trigger script: "+err.Error())
	}

	constructor, err := i.Eval(symbol)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "trigger symbol not found: "+err.Error())
	}
	if !isConstructor(constructor) {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "trigger symbol has the wrong signature")
	}

	options := env.Options
	if options == nil {
		options = map[string]string{}
	}
	results := constructor.Call([]reflect.Value{
		reflect.ValueOf(env.Repository.String()),
		reflect.ValueOf(options),
	})
	if cerr, _ := results[1].Interface().(error); cerr != nil {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "trigger constructor failed: "+cerr.Error())
	}
	if results[0].IsNil() {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "trigger constructor returned nil")
	}

	return &scriptTrigger{path: path, hook: results[0]}, nil
}

func isConstructor(v reflect.Value) bool {
	if !v.IsValid() || v.Kind() != reflect.Func {
		return false
	}
	t := v.Type()
	if t.NumIn() != 2 || t.In(0) != stringType || t.In(1) != optionsType {
		return false
	}
	if t.NumOut() != 2 || !t.Out(1).Implements(errorType) {
		return false
	}

	hook := t.Out(0)
	return hook.Kind() == reflect.Func &&
		hook.NumIn() == 3 &&
		hook.In(0) == stringType &&
		hook.In(1) == stringSliceType &&
		hook.In(2) == stringSliceType &&
		hook.NumOut() == 1 &&
		hook.Out(0).Implements(errorType)
}

func (s *scriptTrigger) call(event string, success, failed []string) error {
	out := s.hook.Call([]reflect.Value{
		reflect.ValueOf(event),
		reflect.ValueOf(success),
		reflect.ValueOf(failed),
	})
	if err, _ := out[0].Interface().(error); err != nil {
		return zerr.With(zerr.Wrap(err, "trigger script failed"), "script", s.path)
	}
	return nil
}

func (s *scriptTrigger) OnStart(context.Context) error {
	return s.call(EventStart, nil, nil)
}

func (s *scriptTrigger) OnResult(_ context.Context, result *domain.Result, _ []domain.Package) error {
	return s.call(EventResult, domain.Bases(result.Success()), domain.Bases(result.Failed()))
}

func (s *scriptTrigger) OnStop(context.Context) error {
	return s.call(EventStop, nil, nil)
}
