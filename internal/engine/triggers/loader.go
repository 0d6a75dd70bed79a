package triggers

import (
	"strings"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader resolves trigger identifiers into a Pipeline.
type Loader struct {
	registry *Registry
}

// NewLoader creates a loader backed by registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// Load constructs the triggers in order. Identifiers are either a registered
// dotted name such as "pacforge.triggers.report.ReportTrigger" or a Go
// source file followed by a constructor name, e.g. "hooks/notify.go.New".
// The first failure aborts loading.
func (l *Loader) Load(identifiers []string, env Environment) (*Pipeline, error) {
	loaded := make([]Trigger, 0, len(identifiers))
	for _, identifier := range identifiers {
		trigger, err := l.load(identifier, env)
		if err != nil {
			return nil, zerr.With(err, "identifier", identifier)
		}
		loaded = append(loaded, trigger)
	}
	return NewPipeline(env.Logger, loaded...), nil
}

func (l *Loader) load(identifier string, env Environment) (trigger Trigger, err error) {
	identifier = strings.TrimSpace(identifier)
	module, symbol, ok := splitIdentifier(identifier)
	if !ok {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "malformed trigger identifier")
	}

	if env.Configuration != nil {
		env.Options = env.Configuration.Build.TriggerOptions[identifier]
	}

	if strings.HasSuffix(module, ".go") {
		return loadScript(module, symbol, env)
	}

	factory, found := l.registry.Lookup(identifier)
	if !found {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "unknown trigger")
	}

	defer zerr.Defer(func(perr error) {
		trigger = nil
		err = zerr.Wrap(domain.ErrExtensionLoad, "trigger constructor panicked: "+perr.Error())
	})

	value, ferr := factory(env)
	if ferr != nil {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "trigger constructor failed: "+ferr.Error())
	}
	return asTrigger(value)
}

// asTrigger checks that value implements Trigger and is more than a bare Base.
func asTrigger(value any) (Trigger, error) {
	switch value.(type) {
	case nil:
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "trigger constructor returned nil")
	case Base, *Base:
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "bare trigger base is not a trigger")
	}

	trigger, ok := value.(Trigger)
	if !ok {
		return nil, zerr.Wrap(domain.ErrExtensionLoad, "value does not implement trigger")
	}
	return trigger, nil
}

func splitIdentifier(identifier string) (module, symbol string, ok bool) {
	idx := strings.LastIndex(identifier, ".")
	if idx <= 0 || idx == len(identifier)-1 {
		return "", "", false
	}
	return identifier[:idx], identifier[idx+1:], true
}
