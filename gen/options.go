package gen

// Default values shared by the compiler and the generator. The endpoint
// name prefix in particular must be a single source of truth: the
// consistency check between artifacts is only meaningful because both
// sides derive names from the same prefix and the same naming function.
const (
	// DefaultPrefix is prepended to every derived endpoint name.
	DefaultPrefix = "test"

	// DefaultServerPackage is the declared package of server-direction services.
	DefaultServerPackage = "verification.server"

	// DefaultClientPackage is the declared package of client-direction services.
	DefaultClientPackage = "verification.client"

	// DefaultImportsNamespace qualifies local references in argument and
	// return types, matching the "examples" import alias in the generated
	// document preamble.
	DefaultImportsNamespace = "examples"
)

// Options configures artifact derivation. The zero value selects the
// defaults above.
type Options struct {
	// Prefix for derived endpoint names, e.g. "test" in "testListOfString".
	Prefix string

	// ServerPackage and ClientPackage are the declared packages of the
	// generated service definitions, per direction.
	ServerPackage string
	ClientPackage string

	// ImportsNamespace is the alias local references are resolved into.
	ImportsNamespace string
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.ServerPackage == "" {
		o.ServerPackage = DefaultServerPackage
	}
	if o.ClientPackage == "" {
		o.ClientPackage = DefaultClientPackage
	}
	if o.ImportsNamespace == "" {
		o.ImportsNamespace = DefaultImportsNamespace
	}
	return o
}
