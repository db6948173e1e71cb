package gen

import (
	"github.com/verigen/verigen"
	"github.com/verigen/verigen/spec"
	"github.com/verigen/verigen/typeexpr"
)

// CategoryConfig fixes the generated shape of one category's service:
// everything about an endpoint except its name and its type, which come
// from the specification entry.
type CategoryConfig struct {
	// Category selects which specification group feeds this service.
	Category spec.Category

	// ServiceKey is the identifier the service is declared under,
	// e.g. "AutoDeserializeService".
	ServiceKey string

	// ServiceName is the human-readable service name.
	ServiceName string

	// Filename is the document file name for this service.
	Filename string

	// BasePath prefixes every endpoint path in the service.
	BasePath string

	// HTTPMethod is the verb shared by all endpoints in the service.
	HTTPMethod string
}

// serverCategories is the fixed table for the server direction: one
// service per test category, all sharing the endpoint name prefix.
var serverCategories = []CategoryConfig{
	{
		Category:    spec.CategoryBody,
		ServiceKey:  "AutoDeserializeService",
		ServiceName: "Auto Deserialize Service",
		Filename:    "auto-deserialize-service.conjure.yml",
		BasePath:    "/body",
		HTTPMethod:  "GET",
	},
	{
		Category:    spec.CategorySingleHeaderParam,
		ServiceKey:  "SingleHeaderService",
		ServiceName: "Single Header Service",
		Filename:    "single-header-service.conjure.yml",
		BasePath:    "/single-header-param",
		HTTPMethod:  "POST",
	},
	{
		Category:    spec.CategorySinglePathParam,
		ServiceKey:  "SinglePathParamService",
		ServiceName: "Single Path Param Service",
		Filename:    "single-path-param-service.conjure.yml",
		BasePath:    "/single-path-param",
		HTTPMethod:  "POST",
	},
	{
		Category:    spec.CategorySingleQueryParam,
		ServiceKey:  "SingleQueryParamService",
		ServiceName: "Single Query Param Service",
		Filename:    "single-query-param-service.conjure.yml",
		BasePath:    "/single-query-param",
		HTTPMethod:  "POST",
	},
}

// ServerCategories returns a copy of the server-direction category table.
func ServerCategories() []CategoryConfig {
	return append([]CategoryConfig(nil), serverCategories...)
}

// ServiceFile pairs a generated service document with its file name.
type ServiceFile struct {
	Filename string
	Key      string
	Document verigen.ServiceDocument
}

// ServerServices generates the server-direction service definitions: the
// four per-category services plus the confirm service, which shares the
// body category's endpoint names.
func ServerServices(all *spec.AllTestCases, opts Options) ([]ServiceFile, error) {
	opts = opts.withDefaults()

	files := make([]ServiceFile, 0, len(serverCategories)+1)
	for _, cfg := range serverCategories {
		file, err := buildServerService(all.Group(cfg.Category), cfg, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	confirm, err := buildConfirmService(all.Body, opts)
	if err != nil {
		return nil, err
	}
	files = append(files, confirm)

	return files, nil
}

// ClientServices generates the client-direction service definitions: a
// single body service implemented by the server under test.
func ClientServices(all *spec.AllTestCases, opts Options) ([]ServiceFile, error) {
	opts = opts.withDefaults()

	endpoints := make(map[string]verigen.EndpointDefinition, len(all.Body))
	seen := newKeyTracker(spec.CategoryBody)
	for _, d := range all.Body {
		name, err := EndpointName(opts.Prefix, d.Expr)
		if err != nil {
			return nil, err
		}
		if err := seen.add(name, d.Type); err != nil {
			return nil, err
		}
		typeName, err := typeexpr.ResolveLocal(d.Expr, opts.ImportsNamespace)
		if err != nil {
			return nil, err
		}
		endpoints[name] = verigen.EndpointDefinition{
			HTTP:    "POST /" + name,
			Args:    map[string]verigen.ArgumentDefinition{"body": verigen.Arg(typeName)},
			Returns: typeName,
		}
	}

	return []ServiceFile{{
		Filename: "auto-deserialize-service.conjure.yml",
		Key:      "AutoDeserializeService",
		Document: serviceDocument("AutoDeserializeService", verigen.ServiceDefinition{
			Name:        "Auto Deserialize Service",
			Package:     opts.ClientPackage,
			DefaultAuth: "none",
			BasePath:    "/body",
			Endpoints:   endpoints,
		}),
	}}, nil
}

// buildServerService builds one per-category server service from the
// fixed table. The argument shape differs per category; everything else
// is uniform.
func buildServerService(defs []spec.TestDefinition, cfg CategoryConfig, opts Options) (ServiceFile, error) {
	endpoints := make(map[string]verigen.EndpointDefinition, len(defs))
	seen := newKeyTracker(cfg.Category)
	for _, d := range defs {
		name, err := EndpointName(opts.Prefix, d.Expr)
		if err != nil {
			return ServiceFile{}, err
		}
		if err := seen.add(name, d.Type); err != nil {
			return ServiceFile{}, err
		}
		typeName, err := typeexpr.ResolveLocal(d.Expr, opts.ImportsNamespace)
		if err != nil {
			return ServiceFile{}, err
		}

		ep := verigen.EndpointDefinition{
			HTTP: cfg.HTTPMethod + " /" + name + "/{index}",
		}
		switch cfg.Category {
		case spec.CategoryBody:
			ep.Args = map[string]verigen.ArgumentDefinition{
				"index": verigen.Arg("integer"),
			}
			ep.Returns = typeName
		case spec.CategorySingleHeaderParam:
			ep.Args = map[string]verigen.ArgumentDefinition{
				"index":  verigen.Arg("integer"),
				"header": verigen.HeaderArg(typeName, "Some-Header"),
			}
		case spec.CategorySinglePathParam:
			ep.HTTP = cfg.HTTPMethod + " /" + name + "/{index}/{param}"
			ep.Args = map[string]verigen.ArgumentDefinition{
				"index": verigen.Arg("integer"),
				"param": verigen.Arg(typeName),
			}
		case spec.CategorySingleQueryParam:
			ep.Args = map[string]verigen.ArgumentDefinition{
				"index":     verigen.Arg("integer"),
				"someQuery": verigen.QueryArg(typeName, "foo"),
			}
		}
		endpoints[name] = ep
	}

	return ServiceFile{
		Filename: cfg.Filename,
		Key:      cfg.ServiceKey,
		Document: serviceDocument(cfg.ServiceKey, verigen.ServiceDefinition{
			Name:        cfg.ServiceName,
			Package:     opts.ServerPackage,
			DefaultAuth: "none",
			BasePath:    cfg.BasePath,
			Endpoints:   endpoints,
		}),
	}, nil
}

// buildConfirmService builds the confirm service: one endpoint per body
// type, named identically to the auto-deserialize service, plus the
// fixed confirm endpoint the client uses to echo received values back.
func buildConfirmService(defs []spec.TestDefinition, opts Options) (ServiceFile, error) {
	endpoints := make(map[string]verigen.EndpointDefinition, len(defs)+1)
	endpoints["confirm"] = verigen.EndpointDefinition{
		HTTP: "POST /{endpoint}/{index}",
		Docs: "Send the response received for positive test cases here to verify that it has been " +
			"serialized and deserialized properly.",
		Args: map[string]verigen.ArgumentDefinition{
			"endpoint": verigen.Arg("testCases.EndpointName"),
			"index":    verigen.Arg("integer"),
			"body":     verigen.Arg("any"),
		},
	}

	seen := newKeyTracker(spec.CategoryBody)
	for _, d := range defs {
		name, err := EndpointName(opts.Prefix, d.Expr)
		if err != nil {
			return ServiceFile{}, err
		}
		if err := seen.add(name, d.Type); err != nil {
			return ServiceFile{}, err
		}
		typeName, err := typeexpr.ResolveLocal(d.Expr, opts.ImportsNamespace)
		if err != nil {
			return ServiceFile{}, err
		}
		endpoints[name] = verigen.EndpointDefinition{
			HTTP: "POST /" + name + "/{index}",
			Args: map[string]verigen.ArgumentDefinition{
				"index": verigen.Arg("integer"),
				"body":  verigen.Arg(typeName),
			},
		}
	}

	return ServiceFile{
		Filename: "auto-deserialize-confirm-service.conjure.yml",
		Key:      "AutoDeserializeConfirmService",
		Document: serviceDocument("AutoDeserializeConfirmService", verigen.ServiceDefinition{
			Name:        "Auto Deserialize Confirm Service",
			Package:     opts.ServerPackage,
			DefaultAuth: "none",
			BasePath:    "/confirm",
			Endpoints:   endpoints,
		}),
	}, nil
}

// serviceDocument wraps one service definition with the shared imports
// preamble.
func serviceDocument(key string, svc verigen.ServiceDefinition) verigen.ServiceDocument {
	return verigen.ServiceDocument{
		Types: verigen.TypesBlock{
			ConjureImports: map[string]string{
				"examples":  "../example-types.conjure.yml",
				"testCases": "../test-cases.conjure.yml",
			},
		},
		Services: map[string]verigen.ServiceDefinition{key: svc},
	}
}
