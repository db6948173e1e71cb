package gen

import (
	"github.com/verigen/verigen"
	"github.com/verigen/verigen/spec"
)

// CompileServerTestCases compiles the artifact consumed by the
// verification server, which replays cases against a client under test.
//
// Append rule for this direction: clientPositiveServerFail values join
// the POSITIVE bucket of the body category. The client under test must
// accept those values and hand them back for confirmation; only the
// confirming server treats them as failures. The three param categories
// carry positive cases only.
func CompileServerTestCases(all *spec.AllTestCases, opts Options) (*verigen.TestCases, error) {
	opts = opts.withDefaults()

	auto := make(map[string]verigen.PositiveAndNegative, len(all.Body))
	seen := newKeyTracker(spec.CategoryBody)
	for _, d := range all.Body {
		key, err := EndpointName(opts.Prefix, d.Expr)
		if err != nil {
			return nil, err
		}
		if err := seen.add(key, d.Type); err != nil {
			return nil, err
		}
		positive := make([]string, 0, len(d.Positive)+len(d.ClientPositiveServerFail))
		positive = append(positive, d.Positive...)
		positive = append(positive, d.ClientPositiveServerFail...)
		auto[key] = verigen.PositiveAndNegative{
			Positive: positive,
			Negative: append([]string{}, d.Negative...),
		}
	}

	header, err := compilePositiveOnly(all.SingleHeaderParam, spec.CategorySingleHeaderParam, opts.Prefix)
	if err != nil {
		return nil, err
	}
	path, err := compilePositiveOnly(all.SinglePathParam, spec.CategorySinglePathParam, opts.Prefix)
	if err != nil {
		return nil, err
	}
	query, err := compilePositiveOnly(all.SingleQueryParam, spec.CategorySingleQueryParam, opts.Prefix)
	if err != nil {
		return nil, err
	}

	return &verigen.TestCases{
		Client: &verigen.ClientTestCases{
			AutoDeserialize:         auto,
			SingleHeaderService:     header,
			SinglePathParamService:  path,
			SingleQueryParamService: query,
		},
	}, nil
}

// CompileClientTestCases compiles the artifact consumed by the
// verification client, which replays cases against a server under test.
//
// Append rule for this direction: clientPositiveServerFail values join
// the NEGATIVE bucket, since the server under test must reject them.
func CompileClientTestCases(all *spec.AllTestCases, opts Options) (*verigen.TestCases, error) {
	opts = opts.withDefaults()

	auto := make(map[string]verigen.PositiveAndNegative, len(all.Body))
	seen := newKeyTracker(spec.CategoryBody)
	for _, d := range all.Body {
		key, err := EndpointName(opts.Prefix, d.Expr)
		if err != nil {
			return nil, err
		}
		if err := seen.add(key, d.Type); err != nil {
			return nil, err
		}
		negative := make([]string, 0, len(d.Negative)+len(d.ClientPositiveServerFail))
		negative = append(negative, d.Negative...)
		negative = append(negative, d.ClientPositiveServerFail...)
		auto[key] = verigen.PositiveAndNegative{
			Positive: append([]string{}, d.Positive...),
			Negative: negative,
		}
	}

	return &verigen.TestCases{
		Server: &verigen.ServerTestCases{AutoDeserialize: auto},
	}, nil
}

// compilePositiveOnly compiles a param category, whose artifact is a bare
// ordered list of positive cases per endpoint.
func compilePositiveOnly(defs []spec.TestDefinition, category spec.Category, prefix string) (map[string][]string, error) {
	out := make(map[string][]string, len(defs))
	seen := newKeyTracker(category)
	for _, d := range defs {
		key, err := EndpointName(prefix, d.Expr)
		if err != nil {
			return nil, err
		}
		if err := seen.add(key, d.Type); err != nil {
			return nil, err
		}
		out[key] = append([]string{}, d.Positive...)
	}
	return out, nil
}

// keyTracker detects endpoint-key collisions within one category. A
// collision means two entries describe the same type shape and must be
// merged upstream; it is reported with both offending signatures.
type keyTracker struct {
	category spec.Category
	firstSig map[string]string
}

func newKeyTracker(category spec.Category) *keyTracker {
	return &keyTracker{category: category, firstSig: make(map[string]string)}
}

func (k *keyTracker) add(key, signature string) error {
	if prev, ok := k.firstSig[key]; ok {
		return verigen.Errorf(verigen.CodeDuplicateEndpointKey,
			"%s: endpoint key %q derived from both %q and %q", k.category, key, prev, signature)
	}
	k.firstSig[key] = signature
	return nil
}
