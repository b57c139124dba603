// Package varsource resolves value references such as "${env:ESIM_PASSWORD}"
// or "${aws:ssm:/esim/api-url}" into the values they point at. Plain strings
// pass through untouched and "\${...}" escapes a literal reference.
package varsource

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	prefixAWSSecretsManager = "aws:secretsmanager:"
	prefixAWSSSM            = "aws:ssm:"
	prefixEnv               = "env:"
	prefixFile              = "file:"
)

// Resolver turns references into values.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
	ResolveAll(ctx context.Context, refs map[string]string) (map[string]string, error)
}

type upstream interface {
	lookup(ctx context.Context, ref string) (string, error)
}

// Source is a Resolver backed by one upstream per reference prefix.
type Source struct {
	prefixes  []string
	upstreams map[string]upstream
}

// ensures Source implements Resolver at compile-time
var _ Resolver = (*Source)(nil)

type Option func(s *Source)

func WithEnv() Option {
	return func(s *Source) { s.upstreams[prefixEnv] = envUpstream{} }
}

func WithFile() Option {
	return func(s *Source) { s.upstreams[prefixFile] = fileUpstream{} }
}

// WithSSM reads SSM parameters through client. A nil client is created
// from the default AWS configuration on first use.
func WithSSM(client SSMAPI) Option {
	return func(s *Source) { s.upstreams[prefixAWSSSM] = newSSMUpstream(client) }
}

// WithSecretsManager reads secrets through client. A nil client is created
// from the default AWS configuration on first use.
func WithSecretsManager(client SecretsManagerAPI) Option {
	return func(s *Source) { s.upstreams[prefixAWSSecretsManager] = newSecretsManagerUpstream(client) }
}

func New(opts ...Option) *Source {
	s := &Source{upstreams: make(map[string]upstream)}
	for _, opt := range opts {
		opt(s)
	}
	for prefix := range s.upstreams {
		s.prefixes = append(s.prefixes, prefix)
	}
	// longest prefix first so "aws:ssm:" wins over a shorter match
	sort.Slice(s.prefixes, func(i, j int) bool { return len(s.prefixes[i]) > len(s.prefixes[j]) })
	return s
}

// NewDefault returns a Source with every upstream enabled.
func NewDefault() *Source {
	return New(WithEnv(), WithFile(), WithSSM(nil), WithSecretsManager(nil))
}

func (s *Source) Resolve(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, `\${`) {
		return strings.TrimPrefix(ref, `\`), nil
	}
	if !IsReference(ref) {
		return ref, nil
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(ref, "${"), "}")
	for _, prefix := range s.prefixes {
		if strings.HasPrefix(inner, prefix) {
			value, err := s.upstreams[prefix].lookup(ctx, strings.TrimPrefix(inner, prefix))
			if err != nil {
				return "", errors.Wrapf(err, "failed to resolve %q", ref)
			}
			return value, nil
		}
	}
	return "", errors.Errorf("no source available for %q", ref)
}

func (s *Source) ResolveAll(ctx context.Context, refs map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(refs))
	for name, ref := range refs {
		value, err := s.Resolve(ctx, ref)
		if err != nil {
			return nil, errors.Wrapf(err, "variable %s", name)
		}
		out[name] = value
	}
	return out, nil
}

// IsReference reports whether value has the ${...} form.
func IsReference(value string) bool {
	return strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}")
}

// splitOptions splits "name,key=value,..." into the name and its options.
func splitOptions(ref string) (string, map[string]string, error) {
	parts := strings.Split(ref, ",")
	opts := make(map[string]string, len(parts)-1)
	for _, part := range parts[1:] {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return "", nil, errors.Errorf("invalid option %q", part)
		}
		opts[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	if parts[0] == "" {
		return "", nil, errors.New("empty name")
	}
	return parts[0], opts, nil
}
