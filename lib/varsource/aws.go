package varsource

import (
	"context"
	"fmt"
	"sync"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const secretCacheTTL = 5 * time.Minute

type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func loadAWSConfig(ctx context.Context, opts map[string]string) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithEC2IMDSRegion()}
	if region, ok := opts["aws_region"]; ok {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	if profile, ok := opts["aws_profile"]; ok {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load AWS configuration")
	}
	return cfg, nil
}

func hasOverrides(opts map[string]string) bool {
	_, region := opts["aws_region"]
	_, profile := opts["aws_profile"]
	return region || profile
}

// cacheKey prefixes name with the region and profile overrides.
func cacheKey(name string, opts map[string]string) string {
	return fmt.Sprintf("%s|%s|%s", opts["aws_profile"], opts["aws_region"], name)
}

type ssmUpstream struct {
	mu     sync.Mutex
	client SSMAPI
	newFn  func(ctx context.Context, opts map[string]string) (SSMAPI, error)
}

func newSSMUpstream(client SSMAPI) *ssmUpstream {
	return &ssmUpstream{
		client: client,
		newFn: func(ctx context.Context, opts map[string]string) (SSMAPI, error) {
			cfg, err := loadAWSConfig(ctx, opts)
			if err != nil {
				return nil, err
			}
			return ssm.NewFromConfig(cfg), nil
		},
	}
}

func (u *ssmUpstream) clientFor(ctx context.Context, opts map[string]string) (SSMAPI, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if hasOverrides(opts) {
		return u.newFn(ctx, opts)
	}
	if u.client == nil {
		client, err := u.newFn(ctx, opts)
		if err != nil {
			return nil, err
		}
		u.client = client
	}
	return u.client, nil
}

func (u *ssmUpstream) lookup(ctx context.Context, ref string) (string, error) {
	name, opts, err := splitOptions(ref)
	if err != nil {
		return "", err
	}
	client, err := u.clientFor(ctx, opts)
	if err != nil {
		return "", err
	}
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to get ssm parameter %s", name)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.Errorf("ssm parameter %s has no value", name)
	}
	return *out.Parameter.Value, nil
}

type secretsManagerUpstream struct {
	client SecretsManagerAPI
	newFn  func(ctx context.Context, opts map[string]string) (SecretsManagerAPI, error)
	cache  *cache.Cache[string, string]
}

func newSecretsManagerUpstream(client SecretsManagerAPI) *secretsManagerUpstream {
	return &secretsManagerUpstream{
		client: client,
		newFn: func(ctx context.Context, opts map[string]string) (SecretsManagerAPI, error) {
			cfg, err := loadAWSConfig(ctx, opts)
			if err != nil {
				return nil, err
			}
			return secretsmanager.NewFromConfig(cfg), nil
		},
		cache: cache.New[string, string](),
	}
}

// lookup supports a json_secret_key option for secrets stored as a JSON
// object of key/value pairs.
func (u *secretsManagerUpstream) lookup(ctx context.Context, ref string) (string, error) {
	id, opts, err := splitOptions(ref)
	if err != nil {
		return "", err
	}

	key := cacheKey(id, opts)
	secret, ok := u.cache.Get(key)
	if !ok {
		client := u.client
		if client == nil || hasOverrides(opts) {
			if client, err = u.newFn(ctx, opts); err != nil {
				return "", err
			}
		}
		out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(id)})
		if err != nil {
			return "", errors.Wrapf(err, "failed to get secret %s", id)
		}
		if out.SecretString == nil {
			return "", errors.Errorf("secret %s has no string value", id)
		}
		secret = *out.SecretString
		u.cache.Set(key, secret, cache.WithExpiration(secretCacheTTL))
	}

	field, ok := opts["json_secret_key"]
	if !ok {
		return secret, nil
	}
	var m map[string]any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(secret, &m); err != nil {
		return "", errors.Errorf("json_secret_key is %q but secret %s is not JSON", field, id)
	}
	value, ok := m[field]
	if !ok {
		return "", errors.Errorf("secret %s has no key %q", id, field)
	}
	s, ok := value.(string)
	if !ok {
		return "", errors.Errorf("secret %s key %q is not a string", id, field)
	}
	return s, nil
}
