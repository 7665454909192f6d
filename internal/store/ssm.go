package store

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trufnetwork/confsync/internal/params"
)

// MaxNamesPerRequest is the largest number of names SSM accepts in one
// GetParameters call.
const MaxNamesPerRequest = 10

type SSMStoreOptions struct {
	Region string
	// Endpoint is optional; empty means the default endpoint of Region.
	Endpoint string
	// RetryTimeout bounds retries of throttled or failed calls. Zero disables them.
	RetryTimeout time.Duration
}

// SSMStore implements ParameterStore on top of AWS Systems Manager Parameter Store.
type SSMStore struct {
	client          ssmiface.SSMAPI
	retryTimeout    time.Duration
	initialInterval time.Duration
}

var _ ParameterStore = (*SSMStore)(nil)

func NewSSMStore(opts SSMStoreOptions) (*SSMStore, error) {
	cfg := aws.NewConfig().WithRegion(opts.Region)
	if opts.Endpoint != "" {
		cfg = cfg.WithEndpoint(opts.Endpoint)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create aws session")
	}

	return NewSSMStoreFromClient(ssm.New(sess), opts.RetryTimeout), nil
}

// NewSSMStoreFromClient wraps an existing SSM client.
func NewSSMStoreFromClient(client ssmiface.SSMAPI, retryTimeout time.Duration) *SSMStore {
	return &SSMStore{
		client:          client,
		retryTimeout:    retryTimeout,
		initialInterval: backoff.DefaultInitialInterval,
	}
}

func (s *SSMStore) GetParameters(ctx context.Context, names []string, withDecryption bool) (GetParametersOutput, error) {
	var out *ssm.GetParametersOutput

	err := s.retry(ctx, "GetParameters", func() error {
		var err error
		out, err = s.client.GetParametersWithContext(ctx, &ssm.GetParametersInput{
			Names:          aws.StringSlice(names),
			WithDecryption: aws.Bool(withDecryption),
		})
		return err
	})
	if err != nil {
		return GetParametersOutput{}, errors.Wrap(err, "failed to get parameters")
	}

	result := GetParametersOutput{
		Parameters:   make([]params.Value, 0, len(out.Parameters)),
		InvalidNames: aws.StringValueSlice(out.InvalidParameters),
	}
	for _, p := range out.Parameters {
		result.Parameters = append(result.Parameters, params.Value{
			ARN:              p.ARN,
			DataType:         p.DataType,
			LastModifiedDate: p.LastModifiedDate,
			Name:             aws.StringValue(p.Name),
			Type:             p.Type,
			Value:            aws.StringValue(p.Value),
			Version:          p.Version,
		})
	}

	return result, nil
}

func (s *SSMStore) PutParameter(ctx context.Context, record params.Record) (PutParameterOutput, error) {
	var out *ssm.PutParameterOutput

	err := s.retry(ctx, "PutParameter", func() error {
		var err error
		out, err = s.client.PutParameterWithContext(ctx, &ssm.PutParameterInput{
			Name:      aws.String(record.Name),
			Value:     aws.String(record.Value),
			Type:      aws.String(parameterType(record.Type)),
			Overwrite: aws.Bool(record.Overwrite),
		})
		return err
	})
	if err != nil {
		return PutParameterOutput{}, errors.Wrapf(err, "failed to put parameter %s", record.Name)
	}

	return PutParameterOutput{
		Version: aws.Int64Value(out.Version),
		Tier:    aws.StringValue(out.Tier),
	}, nil
}

// parameterType maps the lower-case types used in records files onto the
// enum SSM expects. Unknown types are passed through for SSM to reject.
func parameterType(t string) string {
	switch strings.ToLower(t) {
	case "string":
		return ssm.ParameterTypeString
	case "stringlist":
		return ssm.ParameterTypeStringList
	case "securestring":
		return ssm.ParameterTypeSecureString
	}
	return t
}

func (s *SSMStore) retry(ctx context.Context, op string, fn func() error) error {
	if s.retryTimeout <= 0 {
		return fn()
	}

	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(s.initialInterval),
		backoff.WithMaxInterval(5*time.Second),
		backoff.WithMaxElapsedTime(s.retryTimeout),
	)

	return backoff.RetryNotify(func() error {
		err := fn()
		if err != nil && !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx), func(err error, duration time.Duration) {
		zap.L().Warn("retrying parameter store call",
			zap.String("operation", op),
			zap.Error(err),
			zap.String("retry_in", duration.String()))
	})
}

// IsRetryable reports whether err is a throttling or server-side error of the
// parameter store.
func IsRetryable(err error) bool {
	if request.IsErrorThrottle(err) {
		return true
	}

	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() >= 500 {
		return true
	}

	var aerr awserr.Error
	if errors.As(err, &aerr) {
		switch aerr.Code() {
		case ssm.ErrCodeInternalServerError, ssm.ErrCodeTooManyUpdates:
			return true
		}
	}

	return false
}

// ErrorFields returns zap fields describing err, including the AWS error code
// when there is one.
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var aerr awserr.Error
	if errors.As(err, &aerr) {
		fields = append(fields, zap.String("code", aerr.Code()))
	}

	return fields
}
