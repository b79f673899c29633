package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"habitat-api/pkg/resource"
)

// Settings selects the region, an optional endpoint (LocalStack) and optional static credentials.
type Settings struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// SettingsFromProperties reads the app.aws.* properties.
func SettingsFromProperties() Settings {
	return Settings{
		Region:          resource.GetString("app.aws.region"),
		Endpoint:        resource.GetString("app.aws.endpoint"),
		AccessKeyID:     resource.GetString("app.aws.access-key-id"),
		SecretAccessKey: resource.GetString("app.aws.secret-access-key"),
	}
}

// LoadConfig builds the SDK configuration. Without static credentials the default chain
// (environment variables, shared files, IAM roles) is used.
func LoadConfig(ctx context.Context, settings Settings) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
	}
	if settings.AccessKeyID != "" && settings.SecretAccessKey != "" {
		options = append(options, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}
