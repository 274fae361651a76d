package provider

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
)

// newAzure targets an Azure OpenAI deployment. The configured model names
// the deployment. With auth_type "azure_identity" the default Azure
// credential chain (environment, workload identity, managed identity,
// Azure CLI) supplies bearer tokens instead of an API key.
func newAzure(cfg *Config) (*chatCompletion, error) {
	opts := []option.RequestOption{
		azure.WithEndpoint(cfg.BaseURL, cfg.APIVersion),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.TimeoutDuration()),
	}

	ready := false
	switch cfg.AuthType {
	case AuthAzureIdentity:
		cred, err := newTokenCredential()
		if err != nil {
			return nil, fmt.Errorf("azure credential: %w", err)
		}
		opts = append(opts, azure.WithTokenCredential(cred))
		ready = true
	default:
		if cfg.APIKey != "" {
			opts = append(opts, azure.WithAPIKey(cfg.APIKey))
			ready = true
		}
	}

	return &chatCompletion{
		client:      openai.NewClient(opts...),
		name:        cfg.Name,
		model:       cfg.Model,
		temperature: cfg.TemperatureValue(),
		maxTokens:   int64(cfg.MaxTokens),
		ready:       ready,
	}, nil
}

func newTokenCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}
