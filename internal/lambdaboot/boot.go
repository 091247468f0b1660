// Package lambdaboot provides shared Lambda cold-start bootstrap logic.
//
// Each function needs some subset of: AWS config, SSM credential fetch,
// DynamoDB, S3, and startup logging. This package extracts the common init
// patterns so each Lambda's init() is a short composition of helpers.
package lambdaboot

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"

	"github.com/avelez/ai-stylist-backend/internal/logging"
	"github.com/avelez/ai-stylist-backend/internal/store"
)

// AWSClients holds the core AWS SDK clients used across Lambdas.
type AWSClients struct {
	Config aws.Config
	SSM    *ssm.Client
}

// S3Clients holds S3 client, presigner, and bucket name.
type S3Clients struct {
	Client    *s3.Client
	Presigner *s3.PresignClient
	Bucket    string
}

// InitAWS loads the default AWS config and returns it along with common clients.
func InitAWS() AWSClients {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}
	log.Debug().Str("region", cfg.Region).Msg("AWS config loaded")
	return AWSClients{
		Config: cfg,
		SSM:    ssm.NewFromConfig(cfg),
	}
}

// InitS3 creates an S3 client, presigner, and reads the bucket name from the
// given environment variable. Fatals if the env var is empty.
func InitS3(cfg aws.Config, bucketEnvVar string) S3Clients {
	client := s3.NewFromConfig(cfg)
	bucket := os.Getenv(bucketEnvVar)
	if bucket == "" {
		log.Fatal().Str("envVar", bucketEnvVar).Msg("Bucket environment variable is required")
	}
	return S3Clients{
		Client:    client,
		Presigner: s3.NewPresignClient(client),
		Bucket:    bucket,
	}
}

// InitLookbookOptional creates a lookbook store if the table env var is set.
// Returns nil (with a warning) if not configured.
func InitLookbookOptional(cfg aws.Config, tableEnvVar string) *store.LookbookStore {
	tableName := os.Getenv(tableEnvVar)
	if tableName == "" {
		log.Warn().Str("envVar", tableEnvVar).Msg("Lookbook table not set — lookbook disabled")
		return nil
	}
	return store.NewLookbookStore(dynamodb.NewFromConfig(cfg), tableName)
}

// loadKeyFromSSM fetches a secret into the given env var from SSM Parameter
// Store unless the env var is already set. Fatals on SSM errors: a function
// that cannot resolve a configured parameter path is misdeployed.
func loadKeyFromSSM(ssmClient *ssm.Client, keyEnv, paramEnv, defaultParam string) {
	if os.Getenv(keyEnv) != "" {
		return
	}
	paramName := logging.EnvOrDefault(paramEnv, defaultParam)
	ssmStart := time.Now()
	result, err := ssmClient.GetParameter(context.Background(), &ssm.GetParameterInput{
		Name:           &paramName,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		log.Fatal().Err(err).Str("param", paramName).Msg("Failed to read API key from SSM")
	}
	os.Setenv(keyEnv, *result.Parameter.Value)
	log.Debug().Str("param", paramName).Dur("elapsed", time.Since(ssmStart)).Msg("API key loaded from SSM")
}

// LoadGeminiKey fetches the Gemini API key from SSM Parameter Store if not
// already set via GEMINI_API_KEY.
func LoadGeminiKey(ssmClient *ssm.Client) {
	loadKeyFromSSM(ssmClient, "GEMINI_API_KEY", "SSM_GEMINI_KEY_PARAM", "/ai-stylist/prod/gemini-api-key")
}

// LoadOpenAIKey fetches the chat-completion provider key from SSM Parameter
// Store if not already set via OPENAI_API_KEY.
func LoadOpenAIKey(ssmClient *ssm.Client) {
	loadKeyFromSSM(ssmClient, "OPENAI_API_KEY", "SSM_OPENAI_KEY_PARAM", "/ai-stylist/prod/openai-api-key")
}

// StartupLog is a convenience wrapper for the startup logger.
func StartupLog(name string, initStart time.Time) *logging.StartupLogger {
	return logging.NewStartupLogger(name).InitDuration(time.Since(initStart))
}
