package bootstrap

import (
	"context"
	"log/slog"

	"badminton-club/internal/infra/db"
	"badminton-club/internal/infra/kvstore"
	"badminton-club/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	ctx := context.Background()

	var base kvstore.Store
	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		client, err := newDynamoClient(ctx, cfg.Store.DynamoDB)
		if err != nil {
			return nil, err
		}
		base = kvstore.NewDynamoStore(client, cfg.Store.DynamoDB.TableName)
		logger.Info("DynamoDBストアを使用します", "table", cfg.Store.DynamoDB.TableName)
	default:
		pool, cleanup, err := db.Connect(ctx, cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})

		pg := kvstore.NewPostgresStore(pool, logger)
		if err := pg.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, err
		}
		base = pg
		logger.Info("PostgreSQLストアを使用します", "host", cfg.Store.Postgres.Host, "db", cfg.Store.Postgres.DBName)
	}

	return kvstore.NewRetryingStore(base, cfg.Store.CallTimeout, cfg.Store.ReadRetries, logger), nil
}

func newDynamoClient(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Endpoint != "" {
		// DynamoDB Local and LocalStack accept any static key.
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
