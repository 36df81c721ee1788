/*
Package statuslogs serves notification delivery status logs stored in DynamoDB.

Three read-only operations are exposed, each as an API Gateway proxy handler:

  - List returns every status log of a notification, in table order
  - Details returns one status log by notification_id and log_id
  - Summary counts a notification's status logs by delivery_status

The handlers run under AWS Lambda (statuslogs lambda --handler <name>) or behind
a plain HTTP server (statuslogs serve).

Basic Usage:

	cfg, _ := config.Load()
	store, _ := ddb.NewDynamodbDataStore(ctx, ddb.Settings{
		Region:    cfg.Region,
		TableName: cfg.TableName,
	})
	h := handlers.New(store, handlers.Config{TableName: cfg.TableName})
	lambda.Start(h.Summary)
*/
package statuslogs
