package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

type snsAPI interface {
	Publish(ctx context.Context, in *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

// SNSReportPublisher posts weekly reports to an SNS topic as JSON.
type SNSReportPublisher struct {
	sns      snsAPI
	topicArn string
	logger   *zap.Logger
}

func NewSNSReportPublisher(ctx context.Context, region, topicArn string, logger *zap.Logger) (*SNSReportPublisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newSNSReportPublisher(awssns.NewFromConfig(cfg), topicArn, logger), nil
}

func newSNSReportPublisher(client snsAPI, topicArn string, logger *zap.Logger) *SNSReportPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SNSReportPublisher{sns: client, topicArn: topicArn, logger: logger}
}

func (p *SNSReportPublisher) PublishWeeklyReport(ctx context.Context, userID uint, report *WeeklyReportResult) error {
	raw, err := json.Marshal(map[string]any{
		"user_id": userID,
		"report":  report,
	})
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	out, err := p.sns.Publish(ctx, &awssns.PublishInput{
		TopicArn: aws.String(p.topicArn),
		Subject:  aws.String("Weekly nutrition report"),
		Message:  aws.String(string(raw)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"user_id": {DataType: aws.String("Number"), StringValue: aws.String(strconv.FormatUint(uint64(userID), 10))},
			"kind":    {DataType: aws.String("String"), StringValue: aws.String(EventWeeklyReport)},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	p.logger.Debug("weekly report published", zap.Uint("user_id", userID), zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}
