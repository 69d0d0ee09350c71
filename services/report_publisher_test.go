package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/models"
)

type fakeSNS struct {
	inputs []*awssns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(ctx context.Context, in *awssns.PublishInput, _ ...func(*awssns.Options)) (*awssns.PublishOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, in)
	return &awssns.PublishOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSNSReportPublisher_Publish(t *testing.T) {
	client := &fakeSNS{}
	p := newSNSReportPublisher(client, "arn:aws:sns:ap-south-1:123:reports", newTestLogger())

	report := &WeeklyReportResult{
		WeekStart: "2024-01-08",
		WeeklyReport: models.WeeklyReport{
			GraphData: []models.DayReportRow{{Day: "Monday", Eaten: 800, Goal: 2000}},
		},
	}
	require.NoError(t, p.PublishWeeklyReport(context.Background(), 9, report))

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "arn:aws:sns:ap-south-1:123:reports", aws.ToString(in.TopicArn))
	assert.Equal(t, "9", aws.ToString(in.MessageAttributes["user_id"].StringValue))

	var body struct {
		UserID uint `json:"user_id"`
		Report struct {
			WeekStart string                `json:"week_start"`
			GraphData []models.DayReportRow `json:"graphData"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.Message)), &body))
	assert.Equal(t, uint(9), body.UserID)
	assert.Equal(t, "2024-01-08", body.Report.WeekStart)
	assert.Equal(t, report.GraphData, body.Report.GraphData)
}

func TestSNSReportPublisher_Error(t *testing.T) {
	p := newSNSReportPublisher(&fakeSNS{err: errBoom}, "arn", newTestLogger())

	err := p.PublishWeeklyReport(context.Background(), 1, &WeeklyReportResult{})
	assert.ErrorIs(t, err, errBoom)
}
